package policy

import (
	"errors"
	"testing"
)

func TestFrameguard_Evaluate(t *testing.T) {
	testCases := []struct {
		name      string
		opts      Options
		want      string
		expectErr bool
	}{
		{
			name: "deny",
			opts: Options{"action": "deny"},
			want: "DENY",
		},
		{
			name: "sameorigin",
			opts: Options{"action": "sameorigin"},
			want: "SAMEORIGIN",
		},
		{
			name: "action is case insensitive",
			opts: Options{"action": "DENY"},
			want: "DENY",
		},
		{
			name: "default action without options",
			opts: Options{},
			want: "SAMEORIGIN",
		},
		{
			name:      "unrecognized action",
			opts:      Options{"action": "bogus"},
			expectErr: true,
		},
		{
			name:      "non string action",
			opts:      Options{"action": 1},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			muts, err := (Frameguard{}).Evaluate(tc.opts)
			if tc.expectErr {
				var optErr *InvalidOptionError
				if !errors.As(err, &optErr) {
					t.Fatalf("expected InvalidOptionError, got %T: %v", err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Evaluate() returned an unexpected error: %v", err)
			}
			if len(muts) != 1 || muts[0].Header != "X-Frame-Options" {
				t.Fatalf("unexpected mutations: %+v", muts)
			}
			if muts[0].Value != tc.want {
				t.Errorf("got value %q, want %q", muts[0].Value, tc.want)
			}
		})
	}
}
