package config

import (
	"testing"
	"time"
)

func TestDuration_UnmarshalText(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		want      time.Duration
		expectErr bool
	}{
		{"seconds", "15s", 15 * time.Second, false},
		{"minutes", "2m", 2 * time.Minute, false},
		{"composite", "1h30m", 90 * time.Minute, false},
		{"empty", "", 0, true},
		{"bare number", "15", 0, true},
		{"garbage", "soon", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tc.input))
			if (err != nil) != tc.expectErr {
				t.Fatalf("UnmarshalText() error = %v, expectErr %v", err, tc.expectErr)
			}
			if !tc.expectErr && d.Duration != tc.want {
				t.Errorf("UnmarshalText() got = %v, want %v", d.Duration, tc.want)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	testCases := []struct {
		name     string
		duration Duration
		want     string
	}{
		{"seconds", Duration{Duration: 15 * time.Second}, "15s"},
		{"zero", Duration{}, "0s"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.duration.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText() returned an unexpected error: %v", err)
			}
			if string(got) != tc.want {
				t.Errorf("MarshalText() got = %q, want %q", string(got), tc.want)
			}
		})
	}
}
