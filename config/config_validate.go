package config

import (
	"fmt"
	"net"

	"github.com/armethq/armet/policy"
)

func Validate(cfg *Config) error {
	if err := validateServer(&cfg.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}
	// Resolving the policy table exercises the full startup validation
	// pass: unknown policy names, malformed options and CSP directive
	// errors all surface here.
	if _, err := policy.Resolve(cfg.Policies); err != nil {
		return fmt.Errorf("policy config validation failed: %w", err)
	}
	return nil
}

// validateServer checks the Server configuration section.
// It ensures the Addr field is not empty and contains a valid host:port or
// :port format. If only a port is provided (e.g., ":8080"), the host
// defaults to "localhost".
//
// Allowed formats:
//   - "host:port" (e.g., "example.com:8080", "127.0.0.1:8080", "[::1]:8080")
//   - ":port"     (e.g., ":8080" becomes "localhost:8080")
//
// The port part is mandatory.
func validateServer(server *Server) error {
	if server.Addr == "" {
		return fmt.Errorf("server address (Addr) cannot be empty")
	}

	host, port, err := net.SplitHostPort(server.Addr)
	if err != nil {
		return fmt.Errorf("invalid server address format '%s': %w", server.Addr, err)
	}

	if port == "" {
		return fmt.Errorf("server address '%s' must include a port", server.Addr)
	}
	if host == "" {
		host = "localhost"
	}

	server.Addr = net.JoinHostPort(host, port)

	if _, err := net.LookupPort("tcp", port); err != nil {
		return fmt.Errorf("invalid port '%s' in server address '%s': %w", port, server.Addr, err)
	}

	return nil
}
