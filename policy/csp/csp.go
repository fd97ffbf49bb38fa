// Package csp compiles a Content-Security-Policy directive set into the
// single serialized header value. Directive names are accepted in camel
// form (scriptSrc) or hyphenated form (script-src) and normalized before
// compilation; every directive value is an ordered list of source tokens.
package csp

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingDefaultSrc is returned when the directive set lacks a
// default-src directive. A policy without an explicit default fallback is
// rejected rather than silently left wide open.
var ErrMissingDefaultSrc = errors.New("csp: default-src directive is required")

// DuplicateDirectiveError reports a directive supplied under both its camel
// and hyphenated name.
type DuplicateDirectiveError struct {
	Directive string
}

func (e *DuplicateDirectiveError) Error() string {
	return fmt.Sprintf("csp: directive %q supplied more than once", e.Directive)
}

// UnknownDirectiveError reports a directive name outside the canonical
// table.
type UnknownDirectiveError struct {
	Directive string
}

func (e *UnknownDirectiveError) Error() string {
	return fmt.Sprintf("csp: unknown directive %q", e.Directive)
}

// InvalidDirectiveValueError reports a directive whose value is not an
// ordered list of string tokens.
type InvalidDirectiveValueError struct {
	Directive string
	Reason    string
}

func (e *InvalidDirectiveValueError) Error() string {
	return fmt.Sprintf("csp: directive %q %s", e.Directive, e.Reason)
}

// The canonical directive table. Table order is the serialization order,
// so compilation is deterministic regardless of input map iteration.
type directive struct {
	camel  string
	hyphen string
}

var directives = []directive{
	{"defaultSrc", "default-src"},
	{"baseUri", "base-uri"},
	{"childSrc", "child-src"},
	{"connectSrc", "connect-src"},
	{"fontSrc", "font-src"},
	{"formAction", "form-action"},
	{"frameAncestors", "frame-ancestors"},
	{"frameSrc", "frame-src"},
	{"imgSrc", "img-src"},
	{"manifestSrc", "manifest-src"},
	{"mediaSrc", "media-src"},
	{"objectSrc", "object-src"},
	{"pluginTypes", "plugin-types"},
	{"reportUri", "report-uri"},
	{"sandbox", "sandbox"},
	{"scriptSrc", "script-src"},
	{"styleSrc", "style-src"},
	{"workerSrc", "worker-src"},
}

// canonicalName maps a camel or hyphenated directive name to its camel
// canonical identity.
func canonicalName(name string) (string, bool) {
	for _, d := range directives {
		if name == d.camel || name == d.hyphen {
			return d.camel, true
		}
	}
	return "", false
}

// Compile normalizes and serializes a directive set into the value of the
// Content-Security-Policy header. Source tokens are emitted byte-exact:
// keyword sources like 'self' must already carry their quotes.
func Compile(options map[string]any) (string, error) {
	sources := make(map[string][]string, len(options))
	for name, raw := range options {
		canon, ok := canonicalName(name)
		if !ok {
			return "", &UnknownDirectiveError{Directive: name}
		}
		if _, dup := sources[canon]; dup {
			return "", &DuplicateDirectiveError{Directive: canon}
		}
		tokens, err := sourceList(canon, raw)
		if err != nil {
			return "", err
		}
		sources[canon] = tokens
	}

	if _, ok := sources["defaultSrc"]; !ok {
		return "", ErrMissingDefaultSrc
	}

	var b strings.Builder
	first := true
	for _, d := range directives {
		tokens, ok := sources[d.camel]
		if !ok {
			continue
		}
		if !first {
			b.WriteString("; ")
		}
		first = false
		b.WriteString(d.hyphen)
		for _, tok := range tokens {
			b.WriteByte(' ')
			b.WriteString(tok)
		}
	}
	return b.String(), nil
}

// sourceList coerces a directive value into a duplicate-free ordered token
// list. Scalar values are rejected: directives are always list-valued, even
// for a single source.
func sourceList(directive string, raw any) ([]string, error) {
	var items []any
	switch v := raw.(type) {
	case []string:
		items = make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
	case []any:
		items = v
	default:
		return nil, &InvalidDirectiveValueError{Directive: directive, Reason: "must be a list of source tokens"}
	}

	tokens := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		tok, ok := item.(string)
		if !ok {
			return nil, &InvalidDirectiveValueError{Directive: directive, Reason: "contains a non-string source token"}
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
