// Package engine adapts regular expression engines to the small capability
// rexspan needs: report the number of capture groups, run a match over a
// string and return the submatch index pairs of the leftmost match.
//
// Three backends are available:
//   - re2: github.com/wasilibs/go-re2, the RE2 library compiled to WebAssembly (default)
//   - std: the standard library regexp package
//   - coregex: github.com/coregx/coregex rejecting non-matching input, with
//     spans taken from the std program
//
// All backends accept RE2 syntax. A Program never mutates after Compile and
// is safe for concurrent use.
package engine

import (
	"fmt"
	"strings"
)

// Backend names a regex engine implementation.
type Backend string

// Supported backends.
const (
	Coregex Backend = "coregex"
	RE2     Backend = "re2"
	Std     Backend = "std"
)

// Default is the backend used when none is configured.
const Default = RE2

// Program is a compiled expression.
type Program interface {
	// NumGroups returns the number of capturing groups written in the
	// expression. The implicit whole-match group is not counted.
	NumGroups() int

	// MatchString reports whether s contains a match.
	MatchString(s string) bool

	// FindStringSubmatchIndex returns the index pairs of the leftmost match
	// and its groups, laid out as in regexp.Regexp.FindStringSubmatchIndex:
	// result[0:2] is the whole match, result[2*i:2*i+2] is group i.
	// Groups that did not participate hold -1. Returns nil on no match.
	FindStringSubmatchIndex(s string) []int
}

// Backends returns the supported backend names in a stable order.
func Backends() []Backend {
	return []Backend{RE2, Std, Coregex}
}

// ParseBackend resolves a backend name. The empty string selects Default.
func ParseBackend(name string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(name))); b {
	case "":
		return Default, nil
	case Coregex, RE2, Std:
		return b, nil
	default:
		return "", fmt.Errorf("unknown engine backend %q", name)
	}
}

// Valid reports whether b names a supported backend.
func (b Backend) Valid() bool {
	return b == Coregex || b == RE2 || b == Std
}

// String returns the backend name.
func (b Backend) String() string {
	return string(b)
}

// Compile compiles expr with backend b.
func Compile(b Backend, expr string) (Program, error) {
	switch b {
	case Coregex:
		return compileCoregex(expr)
	case RE2:
		return compileRE2(expr)
	case Std:
		return compileStd(expr)
	default:
		return nil, fmt.Errorf("unknown engine backend %q", string(b))
	}
}
