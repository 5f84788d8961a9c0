// Package rexspan compiles regular expressions and reports where they match
// as byte offsets into the original input.
//
// Every expression is compiled wrapped in one extra capturing group, so group
// 0 of a Pattern is always the whole match and NumGroups is one more than the
// number of groups the caller wrote. Three queries are available:
//   - Match: does the whole input match?
//   - Capture: the span of every group for the leftmost match at or after an offset
//   - Search: one representative span, the group that begins rightmost
//
// Basic usage:
//
//	p, err := rexspan.Compile(`(a)(b)`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
//
//	spans, _ := p.Capture("xab", 1)
//	// spans = [{1,3} {1,2} {2,3}]
//
//	span, ok, _ := p.Search("xab", 0)
//	// span = {2,3}, ok = true
//
// Offsets always refer to the original input, never to the window that
// starts at the requested offset. An offset at or past the end of the input
// is a normal "no match" outcome, not an error.
//
// Engines:
//   - re2 (default): RE2 via github.com/wasilibs/go-re2
//   - std: the standard library regexp package
//   - coregex: github.com/coregx/coregex rejects non-matching ASCII input,
//     the std engine reports the spans
package rexspan

import (
	"sync/atomic"

	"github.com/coregx/rexspan/internal/engine"
)

// Pattern is a compiled, wrapped regular expression.
//
// A Pattern is safe to use concurrently from multiple goroutines. Close is
// the only method that changes it; after Close every query returns
// ErrInvalidHandle.
//
// Example:
//
//	p := rexspan.MustCompile(`(\d+)-(\d+)`)
//	ok, _ := p.Match("10-20") // true
type Pattern struct {
	progs    atomic.Pointer[programs]
	expr     string
	backend  engine.Backend
	groups   int
	collapse bool
}

// programs holds the engine resources released by Close.
type programs struct {
	// partial runs unanchored matches of the wrapped expression.
	partial engine.Program
	// full is the wrapped expression anchored at both ends.
	full engine.Program
}

// Compile compiles expr with the default configuration.
//
// The expression actually compiled is "(" + expr + ")". Returns a
// *CompileError if the engine rejects it.
//
// Example:
//
//	p, err := rexspan.Compile(`\d{3}-\d{4}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(expr string) (*Pattern, error) {
	return CompileWithConfig(expr, DefaultConfig())
}

// MustCompile compiles expr and panics if it fails.
//
// Example:
//
//	var phone = rexspan.MustCompile(`(\d{3})-(\d{4})`)
func MustCompile(expr string) *Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic("rexspan: Compile(`" + expr + "`): " + err.Error())
	}
	return p
}

// CompileWithConfig compiles expr with a custom configuration.
//
// Example:
//
//	config := rexspan.DefaultConfig()
//	config.Backend = "re2"
//	p, err := rexspan.CompileWithConfig(`(a)|(b)`, config)
func CompileWithConfig(expr string, config Config) (*Pattern, error) {
	backend, err := config.backend()
	if err != nil {
		return nil, err
	}

	wrapped := wrap(expr)

	partial, err := engine.Compile(backend, wrapped)
	if err != nil {
		return nil, &CompileError{Pattern: expr, Backend: backend.String(), Err: err}
	}

	full, err := engine.Compile(backend, anchor(wrapped))
	if err != nil {
		return nil, &CompileError{Pattern: expr, Backend: backend.String(), Err: err}
	}

	p := &Pattern{
		expr:     expr,
		backend:  backend,
		groups:   partial.NumGroups(),
		collapse: config.CollapseEmpty,
	}
	p.progs.Store(&programs{partial: partial, full: full})
	return p, nil
}

// wrap surrounds expr with the synthetic capturing group.
func wrap(expr string) string {
	return "(" + expr + ")"
}

// anchor pins a wrapped expression to both ends of the input. Flags set
// inside the wrapped group do not leak past its closing parenthesis, so
// the outer ^ and $ always mean start and end of text.
func anchor(wrapped string) string {
	return "^(?:" + wrapped + ")$"
}

// String returns the expression passed to Compile, without the wrapping group.
//
// Example:
//
//	p := rexspan.MustCompile(`\d+`)
//	println(p.String()) // `\d+`
func (p *Pattern) String() string {
	if p == nil {
		return ""
	}
	return p.expr
}

// Expr returns the expression handed to the engine, wrapping group included.
func (p *Pattern) Expr() string {
	if p == nil {
		return ""
	}
	return wrap(p.expr)
}

// Backend returns the name of the engine that compiled the pattern.
func (p *Pattern) Backend() string {
	if p == nil {
		return ""
	}
	return p.backend.String()
}

// NumGroups returns the number of capturing groups including the synthetic
// wrapping group, so it is always at least 1. Capture returns this many spans.
//
// Example:
//
//	p := rexspan.MustCompile(`(\w+)@(\w+)`)
//	println(p.NumGroups()) // 3
func (p *Pattern) NumGroups() int {
	if p == nil {
		return 0
	}
	return p.groups
}

// Match reports whether the entire input matches the expression.
//
// Example:
//
//	p := rexspan.MustCompile(`a+`)
//	p.Match("aaa")  // true, nil
//	p.Match("aaab") // false, nil
func (p *Pattern) Match(input string) (bool, error) {
	progs, err := p.load()
	if err != nil {
		return false, err
	}
	return progs.full.MatchString(input), nil
}

// Close releases the compiled programs. It is safe to call more than once
// and from several goroutines; the release happens exactly once.
func (p *Pattern) Close() error {
	if p == nil {
		return nil
	}
	p.progs.Swap(nil)
	return nil
}

// Closed reports whether Close has been called.
func (p *Pattern) Closed() bool {
	return p == nil || p.progs.Load() == nil
}

func (p *Pattern) load() (*programs, error) {
	if p == nil {
		return nil, ErrInvalidHandle
	}
	progs := p.progs.Load()
	if progs == nil {
		return nil, ErrInvalidHandle
	}
	return progs, nil
}
