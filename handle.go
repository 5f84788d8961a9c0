package rexspan

import "sync"

// Handle owns at most one Pattern over its lifetime: it starts empty, is
// constructed once and released once. It models host objects that are
// allocated before their constructor runs.
//
// The zero value is an empty handle ready for Construct.
//
// Example:
//
//	var h rexspan.Handle
//	if err := h.Construct(`(\w+)=(\w+)`, rexspan.DefaultConfig()); err != nil {
//	    log.Fatal(err)
//	}
//	defer h.Release()
//
//	p, err := h.Pattern()
type Handle struct {
	mu          sync.Mutex
	pattern     *Pattern
	constructed bool
	onRelease   func(*Pattern)
}

// NewHandle returns an empty handle. onRelease, if not nil, runs exactly
// once with the pattern when a constructed handle is released.
func NewHandle(onRelease func(*Pattern)) *Handle {
	return &Handle{onRelease: onRelease}
}

// Construct compiles expr into the handle. A second call fails with
// ErrAlreadyConstructed, even if the handle was released in between.
// When compilation fails the handle stays empty and may be constructed again.
func (h *Handle) Construct(expr string, config Config) error {
	if h == nil {
		return ErrInvalidHandle
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.constructed {
		return ErrAlreadyConstructed
	}

	p, err := CompileWithConfig(expr, config)
	if err != nil {
		return err
	}

	h.pattern = p
	h.constructed = true
	return nil
}

// Pattern returns the constructed pattern, or ErrInvalidHandle if the
// handle is empty or released.
func (h *Handle) Pattern() (*Pattern, error) {
	if h == nil {
		return nil, ErrInvalidHandle
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.pattern == nil {
		return nil, ErrInvalidHandle
	}
	return h.pattern, nil
}

// Valid reports whether the handle holds a usable pattern.
func (h *Handle) Valid() bool {
	p, err := h.Pattern()
	return err == nil && !p.Closed()
}

// Release closes the pattern and runs the release hook. Releasing an empty
// or already released handle does nothing.
func (h *Handle) Release() {
	if h == nil {
		return
	}

	h.mu.Lock()
	p := h.pattern
	h.pattern = nil
	h.mu.Unlock()

	if p == nil {
		return
	}

	_ = p.Close()
	if h.onRelease != nil {
		h.onRelease(p)
	}
}
