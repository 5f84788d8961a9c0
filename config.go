package rexspan

import (
	"fmt"

	"github.com/coregx/rexspan/internal/engine"
)

// Config controls how patterns are compiled and how captures are reported.
//
// Example:
//
//	config := rexspan.DefaultConfig()
//	config.Backend = "re2"
//	p, err := rexspan.CompileWithConfig(`(\w+)@(\w+)`, config)
type Config struct {
	// Backend names the regex engine: "re2", "std" or "coregex".
	// Empty selects re2.
	// Default: "re2"
	Backend string

	// CollapseEmpty reports zero-width group spans as unmatched in Capture.
	// Search is unaffected.
	// Default: false
	CollapseEmpty bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Backend: engine.Default.String(),
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if _, err := c.backend(); err != nil {
		return err
	}
	return nil
}

func (c Config) backend() (engine.Backend, error) {
	b, err := engine.ParseBackend(c.Backend)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	return b, nil
}

// Backends lists the engine names accepted by Config.Backend.
func Backends() []string {
	bs := engine.Backends()
	names := make([]string, len(bs))
	for i, b := range bs {
		names[i] = b.String()
	}
	return names
}
