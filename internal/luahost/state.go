package luahost

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/spf13/afero"
	lua "github.com/yuin/gopher-lua"

	"github.com/coregx/rexspan"
	"github.com/coregx/rexspan/internal/logging"
)

// State is a Lua runtime with the safe standard libraries and the regexp2
// class registered.
//
// gopher-lua's LState is not goroutine-safe; the mutex serializes Go callers.
type State struct {
	L *lua.LState

	mu     sync.Mutex
	host   *Host
	out    io.Writer
	closed bool
}

type stateOptions struct {
	out    io.Writer
	config rexspan.Config
	logger *logging.Logger
}

// StateOption configures a State.
type StateOption func(*stateOptions)

// WithOutput redirects Lua print. Defaults to os.Stdout.
func WithOutput(w io.Writer) StateOption {
	return func(o *stateOptions) {
		o.out = w
	}
}

// WithPatternConfig sets the configuration used by regexp2 objects.
func WithPatternConfig(config rexspan.Config) StateOption {
	return func(o *stateOptions) {
		o.config = config
	}
}

// WithStateLogger sets the logger passed to the Host.
func WithStateLogger(logger *logging.Logger) StateOption {
	return func(o *stateOptions) {
		o.logger = logger
	}
}

// NewState creates a Lua state with regexp2 registered.
func NewState(opts ...StateOption) *State {
	o := stateOptions{
		out:    os.Stdout,
		config: rexspan.DefaultConfig(),
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	L := lua.NewState(lua.Options{
		SkipOpenLibs: true, // opened selectively below
	})
	openSafeLibraries(L)

	s := &State{L: L, out: o.out}
	L.SetGlobal("print", L.NewFunction(s.print))

	s.host = Register(L, WithConfig(o.config), WithLogger(o.logger))
	return s
}

// openSafeLibraries opens the base, table, string and math libraries and
// removes base functions that reach the filesystem.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// Host returns the regexp2 owner of this state.
func (s *State) Host() *Host {
	return s.host
}

// DoString executes a Lua chunk.
func (s *State) DoString(code string) error {
	return s.run("<string>", []byte(code))
}

// DoFile reads a script from fs and executes it.
func (s *State) DoFile(fs afero.Fs, path string) error {
	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return s.run(path, src)
}

func (s *State) run(name string, src []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrHostClosed
	}

	return s.doWithRecovery(func() error {
		fn, err := s.L.Load(bytes.NewReader(src), name)
		if err != nil {
			return err
		}
		return s.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true})
	})
}

// doWithRecovery executes a function with panic recovery.
func (s *State) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// print writes its arguments tab-separated to the configured output.
func (s *State) print(L *lua.LState) int {
	top := L.GetTop()
	parts := make([]string, top)
	for i := 1; i <= top; i++ {
		parts[i-1] = L.ToStringMeta(L.Get(i)).String()
	}
	fmt.Fprintln(s.out, strings.Join(parts, "\t"))
	return 0
}

// Close invalidates every regexp2 object and closes the Lua state.
// After Close is called, DoString and DoFile return ErrHostClosed.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.host.Close()
	s.L.Close()
	s.closed = true
	return nil
}
