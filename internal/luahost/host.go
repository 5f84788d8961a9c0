package luahost

import (
	"runtime"
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"

	"github.com/coregx/rexspan"
	"github.com/coregx/rexspan/internal/conv"
	"github.com/coregx/rexspan/internal/logging"
)

// ClassName is the Lua global and type metatable name of the pattern class.
const ClassName = "regexp2"

// method is one regexp2 instance method. Argument 1 is the receiver.
type method func(h *Host, L *lua.LState) int

// methods is the regexp2 method table. It is built once and never modified.
var methods = map[string]method{
	"constructor": (*Host).construct,
	"match":       (*Host).match,
	"capture":     (*Host).capture,
	"search":      (*Host).search,
	"groups":      (*Host).groups,
	"close":       (*Host).close,
}

// Host creates the regexp2 objects of one Lua state.
//
// The host keeps no reference to its objects: a handle lives as long as the
// userdata holding it and is released by re:close() or when the garbage
// collector reclaims it. Close invalidates every object at once.
//
// IMPORTANT: gopher-lua's LState is not goroutine-safe, so Lua calls into a
// Host happen on one goroutine. Close and Live may be called from any.
type Host struct {
	L *lua.LState

	config rexspan.Config
	logger *logging.Logger

	live   atomic.Int64
	closed atomic.Bool
}

// Option configures a Host.
type Option func(*Host)

// WithConfig sets the configuration used to compile patterns.
func WithConfig(config rexspan.Config) Option {
	return func(h *Host) {
		h.config = config
	}
}

// WithLogger sets the logger for construction and release events.
func WithLogger(logger *logging.Logger) Option {
	return func(h *Host) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// Register installs the regexp2 class as a global in L and returns the
// Host that owns the objects scripts create.
func Register(L *lua.LState, opts ...Option) *Host {
	h := &Host{
		L:      L,
		config: rexspan.DefaultConfig(),
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(h)
	}

	index := L.NewTable()
	for name, fn := range methods {
		L.SetField(index, name, L.NewFunction(func(L *lua.LState) int {
			return fn(h, L)
		}))
	}

	mt := L.NewTypeMetatable(ClassName)
	L.SetField(mt, "__index", index)
	L.SetField(mt, "__tostring", L.NewFunction(h.tostring))

	// regexp2.new(expr) and regexp2(expr) both construct.
	class := L.NewTable()
	L.SetField(class, "new", L.NewFunction(func(L *lua.LState) int {
		return h.newObject(L, 1)
	}))
	classMeta := L.NewTable()
	L.SetField(classMeta, "__call", L.NewFunction(func(L *lua.LState) int {
		return h.newObject(L, 2)
	}))
	L.SetMetatable(class, classMeta)
	L.SetGlobal(ClassName, class)

	return h
}

// Live returns the number of objects that are constructed and neither
// released nor collected. It is 0 once the host is closed.
func (h *Host) Live() int {
	if h.closed.Load() {
		return 0
	}
	return int(h.live.Load())
}

// Close invalidates every object the host created. Scripts that still hold
// references see them as invalid. Close is idempotent.
func (h *Host) Close() {
	h.closed.Store(true)
}

// newObject creates a regexp2 userdata. The expression is argument exprIdx;
// without one the object starts empty and waits for re:constructor.
func (h *Host) newObject(L *lua.LState, exprIdx int) int {
	if h.closed.Load() {
		L.RaiseError("%s", ErrHostClosed)
		return 0
	}

	handle := rexspan.NewHandle(h.released)
	if L.Get(exprIdx) != lua.LNil {
		expr := stringArg(L, exprIdx)
		if err := handle.Construct(expr, h.config); err != nil {
			L.RaiseError("cannot create regexp2: %s", err)
			return 0
		}
		h.constructed(handle)
	}

	ud := L.NewUserData()
	ud.Value = handle
	L.SetMetatable(ud, L.GetTypeMetatable(ClassName))
	L.Push(ud)
	return 1
}

// construct implements re:constructor(expr).
func (h *Host) construct(L *lua.LState) int {
	handle := h.checkHandle(L)
	expr := stringArg(L, 2)
	if h.closed.Load() {
		L.RaiseError("%s", ErrHostClosed)
		return 0
	}

	if err := handle.Construct(expr, h.config); err != nil {
		L.RaiseError("%s", err)
		return 0
	}
	h.constructed(handle)
	return 0
}

// match implements re:match(s).
func (h *Host) match(L *lua.LState) int {
	p := h.checkPattern(L)
	input := L.CheckString(2)

	ok, err := p.Match(input)
	if err != nil {
		L.RaiseError("%s", err)
		return 0
	}
	L.Push(lua.LBool(ok))
	return 1
}

// capture implements re:capture(s [, offset]).
func (h *Host) capture(L *lua.LState) int {
	p := h.checkPattern(L)
	input := L.CheckString(2)
	offset := offsetArg(L, 3)

	spans, err := p.Capture(input, offset)
	if err != nil {
		L.RaiseError("%s", err)
		return 0
	}

	result := L.CreateTable(len(spans), 0)
	for _, s := range spans {
		result.Append(spanTable(L, s))
	}
	L.Push(result)
	return 1
}

// search implements re:search(s [, offset]).
func (h *Host) search(L *lua.LState) int {
	p := h.checkPattern(L)
	input := L.CheckString(2)
	offset := offsetArg(L, 3)

	s, ok, err := p.Search(input, offset)
	if err != nil {
		L.RaiseError("%s", err)
		return 0
	}
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(spanTable(L, s))
	return 1
}

// groups implements re:groups().
func (h *Host) groups(L *lua.LState) int {
	p := h.checkPattern(L)
	L.Push(lua.LNumber(p.NumGroups()))
	return 1
}

// close implements re:close(). Closing twice is allowed.
func (h *Host) close(L *lua.LState) int {
	handle := h.checkHandle(L)
	runtime.SetFinalizer(handle, nil)
	handle.Release()
	return 0
}

func (h *Host) tostring(L *lua.LState) int {
	handle := h.checkHandle(L)
	p, err := handle.Pattern()
	if err != nil {
		L.Push(lua.LString(ClassName + "(invalid)"))
		return 1
	}
	L.Push(lua.LString(ClassName + "(" + p.String() + ")"))
	return 1
}

// checkHandle returns the receiver's handle, raising "invalid type tag" if
// argument 1 is not a regexp2 object of this state.
func (h *Host) checkHandle(L *lua.LState) *rexspan.Handle {
	if ud, ok := L.Get(1).(*lua.LUserData); ok {
		handle, ok := ud.Value.(*rexspan.Handle)
		if ok && ud.Metatable == L.GetTypeMetatable(ClassName) {
			return handle
		}
	}
	L.RaiseError("%s", ErrInvalidTypeTag)
	return nil
}

// checkPattern returns the receiver's pattern, raising "the regexp2 is
// invalid" if it is empty, released or the host is closed.
func (h *Host) checkPattern(L *lua.LState) *rexspan.Pattern {
	handle := h.checkHandle(L)
	if h.closed.Load() {
		L.RaiseError("%s", rexspan.ErrInvalidHandle)
		return nil
	}
	p, err := handle.Pattern()
	if err != nil {
		L.RaiseError("%s", err)
		return nil
	}
	return p
}

// constructed counts a newly compiled handle and arranges for the garbage
// collector to release it if the script drops it without re:close().
func (h *Host) constructed(handle *rexspan.Handle) {
	h.live.Add(1)
	runtime.SetFinalizer(handle, (*rexspan.Handle).Release)

	if p, err := handle.Pattern(); err == nil {
		h.logger.Debugf("compiled %s(%s) on %s, %d groups", ClassName, p, p.Backend(), p.NumGroups())
	}
}

func (h *Host) released(p *rexspan.Pattern) {
	h.live.Add(-1)
	h.logger.Debugf("released %s(%s)", ClassName, p)
}

// stringArg returns argument n, raising a type error unless it is a Lua
// string. Numbers are not coerced.
func stringArg(L *lua.LState, n int) string {
	s, ok := L.Get(n).(lua.LString)
	if !ok {
		L.TypeError(n, lua.LTString)
		return ""
	}
	return string(s)
}

// offsetArg reads an optional integer offset, defaulting to 0.
func offsetArg(L *lua.LState, n int) int {
	v := L.Get(n)
	if v == lua.LNil {
		return 0
	}
	num, ok := v.(lua.LNumber)
	if !ok {
		L.TypeError(n, lua.LTNumber)
		return 0
	}
	offset, ok := conv.FloatToInt(float64(num))
	if !ok {
		L.ArgError(n, "offset must be an integer")
		return 0
	}
	return offset
}

// spanTable converts a span to {begin=, end=}.
func spanTable(L *lua.LState, s rexspan.Span) *lua.LTable {
	t := L.CreateTable(0, 2)
	t.RawSetString("begin", lua.LNumber(conv.IntToFloat(s.Begin)))
	t.RawSetString("end", lua.LNumber(conv.IntToFloat(s.End)))
	return t
}
