// Package luahost exposes rexspan patterns to Lua scripts running on
// gopher-lua.
//
// Register installs a global class named regexp2:
//
//	local re = regexp2("(a)(b)")        -- or regexp2.new("(a)(b)")
//	print(re:match("ab"))               --> true
//	local spans = re:capture("xab", 1)  --> { {begin=1, ["end"]=3}, {begin=1, ["end"]=2}, {begin=2, ["end"]=3} }
//	local best = re:search("xab")       --> {begin=2, ["end"]=3}
//	re:close()
//
// Offsets are 0-based byte offsets. capture returns an empty table when the
// offset is at or past the end of the input and one {-1,-1} entry per group
// when nothing matched; search returns nil in both cases.
//
// # Lifecycle
//
// regexp2.new() without an expression allocates an empty object that
// re:constructor(expr) initializes exactly once. Methods on an empty or
// closed object raise "the regexp2 is invalid"; methods called with a value
// that is not a regexp2 object raise "invalid type tag".
//
// An object is released by re:close() or, once the script drops it, by the
// Go garbage collector. Closing the Host invalidates every object it created.
// Expressions must be Lua strings; numbers are not coerced.
//
// # State
//
// State wraps a gopher-lua state with the safe standard libraries and the
// regexp2 class already registered:
//
//	state := luahost.NewState(luahost.WithOutput(os.Stdout))
//	defer state.Close()
//
//	if err := state.DoFile(afero.NewOsFs(), "script.lua"); err != nil {
//	    log.Fatal(err)
//	}
package luahost
