package pysource

import (
	"strings"

	"github.com/iw2rmb/scriptline/completion"
)

// Symbol is a completable name. Members are reachable through member
// access on the symbol.
type Symbol struct {
	Name    string
	Detail  string
	Kind    completion.Kind
	Members []Symbol
}

// Catalog lists the names visible to scripts.
type Catalog struct {
	Globals []Symbol
}

// Resolve walks path through member access from the globals and returns
// the members of the last segment. An empty path returns the globals.
func (c Catalog) Resolve(path []string) ([]Symbol, bool) {
	scope := c.Globals
	for _, seg := range path {
		next, ok := lookup(scope, seg)
		if !ok {
			return nil, false
		}
		scope = next.Members
	}
	return scope, true
}

func lookup(scope []Symbol, name string) (Symbol, bool) {
	for _, s := range scope {
		if s.Name == name {
			return s, true
		}
	}
	return Symbol{}, false
}

// matching returns the symbols of scope whose name starts with token,
// ignoring case, in scope order.
func matching(scope []Symbol, token string) []Symbol {
	prefix := strings.ToLower(token)
	out := make([]Symbol, 0, len(scope))
	for _, s := range scope {
		if strings.HasPrefix(strings.ToLower(s.Name), prefix) {
			out = append(out, s)
		}
	}
	return out
}

func fn(name, detail string) Symbol {
	return Symbol{Name: name, Detail: detail, Kind: completion.KindFunction}
}

func prop(name, detail string) Symbol {
	return Symbol{Name: name, Detail: detail, Kind: completion.KindProperty}
}

func keyword(name string) Symbol {
	return Symbol{Name: name, Detail: "keyword", Kind: completion.KindKeyword}
}

// DefaultCatalog returns the globals of an input-emulation scripting host:
// device plugins, diagnostics and the Python builtins scripts use most.
func DefaultCatalog() Catalog {
	keys := []Symbol{}
	for _, k := range []string{
		"A", "D", "S", "W", "Q", "E", "Space", "Escape", "Return", "Tab",
		"LeftControl", "LeftShift", "LeftAlt", "UpArrow", "DownArrow",
		"LeftArrow", "RightArrow", "F1", "F5", "F12",
	} {
		keys = append(keys, prop(k, "Key"))
	}

	return Catalog{Globals: []Symbol{
		{Name: "keyboard", Detail: "keyboard plugin", Kind: completion.KindModule, Members: []Symbol{
			fn("getKeyDown", "getKeyDown(key) -> bool"),
			fn("getKeyUp", "getKeyUp(key) -> bool"),
			fn("getPressed", "getPressed(key) -> bool"),
			fn("setKeyDown", "setKeyDown(key)"),
			fn("setKeyUp", "setKeyUp(key)"),
			fn("setKey", "setKey(key, down)"),
			fn("setPressed", "setPressed(key)"),
		}},
		{Name: "mouse", Detail: "mouse plugin", Kind: completion.KindModule, Members: []Symbol{
			prop("deltaX", "int"),
			prop("deltaY", "int"),
			prop("wheel", "int"),
			prop("leftButton", "bool"),
			prop("middleButton", "bool"),
			prop("rightButton", "bool"),
			fn("getButton", "getButton(index) -> bool"),
			fn("getPressed", "getPressed(index) -> bool"),
			fn("setButton", "setButton(index, pressed)"),
		}},
		{Name: "joystick", Detail: "joystick plugin", Kind: completion.KindModule, Members: []Symbol{
			prop("x", "int"),
			prop("y", "int"),
			prop("z", "int"),
			prop("xRotation", "int"),
			prop("yRotation", "int"),
			prop("zRotation", "int"),
			prop("sliders", "list[int]"),
			prop("pov", "list[int]"),
			fn("getDown", "getDown(button) -> bool"),
			fn("getPressed", "getPressed(button) -> bool"),
		}},
		{Name: "diagnostics", Detail: "diagnostics", Kind: completion.KindModule, Members: []Symbol{
			fn("debug", "debug(value)"),
			fn("watch", "watch(value)"),
			fn("notify", "notify(message)"),
		}},
		{Name: "system", Detail: "host timing", Kind: completion.KindModule, Members: []Symbol{
			prop("threadExecutionInterval", "int (ms)"),
			fn("setThreadTiming", "setThreadTiming(timing)"),
		}},
		{Name: "Key", Detail: "key codes", Kind: completion.KindClass, Members: keys},
		prop("starting", "bool, true on the first script pass"),

		fn("abs", "abs(x)"),
		fn("float", "float(x)"),
		fn("int", "int(x)"),
		fn("len", "len(s)"),
		fn("max", "max(a, b, ...)"),
		fn("min", "min(a, b, ...)"),
		fn("print", "print(*values)"),
		fn("range", "range(stop)"),
		fn("round", "round(x, ndigits)"),
		fn("str", "str(x)"),

		keyword("and"), keyword("def"), keyword("elif"), keyword("else"),
		keyword("False"), keyword("for"), keyword("global"), keyword("if"),
		keyword("import"), keyword("in"), keyword("None"), keyword("not"),
		keyword("or"), keyword("return"), keyword("True"), keyword("while"),
	}}
}
