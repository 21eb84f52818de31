package render

import (
	"strconv"
	"strings"
	"text/template"
)

var funcs = template.FuncMap{
	"luatocpp":  LuaToCpp,
	"member":    MemberName,
	"comment":   prepareComment,
	"cppstring": cppString,
}

// LuaToCpp maps a Luau type name to the C++ type used in the header.
// Luau has a single numeric type which is declared as double, all other
// type names are used as they are.
func LuaToCpp(luaType string) string {
	if luaType == "number" {
		return "double"
	}
	return luaType
}

// MemberName strips the owner prefix the reference docs put in front of
// member names ("Part.Size" -> "Size").
func MemberName(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}

func prepareComment(desc string) string {
	return strings.ReplaceAll(strings.TrimSpace(desc), "\n", "\n    // ")
}

func cppString(s string) string {
	return strconv.Quote(strings.TrimSpace(s))
}
