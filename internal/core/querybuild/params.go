package querybuild

import (
	"fmt"
	"regexp"
)

var (
	literalRe = regexp.MustCompile(`^[A-Za-z0-9_%]+$`)
	tableRe   = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)
)

// lit quotes a package constant as a SQL string literal
// keys and event names are fixed at compile time; anything else is a bug
func lit(s string) string {
	if !literalRe.MatchString(s) {
		panic(fmt.Sprintf("querybuild: %q is not a safe literal", s))
	}
	return "'" + s + "'"
}

func lookup(field, key string) string {
	return "arrayElement(event_params." + field + ", indexOf(event_params.key, " + lit(key) + "))"
}

// IntParam reads an integer event parameter, NULL when the key is absent
func IntParam(key string) Fragment { return raw(lookup("int_value", key)) }

// StringParam reads a string event parameter, NULL when the key is absent
func StringParam(key string) Fragment { return raw(lookup("string_value", key)) }

// FloatParam reads a float event parameter
// SDKs log whole numbers into int_value, so double, float and int are tried in that order
func FloatParam(key string) Fragment {
	return raw("coalesce(" + lookup("double_value", key) + ", " + lookup("float_value", key) +
		", toFloat64(" + lookup("int_value", key) + "))")
}
