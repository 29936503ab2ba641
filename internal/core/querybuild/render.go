package querybuild

import (
	"fmt"
	"strings"
)

// render expands {{name}} markers in tpl from vars in order of appearance
// so the collected args line up with the ? placeholders
func render(tpl string, vars map[string]Fragment) (string, []any) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.Grow(len(tpl) + 512)
	for {
		i := strings.Index(tpl, "{{")
		if i < 0 {
			sb.WriteString(tpl)
			break
		}
		j := strings.Index(tpl[i:], "}}")
		if j < 0 {
			panic("querybuild: unterminated marker")
		}
		name := tpl[i+2 : i+j]
		fr, ok := vars[name]
		if !ok {
			panic(fmt.Sprintf("querybuild: no value for marker %q", name))
		}
		sb.WriteString(tpl[:i])
		sb.WriteString(fr.SQL)
		args = append(args, fr.Args...)
		tpl = tpl[i+j+2:]
	}
	return strings.TrimSpace(sb.String()), args
}
