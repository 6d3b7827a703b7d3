package formatter

import (
	"strings"

	"github.com/philipp01105/levellog/core"
)

// Placeholder is the substitution token recognised in a leading
// string argument.
const Placeholder = "{}"

// Substitute applies placeholder substitution to args and returns the
// resulting argument list.
//
// If args[0] is a string containing Placeholder, every occurrence is
// replaced left to right by the next trailing argument, rendered with
// core.FormatValue. Consumed arguments are removed from the result.
// Once the trailing arguments run out the remaining tokens are kept
// verbatim. Any other input is returned unchanged.
func Substitute(args []interface{}) []interface{} {
	if len(args) == 0 {
		return args
	}
	tmpl, ok := args[0].(string)
	if !ok || !strings.Contains(tmpl, Placeholder) {
		return args
	}

	rest := args[1:]
	var b strings.Builder
	b.Grow(len(tmpl) + 8*len(rest))
	for {
		i := strings.Index(tmpl, Placeholder)
		if i < 0 || len(rest) == 0 {
			b.WriteString(tmpl)
			break
		}
		b.WriteString(tmpl[:i])
		b.WriteString(core.FormatValue(rest[0]))
		rest = rest[1:]
		tmpl = tmpl[i+len(Placeholder):]
	}

	out := make([]interface{}, 0, len(rest)+1)
	out = append(out, b.String())
	return append(out, rest...)
}
