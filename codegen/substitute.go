package codegen

import (
	"fmt"
	"strings"
)

// substitute replaces every $NAME occurrence in tmpl with values[NAME],
// and every $$ with a literal $. It returns ErrUnknownPlaceholder for a
// name not present in values, and ErrDanglingDollar for a trailing or
// malformed $ escape.
func substitute(tmpl string, values map[string]string) (string, error) {
	var out strings.Builder
	i := 0
	for i < len(tmpl) {
		c := tmpl[i]
		if c != '$' {
			out.WriteByte(c)
			i++
			continue
		}

		if i+1 >= len(tmpl) {
			return "", fmt.Errorf("%w: trailing '$' at offset %d", ErrDanglingDollar, i)
		}
		if tmpl[i+1] == '$' {
			out.WriteByte('$')
			i += 2
			continue
		}

		j := i + 1
		for j < len(tmpl) && isPlaceholderChar(tmpl[j]) {
			j++
		}
		name := tmpl[i+1 : j]
		if name == "" {
			return "", fmt.Errorf("%w: at offset %d", ErrDanglingDollar, i)
		}
		val, ok := values[name]
		if !ok {
			return "", fmt.Errorf("%w: $%s", ErrUnknownPlaceholder, name)
		}
		out.WriteString(val)
		i = j
	}
	return out.String(), nil
}

func isPlaceholderChar(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_'
}
