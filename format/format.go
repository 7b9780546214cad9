package format

import (
	"fmt"
	"strconv"
	"strings"
)

// assignmentPrefixColumn is the starting column assumed for line-wrapping
// purposes, approximating the width of a typical leading assignment
// prefix ("G = [") in emitted code.
const assignmentPrefixColumn = 20

// Options configures a Formatter.
type Options struct {
	Width     int    // maximum line width before wrapping
	Indent    int    // number of spaces to indent continuation lines
	Delimiter string // separator placed between elements
}

// DefaultOptions returns the formatting defaults used by the CLI and the
// built-in templates: width 76, indent 4, delimiter ", ".
func DefaultOptions() Options {
	return Options{Width: 76, Indent: 4, Delimiter: ", "}
}

// Formatter renders values for embedding into emitted code.
type Formatter struct {
	opts Options
}

// New builds a Formatter from the given options.
func New(opts Options) Formatter {
	return Formatter{opts: opts}
}

// Format renders data as text. Scalars (anything that isn't []int or
// []string) are rendered with fmt's default formatting. Sequences are
// rendered element-by-element, separated by the configured delimiter and
// wrapped to new, indented lines once the running column position would
// exceed Width; quote, if true, wraps each element in double quotes. The
// trailing delimiter is suppressed after the last element.
func (f Formatter) Format(data interface{}, quote bool) string {
	switch v := data.(type) {
	case []int:
		elems := make([]string, len(v))
		for i, e := range v {
			elems[i] = strconv.Itoa(e)
		}
		return f.wrap(elems, quote)
	case []string:
		return f.wrap(v, quote)
	default:
		return fmt.Sprintf("%v", data)
	}
}

func (f Formatter) wrap(elems []string, quote bool) string {
	var b strings.Builder
	pos := assignmentPrefixColumn
	lendel := len(f.opts.Delimiter)

	for i, e := range elems {
		last := i == len(elems)-1

		s := e
		if quote {
			s = `"` + e + `"`
		}

		if pos+len(s)+lendel > f.opts.Width {
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(" ", f.opts.Indent))
			pos = f.opts.Indent
		}

		b.WriteString(s)
		pos += len(s)
		if !last {
			b.WriteString(f.opts.Delimiter)
			pos += lendel
		}
	}

	return b.String()
}
