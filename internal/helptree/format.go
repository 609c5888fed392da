package helptree

import (
	"errors"
	"fmt"
	"strings"
)

// Args holds placeholder values for a body template.
type Args map[string]string

var (
	ErrMissingArg  = errors.New("missing template argument")
	ErrBadTemplate = errors.New("malformed template")
)

// Format replaces {name} placeholders in tmpl with values from args.
// "{{" and "}}" produce literal braces. A placeholder without a value is an
// authoring error and fails the whole call.
func Format(tmpl string, args Args) (string, error) {
	var b strings.Builder
	b.Grow(len(tmpl))

	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		switch c {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(tmpl[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed '{' at offset %d", ErrBadTemplate, i)
			}
			name := tmpl[i+1 : i+1+end]
			if name == "" || strings.ContainsAny(name, "{ \t\n") {
				return "", fmt.Errorf("%w: bad placeholder %q at offset %d", ErrBadTemplate, name, i)
			}
			v, ok := args[name]
			if !ok {
				return "", fmt.Errorf("%w: {%s}", ErrMissingArg, name)
			}
			b.WriteString(v)
			i += end + 1
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", fmt.Errorf("%w: single '}' at offset %d", ErrBadTemplate, i)
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}
