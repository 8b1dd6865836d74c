// Package logfmt renders logback message templates.
//
// Templates use the SLF4J anchor syntax: every unescaped "{}" consumes the
// next positional argument, and a backslash before "{" keeps the anchor as
// literal text.
package logfmt

import "strings"

const anchor = "{}"

// NullArg is the argument value the decoding layer stores for a null array
// element. Format renders it as the text "null".
const NullArg = "\x00null\x00"

// Format substitutes args into template, left to right, one per anchor.
//
// When no substitution can happen (no arguments or no anchor) the template
// itself is returned. Extra arguments are ignored. When the arguments run
// out, the remaining template text is copied through verbatim starting at
// the unmatched anchor.
func Format(template string, args []string) string {
	if len(args) == 0 || !strings.Contains(template, anchor) {
		return template
	}

	var b strings.Builder
	b.Grow(len(template) + 16*len(args))

	c := newCursor(template)
	for !c.done() {
		ch, _ := c.next()
		switch ch {
		case '\\':
			writeEscape(&b, c)
		case '{':
			if nx, ok := c.peek(); !ok || nx != '}' {
				b.WriteByte('{')
				continue
			}
			c.skip(1)
			if len(args) == 0 {
				b.WriteString(anchor)
				b.WriteString(c.rest())
				return b.String()
			}
			b.WriteString(argText(args[0]))
			args = args[1:]
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}

// writeEscape handles the byte following a backslash. A trailing backslash
// is dropped.
func writeEscape(b *strings.Builder, c *cursor) {
	nx, ok := c.next()
	if !ok {
		return
	}
	if nx == '{' {
		if after, ok := c.peek(); ok && after == '}' {
			// The closing brace is written as plain text on the next step.
			b.WriteByte('{')
			return
		}
	}
	b.WriteByte('\\')
	b.WriteByte(nx)
}

func argText(arg string) string {
	if arg == NullArg {
		return "null"
	}
	return arg
}
