package export

import (
	"fmt"
	"strings"
)

// escapeBytes renders arbitrary bytes as printable ASCII. Common control
// characters become their short escapes, everything else non-printable
// becomes \xHH, and backslashes are doubled so the rendering is
// unambiguous. With quoteSafe set, literal single quotes are rewritten as
// '\'' so the result can be embedded in a single-quoted POSIX shell token.
func escapeBytes(data []byte, quoteSafe bool) string {
	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case c == '\'' && quoteSafe:
			b.WriteString(`'\''`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		case c < 0x20 || c > 0x7e:
			fmt.Fprintf(&b, `\x%02x`, c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// shellQuote wraps s in single quotes, neutralizing any embedded single
// quotes, so the token survives a POSIX shell unchanged.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
