package bittext

import "fmt"

var escapes [256]string

func init() {
	named := map[byte]string{
		0x07: `\a`, 0x08: `\b`, '\t': `\t`, '\n': `\n`,
		0x0b: `\v`, 0x0c: `\f`, '\r': `\r`, 0x1b: `\e`,
		'\'': `\'`,
	}
	for i := range escapes {
		c := byte(i)
		switch s, ok := named[c]; {
		case ok:
			escapes[i] = s
		case c >= 0x20 && c < 0x7f:
			escapes[i] = string(rune(c))
		default:
			escapes[i] = fmt.Sprintf(`\x%02x`, c)
		}
	}
}

// Escape returns c as it would appear single-quoted: printable ASCII as
// itself, control characters by name or as \xNN, high-bit bytes as \xNN.
func Escape(c byte) string {
	return escapes[c]
}
