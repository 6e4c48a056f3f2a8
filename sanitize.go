package scriptlog

import (
	"strings"
	"unicode/utf8"
)

// Message sanitization defends against log forgery and terminal-escape
// injection. Untrusted text routinely ends up in script log calls (file
// names, user input, command output), so every record passes through
// sanitizeMessage before formatting or routing.
//
// The scanner is a hand-written byte machine rather than a set of regular
// expressions: escape sequences must be removed as complete sequences, and
// the two relaxation switches have to act independently, which is easiest to
// audit as explicit states.

const (
	escByte = 0x1b
	belByte = 0x07
	delByte = 0x7f
)

// sanitizeMessage returns raw with disallowed control bytes removed.
//
// When allowNewlines is false, each LF, CR, and HT is replaced by a single
// space so one log call can never forge additional log lines. When allowANSI
// is false, ANSI escape sequences are removed whole, covering CSI sequences,
// OSC sequences terminated by BEL or ST (including payloads with embedded
// escapes), and the two- and three-byte ESC forms. NUL and the remaining C0
// controls plus DEL are always stripped regardless of either switch.
func sanitizeMessage(raw string, allowNewlines, allowANSI bool) string {
	if raw == emptyString {
		return raw
	}
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); {
		c := raw[i]
		switch {
		case c == escByte:
			if allowANSI {
				b.WriteByte(c)
				i++
				break
			}
			i = skipEscapeSequence(raw, i)
		case c == '\n' || c == '\r' || c == '\t':
			if allowNewlines {
				b.WriteByte(c)
			} else {
				b.WriteByte(' ')
			}
			i++
		case c == belByte:
			// BEL is only meaningful as an OSC terminator; it may pass
			// when escape sequences are allowed and is stripped otherwise.
			if allowANSI {
				b.WriteByte(c)
			}
			i++
		case c < 0x20 || c == delByte:
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// skipEscapeSequence consumes one escape sequence starting at s[i] (which is
// ESC) and returns the index of the first byte after it. Truncated sequences
// consume the remainder of the string.
func skipEscapeSequence(s string, i int) int {
	if i+1 >= len(s) {
		return len(s)
	}
	switch s[i+1] {
	case '[':
		// CSI: parameter bytes 0x30-0x3f, intermediate bytes 0x20-0x2f,
		// then exactly one final byte 0x40-0x7e.
		j := i + 2
		for j < len(s) && s[j] >= 0x30 && s[j] <= 0x3f {
			j++
		}
		for j < len(s) && s[j] >= 0x20 && s[j] <= 0x2f {
			j++
		}
		if j < len(s) {
			j++
		}
		return j
	case ']', 'P', 'X', '^', '_':
		// OSC, DCS, SOS, PM, APC: string sequences running until BEL or
		// ST (ESC \). An ESC inside the payload that does not introduce
		// ST belongs to the payload and must not end the scan early.
		j := i + 2
		for j < len(s) {
			if s[j] == belByte {
				return j + 1
			}
			if s[j] == escByte {
				if j+1 < len(s) && s[j+1] == '\\' {
					return j + 2
				}
				j++
				continue
			}
			j++
		}
		return j
	case '(', ')', '*', '+', '-', '.', '/', '#', '%':
		// Three-byte forms: charset designation and DEC screen controls.
		if i+2 < len(s) {
			return i + 3
		}
		return len(s)
	default:
		// Two-byte forms such as ESC 7, ESC 8, ESC =, ESC M.
		return i + 2
	}
}

// truncateBytes cuts s to at most max bytes without splitting a UTF-8 rune.
// A max of zero or less disables truncation.
func truncateBytes(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
