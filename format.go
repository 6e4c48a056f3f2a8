package scriptlog

import (
	"strings"
	"time"
)

// record is a single log entry after sanitization, ready for rendering.
type record struct {
	level   Level
	message string
	when    time.Time
	tzLabel string
	script  string
}

// formatRecord renders rec through a %-token template in one left-to-right
// pass. Recognized tokens:
//
//	%d  timestamp (2006-01-02 15:04:05 layout, already in the chosen zone)
//	%z  timezone label, UTC or LOCAL
//	%l  upper-case level name
//	%s  script name
//	%m  sanitized message text
//
// Unknown tokens and a trailing lone % pass through literally. Substituted
// values are never rescanned, so a message containing %m cannot recurse.
func formatRecord(template string, rec record) string {
	var b strings.Builder
	b.Grow(len(template) + len(rec.message) + 32)
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(template) {
			b.WriteByte('%')
			break
		}
		i++
		switch template[i] {
		case 'd':
			b.WriteString(rec.when.Format(timestampLayout))
		case 'z':
			b.WriteString(rec.tzLabel)
		case 'l':
			b.WriteString(rec.level.String())
		case 's':
			b.WriteString(rec.script)
		case 'm':
			b.WriteString(rec.message)
		default:
			b.WriteByte('%')
			b.WriteByte(template[i])
		}
	}
	return b.String()
}
