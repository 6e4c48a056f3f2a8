package scriptlog

import (
	"fmt"
	"io"
	"os"
	"time"
)

// emit runs one record through the pipeline: threshold check, sanitization,
// truncation, template rendering, then fan-out. Sinks fail independently; a
// file or journal problem is reported on stderr and never stops the other
// sinks or the caller.
func (l *Logger) emit(level Level, msg string, sensitive bool) {
	if l == nil || l.closed.Load() {
		return
	}
	if !level.valid() {
		l.reportf("dropping record with invalid level %d", level)
		return
	}

	l.mu.RLock()
	st := l.st
	sink := l.sink
	fwd := l.fwd
	stdout := l.stdout
	stderr := l.stderr
	l.mu.RUnlock()

	if level > st.level {
		return
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	clean := truncateBytes(sanitizeMessage(msg, st.allowNewlines, st.allowANSI), st.maxLineLength)
	now := time.Now()
	tz := tzLabelLocal
	if st.utc {
		now = now.UTC()
		tz = tzLabelUTC
	}
	rec := record{level: level, message: clean, when: now, tzLabel: tz, script: st.scriptName}
	line := formatRecord(st.format, rec)

	if st.console {
		w := stdout
		if level <= st.stderrLevel {
			w = stderr
		}
		out := line
		if sensitive && !writerIsTerminal(w) {
			rec.message = sensitiveSuppressedNotice
			out = formatRecord(st.format, rec)
		}
		if colorAllowed(st.colorMode, w) {
			out = colorize(out, level)
		}
		_, _ = io.WriteString(w, out+"\n")
	}

	// Sensitive records exist on the console or not at all.
	if sensitive {
		return
	}

	if sink != nil {
		if err := sink.writeLine(line); err != nil {
			l.reportf("writing to log file: %v", pathFreeError(err))
		}
	}

	if st.journal && fwd != nil {
		tag := st.journalTag
		if tag == emptyString {
			tag = st.scriptName
		}
		payload := truncateBytes(clean, st.maxJournalLength)
		if err := fwd.Forward(level, tag, payload); err != nil {
			if journalLost(err) {
				l.disableJournal()
			} else {
				l.reportf("forwarding to journal: %v", err)
			}
		}
	}
}

// disableJournal turns journal forwarding off after the transport itself has
// gone away, so a vanished utility warns once instead of on every record.
func (l *Logger) disableJournal() {
	l.mu.Lock()
	wasOn := l.st.journal
	l.st.journal = false
	l.fwd = nil
	l.mu.Unlock()
	if wasOn {
		l.reportf("journal unavailable; journal forwarding disabled")
	}
}

// reportf prints one of the library's own diagnostics. These always go to
// the logger's stderr stream, prefixed so they cannot be mistaken for script
// output, and are never routed through the sinks.
func (l *Logger) reportf(format string, args ...interface{}) {
	w := io.Writer(os.Stderr)
	if l != nil {
		l.mu.RLock()
		if l.stderr != nil {
			w = l.stderr
		}
		l.mu.RUnlock()
	}
	_, _ = fmt.Fprintf(w, warnPrefix+format+"\n", args...)
}
