package scriptlog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/atomic"
)

// Logger routes leveled records to the console, an optional log file, and an
// optional system journal. A Logger returned by New works immediately with
// safe defaults (console only, INFO threshold); Init layers config-file
// values and explicit options on top.
//
// The zero threshold ordinal is EMERGENCY, so levels compare "at most" the
// active threshold. All methods are safe for concurrent use.
type Logger struct {
	mu     sync.RWMutex
	st     sessionState
	sink   *fileSink
	fwd    JournalForwarder
	stdout io.Writer
	stderr io.Writer

	closed atomic.Bool
}

// New returns a logger with default state attached to the process stdout and
// stderr.
func New() *Logger {
	return &Logger{
		st:     defaultState(),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// Init validates opts, loads the config file when one is named, applies
// explicit options over the config values, and opens the configured sinks.
// It replaces the logger's entire state, so calling it again re-runs the
// full validation; re-initializing onto the same log file reuses the file
// without truncating it.
//
// Fatal problems (invalid explicit option, unreadable config file, unusable
// log-file path) are reported to stderr and returned. Recoverable problems
// (unknown config keys, invalid config values, an unavailable journal)
// degrade to stderr warnings and Init succeeds.
func (l *Logger) Init(opts Options) error {
	if l == nil {
		return errors.New(errMsgNilLogger)
	}
	if err := validateOptions(&opts); err != nil {
		return l.failInit(err)
	}

	st := defaultState()

	if opts.ConfigFile != emptyString {
		settings, warnings, err := loadConfigFile(opts.ConfigFile)
		if err != nil {
			return l.failInit(fmt.Errorf("loading config file: %w", err))
		}
		for _, w := range warnings {
			l.reportf("%s", w)
		}
		settings.applyTo(&st)
	}

	if err := applyOptions(&st, opts); err != nil {
		return l.failInit(err)
	}

	var sink *fileSink
	if st.filePath != emptyString {
		s, err := prepareSink(st.filePath)
		if err != nil {
			return l.failInit(fmt.Errorf("initializing log file: %w", err))
		}
		sink = s
	}

	var fwd JournalForwarder
	if st.journal {
		if st.journalNative {
			fwd = newSystemdForwarder()
		} else {
			fwd = newUtilityForwarder()
		}
		if !fwd.Available() {
			l.reportf("journal unavailable; journal forwarding disabled")
			st.journal = false
			fwd = nil
		}
	}

	l.mu.Lock()
	old := l.sink
	l.st = st
	l.sink = sink
	l.fwd = fwd
	if l.stdout == nil {
		l.stdout = os.Stdout
	}
	if l.stderr == nil {
		l.stderr = os.Stderr
	}
	l.mu.Unlock()
	l.closed.Store(false)

	if old != nil {
		_ = old.Close()
	}
	return nil
}

func (l *Logger) failInit(err error) error {
	l.reportf("%v", err)
	return err
}

// Close releases the file sink and makes the logger inert until a later
// Init. It's safe to call Close multiple times.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.closed.Store(true)
	l.mu.Lock()
	sink := l.sink
	l.sink = nil
	l.fwd = nil
	l.mu.Unlock()
	if sink != nil {
		return sink.Close()
	}
	return nil
}

// Emergency logs at EMERGENCY level: the script cannot continue.
func (l *Logger) Emergency(msg string) { l.emit(LevelEmergency, msg, false) }

// Emergencyf logs a formatted message at EMERGENCY level.
func (l *Logger) Emergencyf(format string, args ...interface{}) {
	l.emit(LevelEmergency, fmt.Sprintf(format, args...), false)
}

// Alert logs at ALERT level.
func (l *Logger) Alert(msg string) { l.emit(LevelAlert, msg, false) }

// Alertf logs a formatted message at ALERT level.
func (l *Logger) Alertf(format string, args ...interface{}) {
	l.emit(LevelAlert, fmt.Sprintf(format, args...), false)
}

// Critical logs at CRITICAL level.
func (l *Logger) Critical(msg string) { l.emit(LevelCritical, msg, false) }

// Criticalf logs a formatted message at CRITICAL level.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.emit(LevelCritical, fmt.Sprintf(format, args...), false)
}

// Error logs at ERROR level.
func (l *Logger) Error(msg string) { l.emit(LevelError, msg, false) }

// Errorf logs a formatted message at ERROR level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.emit(LevelError, fmt.Sprintf(format, args...), false)
}

// Warning logs at WARNING level.
func (l *Logger) Warning(msg string) { l.emit(LevelWarning, msg, false) }

// Warningf logs a formatted message at WARNING level.
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.emit(LevelWarning, fmt.Sprintf(format, args...), false)
}

// Notice logs at NOTICE level.
func (l *Logger) Notice(msg string) { l.emit(LevelNotice, msg, false) }

// Noticef logs a formatted message at NOTICE level.
func (l *Logger) Noticef(format string, args ...interface{}) {
	l.emit(LevelNotice, fmt.Sprintf(format, args...), false)
}

// Info logs at INFO level.
func (l *Logger) Info(msg string) { l.emit(LevelInfo, msg, false) }

// Infof logs a formatted message at INFO level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.emit(LevelInfo, fmt.Sprintf(format, args...), false)
}

// Debug logs at DEBUG level.
func (l *Logger) Debug(msg string) { l.emit(LevelDebug, msg, false) }

// Debugf logs a formatted message at DEBUG level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.emit(LevelDebug, fmt.Sprintf(format, args...), false)
}

// Fatal logs at EMERGENCY level. It does not terminate the process; exiting
// is the script's decision.
func (l *Logger) Fatal(msg string) { l.emit(LevelFatal, msg, false) }

// Fatalf logs a formatted message at EMERGENCY level.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.emit(LevelFatal, fmt.Sprintf(format, args...), false)
}

// Log logs msg at an explicit level.
func (l *Logger) Log(level Level, msg string) { l.emit(level, msg, false) }

// Logf logs a formatted message at an explicit level.
func (l *Logger) Logf(level Level, format string, args ...interface{}) {
	l.emit(level, fmt.Sprintf(format, args...), false)
}

// Sensitive logs a message that must never be persisted: it is routed to the
// console only, bypassing the file and journal sinks. When the console
// stream is not a terminal the message text is replaced with a fixed
// suppression notice, so secrets cannot leak into a redirected stdout.
// Sensitive records carry NOTICE severity for threshold and stream routing.
func (l *Logger) Sensitive(msg string) { l.emit(sensitiveLevel, msg, true) }

// Sensitivef logs a formatted sensitive message.
func (l *Logger) Sensitivef(format string, args ...interface{}) {
	l.emit(sensitiveLevel, fmt.Sprintf(format, args...), true)
}

// SetLevel changes the severity threshold for subsequent records.
func (l *Logger) SetLevel(level Level) error {
	if l == nil {
		return errors.New(errMsgNilLogger)
	}
	if !level.valid() {
		return fmt.Errorf("%s %d", errMsgInvalidLevel, level)
	}
	l.mu.Lock()
	l.st.level = level
	l.mu.Unlock()
	return nil
}

// SetStderrLevel changes the most verbose severity still routed to stderr.
func (l *Logger) SetStderrLevel(level Level) error {
	if l == nil {
		return errors.New(errMsgNilLogger)
	}
	if !level.valid() {
		return fmt.Errorf("%s %d", errMsgInvalidLevel, level)
	}
	l.mu.Lock()
	l.st.stderrLevel = level
	l.mu.Unlock()
	return nil
}

// SetFormat replaces the line template for subsequent records. Tokens: %d
// timestamp, %z timezone label, %l level name, %s script name, %m message.
// Unknown tokens pass through literally.
func (l *Logger) SetFormat(template string) error {
	if l == nil {
		return errors.New(errMsgNilLogger)
	}
	if len(template) > maxTemplateLength {
		return errors.New(errMsgTemplateLength)
	}
	l.mu.Lock()
	l.st.format = template
	l.mu.Unlock()
	return nil
}

// SetUTC switches timestamp rendering between UTC and local time.
func (l *Logger) SetUTC(utc bool) {
	if l == nil {
		return
	}
	l.mu.Lock()
	l.st.utc = utc
	l.mu.Unlock()
}

// SetJournal enables or disables journal forwarding. Enabling when no
// transport is available degrades to a stderr warning and leaves forwarding
// off, matching Init.
func (l *Logger) SetJournal(enabled bool) {
	if l == nil {
		return
	}
	if !enabled {
		l.mu.Lock()
		l.st.journal = false
		l.fwd = nil
		l.mu.Unlock()
		return
	}
	l.mu.Lock()
	native := l.st.journalNative
	fwd := l.fwd
	l.mu.Unlock()
	if fwd == nil {
		if native {
			fwd = newSystemdForwarder()
		} else {
			fwd = newUtilityForwarder()
		}
	}
	if !fwd.Available() {
		l.reportf("journal unavailable; journal forwarding disabled")
		return
	}
	l.mu.Lock()
	l.st.journal = true
	l.fwd = fwd
	l.mu.Unlock()
}

// SetJournalTag changes the identifier attached to journal records.
func (l *Logger) SetJournalTag(tag string) error {
	if l == nil {
		return errors.New(errMsgNilLogger)
	}
	if err := validateTag(tag); err != nil {
		return err
	}
	l.mu.Lock()
	l.st.journalTag = tag
	l.mu.Unlock()
	return nil
}

// SetColorMode changes console coloring for subsequent records.
func (l *Logger) SetColorMode(mode ColorMode) error {
	if l == nil {
		return errors.New(errMsgNilLogger)
	}
	if !mode.valid() {
		return fmt.Errorf("%s %d", errMsgInvalidColor, mode)
	}
	l.mu.Lock()
	l.st.colorMode = mode
	l.mu.Unlock()
	return nil
}

// SetScriptName changes the name rendered by the %s token.
func (l *Logger) SetScriptName(name string) error {
	if l == nil {
		return errors.New(errMsgNilLogger)
	}
	if err := validateScriptName(name); err != nil {
		return err
	}
	l.mu.Lock()
	l.st.scriptName = name
	l.mu.Unlock()
	return nil
}

// SetUnsafeAllowNewlines toggles newline stripping for subsequent records.
// Enabling it lets one log call span multiple physical lines.
func (l *Logger) SetUnsafeAllowNewlines(allow bool) {
	if l == nil {
		return
	}
	l.mu.Lock()
	l.st.allowNewlines = allow
	l.mu.Unlock()
}

// SetUnsafeAllowANSI toggles escape-sequence stripping for subsequent
// records.
func (l *Logger) SetUnsafeAllowANSI(allow bool) {
	if l == nil {
		return
	}
	l.mu.Lock()
	l.st.allowANSI = allow
	l.mu.Unlock()
}

// Level returns the active severity threshold.
func (l *Logger) Level() Level {
	if l == nil {
		return DefaultLevel
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.st.level
}

func (l *Logger) levelEnabled(level Level) bool {
	if l == nil || l.closed.Load() {
		return false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return level <= l.st.level
}
