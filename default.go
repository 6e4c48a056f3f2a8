package scriptlog

// std is the package-level logger behind the package functions. Scripts that
// want one global logger use these directly; anything more structured should
// carry its own *Logger.
var std = New()

// Default returns the package-level logger.
func Default() *Logger { return std }

// Init initializes the package-level logger.
func Init(opts Options) error { return std.Init(opts) }

// Close closes the package-level logger.
func Close() error { return std.Close() }

// Emergency logs at EMERGENCY level on the package-level logger.
func Emergency(msg string) { std.Emergency(msg) }

// Emergencyf logs a formatted EMERGENCY message on the package-level logger.
func Emergencyf(format string, args ...interface{}) { std.Emergencyf(format, args...) }

// Alert logs at ALERT level on the package-level logger.
func Alert(msg string) { std.Alert(msg) }

// Alertf logs a formatted ALERT message on the package-level logger.
func Alertf(format string, args ...interface{}) { std.Alertf(format, args...) }

// Critical logs at CRITICAL level on the package-level logger.
func Critical(msg string) { std.Critical(msg) }

// Criticalf logs a formatted CRITICAL message on the package-level logger.
func Criticalf(format string, args ...interface{}) { std.Criticalf(format, args...) }

// Error logs at ERROR level on the package-level logger.
func Error(msg string) { std.Error(msg) }

// Errorf logs a formatted ERROR message on the package-level logger.
func Errorf(format string, args ...interface{}) { std.Errorf(format, args...) }

// Warning logs at WARNING level on the package-level logger.
func Warning(msg string) { std.Warning(msg) }

// Warningf logs a formatted WARNING message on the package-level logger.
func Warningf(format string, args ...interface{}) { std.Warningf(format, args...) }

// Notice logs at NOTICE level on the package-level logger.
func Notice(msg string) { std.Notice(msg) }

// Noticef logs a formatted NOTICE message on the package-level logger.
func Noticef(format string, args ...interface{}) { std.Noticef(format, args...) }

// Info logs at INFO level on the package-level logger.
func Info(msg string) { std.Info(msg) }

// Infof logs a formatted INFO message on the package-level logger.
func Infof(format string, args ...interface{}) { std.Infof(format, args...) }

// Debug logs at DEBUG level on the package-level logger.
func Debug(msg string) { std.Debug(msg) }

// Debugf logs a formatted DEBUG message on the package-level logger.
func Debugf(format string, args ...interface{}) { std.Debugf(format, args...) }

// Fatal logs at EMERGENCY level on the package-level logger. It does not
// terminate the process.
func Fatal(msg string) { std.Fatal(msg) }

// Fatalf logs a formatted EMERGENCY message on the package-level logger.
func Fatalf(format string, args ...interface{}) { std.Fatalf(format, args...) }

// Sensitive logs a console-only message on the package-level logger.
func Sensitive(msg string) { std.Sensitive(msg) }

// Sensitivef logs a formatted console-only message on the package-level
// logger.
func Sensitivef(format string, args ...interface{}) { std.Sensitivef(format, args...) }

// Log logs msg at an explicit level on the package-level logger.
func Log(level Level, msg string) { std.Log(level, msg) }

// Logf logs a formatted message at an explicit level on the package-level
// logger.
func Logf(level Level, format string, args ...interface{}) { std.Logf(level, format, args...) }

// Dump logs the contents of v at DEBUG level on the package-level logger.
func Dump(label string, v interface{}) { std.Dump(label, v) }

// SetLevel changes the package-level severity threshold.
func SetLevel(level Level) error { return std.SetLevel(level) }

// SetStderrLevel changes the package-level stderr routing threshold.
func SetStderrLevel(level Level) error { return std.SetStderrLevel(level) }

// SetFormat replaces the package-level line template.
func SetFormat(template string) error { return std.SetFormat(template) }

// SetUTC switches the package-level timestamp zone.
func SetUTC(utc bool) { std.SetUTC(utc) }

// SetJournal toggles package-level journal forwarding.
func SetJournal(enabled bool) { std.SetJournal(enabled) }

// SetJournalTag changes the package-level journal identifier.
func SetJournalTag(tag string) error { return std.SetJournalTag(tag) }

// SetColorMode changes package-level console coloring.
func SetColorMode(mode ColorMode) error { return std.SetColorMode(mode) }

// SetScriptName changes the package-level %s token value.
func SetScriptName(name string) error { return std.SetScriptName(name) }

// SetUnsafeAllowNewlines toggles package-level newline stripping.
func SetUnsafeAllowNewlines(allow bool) { std.SetUnsafeAllowNewlines(allow) }

// SetUnsafeAllowANSI toggles package-level escape-sequence stripping.
func SetUnsafeAllowANSI(allow bool) { std.SetUnsafeAllowANSI(allow) }
