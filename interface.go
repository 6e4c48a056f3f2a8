package scriptlog

// Interface is the operation set shared by *Logger and anything standing in
// for one. Code that only needs to write records should accept this rather
// than the concrete type.
type Interface interface {
	Emergency(msg string)
	Emergencyf(format string, args ...interface{})
	Alert(msg string)
	Alertf(format string, args ...interface{})
	Critical(msg string)
	Criticalf(format string, args ...interface{})
	Error(msg string)
	Errorf(format string, args ...interface{})
	Warning(msg string)
	Warningf(format string, args ...interface{})
	Notice(msg string)
	Noticef(format string, args ...interface{})
	Info(msg string)
	Infof(format string, args ...interface{})
	Debug(msg string)
	Debugf(format string, args ...interface{})
	Fatal(msg string)
	Fatalf(format string, args ...interface{})
	Sensitive(msg string)
	Sensitivef(format string, args ...interface{})
	Log(level Level, msg string)
	Logf(level Level, format string, args ...interface{})
}

var _ Interface = (*Logger)(nil)
