// Package scriptlog provides hardened, leveled line logging for automation
// scripts: console, log-file, and system-journal sinks behind one Logger,
// with injection-safe message sanitization throughout.
//
// Key features
//   - Eight syslog severities (EMERGENCY through DEBUG) with a severity
//     threshold and a separate stdout/stderr split threshold
//   - Sanitization strips control bytes, newline forgery, and ANSI escape
//     sequences from untrusted message text before any sink sees it
//   - Line templates built from % tokens: %d timestamp, %z zone, %l level,
//     %s script name, %m message
//   - TOCTOU-resistant log-file setup: exclusive create, symlinks refused
//     at open, and the held descriptor re-validated with fstat
//   - Journal forwarding through logger(1) or, optionally, the journald
//     socket
//   - An INI-style config file layered under explicit options
//   - Sensitive() output that reaches the console only and is replaced by a
//     notice when the console is not a terminal
//
// Typical usage
//
//	log := scriptlog.New()
//	if err := log.Init(scriptlog.Options{Level: "info", LogFile: "/var/log/deploy.log"}); err != nil {
//		os.Exit(1)
//	}
//	defer log.Close()
//
//	log.Info("starting deploy")
//	log.Errorf("disk %s is full", device)
//	log.Sensitive("db password is " + pw)
package scriptlog
