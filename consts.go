package scriptlog

const (
	// DefaultFormat is the line template applied when neither config nor
	// options supply one. Tokens are documented on SetFormat.
	DefaultFormat = "%d %z %l %s: %m"
	// DefaultLevel is the severity threshold applied at startup.
	DefaultLevel = LevelInfo
	// DefaultStderrLevel routes ERROR and worse to stderr by default.
	DefaultStderrLevel = LevelError
	// DefaultMaxLineLength caps sanitized message text in bytes. Zero
	// disables the cap.
	DefaultMaxLineLength = 8192
	// DefaultMaxJournalLength caps the payload forwarded to the journal.
	DefaultMaxJournalLength = 2048

	emptyString = ""
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	tzLabelUTC      = "UTC"
	tzLabelLocal    = "LOCAL"

	warnPrefix     = "scriptlog: "
	journalUtility = "logger"

	maxPathLength       = 4096
	maxTagLength        = 64
	maxScriptNameLength = 128
	maxTemplateLength   = 1024

	sinkFileMode = 0o600
	sinkDirMode  = 0o755

	// sensitiveLevel is the severity sensitive records are routed with.
	sensitiveLevel = LevelNotice

	sensitiveSuppressedNotice = "sensitive message suppressed: console is not a terminal"
)

const (
	errMsgNilLogger      = "logger is nil"
	errMsgEmptyTag       = "journal tag must not be empty"
	errMsgTagTooLong     = "journal tag exceeds the length limit"
	errMsgTagControl     = "journal tag contains control characters"
	errMsgEmptyName      = "script name must not be empty"
	errMsgNameTooLong    = "script name exceeds the length limit"
	errMsgNameControl    = "script name contains control characters"
	errMsgTemplateLength = "format template exceeds the length limit"
	errMsgInvalidLevel   = "invalid log level"
	errMsgInvalidColor   = "invalid color mode"
)
