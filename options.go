package scriptlog

// Options configures a logger at Init time. The zero value keeps every
// default, so callers set only what they care about. Pointer fields
// distinguish "leave alone" from an explicit false or zero; the Bool and Int
// helpers build them inline.
//
// Config-file values load first and explicit fields here override them.
type Options struct {
	// Level names the severity threshold: a level name, alias, or ordinal
	// accepted by ParseLevel. Empty keeps the config or default value.
	Level string `validate:"omitempty,max=16"`
	// StderrLevel names the most verbose severity still routed to stderr.
	StderrLevel string `validate:"omitempty,max=16"`
	// ConfigFile is an optional INI-style config file loaded before the
	// explicit fields are applied. A path that cannot be read fails Init.
	ConfigFile string `validate:"omitempty,max=4096"`
	// LogFile enables the file sink on an absolute path.
	LogFile string `validate:"omitempty,max=4096"`
	// Format replaces the line template. See SetFormat for tokens.
	Format string `validate:"omitempty,max=1024"`
	// ColorMode is auto, always, or never.
	ColorMode string `validate:"omitempty,max=8"`
	// JournalTag overrides the journal identifier; defaults to ScriptName.
	JournalTag string `validate:"omitempty,max=64"`
	// ScriptName appears in the %s token; defaults to the process name.
	ScriptName string `validate:"omitempty,max=128"`

	// Quiet disables console output entirely when true.
	Quiet *bool
	// Verbose lowers the threshold to DEBUG when true and Level is unset.
	Verbose *bool
	// UTC renders %d and %z in UTC instead of local time.
	UTC *bool
	// Journal enables forwarding to the system journal.
	Journal *bool
	// JournalNative selects the journald socket transport instead of the
	// logger(1) utility.
	JournalNative *bool
	// UnsafeAllowNewlines lets LF, CR, and HT through sanitization.
	UnsafeAllowNewlines *bool
	// UnsafeAllowANSI lets terminal escape sequences through sanitization.
	UnsafeAllowANSI *bool

	// MaxLineLength caps sanitized message bytes; zero disables the cap.
	MaxLineLength *int `validate:"omitempty,gte=0"`
	// MaxJournalLength caps the journal payload; zero disables the cap.
	MaxJournalLength *int `validate:"omitempty,gte=0"`
}

// Bool returns a pointer to v for use in Options literals.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v for use in Options literals.
func Int(v int) *int { return &v }
