package scriptlog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// sessionState is the complete routing state of one logger. It exists from
// construction with safe defaults, so logging works before Init, and is only
// replaced wholesale by Init or field-wise by the setters.
type sessionState struct {
	level            Level
	stderrLevel      Level
	format           string
	utc              bool
	colorMode        ColorMode
	console          bool
	filePath         string
	journal          bool
	journalNative    bool
	journalTag       string
	scriptName       string
	allowNewlines    bool
	allowANSI        bool
	maxLineLength    int
	maxJournalLength int
}

func defaultState() sessionState {
	return sessionState{
		level:            DefaultLevel,
		stderrLevel:      DefaultStderrLevel,
		format:           DefaultFormat,
		colorMode:        ColorAuto,
		console:          true,
		scriptName:       defaultScriptName(),
		maxLineLength:    DefaultMaxLineLength,
		maxJournalLength: DefaultMaxJournalLength,
	}
}

func defaultScriptName() string {
	if len(os.Args) > 0 && os.Args[0] != emptyString {
		return filepath.Base(os.Args[0])
	}
	return "script"
}

// applyOptions overlays explicit options onto st. Options always win over
// config values, which the caller has already applied. Unlike config values,
// an invalid explicit option is the caller's bug and fails hard.
func applyOptions(st *sessionState, opts Options) error {
	switch {
	case opts.Level != emptyString:
		lv, err := ParseLevel(opts.Level)
		if err != nil {
			return fmt.Errorf("level option: %w", err)
		}
		st.level = lv
	case opts.Verbose != nil && *opts.Verbose:
		st.level = LevelDebug
	}
	if opts.StderrLevel != emptyString {
		lv, err := ParseLevel(opts.StderrLevel)
		if err != nil {
			return fmt.Errorf("stderr level option: %w", err)
		}
		st.stderrLevel = lv
	}
	if opts.Quiet != nil {
		st.console = !*opts.Quiet
	}
	if opts.Format != emptyString {
		if len(opts.Format) > maxTemplateLength {
			return errors.New(errMsgTemplateLength)
		}
		st.format = opts.Format
	}
	if opts.UTC != nil {
		st.utc = *opts.UTC
	}
	if opts.ColorMode != emptyString {
		m, err := ParseColorMode(opts.ColorMode)
		if err != nil {
			return fmt.Errorf("color option: %w", err)
		}
		st.colorMode = m
	}
	if opts.LogFile != emptyString {
		if err := validateSinkPath(opts.LogFile); err != nil {
			return fmt.Errorf("log file option: %w", err)
		}
		st.filePath = opts.LogFile
	}
	if opts.Journal != nil {
		st.journal = *opts.Journal
	}
	if opts.JournalNative != nil {
		st.journalNative = *opts.JournalNative
	}
	if opts.JournalTag != emptyString {
		if err := validateTag(opts.JournalTag); err != nil {
			return fmt.Errorf("journal tag option: %w", err)
		}
		st.journalTag = opts.JournalTag
	}
	if opts.ScriptName != emptyString {
		if err := validateScriptName(opts.ScriptName); err != nil {
			return fmt.Errorf("script name option: %w", err)
		}
		st.scriptName = opts.ScriptName
	}
	if opts.UnsafeAllowNewlines != nil {
		st.allowNewlines = *opts.UnsafeAllowNewlines
	}
	if opts.UnsafeAllowANSI != nil {
		st.allowANSI = *opts.UnsafeAllowANSI
	}
	if opts.MaxLineLength != nil {
		st.maxLineLength = *opts.MaxLineLength
	}
	if opts.MaxJournalLength != nil {
		st.maxJournalLength = *opts.MaxJournalLength
	}
	// The tag falls back to the script name only after both layers have
	// had their say.
	if st.journalTag == emptyString {
		st.journalTag = st.scriptName
	}
	return nil
}

func validateTag(tag string) error {
	if tag == emptyString {
		return errors.New(errMsgEmptyTag)
	}
	if len(tag) > maxTagLength {
		return errors.New(errMsgTagTooLong)
	}
	if containsControlBytes(tag) {
		return errors.New(errMsgTagControl)
	}
	return nil
}

func validateScriptName(name string) error {
	if name == emptyString {
		return errors.New(errMsgEmptyName)
	}
	if len(name) > maxScriptNameLength {
		return errors.New(errMsgNameTooLong)
	}
	if containsControlBytes(name) {
		return errors.New(errMsgNameControl)
	}
	return nil
}

func containsControlBytes(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] == delByte {
			return true
		}
	}
	return false
}
