package scriptlog

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// The config file is a deliberately small INI dialect: full-line # and ;
// comments, one recognized [section], and key=value assignments. Values are
// opaque strings with surrounding whitespace trimmed; nothing inside a value
// is ever expanded or executed. Later assignments to the same key win, so an
// appended override behaves the way shell users expect.

// recognizedSections are the section headers whose keys apply. Keys that
// appear before any header are treated as belonging to a recognized section
// so a bare key=value file works.
var recognizedSections = map[string]bool{
	"scriptlog": true,
	"logging":   true,
}

// configKeyAliases maps every accepted spelling, lower-cased, to its
// canonical key.
var configKeyAliases = map[string]string{
	"level":     "level",
	"log_level": "level",
	"severity":  "level",

	"file":     "file",
	"log_file": "file",
	"logfile":  "file",

	"console": "console",

	"journal": "journal",
	"syslog":  "journal",

	"journal_native": "journal_native",
	"native_journal": "journal_native",

	"journal_tag": "journal_tag",
	"syslog_tag":  "journal_tag",
	"tag":         "journal_tag",

	"format":   "format",
	"template": "format",

	"utc": "utc",

	"color":  "color",
	"colour": "color",

	"stderr_level":     "stderr_level",
	"stderr_threshold": "stderr_level",

	"unsafe_allow_newlines": "unsafe_allow_newlines",
	"allow_newlines":        "unsafe_allow_newlines",

	"unsafe_allow_ansi": "unsafe_allow_ansi",
	"allow_ansi":        "unsafe_allow_ansi",

	"max_line_length": "max_line_length",

	"max_journal_length": "max_journal_length",

	"script_name": "script_name",
	"name":        "script_name",
}

// boolWords is the single mapping used everywhere a boolean is parsed from
// text.
var boolWords = map[string]bool{
	"true":  true,
	"yes":   true,
	"1":     true,
	"on":    true,
	"false": false,
	"no":    false,
	"0":     false,
	"off":   false,
}

func parseBoolWord(s string) (bool, bool) {
	v, ok := boolWords[strings.ToLower(strings.TrimSpace(s))]
	return v, ok
}

// fileSettings holds values parsed from a config file. Pointers distinguish
// "key absent" from a zero value so explicit options can layer on top.
type fileSettings struct {
	level            *Level
	stderrLevel      *Level
	format           *string
	utc              *bool
	colorMode        *ColorMode
	console          *bool
	filePath         *string
	journal          *bool
	journalNative    *bool
	journalTag       *string
	scriptName       *string
	allowNewlines    *bool
	allowANSI        *bool
	maxLineLength    *int
	maxJournalLength *int
}

// applyTo overlays every present setting onto st.
func (f *fileSettings) applyTo(st *sessionState) {
	if f.level != nil {
		st.level = *f.level
	}
	if f.stderrLevel != nil {
		st.stderrLevel = *f.stderrLevel
	}
	if f.format != nil {
		st.format = *f.format
	}
	if f.utc != nil {
		st.utc = *f.utc
	}
	if f.colorMode != nil {
		st.colorMode = *f.colorMode
	}
	if f.console != nil {
		st.console = *f.console
	}
	if f.filePath != nil {
		st.filePath = *f.filePath
	}
	if f.journal != nil {
		st.journal = *f.journal
	}
	if f.journalNative != nil {
		st.journalNative = *f.journalNative
	}
	if f.journalTag != nil {
		st.journalTag = *f.journalTag
	}
	if f.scriptName != nil {
		st.scriptName = *f.scriptName
	}
	if f.allowNewlines != nil {
		st.allowNewlines = *f.allowNewlines
	}
	if f.allowANSI != nil {
		st.allowANSI = *f.allowANSI
	}
	if f.maxLineLength != nil {
		st.maxLineLength = *f.maxLineLength
	}
	if f.maxJournalLength != nil {
		st.maxJournalLength = *f.maxJournalLength
	}
}

// loadConfigFile reads and parses path. A file that cannot be read is the
// caller's error; everything recoverable inside the file degrades to a
// warning string instead.
func loadConfigFile(path string) (*fileSettings, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	settings, warnings := parseConfig(string(data))
	return settings, warnings, nil
}

func parseConfig(text string) (*fileSettings, []string) {
	settings := &fileSettings{}
	var warnings []string
	warnf := func(format string, args ...interface{}) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}
	inRecognized := true
	for n, rawLine := range strings.Split(text, "\n") {
		lineNo := n + 1
		line := strings.TrimSpace(rawLine)
		if line == emptyString || line[0] == '#' || line[0] == ';' {
			continue
		}
		if line[0] == '[' {
			if !strings.HasSuffix(line, "]") {
				warnf("config line %d: malformed section header; section ignored", lineNo)
				inRecognized = false
				continue
			}
			name := strings.ToLower(strings.TrimSpace(line[1 : len(line)-1]))
			inRecognized = recognizedSections[name]
			if !inRecognized {
				warnf("ignoring unrecognized config section %q", name)
			}
			continue
		}
		if !inRecognized {
			continue
		}
		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			warnf("config line %d: not a key=value assignment; line ignored", lineNo)
			continue
		}
		key := strings.ToLower(strings.TrimSpace(line[:eq]))
		value := strings.TrimSpace(line[eq+1:])
		canonical, known := configKeyAliases[key]
		if !known {
			warnf("unknown config key %q ignored", key)
			continue
		}
		applyConfigKey(settings, canonical, value, warnf)
	}
	return settings, warnings
}

// applyConfigKey validates one assignment and stores it. Invalid values warn
// and leave the setting untouched; warnings name the key but never echo the
// value, which for path keys could itself be hostile.
func applyConfigKey(settings *fileSettings, key, value string, warnf func(string, ...interface{})) {
	switch key {
	case "level", "stderr_level":
		lv, err := ParseLevel(value)
		if err != nil {
			warnf("config key %q: unrecognized level; value ignored", key)
			return
		}
		if key == "level" {
			settings.level = &lv
		} else {
			settings.stderrLevel = &lv
		}
	case "file":
		if err := validateSinkPath(value); err != nil {
			warnf("config key %q: invalid path; value ignored", key)
			return
		}
		settings.filePath = &value
	case "console", "journal", "journal_native", "utc", "unsafe_allow_newlines", "unsafe_allow_ansi":
		b, ok := parseBoolWord(value)
		if !ok {
			warnf("config key %q: unrecognized boolean; value ignored", key)
			return
		}
		switch key {
		case "console":
			settings.console = &b
		case "journal":
			settings.journal = &b
		case "journal_native":
			settings.journalNative = &b
		case "utc":
			settings.utc = &b
		case "unsafe_allow_newlines":
			settings.allowNewlines = &b
		case "unsafe_allow_ansi":
			settings.allowANSI = &b
		}
	case "journal_tag":
		if err := validateTag(value); err != nil {
			warnf("config key %q: invalid tag; value ignored", key)
			return
		}
		settings.journalTag = &value
	case "script_name":
		if err := validateScriptName(value); err != nil {
			warnf("config key %q: invalid name; value ignored", key)
			return
		}
		settings.scriptName = &value
	case "format":
		if len(value) > maxTemplateLength {
			warnf("config key %q: template too long; value ignored", key)
			return
		}
		settings.format = &value
	case "color":
		m, err := ParseColorMode(value)
		if err != nil {
			warnf("config key %q: unrecognized color mode; value ignored", key)
			return
		}
		settings.colorMode = &m
	case "max_line_length", "max_journal_length":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			warnf("config key %q: expected a non-negative integer; value ignored", key)
			return
		}
		if key == "max_line_length" {
			settings.maxLineLength = &n
		} else {
			settings.maxJournalLength = &n
		}
	}
}
