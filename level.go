package scriptlog

import (
	"fmt"
	"strconv"
	"strings"
)

// Level is a syslog-style severity. Lower ordinals are more severe, so a
// record is emitted when its level is numerically less than or equal to the
// active threshold.
type Level int8

const (
	// LevelEmergency marks conditions where the script cannot continue.
	LevelEmergency Level = iota
	// LevelAlert marks conditions requiring immediate operator action.
	LevelAlert
	// LevelCritical marks failures of a primary function.
	LevelCritical
	// LevelError marks failures of an individual operation.
	LevelError
	// LevelWarning marks recoverable problems.
	LevelWarning
	// LevelNotice marks normal but significant events.
	LevelNotice
	// LevelInfo marks routine progress messages.
	LevelInfo
	// LevelDebug marks diagnostic output.
	LevelDebug
)

// LevelFatal is an alias for LevelEmergency kept for callers that think in
// terms of fatal errors rather than syslog severities.
const LevelFatal = LevelEmergency

var levelNames = [...]string{
	"EMERGENCY",
	"ALERT",
	"CRITICAL",
	"ERROR",
	"WARNING",
	"NOTICE",
	"INFO",
	"DEBUG",
}

// journalPriorities are the syslog priority keywords understood by both the
// journal utility and journald itself, indexed by level ordinal.
var journalPriorities = [...]string{
	"emerg",
	"alert",
	"crit",
	"err",
	"warning",
	"notice",
	"info",
	"debug",
}

var levelAliases = map[string]Level{
	"emergency": LevelEmergency,
	"emerg":     LevelEmergency,
	"fatal":     LevelEmergency,
	"alert":     LevelAlert,
	"critical":  LevelCritical,
	"crit":      LevelCritical,
	"error":     LevelError,
	"err":       LevelError,
	"warning":   LevelWarning,
	"warn":      LevelWarning,
	"notice":    LevelNotice,
	"info":      LevelInfo,
	"debug":     LevelDebug,
}

// ParseLevel resolves a level from its name, a common alias, or its numeric
// ordinal. Matching is case-insensitive and ignores surrounding whitespace.
func ParseLevel(s string) (Level, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if lv, ok := levelAliases[normalized]; ok {
		return lv, nil
	}
	if n, err := strconv.Atoi(normalized); err == nil {
		lv := Level(n)
		if lv.valid() {
			return lv, nil
		}
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// String returns the canonical upper-case name rendered by the %l token.
func (l Level) String() string {
	if !l.valid() {
		return "UNKNOWN"
	}
	return levelNames[l]
}

func (l Level) valid() bool {
	return l >= LevelEmergency && l <= LevelDebug
}

func (l Level) journalPriority() string {
	if !l.valid() {
		return "notice"
	}
	return journalPriorities[l]
}
