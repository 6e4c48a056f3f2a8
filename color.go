package scriptlog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ColorMode controls whether console output is wrapped in ANSI color.
type ColorMode int8

const (
	// ColorAuto colors output only when the destination is a terminal and
	// the environment does not object (NO_COLOR unset, TERM not dumb).
	ColorAuto ColorMode = iota
	// ColorAlways colors output unconditionally.
	ColorAlways
	// ColorNever disables color.
	ColorNever
)

var colorModeNames = [...]string{"auto", "always", "never"}

var colorModeWords = map[string]ColorMode{
	"auto":   ColorAuto,
	"always": ColorAlways,
	"yes":    ColorAlways,
	"on":     ColorAlways,
	"true":   ColorAlways,
	"1":      ColorAlways,
	"never":  ColorNever,
	"no":     ColorNever,
	"off":    ColorNever,
	"false":  ColorNever,
	"0":      ColorNever,
}

// ParseColorMode resolves a color mode from auto, always, never, or the
// usual boolean spellings. Matching is case-insensitive.
func ParseColorMode(s string) (ColorMode, error) {
	if m, ok := colorModeWords[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%s %q", errMsgInvalidColor, s)
}

func (m ColorMode) String() string {
	if m < ColorAuto || m > ColorNever {
		return "unknown"
	}
	return colorModeNames[m]
}

func (m ColorMode) valid() bool {
	return m >= ColorAuto && m <= ColorNever
}

// levelColors holds the SGR parameters applied to whole lines, indexed by
// level ordinal. More severe levels get heavier rendition.
var levelColors = [...]string{
	LevelEmergency: "1;91",
	LevelAlert:     "1;35",
	LevelCritical:  "1;31",
	LevelError:     "31",
	LevelWarning:   "33",
	LevelNotice:    "32",
	LevelInfo:      "36",
	LevelDebug:     "37",
}

// colorize wraps a rendered line in the SGR sequence for its level. Color is
// applied after formatting so escape bytes never enter the template pass,
// and file and journal sinks always receive the plain line.
func colorize(line string, level Level) string {
	if !level.valid() {
		return line
	}
	return "\x1b[" + levelColors[level] + "m" + line + "\x1b[0m"
}

// colorPermitted decides whether color may be emitted for the given mode and
// terminal-ness of the destination.
func colorPermitted(mode ColorMode, terminal bool) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if !terminal {
		return false
	}
	if os.Getenv("NO_COLOR") != emptyString {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return true
}

func colorAllowed(mode ColorMode, w io.Writer) bool {
	return colorPermitted(mode, writerIsTerminal(w))
}

// writerIsTerminal reports whether w is backed by a terminal. Non-file
// writers (buffers, pipes wrapped in custom types) are never terminals.
func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
