package scriptlog

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os/exec"

	"github.com/coreos/go-systemd/v22/journal"
)

// JournalForwarder delivers a record to the system journal. The level and
// tag are the only structured inputs; everything else travels inside the
// message text.
type JournalForwarder interface {
	// Available reports whether the transport can accept records at all.
	Available() bool
	// Forward delivers one record. Errors are reported by the router and
	// never fail the surrounding log call.
	Forward(level Level, tag, message string) error
}

// utilityForwarder shells out to the logger(1) utility, the transport every
// syslog implementation understands. The utility path is resolved once so a
// PATH change after initialization cannot redirect records to a different
// binary.
type utilityForwarder struct {
	path string
}

func newUtilityForwarder() *utilityForwarder {
	path, err := exec.LookPath(journalUtility)
	if err != nil {
		return &utilityForwarder{}
	}
	return &utilityForwarder{path: path}
}

func (u *utilityForwarder) Available() bool {
	return u.path != emptyString
}

// args builds the argument vector for one record. The message always follows
// the "--" terminator so text starting with a dash cannot be parsed as a
// flag.
func (u *utilityForwarder) args(level Level, tag, message string) []string {
	return []string{"-p", "user." + level.journalPriority(), "-t", tag, "--", message}
}

func (u *utilityForwarder) Forward(level Level, tag, message string) error {
	if u.path == emptyString {
		return fmt.Errorf("journal utility: %w", exec.ErrNotFound)
	}
	cmd := exec.Command(u.path, u.args(level, tag, message)...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("journal utility: %w", err)
	}
	return nil
}

// systemdForwarder writes to the journald socket directly, skipping the
// fork per record. Selected with Options.JournalNative.
type systemdForwarder struct{}

func newSystemdForwarder() *systemdForwarder {
	return &systemdForwarder{}
}

func (s *systemdForwarder) Available() bool {
	return journal.Enabled()
}

func (s *systemdForwarder) Forward(level Level, tag, message string) error {
	vars := map[string]string{"SYSLOG_IDENTIFIER": tag}
	// Level ordinals match journald priorities one to one.
	return journal.Send(message, journal.Priority(level), vars)
}

// journalLost reports whether a forward failure means the transport itself
// is gone, as opposed to one record being refused.
func journalLost(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}
