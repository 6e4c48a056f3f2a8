//go:build unix

package scriptlog

import (
	"errors"

	"golang.org/x/sys/unix"
)

// O_NOFOLLOW makes the kernel reject a final-component symlink at open time,
// closing the window between our lstat and the open. O_NONBLOCK keeps a FIFO
// swapped into that same window from wedging the open; it has no effect on
// regular files, and the fstat re-validation rejects the FIFO afterwards.
const sinkOpenFlags = unix.O_NOFOLLOW | unix.O_NONBLOCK

func isSymlinkOpenError(err error) bool {
	// Linux reports ELOOP for O_NOFOLLOW on a symlink; some BSDs use EMLINK.
	return errors.Is(err, unix.ELOOP) || errors.Is(err, unix.EMLINK)
}

func isDirectoryOpenError(err error) bool {
	return errors.Is(err, unix.EISDIR)
}
