package scriptlog

import (
	"errors"
	"io/fs"
	"os"
)

// Sink-validation failures are reported through these sentinels so callers
// can branch with errors.Is. None of them carry the offending path: log
// output is often visible to observers who must not learn filesystem layout.
var (
	// ErrRelativePath reports a log-file path that is not absolute.
	ErrRelativePath = errors.New("log file path must be absolute")
	// ErrInvalidPath reports a path containing control characters, shell
	// command-substitution markers, or exceeding the length limit.
	ErrInvalidPath = errors.New("log file path contains invalid characters or is too long")
	// ErrDirectoryCreate reports that the parent directory could not be
	// created.
	ErrDirectoryCreate = errors.New("cannot create log file directory")
	// ErrSymlinkRejected reports that the path names a symbolic link.
	ErrSymlinkRejected = errors.New("log file path names a symbolic link")
	// ErrNotRegularFile reports that the path names a directory, device,
	// FIFO, or other non-regular object.
	ErrNotRegularFile = errors.New("log file path does not name a regular file")
	// ErrNotWritable reports a log file lacking owner write permission.
	ErrNotWritable = errors.New("log file is not writable")
)

// pathFreeError strips the embedded path from os path and link errors,
// leaving only the underlying cause. Used wherever an OS error is surfaced
// in log output or warnings.
func pathFreeError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return linkErr.Err
	}
	return err
}
