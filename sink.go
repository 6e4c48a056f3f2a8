package scriptlog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// fileSink appends rendered lines to a validated log file. The descriptor
// opened by prepareSink is held for the sink's lifetime; appends never
// re-resolve the path, so a later swap of the name cannot redirect output.
type fileSink struct {
	path string
	f    *os.File
}

// validateSinkPath applies the lexical checks shared by the sink initializer
// and the config loader's path-valued keys.
func validateSinkPath(path string) error {
	if path == emptyString || !filepath.IsAbs(path) {
		return ErrRelativePath
	}
	if len(path) > maxPathLength {
		return ErrInvalidPath
	}
	for i := 0; i < len(path); i++ {
		if path[i] < 0x20 || path[i] == delByte {
			return ErrInvalidPath
		}
	}
	if strings.ContainsRune(path, '`') || strings.Contains(path, "$(") {
		return ErrInvalidPath
	}
	return nil
}

// prepareSink validates path and opens it for appending without trusting any
// check made before the descriptor exists.
//
// The open first attempts an exclusive create so a racing attacker cannot
// pre-place the file between a check and the create. If the file already
// exists the open is retried without O_CREATE; both opens refuse to follow a
// final-component symlink. The object actually opened is then re-validated
// through fstat on the held descriptor: it must be a regular file with the
// owner write bit. Every failure maps to one of the path-free sentinel
// errors in errors.go.
func prepareSink(path string) (*fileSink, error) {
	if err := validateSinkPath(path); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), sinkDirMode); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDirectoryCreate, pathFreeError(err))
	}
	// Advisory pre-check. Refusing an existing FIFO here keeps the open
	// below from blocking on it; the fstat after open stays authoritative
	// for anything swapped in between.
	if fi, err := os.Lstat(path); err == nil {
		if fi.Mode()&os.ModeSymlink != 0 {
			return nil, ErrSymlinkRejected
		}
		if !fi.Mode().IsRegular() {
			return nil, ErrNotRegularFile
		}
	}
	flags := os.O_WRONLY | os.O_APPEND | sinkOpenFlags
	f, err := os.OpenFile(path, flags|os.O_CREATE|os.O_EXCL, sinkFileMode)
	if errors.Is(err, fs.ErrExist) {
		f, err = os.OpenFile(path, flags, 0)
	}
	if err != nil {
		return nil, classifyOpenError(err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("cannot validate log file: %v", pathFreeError(err))
	}
	mode := info.Mode()
	if !mode.IsRegular() {
		_ = f.Close()
		return nil, ErrNotRegularFile
	}
	if mode.Perm()&0o200 == 0 {
		_ = f.Close()
		return nil, ErrNotWritable
	}
	return &fileSink{path: path, f: f}, nil
}

func classifyOpenError(err error) error {
	switch {
	case isSymlinkOpenError(err):
		return ErrSymlinkRejected
	case isDirectoryOpenError(err):
		return ErrNotRegularFile
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %v", ErrNotWritable, pathFreeError(err))
	default:
		return fmt.Errorf("cannot open log file: %v", pathFreeError(err))
	}
}

// writeLine appends line plus a newline in a single write so concurrent
// appenders on the same file interleave at line granularity.
func (s *fileSink) writeLine(line string) error {
	buf := make([]byte, 0, len(line)+1)
	buf = append(buf, line...)
	buf = append(buf, '\n')
	_, err := s.f.Write(buf)
	return err
}

func (s *fileSink) Close() error {
	if s == nil || s.f == nil {
		return nil
	}
	return s.f.Close()
}
