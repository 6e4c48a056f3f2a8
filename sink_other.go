//go:build !unix

package scriptlog

// Platforms without O_NOFOLLOW fall back to the lstat pre-check in
// prepareSink plus the post-open fstat re-validation.
const sinkOpenFlags = 0

func isSymlinkOpenError(err error) bool { return false }

func isDirectoryOpenError(err error) bool { return false }
