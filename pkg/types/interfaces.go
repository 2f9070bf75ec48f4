package types

import (
	"io/fs"
)

// FS is the filesystem interface required for scrub operations
type FS interface {
	// Existence checks. Stat follows symlinks, Lstat does not.
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)

	// Remove deletes a single file. Implementations must not recurse.
	Remove(name string) error

	// Used to seed state in tests and by callers preparing fixtures
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
}
