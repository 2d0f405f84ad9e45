package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// FileSystemProvider reads input files.
type FileSystemProvider interface {
	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}
