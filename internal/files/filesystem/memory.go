package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryFile struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Relative paths are resolved against the root given to NewMemoryFileSystem.
type MemoryFileSystem struct {
	mu    sync.RWMutex
	files map[string]*memoryFile
	root  string
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		root:  root,
	}
	mfs.files[root] = newDirEntry(root)
	return mfs
}

func newDirEntry(p string) *memoryFile {
	return &memoryFile{
		info: &memoryFileInfo{
			name:    path.Base(p),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

// AddFile adds a file to the in-memory filesystem, creating parent directories.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	absPath := mfs.abs(filePath)
	data := []byte(content)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.files[absPath] = &memoryFile{
		content: data,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(data)),
			mode:    0644,
			modTime: time.Now(),
		},
	}
	for dir := path.Dir(absPath); dir != "/" && dir != "."; dir = path.Dir(dir) {
		if _, exists := mfs.files[dir]; exists {
			break
		}
		mfs.files[dir] = newDirEntry(dir)
	}
}

func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	if !strings.HasPrefix(p, "/") {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	file, exists := mfs.files[mfs.abs(filePath)]
	if !exists {
		return nil, fmt.Errorf("file not found: %s: %w", filePath, fs.ErrNotExist)
	}
	if file.info.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	return append([]byte(nil), file.content...), nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	file, exists := mfs.files[mfs.abs(statPath)]
	if !exists {
		return nil, fmt.Errorf("path not found: %s: %w", statPath, fs.ErrNotExist)
	}
	return file.info, nil
}
