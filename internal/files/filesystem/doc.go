// Package filesystem provides a small filesystem abstraction for loading
// input files.
//
// Loaders depend on FileSystemProvider instead of the os package so tests
// can run against MemoryFileSystem.
//
// Implementations:
//   - OSFileSystem: Production implementation using OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
