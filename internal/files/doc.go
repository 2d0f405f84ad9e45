// Package files groups file access used to load rules tables, author maps
// and metadata files.
//
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
package files
