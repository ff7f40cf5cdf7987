package port

import "context"

// FileSystem is the slice of disk access the purge and screenshot use cases need.
// Missing paths are not errors: Exists reports false and GetSize zero.
type FileSystem interface {
	Exists(ctx context.Context, path string) (bool, error)
	IsDirectory(ctx context.Context, path string) (bool, error)
	// GetSize sums the sizes of the regular files under path.
	GetSize(ctx context.Context, path string) (int64, error)
	RemoveAll(ctx context.Context, path string) error
	// MkdirAll creates path and any missing parents.
	MkdirAll(ctx context.Context, path string) error
	// WriteFile creates or truncates path and writes data to it.
	WriteFile(ctx context.Context, path string, data []byte) error
}
