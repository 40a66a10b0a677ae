package contracts

import (
	"io"
	"os"
	"time"
)

type FileOpener interface {
	Open(path string) io.ReadCloser
}

type FileCreator interface {
	Create(path string) io.WriteCloser
}

type FileChecker interface {
	Stat(path string) (FileInfo, error)
}

// TreeDeleter removes a file or directory tree; absent paths are not errors.
type TreeDeleter interface {
	DeleteTree(path string)
}

type Chmod interface {
	Chmod(name string, mode os.FileMode) error
}

type FileInfo interface {
	Path() string
	Size() int64
	ModTime() time.Time
}

type FileSystem interface {
	FileOpener
	FileCreator
	FileChecker
	TreeDeleter
	Chmod
}
