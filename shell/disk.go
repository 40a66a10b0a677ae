package shell

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/Parallax73/rufium/contracts"
)

type DiskFileSystem struct{ root string }

func NewDiskFileSystem(root string) *DiskFileSystem {
	return &DiskFileSystem{root: filepath.Clean(root)}
}

func (this *DiskFileSystem) RootPath() string {
	return this.root
}

func (this *DiskFileSystem) Stat(path string) (contracts.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return FileInfo{path: path, size: info.Size(), mod: info.ModTime()}, nil
}

func (this *DiskFileSystem) Open(path string) io.ReadCloser {
	reader, err := os.Open(path)
	if err != nil {
		log.Panic(err)
	}
	return reader
}

func (this *DiskFileSystem) Create(path string) io.WriteCloser {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		log.Panic(err)
	}
	writer, err := os.Create(path)
	if err != nil {
		log.Panic(err)
	}
	return writer
}

func (this *DiskFileSystem) Chmod(name string, mode os.FileMode) error {
	return os.Chmod(name, mode)
}

func (this *DiskFileSystem) DeleteTree(path string) {
	err := os.RemoveAll(path)
	if err != nil {
		log.Panic(err)
	}
}

////////////////////////////////////////

type FileInfo struct {
	path string
	size int64
	mod  time.Time
}

func (this FileInfo) Path() string       { return this.path }
func (this FileInfo) Size() int64        { return this.size }
func (this FileInfo) ModTime() time.Time { return this.mod }
