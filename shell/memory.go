package shell

import (
	"bytes"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/Parallax73/rufium/contracts"
)

// InMemoryFileSystem backs tests that exercise filesystem-facing logic
// without touching the disk.
type InMemoryFileSystem struct {
	fileSystem map[string]*memoryFile
	Deleted    []string
}

func NewInMemoryFileSystem() *InMemoryFileSystem {
	return &InMemoryFileSystem{fileSystem: make(map[string]*memoryFile)}
}

func (this *InMemoryFileSystem) Stat(path string) (contracts.FileInfo, error) {
	file, found := this.fileSystem[path]
	if !found {
		return nil, os.ErrNotExist
	}
	return file, nil
}

func (this *InMemoryFileSystem) Listing() (files []contracts.FileInfo) {
	for _, file := range this.fileSystem {
		files = append(files, file)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path() < files[j].Path() })
	return files
}

func (this *InMemoryFileSystem) Open(path string) io.ReadCloser {
	return io.NopCloser(bytes.NewReader(this.fileSystem[path].contents))
}

func (this *InMemoryFileSystem) Create(path string) io.WriteCloser {
	this.WriteFile(path, nil)
	return this.fileSystem[path]
}

func (this *InMemoryFileSystem) ReadFile(path string) []byte {
	return this.fileSystem[path].contents
}

func (this *InMemoryFileSystem) WriteFile(path string, content []byte) {
	this.fileSystem[path] = &memoryFile{
		path:     path,
		contents: content,
		mod:      InMemoryModTime,
	}
}

func (this *InMemoryFileSystem) Chmod(name string, mode os.FileMode) error {
	file, found := this.fileSystem[name]
	if !found {
		return os.ErrNotExist
	}
	file.mode = mode
	return nil
}

func (this *InMemoryFileSystem) Mode(path string) os.FileMode {
	return this.fileSystem[path].mode
}

func (this *InMemoryFileSystem) DeleteTree(path string) {
	this.Deleted = append(this.Deleted, path)
	delete(this.fileSystem, path)
	for candidate := range this.fileSystem {
		if strings.HasPrefix(candidate, path+"/") {
			delete(this.fileSystem, candidate)
		}
	}
}

/////////////////////////////////////////////////

type memoryFile struct {
	path     string
	contents []byte
	mod      time.Time
	mode     os.FileMode
}

var InMemoryModTime = time.Now()

func (this *memoryFile) Path() string       { return this.path }
func (this *memoryFile) Size() int64        { return int64(len(this.contents)) }
func (this *memoryFile) ModTime() time.Time { return this.mod }

func (this *memoryFile) Write(p []byte) (n int, err error) {
	this.contents = append(this.contents, p...)
	return len(p), nil
}

func (this *memoryFile) Close() error {
	return nil
}
