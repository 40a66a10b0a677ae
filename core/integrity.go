package core

import (
	"bytes"
	"fmt"
	"hash"
	"io"
	"path/filepath"

	"github.com/Parallax73/rufium/contracts"
)

type CompoundIntegrityCheck struct {
	inners []contracts.IntegrityCheck
}

func NewCompoundIntegrityCheck(inners ...contracts.IntegrityCheck) *CompoundIntegrityCheck {
	return &CompoundIntegrityCheck{inners: inners}
}

func (this *CompoundIntegrityCheck) Verify(target contracts.Target, workingDirectory string) error {
	for _, inner := range this.inners {
		err := inner.Verify(target, workingDirectory)
		if err != nil {
			return err
		}
	}
	return nil
}

// LibraryPresenceCheck verifies that the platform library exists in the
// working directory and is not an empty husk left by an interrupted copy.
type LibraryPresenceCheck struct {
	filesystem contracts.FileChecker
}

func NewLibraryPresenceCheck(filesystem contracts.FileChecker) *LibraryPresenceCheck {
	return &LibraryPresenceCheck{filesystem: filesystem}
}

func (this *LibraryPresenceCheck) Verify(target contracts.Target, workingDirectory string) error {
	path := filepath.Join(workingDirectory, target.LibraryName())
	info, err := this.filesystem.Stat(path)
	if err != nil {
		return fmt.Errorf("library missing at %q: %w", path, err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("library at %q is empty", path)
	}
	return nil
}

// FileContentVerifier compares the checksum of a placed file against its
// extracted original. Disabled in quick mode.
type FileContentVerifier struct {
	hasher     func() hash.Hash
	fileSystem contracts.FileOpener
	enabled    bool
}

func NewFileContentVerifier(hasher func() hash.Hash, fileSystem contracts.FileOpener, enabled bool) *FileContentVerifier {
	return &FileContentVerifier{hasher: hasher, fileSystem: fileSystem, enabled: enabled}
}

func (this *FileContentVerifier) VerifyCopy(sourcePath, destinationPath string) error {
	if !this.enabled {
		return nil
	}
	sourceSum, err := this.checksum(sourcePath)
	if err != nil {
		return err
	}
	destinationSum, err := this.checksum(destinationPath)
	if err != nil {
		return err
	}
	if !bytes.Equal(sourceSum, destinationSum) {
		return fmt.Errorf("checksum mismatch between %q and %q", sourcePath, destinationPath)
	}
	return nil
}

func (this *FileContentVerifier) checksum(path string) ([]byte, error) {
	hasher := this.hasher()
	reader := this.fileSystem.Open(path)
	_, err := io.Copy(hasher, reader)
	if err != nil {
		return nil, err
	}
	err = reader.Close()
	if err != nil {
		return nil, err
	}
	return hasher.Sum(nil), nil
}
