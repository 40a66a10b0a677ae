package core

import (
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/Parallax73/rufium/contracts"
)

type Extractor interface {
	Extract(archivePath, destination string) error
}

type ContentVerifier interface {
	VerifyCopy(sourcePath, destinationPath string) error
}

// LibraryInstaller runs the ordered pipeline: download, extract, place.
// Intermediate artifacts are removed when the pipeline exits, on the
// failure path as well, so a rerun always starts clean.
type LibraryInstaller struct {
	downloader contracts.Downloader
	filesystem contracts.FileSystem
	extractor  Extractor
	verifier   ContentVerifier
}

func NewLibraryInstaller(
	downloader contracts.Downloader,
	filesystem contracts.FileSystem,
	extractor Extractor,
	verifier ContentVerifier,
) *LibraryInstaller {
	return &LibraryInstaller{
		downloader: downloader,
		filesystem: filesystem,
		extractor:  extractor,
		verifier:   verifier,
	}
}

func (this *LibraryInstaller) Install(request contracts.InstallationRequest) (result contracts.InstallationResult, err error) {
	defer Cleanup(this.filesystem, request.WorkingDirectory, request.Target)

	err = this.download(request)
	if err != nil {
		return result, err
	}
	err = this.extract(request)
	if err != nil {
		return result, err
	}
	return this.place(request)
}

func (this *LibraryInstaller) archivePath(request contracts.InstallationRequest) string {
	return filepath.Join(request.WorkingDirectory, request.Target.ArtifactName())
}

func (this *LibraryInstaller) download(request contracts.InstallationRequest) error {
	artifact := request.Target.ArtifactName()
	log.Printf("Downloading %s from %s", artifact, request.RemoteAddress.String())

	body, err := this.downloader.Download(request.RemoteAddress)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", artifact, err)
	}
	defer func() { _ = body.Close() }()

	file := this.filesystem.Create(this.archivePath(request))
	written, err := io.Copy(file, body)
	closeErr := file.Close()
	if err != nil {
		return fmt.Errorf("failed to persist %s: %w", artifact, err)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to persist %s: %w", artifact, closeErr)
	}

	log.Printf("Downloaded %s (%s)", artifact, humanFileSize(float64(written)))
	return nil
}

func (this *LibraryInstaller) extract(request contracts.InstallationRequest) error {
	artifact := request.Target.ArtifactName()
	log.Printf("Extracting %s", artifact)

	err := this.extractor.Extract(this.archivePath(request), request.WorkingDirectory)
	if err != nil {
		return fmt.Errorf("failed to extract %s: %w", artifact, err)
	}
	return nil
}

func (this *LibraryInstaller) place(request contracts.InstallationRequest) (result contracts.InstallationResult, err error) {
	source := filepath.Join(request.WorkingDirectory, filepath.FromSlash(request.Target.LibrarySourcePath()))
	destination := filepath.Join(request.WorkingDirectory, request.Target.LibraryName())

	if _, err = this.filesystem.Stat(source); err != nil {
		return result, fmt.Errorf("library missing from extracted archive at %q: %w", source, err)
	}

	reader := this.filesystem.Open(source)
	defer func() { _ = reader.Close() }()
	writer := this.filesystem.Create(destination)
	written, err := io.Copy(writer, reader)
	closeErr := writer.Close()
	if err != nil {
		return result, fmt.Errorf("failed to place %s: %w", request.Target.LibraryName(), err)
	}
	if closeErr != nil {
		return result, fmt.Errorf("failed to place %s: %w", request.Target.LibraryName(), closeErr)
	}

	if request.Target.Platform != contracts.PlatformWin {
		err = this.filesystem.Chmod(destination, 0755)
		if err != nil {
			return result, fmt.Errorf("failed to mark %s executable: %w", request.Target.LibraryName(), err)
		}
	}

	err = this.verifier.VerifyCopy(source, destination)
	if err != nil {
		return result, err
	}

	log.Printf("Installed %s (%s)", request.Target.LibraryName(), humanFileSize(float64(written)))
	return contracts.InstallationResult{LibraryPath: destination, Size: written}, nil
}
