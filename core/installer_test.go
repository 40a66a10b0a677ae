package core

import (
	"bytes"
	"crypto/md5"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"

	"github.com/Parallax73/rufium/contracts"
	"github.com/Parallax73/rufium/shell"
)

func TestLibraryInstallerFixture(t *testing.T) {
	gunit.Run(new(LibraryInstallerFixture), t)
}

type LibraryInstallerFixture struct {
	*gunit.Fixture

	installer  *LibraryInstaller
	fileSystem *shell.InMemoryFileSystem
	downloader *FakeDownloader
	extractor  *FakeExtractor
	request    contracts.InstallationRequest
}

func (this *LibraryInstallerFixture) Setup() {
	this.fileSystem = shell.NewInMemoryFileSystem()
	this.downloader = &FakeDownloader{body: []byte("archive-bytes")}
	this.extractor = &FakeExtractor{fileSystem: this.fileSystem}
	verifier := NewFileContentVerifier(md5.New, this.fileSystem, true)
	this.installer = NewLibraryInstaller(this.downloader, this.fileSystem, this.extractor, verifier)
	this.request = contracts.InstallationRequest{
		Target:           contracts.Target{Platform: contracts.PlatformLinux, Architecture: contracts.ArchX64},
		RemoteAddress:    this.URL("https://github.com/bblanchon/pdfium-binaries/releases/latest/download/pdfium-linux-x64.tgz"),
		WorkingDirectory: "work",
	}
	this.extractor.produced = map[string][]byte{
		"work/lib/libpdfium.so":    []byte("library-bytes"),
		"work/include/fpdfview.h":  []byte("header-bytes"),
		"work/bin/pdfium_test":     []byte("tool-bytes"),
		"work/args.gn":             []byte("is_debug = false"),
	}
}

func (this *LibraryInstallerFixture) Install() (contracts.InstallationResult, error) {
	return this.installer.Install(this.request)
}

func (this *LibraryInstallerFixture) TestSuccessfulInstallPlacesSingleLibrary() {
	result, err := this.Install()

	this.So(err, should.BeNil)
	this.So(result.LibraryPath, should.Equal, filepath.Join("work", "libpdfium.so"))
	this.So(result.Size, should.Equal, int64(len("library-bytes")))
	this.So(this.fileSystem.ReadFile("work/libpdfium.so"), should.Resemble, []byte("library-bytes"))
	this.So(this.downloader.request.String(), should.Equal, this.request.RemoteAddress.String())
}

func (this *LibraryInstallerFixture) TestSuccessfulInstallLeavesNoIntermediateArtifacts() {
	_, err := this.Install()

	this.So(err, should.BeNil)
	this.assertNoIntermediateArtifacts()
}

func (this *LibraryInstallerFixture) TestPlacedLibraryMarkedExecutable() {
	_, err := this.Install()

	this.So(err, should.BeNil)
	this.So(this.fileSystem.Mode("work/libpdfium.so"), should.Equal, os.FileMode(0755))
}

func (this *LibraryInstallerFixture) TestWindowsLibraryComesFromBinDirectory() {
	this.request.Target = contracts.Target{Platform: contracts.PlatformWin, Architecture: contracts.ArchArm64}
	this.extractor.produced = map[string][]byte{
		"work/bin/pdfium.dll": []byte("dll-bytes"),
		"work/lib/pdfium.lib": []byte("import-lib-bytes"),
		"work/args.gn":        []byte("is_debug = false"),
	}

	result, err := this.Install()

	this.So(err, should.BeNil)
	this.So(result.LibraryPath, should.Equal, filepath.Join("work", "pdfium.dll"))
	this.So(this.fileSystem.ReadFile("work/pdfium.dll"), should.Resemble, []byte("dll-bytes"))
	this.So(this.fileSystem.Mode("work/pdfium.dll"), should.Equal, os.FileMode(0))
	this.assertNoIntermediateArtifacts()
}

func (this *LibraryInstallerFixture) TestDownloadFailureShortCircuitsPipeline() {
	this.downloader.err = errors.New("remote resource does not exist")

	_, err := this.Install()

	this.So(err, should.NotBeNil)
	this.So(err.Error(), should.ContainSubstring, "failed to download pdfium-linux-x64.tgz")
	this.So(this.extractor.calls, should.Equal, 0)
}

func (this *LibraryInstallerFixture) TestExtractionFailureShortCircuitsPipeline() {
	this.extractor.err = errors.New("corrupt archive")

	_, err := this.Install()

	this.So(err, should.NotBeNil)
	this.So(err.Error(), should.ContainSubstring, "failed to extract pdfium-linux-x64.tgz")
	_, statErr := this.fileSystem.Stat("work/libpdfium.so")
	this.So(statErr, should.NotBeNil)
	this.assertNoIntermediateArtifacts()
}

func (this *LibraryInstallerFixture) TestMissingLibraryWithinArchiveIsAnError() {
	delete(this.extractor.produced, "work/lib/libpdfium.so")

	_, err := this.Install()

	this.So(err, should.NotBeNil)
	this.So(err.Error(), should.ContainSubstring, "library missing from extracted archive")
	this.assertNoIntermediateArtifacts()
}

func (this *LibraryInstallerFixture) TestVerifierFailurePropagates() {
	verifierErr := errors.New("checksum mismatch")
	this.installer = NewLibraryInstaller(
		this.downloader, this.fileSystem, this.extractor, &FakeVerifier{err: verifierErr})

	_, err := this.Install()

	this.So(errors.Is(err, verifierErr), should.BeTrue)
}

func (this *LibraryInstallerFixture) TestArchivePersistedBeforeExtraction() {
	_, err := this.Install()

	this.So(err, should.BeNil)
	this.So(this.extractor.calls, should.Equal, 1)
	this.So(this.extractor.archivePath, should.Equal, filepath.Join("work", "pdfium-linux-x64.tgz"))
	this.So(this.extractor.destination, should.Equal, "work")
	this.So(this.extractor.archiveContents, should.Resemble, []byte("archive-bytes"))
}

func (this *LibraryInstallerFixture) assertNoIntermediateArtifacts() {
	for _, leftover := range []string{
		"work/pdfium-linux-x64.tgz",
		"work/lib",
		"work/lib/libpdfium.so",
		"work/bin",
		"work/bin/pdfium_test",
		"work/include",
		"work/include/fpdfview.h",
		"work/args.gn",
	} {
		_, err := this.fileSystem.Stat(leftover)
		this.So(err, should.NotBeNil)
	}
}

func (this *LibraryInstallerFixture) URL(address string) url.URL {
	parsed, err := url.Parse(address)
	this.So(err, should.BeNil)
	return *parsed
}

///////////////////////////////////////////////////////////////////////////////

type FakeDownloader struct {
	request  url.URL
	body     []byte
	err      error
	attempts int
}

func (this *FakeDownloader) Download(request url.URL) (io.ReadCloser, error) {
	this.attempts++
	this.request = request
	if this.err != nil {
		return nil, this.err
	}
	return io.NopCloser(bytes.NewReader(this.body)), nil
}

type FakeExtractor struct {
	fileSystem      *shell.InMemoryFileSystem
	produced        map[string][]byte
	calls           int
	archivePath     string
	destination     string
	archiveContents []byte
	err             error
}

func (this *FakeExtractor) Extract(archivePath, destination string) error {
	this.calls++
	this.archivePath = archivePath
	this.destination = destination
	if _, err := this.fileSystem.Stat(archivePath); err != nil {
		return fmt.Errorf("archive absent at %q: %w", archivePath, err)
	}
	this.archiveContents = this.fileSystem.ReadFile(archivePath)
	if this.err != nil {
		return this.err
	}
	for path, contents := range this.produced {
		this.fileSystem.WriteFile(path, contents)
	}
	return nil
}

type FakeVerifier struct {
	err error
}

func (this *FakeVerifier) VerifyCopy(sourcePath, destinationPath string) error {
	return this.err
}
