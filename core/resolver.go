package core

import (
	"log"
	"path/filepath"

	"github.com/Parallax73/rufium/contracts"
)

type ResolverFileSystem interface {
	contracts.FileChecker
	contracts.TreeDeleter
}

// LibraryResolver decides between a fresh install, a reinstall over stale
// artifacts, and skipping work entirely when the library is already in
// place and healthy.
type LibraryResolver struct {
	filesystem   ResolverFileSystem
	integrity    contracts.IntegrityCheck
	installer    contracts.LibraryInstaller
	request      contracts.InstallationRequest
	skipExisting bool
}

func NewLibraryResolver(
	filesystem ResolverFileSystem,
	integrity contracts.IntegrityCheck,
	installer contracts.LibraryInstaller,
	request contracts.InstallationRequest,
	skipExisting bool,
) *LibraryResolver {
	return &LibraryResolver{
		filesystem:   filesystem,
		integrity:    integrity,
		installer:    installer,
		request:      request,
		skipExisting: skipExisting,
	}
}

func (this *LibraryResolver) Resolve() error {
	if this.skipExisting && this.installedCorrectly() {
		log.Printf("Library already installed: %s %s", this.request.Target.LibraryName(), this.request.Target.Title())
		return nil
	}

	this.uninstallStaleArtifacts()

	_, err := this.installer.Install(this.request)
	return err
}

func (this *LibraryResolver) installedCorrectly() bool {
	return this.integrity.Verify(this.request.Target, this.request.WorkingDirectory) == nil
}

// A previous run may have failed after extraction; whatever it left behind
// is removed before the pipeline writes anything.
func (this *LibraryResolver) uninstallStaleArtifacts() {
	this.filesystem.DeleteTree(filepath.Join(this.request.WorkingDirectory, this.request.Target.LibraryName()))
	Cleanup(this.filesystem, this.request.WorkingDirectory, this.request.Target)
}
