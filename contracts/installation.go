package contracts

import "net/url"

type InstallationRequest struct {
	Target           Target
	RemoteAddress    url.URL
	WorkingDirectory string
}

type InstallationResult struct {
	LibraryPath string
	Size        int64
}

type LibraryInstaller interface {
	Install(request InstallationRequest) (InstallationResult, error)
}

type IntegrityCheck interface {
	Verify(target Target, workingDirectory string) error
}
