package main

import (
	"crypto/md5"
	"log"

	"github.com/Parallax73/rufium/contracts"
	"github.com/Parallax73/rufium/core"
	"github.com/Parallax73/rufium/shell"
)

type InstallApp struct {
	config Config
}

func NewInstallApp(config Config) *InstallApp {
	return &InstallApp{config: config}
}

func (this *InstallApp) Run() int {
	target := this.config.Target
	log.Printf("Detected target: %s", target.Title())

	disk := shell.NewDiskFileSystem(this.config.WorkingDirectory)
	client := core.NewRetryClient(
		shell.NewGitHubReleaseClient(NewHTTPClient(), true),
		this.config.MaxRetry,
	)
	verifier := core.NewFileContentVerifier(md5.New, disk, !this.config.QuickVerification)
	installer := core.NewLibraryInstaller(client, disk, shell.NewTgzExtractor(), verifier)
	integrity := core.NewCompoundIntegrityCheck(core.NewLibraryPresenceCheck(disk))

	resolver := core.NewLibraryResolver(disk, integrity, installer, contracts.InstallationRequest{
		Target:           target,
		RemoteAddress:    target.DownloadAddress(this.config.Mirror),
		WorkingDirectory: this.config.WorkingDirectory,
	}, this.config.SkipExisting)

	err := resolver.Resolve()
	if err != nil {
		log.Println("[WARN]", err)
		return 1
	}
	log.Printf("Installation complete: %s", target.Title())
	return 0
}
