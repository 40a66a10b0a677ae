package main

import (
	"log"
	"path/filepath"

	"github.com/Parallax73/rufium/contracts"
	"github.com/Parallax73/rufium/shell"
)

type CheckApp struct {
	config Config
}

func NewCheckApp(config Config) *CheckApp {
	return &CheckApp{config: config}
}

// Run reports whether the viewer would find its library, probing the same
// locations the viewer binds in order: the working directory first, then
// the system library directory on non-windows platforms.
func (this *CheckApp) Run() int {
	target := this.config.Target
	disk := shell.NewDiskFileSystem(this.config.WorkingDirectory)

	for _, candidate := range libraryCandidates(target, this.config.WorkingDirectory) {
		info, err := disk.Stat(candidate)
		if err == nil && info.Size() > 0 {
			log.Printf("Found %s %s", candidate, target.Title())
			return 0
		}
	}

	log.Printf("[WARN] %s not installed; run rufium-install to fetch it.", target.LibraryName())
	return 1
}

func libraryCandidates(target contracts.Target, workingDirectory string) []string {
	candidates := []string{filepath.Join(workingDirectory, target.LibraryName())}
	if target.Platform != contracts.PlatformWin {
		candidates = append(candidates, filepath.Join("/usr/lib", target.LibraryName()))
	}
	return candidates
}
