package contracts

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

type Platform string

type Architecture string

const (
	PlatformLinux Platform = "linux"
	PlatformMac   Platform = "mac"
	PlatformWin   Platform = "win"
)

const (
	ArchX64   Architecture = "x64"
	ArchArm64 Architecture = "arm64"
)

// DefaultMirror always resolves to the latest published pdfium release.
const DefaultMirror = "https://github.com/bblanchon/pdfium-binaries/releases/latest/download"

type UnsupportedPlatformError struct {
	Raw string
}

func (this UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported operating system: %q", this.Raw)
}

type UnsupportedArchitectureError struct {
	Raw string
}

func (this UnsupportedArchitectureError) Error() string {
	return fmt.Sprintf("unsupported architecture: %q", this.Raw)
}

var windowsEnvironmentPrefixes = []string{"CYGWIN_NT", "MINGW32_NT", "MINGW64_NT", "MSYS_NT"}

// ParsePlatform maps a raw operating system name (uname -s output or a Go
// runtime GOOS value) onto the closed platform enumeration. Unrecognized
// names are an error, never a default.
func ParsePlatform(raw string) (Platform, error) {
	switch raw {
	case "Linux", "linux":
		return PlatformLinux, nil
	case "Darwin", "darwin":
		return PlatformMac, nil
	case "windows":
		return PlatformWin, nil
	}
	for _, prefix := range windowsEnvironmentPrefixes {
		if strings.HasPrefix(raw, prefix) {
			return PlatformWin, nil
		}
	}
	return "", UnsupportedPlatformError{Raw: raw}
}

// ParseArchitecture maps a raw machine architecture name (uname -m output or
// a Go runtime GOARCH value) onto the closed architecture enumeration.
func ParseArchitecture(raw string) (Architecture, error) {
	switch raw {
	case "x86_64", "amd64":
		return ArchX64, nil
	case "arm64", "aarch64":
		return ArchArm64, nil
	}
	return "", UnsupportedArchitectureError{Raw: raw}
}

type Target struct {
	Platform     Platform
	Architecture Architecture
}

func NewTarget(rawOS, rawArch string) (Target, error) {
	platform, err := ParsePlatform(rawOS)
	if err != nil {
		return Target{}, err
	}
	architecture, err := ParseArchitecture(rawArch)
	if err != nil {
		return Target{}, err
	}
	return Target{Platform: platform, Architecture: architecture}, nil
}

func (this Target) ArtifactName() string {
	return fmt.Sprintf("pdfium-%s-%s.tgz", this.Platform, this.Architecture)
}

func (this Target) DownloadAddress(mirror url.URL) url.URL {
	mirror.Path = path.Join(mirror.Path, this.ArtifactName())
	return mirror
}

func (this Target) LibraryName() string {
	switch this.Platform {
	case PlatformMac:
		return "libpdfium.dylib"
	case PlatformWin:
		return "pdfium.dll"
	default:
		return "libpdfium.so"
	}
}

// LibrarySourcePath is the slash-separated location of the library within
// the extracted archive; upstream ships it under bin/ on windows builds and
// lib/ everywhere else.
func (this Target) LibrarySourcePath() string {
	if this.Platform == PlatformWin {
		return path.Join("bin", this.LibraryName())
	}
	return path.Join("lib", this.LibraryName())
}

func (this Target) Title() string {
	return fmt.Sprintf("[pdfium %s/%s]", this.Platform, this.Architecture)
}
