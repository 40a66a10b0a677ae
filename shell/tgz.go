package shell

import "github.com/mholt/archiver/v3"

type TgzExtractor struct{}

func NewTgzExtractor() *TgzExtractor {
	return &TgzExtractor{}
}

func (this *TgzExtractor) Extract(archivePath, destination string) error {
	gz := archiver.NewTarGz()
	gz.OverwriteExisting = true
	return gz.Unarchive(archivePath, destination)
}
