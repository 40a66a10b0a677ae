package core

import (
	"path/filepath"

	"github.com/Parallax73/rufium/contracts"
)

// The exact set of extraction byproducts depends on the upstream package;
// these are the ones every release to date has shipped.
var extractionByproducts = []string{"lib", "bin", "include", "args.gn"}

// Cleanup removes the downloaded archive and every extraction byproduct.
// Paths that never came into existence are skipped silently.
func Cleanup(deleter contracts.TreeDeleter, workingDirectory string, target contracts.Target) {
	deleter.DeleteTree(filepath.Join(workingDirectory, target.ArtifactName()))
	for _, leftover := range extractionByproducts {
		deleter.DeleteTree(filepath.Join(workingDirectory, leftover))
	}
}
