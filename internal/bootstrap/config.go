package bootstrap

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/patrickprogramme/tlrewriter/internal/fsutil"
)

// Status décrit ce que EnsureConfigPresent a fait du fichier cible.
type Status string

const (
	StatusWritten     Status = "written"
	StatusUnchanged   Status = "unchanged"
	StatusSkipped     Status = "skipped (different)"
	StatusOverwritten Status = "overwritten"
)

// EnsureConfigPresent copie un fichier embarqué (assetPath dans fsys) vers dstPath.
// - dstPath : chemin complet sur disque (ex: binDir/tlrewriter.yaml)
// - fsys : embed.FS (ou autre fs.FS) contenant l'asset
// - assetPath : chemin dans fsys vers l'asset (ex: "tlrewriter.example.yaml")
// - force : si true, un fichier différent est sauvegardé (.bak.<horodatage>) puis écrasé
//
// Sans force le comportement est idempotent : un fichier existant n'est jamais remplacé.
func EnsureConfigPresent(dstPath string, fsys fs.FS, assetPath string, force bool) (Status, error) {
	parent := filepath.Dir(dstPath)
	if parent == "" {
		parent = "."
	}
	if st, err := os.Stat(parent); err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("échec test parent %s: %w", parent, err)
		}
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return "", fmt.Errorf("échec création répertoire parent %s: %w", parent, err)
		}
	} else if !st.IsDir() {
		return "", fmt.Errorf("le parent existe mais n'est pas un répertoire : %s", parent)
	}

	data, err := fs.ReadFile(fsys, filepath.ToSlash(assetPath))
	if err != nil {
		return "", fmt.Errorf("lecture asset embarqué %s: %w", assetPath, err)
	}

	existing, err := os.ReadFile(dstPath)
	switch {
	case err == nil:
		if bytes.Equal(existing, data) {
			return StatusUnchanged, nil
		}
		if !force {
			return StatusSkipped, nil
		}
		backup := dstPath + ".bak." + time.Now().Format("20060102T150405")
		if err := fsutil.WriteFileAtomic(backup, existing, 0o644); err != nil {
			return "", fmt.Errorf("sauvegarde de %s impossible: %w", dstPath, err)
		}
		if err := fsutil.WriteFileAtomic(dstPath, data, 0o644); err != nil {
			return "", fmt.Errorf("échec écriture config %s: %w", dstPath, err)
		}
		return StatusOverwritten, nil
	case !os.IsNotExist(err):
		return "", fmt.Errorf("échec lecture fichier cible %s: %w", dstPath, err)
	}

	if err := fsutil.WriteFileAtomic(dstPath, data, 0o644); err != nil {
		return "", fmt.Errorf("échec écriture config %s: %w", dstPath, err)
	}
	return StatusWritten, nil
}
