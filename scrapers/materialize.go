package scrapers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// downloadGlob matches the portal's output: it always names the produced
// notice with this stable prefix.
const downloadGlob = "AvisCfe*.pdf"

// ErrNoDownload reports that no file matching the portal's naming pattern
// was found in the download directory. Non-fatal: it covers races where the
// download has not flushed to disk yet or failed silently.
var ErrNoDownload = errors.New("no downloaded notice found")

// OutputName builds the deterministic archive filename: spaces in the
// company name become underscores, spaces in the SIRET are stripped.
func OutputName(dossierCode, companyName, siret string, year int) string {
	return fmt.Sprintf("%s_%s_%s_CFE_%d.pdf",
		dossierCode,
		strings.ReplaceAll(companyName, " ", "_"),
		strings.ReplaceAll(siret, " ", ""),
		year)
}

// Materialize locates the just-downloaded notice in downloadDir, renames it
// to its final name and moves it into archiveDir, creating the archive
// directory if needed. The rename happens before the move so the file never
// sits in the shared download directory under a partial name.
func Materialize(downloadDir, archiveDir, dossierCode, companyName, siret string, year int) (string, error) {
	matches, err := filepath.Glob(filepath.Join(downloadDir, downloadGlob))
	if err != nil {
		return "", fmt.Errorf("failed to scan download directory: %w", err)
	}
	if len(matches) == 0 {
		return "", ErrNoDownload
	}

	finalName := OutputName(dossierCode, companyName, siret, year)
	renamed := filepath.Join(downloadDir, finalName)
	if err := os.Rename(matches[0], renamed); err != nil {
		return "", fmt.Errorf("failed to rename %s: %w", matches[0], err)
	}

	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	dest := filepath.Join(archiveDir, finalName)
	if err := os.Rename(renamed, dest); err != nil {
		return "", fmt.Errorf("failed to move %s to archive: %w", finalName, err)
	}
	return dest, nil
}
