package scrapers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputName(t *testing.T) {
	name := OutputName("123", "Acme Co", "001 002 003", 2024)
	assert.Equal(t, "123_Acme_Co_001002003_CFE_2024.pdf", name)
}

func TestOutputNameNoSpaces(t *testing.T) {
	name := OutputName("415", "DUPONT", "12345678900011", 2026)
	assert.Equal(t, "415_DUPONT_12345678900011_CFE_2026.pdf", name)
}

func TestMaterialize(t *testing.T) {
	downloadDir := t.TempDir()
	archiveDir := filepath.Join(t.TempDir(), "avis_cfe")

	src := filepath.Join(downloadDir, "AvisCfe12345.pdf")
	require.NoError(t, os.WriteFile(src, []byte("%PDF-1.4"), 0644))

	dest, err := Materialize(downloadDir, archiveDir, "415", "Acme Co", "123456789 00011", 2026)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(archiveDir, "415_Acme_Co_12345678900011_CFE_2026.pdf"), dest)

	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), content)

	// The download directory is left clean for the next document.
	_, err = os.Stat(src)
	assert.True(t, os.IsNotExist(err))
	entries, err := os.ReadDir(downloadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMaterializeNoDownload(t *testing.T) {
	downloadDir := t.TempDir()
	archiveDir := t.TempDir()

	// An unrelated file must not be picked up.
	require.NoError(t, os.WriteFile(filepath.Join(downloadDir, "export.csv"), []byte("x"), 0644))

	_, err := Materialize(downloadDir, archiveDir, "415", "Acme", "123456789", 2026)
	assert.ErrorIs(t, err, ErrNoDownload)

	// Nothing landed in the archive.
	entries, err := os.ReadDir(archiveDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
