package logs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPairWritesBothFiles(t *testing.T) {
	dir := t.TempDir()

	pair, err := NewPair(dir)
	require.NoError(t, err)

	pair.Info.Println("record processed")
	pair.Error.Println("lookup timed out")
	require.NoError(t, pair.Close())

	info, err := os.ReadFile(filepath.Join(dir, "log_infos.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(info), "record processed")
	assert.NotContains(t, string(info), "lookup timed out")

	errs, err := os.ReadFile(filepath.Join(dir, "log_erreurs.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(errs), "lookup timed out")
	assert.Contains(t, string(errs), "ERROR")
}

func TestNewPairAppends(t *testing.T) {
	dir := t.TempDir()

	pair, err := NewPair(dir)
	require.NoError(t, err)
	pair.Info.Println("first run")
	require.NoError(t, pair.Close())

	pair, err = NewPair(dir)
	require.NoError(t, err)
	pair.Info.Println("second run")
	require.NoError(t, pair.Close())

	info, err := os.ReadFile(filepath.Join(dir, "log_infos.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(info), "first run")
	assert.Contains(t, string(info), "second run")
}

func TestNewPairCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	pair, err := NewPair(dir)
	require.NoError(t, err)
	defer pair.Close()

	_, err = os.Stat(dir)
	assert.NoError(t, err)
}
