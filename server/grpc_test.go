package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfe-fetch/logs"
	pb "github.com/cfe-fetch/proto"
)

func newTestServer(t *testing.T) *GRPCServer {
	t.Helper()
	return &GRPCServer{
		Logs:         logs.ConsolePair(),
		DownloadPath: t.TempDir(),
		ArchivePath:  t.TempDir(),
		Headless:     true,
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.Health(context.Background(), &pb.HealthRequest{})
	require.NoError(t, err)
	assert.True(t, resp.Healthy)
	assert.Equal(t, Version, resp.Version)
}

func TestFetchRequiresRecord(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.Fetch(context.Background(), &pb.FetchRequest{})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "record is required")
}

func TestProgressBeforeAnyBatch(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.Progress(context.Background(), &pb.ProgressRequest{})
	require.NoError(t, err)
	assert.Zero(t, resp.Total)
	assert.Zero(t, resp.Processed)
	assert.Empty(t, resp.State)
}

func TestGetDownloadedFiles(t *testing.T) {
	s := newTestServer(t)

	pdf := filepath.Join(s.ArchivePath, "415_Acme_12345678900011_CFE_2026.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF-1.4"), 0644))

	resp, err := s.GetDownloadedFiles(context.Background(), &pb.GetDownloadedFilesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Files, 1)
	assert.Equal(t, "415_Acme_12345678900011_CFE_2026.pdf", resp.Files[0].Filename)
	assert.Equal(t, []byte("%PDF-1.4"), resp.Files[0].Content)
}

func TestGetDownloadedFilesEmptyArchive(t *testing.T) {
	s := newTestServer(t)
	s.ArchivePath = filepath.Join(s.ArchivePath, "does-not-exist")

	resp, err := s.GetDownloadedFiles(context.Background(), &pb.GetDownloadedFilesRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Files)
}
