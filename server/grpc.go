package server

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/cfe-fetch/batch"
	"github.com/cfe-fetch/frontend"
	"github.com/cfe-fetch/logs"
	pb "github.com/cfe-fetch/proto"
	"github.com/cfe-fetch/records"
	"github.com/cfe-fetch/scrapers"
)

const Version = "1.0.0"

// GRPCServer drives CFE retrieval on behalf of remote callers. Batches run
// in the background; Progress exposes the counters of the latest one.
type GRPCServer struct {
	pb.UnimplementedCfeFetcherServer
	Logs         *logs.Pair
	DownloadPath string
	ArchivePath  string
	Headless     bool

	mu          sync.Mutex
	runner      *batch.Runner
	state       string
	lastSession string
}

// RunGRPCServer starts the gRPC server and blocks.
func RunGRPCServer(lg *logs.Pair, port, downloadPath, archivePath string, headless bool) error {
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	s := grpc.NewServer()
	server := &GRPCServer{
		Logs:         lg,
		DownloadPath: downloadPath,
		ArchivePath:  archivePath,
		Headless:     headless,
	}
	pb.RegisterCfeFetcherServer(s, server)
	reflection.Register(s)

	lg.Info.Printf("gRPC server listening on port %s", port)
	lg.Info.Printf("Download path: %s", downloadPath)
	lg.Info.Printf("Headless mode: %v", headless)

	if err := s.Serve(lis); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// Health implements the Health RPC
func (s *GRPCServer) Health(ctx context.Context, req *pb.HealthRequest) (*pb.HealthResponse, error) {
	s.Logs.Info.Println("Health check requested")
	return &pb.HealthResponse{
		Healthy: true,
		Version: Version,
	}, nil
}

// Fetch implements the Fetch RPC. One record, synchronous.
func (s *GRPCServer) Fetch(ctx context.Context, req *pb.FetchRequest) (*pb.FetchResponse, error) {
	if req.Record == nil {
		return &pb.FetchResponse{Success: false, Message: "record is required"}, nil
	}
	s.Logs.Info.Printf("Fetch requested for SIREN: %s", req.Record.Siren)

	sessionFolder, err := s.newSession()
	if err != nil {
		return &pb.FetchResponse{Success: false, Message: err.Error()}, nil
	}

	recs := []records.Record{toRecord(req.Record)}
	snap, err := s.runBatch(ctx, req.Username, req.Password, sessionFolder, recs)
	if err != nil {
		return &pb.FetchResponse{Success: false, Message: err.Error()}, nil
	}

	var files []string
	entries, _ := os.ReadDir(filepath.Join(s.ArchivePath))
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, e.Name())
		}
	}

	return &pb.FetchResponse{
		Success: snap.Succeeded == 1,
		Message: fmt.Sprintf("%d/%d records succeeded", snap.Succeeded, snap.Total),
		Files:   files,
	}, nil
}

// FetchBatch implements the FetchBatch RPC. The batch runs in the
// background; poll Progress for counters.
func (s *GRPCServer) FetchBatch(ctx context.Context, req *pb.FetchBatchRequest) (*pb.FetchBatchResponse, error) {
	s.Logs.Info.Printf("FetchBatch requested for %d records (async)", len(req.Records))

	sessionFolder, err := s.newSession()
	if err != nil {
		return &pb.FetchBatchResponse{
			Accepted:   false,
			TotalCount: int32(len(req.Records)),
		}, nil
	}

	recs := make([]records.Record, 0, len(req.Records))
	for _, r := range req.Records {
		recs = append(recs, toRecord(r))
	}

	go func() {
		snap, err := s.runBatch(context.Background(), req.Username, req.Password, sessionFolder, recs)
		if err != nil {
			s.Logs.Error.Printf("FetchBatch failed: %v", err)
			return
		}
		s.Logs.Info.Printf("FetchBatch completed: %d/%d succeeded (session %s)",
			snap.Succeeded, snap.Total, filepath.Base(sessionFolder))
	}()

	return &pb.FetchBatchResponse{
		Accepted:      true,
		SessionFolder: filepath.Base(sessionFolder),
		TotalCount:    int32(len(recs)),
	}, nil
}

// Progress implements the Progress RPC
func (s *GRPCServer) Progress(ctx context.Context, req *pb.ProgressRequest) (*pb.ProgressResponse, error) {
	s.mu.Lock()
	runner := s.runner
	state := s.state
	s.mu.Unlock()

	resp := &pb.ProgressResponse{State: state}
	if runner == nil || runner.Progress() == nil {
		return resp, nil
	}
	snap := runner.Progress().Snapshot()
	resp.Total = int32(snap.Total)
	resp.Processed = int32(snap.Processed)
	resp.Succeeded = int32(snap.Succeeded)
	resp.Failed = int32(snap.Failed)
	resp.Remaining = int32(snap.Remaining)
	return resp, nil
}

// GetDownloadedFiles implements the GetDownloadedFiles RPC
func (s *GRPCServer) GetDownloadedFiles(ctx context.Context, req *pb.GetDownloadedFilesRequest) (*pb.GetDownloadedFilesResponse, error) {
	s.Logs.Info.Println("GetDownloadedFiles requested")

	entries, err := os.ReadDir(s.ArchivePath)
	if err != nil {
		return &pb.GetDownloadedFilesResponse{}, nil
	}

	s.mu.Lock()
	session := s.lastSession
	s.mu.Unlock()

	var files []*pb.DownloadedFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(s.ArchivePath, e.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			s.Logs.Error.Printf("Could not read file %s: %v", e.Name(), err)
			continue
		}
		files = append(files, &pb.DownloadedFile{
			Filename: e.Name(),
			Content:  content,
		})
		s.Logs.Info.Printf("Added file: %s (%d bytes)", e.Name(), len(content))
	}

	s.Logs.Info.Printf("Returning %d files", len(files))
	return &pb.GetDownloadedFilesResponse{
		Files:         files,
		SessionFolder: session,
	}, nil
}

// newSession creates a timestamped download folder for one run.
func (s *GRPCServer) newSession() (string, error) {
	name := time.Now().Format("20060102_150405")
	folder := filepath.Join(s.DownloadPath, name)
	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", fmt.Errorf("failed to create session folder: %w", err)
	}
	s.mu.Lock()
	s.lastSession = name
	s.mu.Unlock()
	return folder, nil
}

// runBatch runs recs through a fresh browser session. Remote runs have no
// control page, so the captcha notice goes to the server log.
func (s *GRPCServer) runBatch(ctx context.Context, username, password, sessionFolder string, recs []records.Record) (batch.Snapshot, error) {
	config := &scrapers.Config{
		Credentials: records.Credentials{
			Username: username,
			Password: password,
		},
		DownloadPath: sessionFolder,
		ArchivePath:  s.ArchivePath,
		Headless:     s.Headless,
	}

	runner := &batch.Runner{
		Fetcher:  scrapers.NewCFE(config, s.Logs, frontend.ConsolePrompter{Logs: s.Logs}),
		Frontend: batch.Headless(),
		Logs:     s.Logs,
	}

	s.mu.Lock()
	s.runner = runner
	s.state = "running"
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.state = "idle"
		s.mu.Unlock()
	}()

	return runner.Run(ctx, recs)
}

func toRecord(r *pb.RecordSpec) records.Record {
	return records.Record{
		Siren:       r.Siren,
		CompanyName: r.CompanyName,
		DossierCode: r.DossierCode,
	}
}
