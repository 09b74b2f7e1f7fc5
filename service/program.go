package service

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"sync"

	"github.com/kardianos/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/cfe-fetch/logs"
	pb "github.com/cfe-fetch/proto"
	"github.com/cfe-fetch/server"
	"github.com/cfe-fetch/updater"
)

// Program implements service.Interface. As a service the fetcher runs its
// gRPC server and waits for remote batches.
type Program struct {
	Logs         *logs.Pair
	GRPCPort     string
	DownloadPath string
	ArchivePath  string
	Headless     bool
	Version      string

	AutoUpdate     bool
	UpdateInterval string

	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	grpcServer *grpc.Server
	updater    *updater.Updater
}

// Start is called when the service starts
func (p *Program) Start(s service.Service) error {
	svcLogger, _ := s.Logger(nil)

	if p.Logs == nil {
		pair, err := logs.NewPair(p.logDir())
		if err != nil {
			if svcLogger != nil {
				svcLogger.Error("Failed to setup file logger: " + err.Error())
			}
			p.Logs = logs.ConsolePair()
		} else {
			p.Logs = pair
		}
	}

	if svcLogger != nil {
		svcLogger.Info("Service starting...")
	}
	p.Logs.Info.Println("Service Start() called")

	p.ctx, p.cancel = context.WithCancel(context.Background())

	go p.run()

	return nil
}

// Stop is called when the service stops
func (p *Program) Stop(s service.Service) error {
	p.Logs.Info.Println("Service stopping...")
	p.cancel()

	if p.grpcServer != nil {
		p.grpcServer.GracefulStop()
	}

	p.wg.Wait()
	p.Logs.Info.Println("Service stopped")
	p.Logs.Close()

	return nil
}

// logDir places the service log next to the executable.
func (p *Program) logDir() string {
	exePath, err := os.Executable()
	if err != nil {
		return "logs"
	}
	return filepath.Join(filepath.Dir(exePath), "logs")
}

// run is the main service loop
func (p *Program) run() {
	p.wg.Add(1)
	defer p.wg.Done()

	defer func() {
		if r := recover(); r != nil {
			p.Logs.Error.Printf("run() panic recovered: %v", r)
		}
	}()

	// Services start with an arbitrary working directory.
	if !filepath.IsAbs(p.DownloadPath) {
		exePath, _ := os.Executable()
		p.DownloadPath = filepath.Join(filepath.Dir(exePath), p.DownloadPath)
	}
	if !filepath.IsAbs(p.ArchivePath) {
		exePath, _ := os.Executable()
		p.ArchivePath = filepath.Join(filepath.Dir(exePath), p.ArchivePath)
	}

	if err := os.MkdirAll(p.DownloadPath, 0755); err != nil {
		p.Logs.Error.Printf("Failed to create download directory: %v", err)
	}

	if p.AutoUpdate {
		p.startAutoUpdate()
	}

	p.runGRPCServer()
}

// startAutoUpdate initializes and starts the auto-updater
func (p *Program) startAutoUpdate() {
	cfg := updater.DefaultConfig(p.Version)
	if p.UpdateInterval != "" {
		if interval, err := updater.ParseDuration(p.UpdateInterval); err == nil {
			cfg.CheckInterval = interval
		}
	}

	p.updater = updater.New(cfg, p.Logs)

	// Check for updates at startup (non-blocking)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				p.Logs.Error.Printf("Auto-update startup check panic recovered: %v", r)
			}
		}()
		if updated, err := p.updater.CheckAndUpdate(p.ctx); err != nil {
			p.Logs.Error.Printf("Startup update check failed: %v", err)
		} else if updated {
			p.Logs.Info.Println("Update applied, service will restart...")
			if err := updater.RestartService(ServiceName, p.Logs); err != nil {
				p.Logs.Error.Printf("Failed to restart service: %v", err)
			}
		}
	}()

	p.updater.StartPeriodicCheck(p.ctx, func() {
		defer func() {
			if r := recover(); r != nil {
				p.Logs.Error.Printf("Auto-update periodic check panic recovered: %v", r)
			}
		}()
		p.Logs.Info.Println("Update available, applying...")
		if _, err := p.updater.CheckAndUpdate(p.ctx); err != nil {
			p.Logs.Error.Printf("Failed to apply update: %v", err)
			return
		}
		p.Logs.Info.Println("Update applied, restarting service...")
		if err := updater.RestartService(ServiceName, p.Logs); err != nil {
			p.Logs.Error.Printf("Failed to restart service: %v", err)
		}
	})
}

// runGRPCServer starts the gRPC server
func (p *Program) runGRPCServer() {
	lis, err := net.Listen("tcp", ":"+p.GRPCPort)
	if err != nil {
		p.Logs.Error.Printf("Failed to listen: %v", err)
		return
	}

	p.grpcServer = grpc.NewServer()
	srv := &server.GRPCServer{
		Logs:         p.Logs,
		DownloadPath: p.DownloadPath,
		ArchivePath:  p.ArchivePath,
		Headless:     p.Headless,
	}
	pb.RegisterCfeFetcherServer(p.grpcServer, srv)
	reflection.Register(p.grpcServer)

	p.Logs.Info.Printf("gRPC server listening on port %s", p.GRPCPort)
	p.Logs.Info.Printf("Download path: %s", p.DownloadPath)
	p.Logs.Info.Printf("Headless mode: %v", p.Headless)
	p.Logs.Info.Printf("Version: %s", p.Version)

	go func() {
		<-p.ctx.Done()
		p.grpcServer.GracefulStop()
	}()

	if err := p.grpcServer.Serve(lis); err != nil {
		p.Logs.Error.Printf("gRPC server stopped: %v", err)
	}
}
