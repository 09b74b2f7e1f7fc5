package service

import (
	"fmt"
	"path/filepath"

	svc "github.com/kardianos/service"

	"github.com/cfe-fetch/logs"
)

// Manager handles service management operations
type Manager struct {
	service svc.Service
	logger  svc.Logger
	program *Program
}

// NewManager creates a new service manager
func NewManager(prg *Program) (*Manager, error) {
	args := buildServiceArgs(prg)
	cfg := NewServiceConfig(args)

	s, err := svc.New(prg, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	logger, err := s.Logger(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get service logger: %w", err)
	}

	return &Manager{
		service: s,
		logger:  logger,
		program: prg,
	}, nil
}

// buildServiceArgs builds the command line arguments for the service
func buildServiceArgs(prg *Program) []string {
	args := []string{"-grpc", "-port=" + prg.GRPCPort}

	downloadPath := prg.DownloadPath
	if !filepath.IsAbs(downloadPath) {
		if absPath, err := filepath.Abs(downloadPath); err == nil {
			downloadPath = absPath
		}
	}
	args = append(args, "-download="+downloadPath)

	archivePath := prg.ArchivePath
	if !filepath.IsAbs(archivePath) {
		if absPath, err := filepath.Abs(archivePath); err == nil {
			archivePath = absPath
		}
	}
	args = append(args, "-archive="+archivePath)

	if prg.Headless {
		args = append(args, "-headless=true")
	} else {
		args = append(args, "-headless=false")
	}

	if prg.AutoUpdate {
		args = append(args, "-auto-update=true")
	} else {
		args = append(args, "-auto-update=false")
	}

	if prg.UpdateInterval != "" {
		args = append(args, "-update-interval="+prg.UpdateInterval)
	}

	return args
}

// Install installs the service
func (m *Manager) Install() error {
	return m.service.Install()
}

// Uninstall uninstalls the service
func (m *Manager) Uninstall() error {
	return m.service.Uninstall()
}

// Start starts the service
func (m *Manager) Start() error {
	return m.service.Start()
}

// Stop stops the service
func (m *Manager) Stop() error {
	return m.service.Stop()
}

// Run runs the service (called by SCM)
func (m *Manager) Run() error {
	return m.service.Run()
}

// Status returns the service status
func (m *Manager) Status() (svc.Status, error) {
	return m.service.Status()
}

// RunServiceCommand handles service management commands
func RunServiceCommand(cmd string, prg *Program, lg *logs.Pair) error {
	mgr, err := NewManager(prg)
	if err != nil {
		return err
	}

	switch cmd {
	case "install":
		if err := mgr.Install(); err != nil {
			return fmt.Errorf("failed to install service: %w", err)
		}
		lg.Info.Println("Service installed successfully")
		lg.Info.Printf("Service name: %s", ServiceName)
		lg.Info.Println("To start the service, run: cfe-fetch -service start")

	case "uninstall":
		_ = mgr.Stop()

		if err := mgr.Uninstall(); err != nil {
			return fmt.Errorf("failed to uninstall service: %w", err)
		}
		lg.Info.Println("Service uninstalled successfully")

	case "start":
		if err := mgr.Start(); err != nil {
			return fmt.Errorf("failed to start service: %w", err)
		}
		lg.Info.Println("Service started successfully")

	case "stop":
		if err := mgr.Stop(); err != nil {
			return fmt.Errorf("failed to stop service: %w", err)
		}
		lg.Info.Println("Service stopped successfully")

	case "restart":
		_ = mgr.Stop()
		if err := mgr.Start(); err != nil {
			return fmt.Errorf("failed to restart service: %w", err)
		}
		lg.Info.Println("Service restarted successfully")

	case "status":
		status, err := mgr.Status()
		if err != nil {
			return fmt.Errorf("failed to get service status: %w", err)
		}
		printStatus(status, lg)

	case "run":
		return mgr.Run()

	default:
		return fmt.Errorf("unknown service command: %s\nValid commands: install, uninstall, start, stop, restart, status", cmd)
	}

	return nil
}

func printStatus(status svc.Status, lg *logs.Pair) {
	switch status {
	case svc.StatusRunning:
		lg.Info.Println("Service status: Running")
	case svc.StatusStopped:
		lg.Info.Println("Service status: Stopped")
	default:
		lg.Info.Println("Service status: Unknown")
	}
}
