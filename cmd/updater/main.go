// The watchdog binary updates the cfe-fetch service binary from the
// outside: the service cannot safely replace its own executable on
// Windows while the SCM holds it, so this companion service stops it,
// swaps the binary and starts it again.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/kardianos/service"

	"github.com/cfe-fetch/logs"
	"github.com/cfe-fetch/updater"
)

// Version is set at build time
var Version = "dev"

const (
	ServiceName        = "cfe-fetch-updater"
	ServiceDisplayName = "CFE Fetch Auto-Updater"
	ServiceDescription = "Monitors and updates the CFE Fetch service automatically"
	TargetServiceName  = "cfe-fetch"
	TargetBinaryName   = "cfe-fetch.exe"
)

// Program implements service.Interface
type Program struct {
	logs    *logs.Pair
	config  *Config
	ctx     context.Context
	cancel  context.CancelFunc
	checker *updater.Updater
}

// Config holds the watchdog configuration
type Config struct {
	TargetServiceName string
	TargetBinaryPath  string
	CheckInterval     time.Duration
	StartupDelay      time.Duration
}

func main() {
	serviceCmd := flag.String("service", "", "Service command: install|uninstall|start|stop|status|run")
	targetBinary := flag.String("target", "", "Path to target binary (default: same directory as updater)")
	checkInterval := flag.String("interval", "1h", "Update check interval (e.g., 1h, 30m)")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("cfe-fetch-updater version %s\n", Version)
		return
	}

	lg := logs.ConsolePair()

	interval, err := time.ParseDuration(*checkInterval)
	if err != nil {
		interval = updater.DefaultCheckInterval
	}

	targetPath := *targetBinary
	if targetPath == "" {
		exePath, _ := os.Executable()
		targetPath = filepath.Join(filepath.Dir(exePath), TargetBinaryName)
	}

	config := &Config{
		TargetServiceName: TargetServiceName,
		TargetBinaryPath:  targetPath,
		CheckInterval:     interval,
		StartupDelay:      updater.StartupDelay,
	}

	prg := &Program{
		logs:   lg,
		config: config,
	}

	svcConfig := &service.Config{
		Name:        ServiceName,
		DisplayName: ServiceDisplayName,
		Description: ServiceDescription,
		Arguments:   buildServiceArgs(config),
		Option: service.KeyValue{
			"StartType": "automatic",
		},
	}

	s, err := service.New(prg, svcConfig)
	if err != nil {
		lg.Error.Printf("Failed to create service: %v", err)
		os.Exit(1)
	}

	if *serviceCmd != "" {
		if err := runServiceCommand(*serviceCmd, s, lg, config); err != nil {
			lg.Error.Printf("%v", err)
			os.Exit(1)
		}
		return
	}

	lg.Info.Println("Running interactively. Press Ctrl+C to stop.")
	if err := s.Run(); err != nil {
		lg.Error.Printf("Failed to run: %v", err)
		os.Exit(1)
	}
}

func runServiceCommand(cmd string, s service.Service, lg *logs.Pair, config *Config) error {
	switch cmd {
	case "install":
		if err := s.Install(); err != nil {
			return fmt.Errorf("failed to install service: %w", err)
		}
		lg.Info.Printf("Service installed: %s", ServiceName)
		lg.Info.Printf("Target binary: %s", config.TargetBinaryPath)
		lg.Info.Printf("Check interval: %s", config.CheckInterval)
		lg.Info.Println("Run 'cfe-fetch-updater -service start' to start the service")

	case "uninstall":
		_ = s.Stop()
		if err := s.Uninstall(); err != nil {
			return fmt.Errorf("failed to uninstall service: %w", err)
		}
		lg.Info.Println("Service uninstalled")

	case "start":
		if err := s.Start(); err != nil {
			return fmt.Errorf("failed to start service: %w", err)
		}
		lg.Info.Println("Service started")

	case "stop":
		if err := s.Stop(); err != nil {
			return fmt.Errorf("failed to stop service: %w", err)
		}
		lg.Info.Println("Service stopped")

	case "status":
		status, err := s.Status()
		if err != nil {
			return fmt.Errorf("failed to get status: %w", err)
		}
		switch status {
		case service.StatusRunning:
			lg.Info.Println("Service status: Running")
		case service.StatusStopped:
			lg.Info.Println("Service status: Stopped")
		default:
			lg.Info.Println("Service status: Unknown")
		}

	case "run":
		if err := s.Run(); err != nil {
			return fmt.Errorf("service run failed: %w", err)
		}

	default:
		return fmt.Errorf("unknown command: %s\nValid commands: install, uninstall, start, stop, status, run", cmd)
	}
	return nil
}

func buildServiceArgs(config *Config) []string {
	args := []string{"-service", "run"}

	if config.TargetBinaryPath != "" {
		args = append(args, "-target="+config.TargetBinaryPath)
	}

	if config.CheckInterval != 0 {
		args = append(args, fmt.Sprintf("-interval=%s", config.CheckInterval))
	}

	return args
}

// Start is called when the service starts
func (p *Program) Start(s service.Service) error {
	svcLogger, _ := s.Logger(nil)
	if svcLogger != nil {
		svcLogger.Info("Updater service starting...")
	}

	exePath, err := os.Executable()
	if err == nil {
		if pair, err := logs.NewPair(filepath.Join(filepath.Dir(exePath), "logs")); err == nil {
			p.logs = pair
		}
	}

	p.ctx, p.cancel = context.WithCancel(context.Background())
	go p.run()
	return nil
}

// Stop is called when the service stops
func (p *Program) Stop(s service.Service) error {
	p.logs.Info.Println("Updater service stopping...")
	if p.cancel != nil {
		p.cancel()
	}
	p.logs.Close()
	return nil
}

// run is the main watchdog loop
func (p *Program) run() {
	defer func() {
		if r := recover(); r != nil {
			p.logs.Error.Printf("run() panic recovered: %v", r)
		}
	}()

	p.logs.Info.Printf("Starting updater service...")
	p.logs.Info.Printf("Target service: %s", p.config.TargetServiceName)
	p.logs.Info.Printf("Target binary: %s", p.config.TargetBinaryPath)
	p.logs.Info.Printf("Check interval: %s", p.config.CheckInterval)

	cfg := updater.DefaultConfig(Version)
	cfg.CheckInterval = p.config.CheckInterval
	p.checker = updater.New(cfg, p.logs)

	p.logs.Info.Printf("Waiting %s before first update check...", p.config.StartupDelay)
	select {
	case <-time.After(p.config.StartupDelay):
	case <-p.ctx.Done():
		p.logs.Info.Println("Updater service stopped during startup delay")
		return
	}

	p.checkAndApplyUpdate()

	ticker := time.NewTicker(p.config.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.checkAndApplyUpdate()
		case <-p.ctx.Done():
			p.logs.Info.Println("Updater service stopped")
			return
		}
	}
}

// checkAndApplyUpdate stops the target service, swaps the binary and
// starts it again.
func (p *Program) checkAndApplyUpdate() {
	defer func() {
		if r := recover(); r != nil {
			p.logs.Error.Printf("Update check panic: %v", r)
		}
	}()

	release, needsUpdate, err := p.checker.CheckForUpdate(p.ctx)
	if err != nil {
		p.logs.Error.Printf("Update check failed: %v", err)
		return
	}
	if !needsUpdate {
		return
	}

	p.logs.Info.Printf("Update available: %s", release.Version())

	p.logs.Info.Printf("Stopping target service: %s", p.config.TargetServiceName)
	if err := p.stopTargetService(); err != nil {
		// The service might simply not be running.
		p.logs.Error.Printf("Failed to stop target service: %v", err)
	}

	time.Sleep(3 * time.Second)

	if err := p.applyUpdateToTarget(release); err != nil {
		p.logs.Error.Printf("Update failed: %v", err)
		p.startTargetService()
		return
	}

	p.logs.Info.Printf("Update applied successfully to version %s", release.Version())

	p.logs.Info.Printf("Starting target service: %s", p.config.TargetServiceName)
	if err := p.startTargetService(); err != nil {
		p.logs.Error.Printf("Failed to start target service: %v", err)
	} else {
		p.logs.Info.Println("Target service started successfully")
	}
}

// applyUpdateToTarget downloads and applies the update to the target binary
func (p *Program) applyUpdateToTarget(release *selfupdate.Release) error {
	return p.checker.UpdateTo(p.ctx, release, p.config.TargetBinaryPath)
}

func (p *Program) stopTargetService() error {
	cmd := exec.Command("sc", "stop", p.config.TargetServiceName)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("sc stop failed: %v, output: %s", err, string(output))
	}
	return nil
}

func (p *Program) startTargetService() error {
	cmd := exec.Command("sc", "start", p.config.TargetServiceName)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("sc start failed: %v, output: %s", err, string(output))
	}
	return nil
}
