package updater

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/cfe-fetch/logs"
)

// RestartService stops and restarts a Windows service so the swapped
// binary takes effect. The restart runs in the background because the
// caller is usually the service being restarted.
func RestartService(serviceName string, lg *logs.Pair) error {
	if runtime.GOOS != "windows" {
		return fmt.Errorf("service restart only supported on Windows")
	}

	lg.Info.Printf("Scheduling restart of service %s", serviceName)

	go func() {
		// Let in-flight work finish before stopping.
		time.Sleep(2 * time.Second)

		if err := exec.Command("sc", "stop", serviceName).Run(); err != nil {
			lg.Error.Printf("Failed to stop service %s: %v", serviceName, err)
		}

		time.Sleep(3 * time.Second)

		if err := exec.Command("sc", "start", serviceName).Run(); err != nil {
			lg.Error.Printf("Failed to start service %s: %v", serviceName, err)
		}
	}()

	return nil
}

// RestartSelf replaces the current process with a fresh copy of the
// executable, used when running outside the service manager.
func RestartSelf(lg *logs.Pair) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}

	lg.Info.Println("Restarting with updated binary")

	cmd := exec.Command(exe, os.Args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to restart: %w", err)
	}

	os.Exit(0)
	return nil
}
