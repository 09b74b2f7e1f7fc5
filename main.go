package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cfe-fetch/batch"
	"github.com/cfe-fetch/frontend"
	"github.com/cfe-fetch/logs"
	"github.com/cfe-fetch/records"
	"github.com/cfe-fetch/scrapers"
	"github.com/cfe-fetch/server"
	"github.com/cfe-fetch/service"
)

const Version = "1.0.0"

func main() {
	recordsFlag := flag.String("records", "", "Record file (one 'siren;name;code' line per record)")
	credsFlag := flag.String("creds", "", "Credentials file (username on line 1, password on line 2)")
	delimiter := flag.String("delimiter", records.DefaultDelimiter, "Record file field delimiter")
	downloadPath := flag.String("download", "./downloads", "Download directory")
	archivePath := flag.String("archive", "./avis_cfe", "Directory receiving the renamed PDF notices")
	logPath := flag.String("logs", ".", "Directory for log_infos.txt and log_erreurs.txt")
	headless := flag.Bool("headless", false, "Run the browser headless (the captcha needs a visible browser)")
	frontendAddr := flag.String("frontend", "", "Serve the control page on this address (e.g. 127.0.0.1:8080)")
	grpcMode := flag.Bool("grpc", false, "Run as gRPC server")
	grpcPort := flag.String("port", "50051", "gRPC server port")
	serviceCmd := flag.String("service", "", "Service command: install, uninstall, start, stop, restart, status, run")
	autoUpdate := flag.Bool("auto-update", false, "Check for updates periodically (service mode)")
	updateInterval := flag.String("update-interval", "", "Update check interval (e.g. 1h, 30m)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("cfe-fetch " + Version)
		return
	}

	lg, err := logs.NewPair(*logPath)
	if err != nil {
		lg = logs.ConsolePair()
		lg.Error.Printf("File logging disabled: %v", err)
	}
	defer lg.Close()

	if *serviceCmd != "" {
		prg := &service.Program{
			Logs:           lg,
			GRPCPort:       *grpcPort,
			DownloadPath:   *downloadPath,
			ArchivePath:    *archivePath,
			Headless:       *headless,
			Version:        Version,
			AutoUpdate:     *autoUpdate,
			UpdateInterval: *updateInterval,
		}
		if err := service.RunServiceCommand(*serviceCmd, prg, lg); err != nil {
			lg.Error.Printf("Service command failed: %v", err)
			os.Exit(1)
		}
		return
	}

	if *grpcMode {
		if err := server.RunGRPCServer(lg, *grpcPort, *downloadPath, *archivePath, *headless); err != nil {
			lg.Error.Printf("gRPC server failed: %v", err)
			os.Exit(1)
		}
		return
	}

	runCLIMode(lg, cliOptions{
		recordsPath:  *recordsFlag,
		credsPath:    *credsFlag,
		delimiter:    *delimiter,
		downloadPath: *downloadPath,
		archivePath:  *archivePath,
		headless:     *headless,
		frontendAddr: *frontendAddr,
	})
}

type cliOptions struct {
	recordsPath  string
	credsPath    string
	delimiter    string
	downloadPath string
	archivePath  string
	headless     bool
	frontendAddr string
}

// runCLIMode runs one batch from the command line.
func runCLIMode(lg *logs.Pair, opts cliOptions) {
	recordsPath := opts.recordsPath
	if recordsPath == "" {
		recordsPath = os.Getenv("CFE_RECORDS")
	}
	credsPath := opts.credsPath
	if credsPath == "" {
		credsPath = os.Getenv("CFE_CREDS")
	}
	if recordsPath == "" || credsPath == "" {
		lg.Error.Println("Usage: cfe-fetch -records=records.csv -creds=credentials.txt\n" +
			"Or set CFE_RECORDS and CFE_CREDS\n" +
			"Or run as gRPC server: cfe-fetch -grpc -port=50051")
		os.Exit(1)
	}

	recs, err := records.Load(recordsPath, opts.delimiter)
	if err != nil {
		lg.Error.Printf("Failed to load records: %v", err)
		os.Exit(1)
	}
	if len(recs) == 0 {
		lg.Error.Printf("No usable records in %s", recordsPath)
		os.Exit(1)
	}
	lg.Info.Printf("Found %d record(s) to process", len(recs))

	creds, err := records.LoadCredentials(credsPath)
	if err != nil {
		lg.Error.Printf("Failed to load credentials: %v", err)
		os.Exit(1)
	}

	sessionFolder := filepath.Join(opts.downloadPath, time.Now().Format("20060102_150405"))
	if err := os.MkdirAll(sessionFolder, 0755); err != nil {
		lg.Error.Printf("Failed to create session folder: %v", err)
		os.Exit(1)
	}
	lg.Info.Printf("Session folder: %s", sessionFolder)

	config := &scrapers.Config{
		Credentials:  creds,
		DownloadPath: sessionFolder,
		ArchivePath:  opts.archivePath,
		Headless:     opts.headless,
	}

	var fe batch.Frontend
	var prompter scrapers.Prompter
	if opts.frontendAddr != "" {
		bridge := frontend.NewBridge(opts.frontendAddr, lg)
		if err := bridge.Start(); err != nil {
			lg.Error.Printf("Failed to start control page: %v", err)
			os.Exit(1)
		}
		defer bridge.Close()
		fe = bridge
		prompter = bridge
	} else {
		fe = batch.Headless()
		prompter = frontend.ConsolePrompter{Logs: lg}
	}

	runner := &batch.Runner{
		Fetcher:  scrapers.NewCFE(config, lg, prompter),
		Frontend: fe,
		Logs:     lg,
	}

	snap, err := runner.Run(context.Background(), recs)
	if err != nil {
		lg.Error.Printf("Batch failed: %v", err)
		os.Exit(1)
	}

	lg.Info.Printf("=== Complete: %d/%d records succeeded ===", snap.Succeeded, snap.Total)
	lg.Info.Printf("PDF notices saved to: %s", opts.archivePath)
}
