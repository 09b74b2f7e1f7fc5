// Package logs sets up the two append-only log streams of a run: one for
// informational events (record start, not accessible, no CFE notices) and
// one for errors (validation failures, timeouts, exceptions).
package logs

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	infoFileName  = "log_infos.txt"
	errorFileName = "log_erreurs.txt"
)

// Pair bundles the info and error loggers and their file handles.
type Pair struct {
	Info  *log.Logger
	Error *log.Logger

	files []*os.File
}

// NewPair opens the two log files under dir (created if absent) and returns
// timestamped loggers writing to stdout plus the matching file.
func NewPair(dir string) (*Pair, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log dir %s: %w", dir, err)
	}

	infoFile, err := openAppend(filepath.Join(dir, infoFileName))
	if err != nil {
		return nil, err
	}
	errorFile, err := openAppend(filepath.Join(dir, errorFileName))
	if err != nil {
		infoFile.Close()
		return nil, err
	}

	return &Pair{
		Info:  log.New(io.MultiWriter(os.Stdout, infoFile), "[CFE-FETCH] ", log.LstdFlags),
		Error: log.New(io.MultiWriter(os.Stderr, errorFile), "[CFE-FETCH] ERROR ", log.LstdFlags),
		files: []*os.File{infoFile, errorFile},
	}, nil
}

// ConsolePair returns loggers writing to stdout/stderr only, for tests and
// for modes where file logging is handled elsewhere.
func ConsolePair() *Pair {
	return &Pair{
		Info:  log.New(os.Stdout, "[CFE-FETCH] ", log.LstdFlags),
		Error: log.New(os.Stderr, "[CFE-FETCH] ERROR ", log.LstdFlags),
	}
}

// Close closes the underlying files.
func (p *Pair) Close() error {
	var first error
	for _, f := range p.files {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func openAppend(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, nil
}
