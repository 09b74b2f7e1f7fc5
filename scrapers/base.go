// Package scrapers drives the tax portal through chromedp: one
// authenticated session, per-SIREN account lookup, document harvesting and
// download materialization.
package scrapers

import (
	"context"
	"time"

	"github.com/cfe-fetch/records"
)

// Config holds the settings of one fetching session.
type Config struct {
	Credentials records.Credentials
	// DownloadPath is the browser's fixed download directory.
	DownloadPath string
	// ArchivePath is where renamed notices are filed.
	ArchivePath string
	Headless    bool
	// AuthWait bounds the human captcha pause of one connect attempt.
	AuthWait time.Duration
	// StatusWait bounds the print-pipeline status polling of one document.
	StatusWait time.Duration
}

// Fetcher is the per-session workflow as seen by the batch orchestrator.
// Implementations borrow the browser session; the orchestrator goroutine is
// the only caller.
type Fetcher interface {
	// Initialize starts the browser and prepares the download directory.
	Initialize() error
	// Connect establishes the authenticated session, pausing for the
	// human captcha entry.
	Connect() error
	// Process looks up one record's account and harvests its documents.
	// It reports whether the record counts as succeeded.
	Process(rec records.Record) (bool, error)
	// ResetWindows closes every window except the main one.
	ResetWindows() error
	// ReturnHome navigates the main window back to the landing page.
	ReturnHome() error
	// Close releases the browser.
	Close() error
}

// DownloadStatus classifies the outcome of one document row.
type DownloadStatus int

const (
	// DownloadCompleted means the notice was downloaded and filed.
	DownloadCompleted DownloadStatus = iota
	// DownloadNotFound means the expected artifact never appeared.
	DownloadNotFound
	// DownloadFailed means the remote print pipeline reported an error.
	DownloadFailed
)

func (s DownloadStatus) String() string {
	switch s {
	case DownloadCompleted:
		return "completed"
	case DownloadNotFound:
		return "not-found"
	case DownloadFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// DownloadOutcome is the result of harvesting one document row.
type DownloadOutcome struct {
	Status DownloadStatus
	// File is the final path of the archived notice when Status is
	// DownloadCompleted.
	File string
	// Reason describes the failure when Status is not DownloadCompleted.
	Reason string
}

// sleepFunc lets tests replace the wall clock.
type sleepFunc func(time.Duration)

// pollUntil calls fn every interval until it reports done, an error, the
// bound elapses or ctx ends. The bound is counted in intervals, not wall
// time, so tests can substitute the sleep function. All workflow waits go
// through this helper so bound and interval stay explicit.
func pollUntil(ctx context.Context, bound, interval time.Duration, sleep sleepFunc, fn func() (bool, error)) (bool, error) {
	if sleep == nil {
		sleep = time.Sleep
	}
	attempts := int(bound / interval)
	if attempts < 1 {
		attempts = 1
	}
	for i := 0; ; i++ {
		done, err := fn()
		if err != nil {
			return false, err
		}
		if done {
			return true, nil
		}
		if i+1 >= attempts {
			return false, nil
		}
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		sleep(interval)
	}
}
