// Package batch drives the record list through one authenticated browser
// session: validate, look up, harvest, update counters, clean up windows,
// return to the landing page.
package batch

import (
	"context"
	"fmt"

	"github.com/cfe-fetch/logs"
	"github.com/cfe-fetch/records"
	"github.com/cfe-fetch/scrapers"
)

// Frontend is the contract of the interactive front-end: a blocking start
// signal, a stop flag polled between records, and progress rendering.
type Frontend interface {
	// WaitStart blocks until the operator starts the run or ctx ends.
	WaitStart(ctx context.Context) error
	// Stopped reports whether the operator requested a stop. Checked
	// between records only, never mid-record.
	Stopped() bool
	// Render receives a counter snapshot after every record.
	Render(Snapshot)
	// SetState receives a short textual status for display.
	SetState(string)
}

// headlessFrontend is used when no front-end is attached.
type headlessFrontend struct{}

func (headlessFrontend) WaitStart(context.Context) error { return nil }
func (headlessFrontend) Stopped() bool                   { return false }
func (headlessFrontend) Render(Snapshot)                 {}
func (headlessFrontend) SetState(string)                 {}

// Headless returns a front-end that starts immediately and never stops.
func Headless() Frontend { return headlessFrontend{} }

// Runner owns the session for the duration of one batch. Only the Runner
// goroutine drives the fetcher; the front-end communicates exclusively
// through snapshots and the stop flag.
type Runner struct {
	Fetcher  scrapers.Fetcher
	Frontend Frontend
	Logs     *logs.Pair

	progress *Progress
}

// Run processes the records strictly in source order and returns the final
// counters. A single record's crash never terminates the run; fatal errors
// (browser startup, authentication aborted) do.
func (r *Runner) Run(ctx context.Context, recs []records.Record) (Snapshot, error) {
	if r.Frontend == nil {
		r.Frontend = Headless()
	}
	if r.Logs == nil {
		r.Logs = logs.ConsolePair()
	}
	r.progress = NewProgress(len(recs))

	r.Frontend.SetState("En attente de lancement")
	if err := r.Frontend.WaitStart(ctx); err != nil {
		return r.progress.Snapshot(), err
	}
	if r.Frontend.Stopped() {
		return r.progress.Snapshot(), nil
	}

	r.Frontend.SetState("Connexion au portail...")
	r.Frontend.Render(r.progress.Snapshot())

	if err := r.Fetcher.Initialize(); err != nil {
		return r.progress.Snapshot(), fmt.Errorf("failed to initialize browser: %w", err)
	}
	defer r.Fetcher.Close()

	if err := r.Fetcher.Connect(); err != nil {
		return r.progress.Snapshot(), fmt.Errorf("failed to authenticate: %w", err)
	}

	r.Frontend.SetState("En cours de traitement...")

	for i, rec := range recs {
		if r.Frontend.Stopped() || ctx.Err() != nil {
			r.Logs.Info.Printf("Stop requested, %d/%d records processed", i, len(recs))
			break
		}

		r.Logs.Info.Printf("Record %d/%d | SIREN: %s | Name: %s | Code: %s",
			i+1, len(recs), rec.Siren, rec.CompanyName, rec.DossierCode)

		success := r.processRecord(rec)
		r.progress.Update(success)
		r.Frontend.Render(r.progress.Snapshot())

		r.cleanupBetweenRecords()
	}

	snap := r.progress.Snapshot()
	r.Frontend.SetState("Programme terminé !")
	r.Logs.Info.Printf("Batch complete: %d/%d records succeeded", snap.Succeeded, snap.Total)
	return snap, nil
}

// Progress exposes the live counters for external pollers (gRPC Progress).
// Nil until Run has started.
func (r *Runner) Progress() *Progress { return r.progress }

// processRecord runs one record through lookup and harvesting. It reports
// whether the record counts as succeeded and never panics outward.
func (r *Runner) processRecord(rec records.Record) (success bool) {
	defer func() {
		if p := recover(); p != nil {
			r.Logs.Error.Printf("SIREN %s: panic during processing: %v", rec.Siren, p)
			success = false
		}
	}()

	if err := rec.Validate(); err != nil {
		r.Logs.Error.Printf("SIREN %s: invalid record: %v", rec.Siren, err)
		return false
	}

	ok, err := r.Fetcher.Process(rec)
	if err != nil {
		r.Logs.Error.Printf("SIREN %s: %v", rec.Siren, err)
	}
	return ok
}

// cleanupBetweenRecords enforces the window invariant: only the main window
// survives a record, and the next record starts from the landing page.
func (r *Runner) cleanupBetweenRecords() {
	if err := r.Fetcher.ResetWindows(); err != nil {
		r.Logs.Error.Printf("Failed to close extra windows: %v", err)
	}
	if err := r.Fetcher.ReturnHome(); err != nil {
		r.Logs.Error.Printf("Failed to return to landing page: %v", err)
	}
}
