package batch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfe-fetch/records"
	"github.com/cfe-fetch/scrapers"
)

// fakeFetcher scripts per-record outcomes and records lifecycle calls.
type fakeFetcher struct {
	initErr    error
	connectErr error
	outcomes   map[string]bool
	procErr    map[string]error

	initialized bool
	connected   bool
	closed      bool
	processed   []string
	resets      int
	returns     int
}

func (f *fakeFetcher) Initialize() error {
	f.initialized = true
	return f.initErr
}

func (f *fakeFetcher) Connect() error {
	f.connected = true
	return f.connectErr
}

func (f *fakeFetcher) Process(rec records.Record) (bool, error) {
	f.processed = append(f.processed, rec.Siren)
	if err := f.procErr[rec.Siren]; err != nil {
		return false, err
	}
	return f.outcomes[rec.Siren], nil
}

func (f *fakeFetcher) ResetWindows() error { f.resets++; return nil }
func (f *fakeFetcher) ReturnHome() error   { f.returns++; return nil }
func (f *fakeFetcher) Close() error        { f.closed = true; return nil }

var _ scrapers.Fetcher = (*fakeFetcher)(nil)

func rec(siren string) records.Record {
	return records.Record{Siren: siren, CompanyName: "ACME", DossierCode: "415"}
}

func TestRunSingleRecordSuccess(t *testing.T) {
	fetcher := &fakeFetcher{outcomes: map[string]bool{"123456789": true}}
	runner := &Runner{Fetcher: fetcher}

	snap, err := runner.Run(context.Background(), []records.Record{rec("123456789")})
	require.NoError(t, err)

	assert.Equal(t, Snapshot{Total: 1, Processed: 1, Succeeded: 1, Failed: 0, Remaining: 0}, snap)
	assert.True(t, fetcher.initialized)
	assert.True(t, fetcher.connected)
	assert.True(t, fetcher.closed)
	assert.Equal(t, []string{"123456789"}, fetcher.processed)
}

func TestRunRecordWithoutAccountWindowFails(t *testing.T) {
	// Process returning false models the lookup never opening the account
	// window: the record is counted failed, the batch keeps going.
	fetcher := &fakeFetcher{outcomes: map[string]bool{"123456789": false}}
	runner := &Runner{Fetcher: fetcher}

	snap, err := runner.Run(context.Background(), []records.Record{rec("123456789")})
	require.NoError(t, err)

	assert.Equal(t, Snapshot{Total: 1, Processed: 1, Succeeded: 0, Failed: 1, Remaining: 0}, snap)
	assert.True(t, fetcher.closed)
}

func TestRunMixedBatchContinuesPastFailures(t *testing.T) {
	fetcher := &fakeFetcher{
		outcomes: map[string]bool{"111111111": true, "333333333": true},
		procErr:  map[string]error{"222222222": errors.New("portal hiccup")},
	}
	runner := &Runner{Fetcher: fetcher}

	snap, err := runner.Run(context.Background(), []records.Record{
		rec("111111111"), rec("222222222"), rec("333333333"),
	})
	require.NoError(t, err)

	assert.Equal(t, Snapshot{Total: 3, Processed: 3, Succeeded: 2, Failed: 1, Remaining: 0}, snap)
	assert.Equal(t, []string{"111111111", "222222222", "333333333"}, fetcher.processed)
	// Window and navigation hygiene between every record.
	assert.Equal(t, 3, fetcher.resets)
	assert.Equal(t, 3, fetcher.returns)
}

func TestRunInvalidRecordNeverReachesFetcher(t *testing.T) {
	fetcher := &fakeFetcher{}
	runner := &Runner{Fetcher: fetcher}

	snap, err := runner.Run(context.Background(), []records.Record{
		{Siren: "000000000", CompanyName: "PLACEHOLDER", DossierCode: "1"},
	})
	require.NoError(t, err)

	assert.Equal(t, Snapshot{Total: 1, Processed: 1, Succeeded: 0, Failed: 1, Remaining: 0}, snap)
	assert.Empty(t, fetcher.processed)
}

func TestRunInitializeFailureAbortsBatch(t *testing.T) {
	fetcher := &fakeFetcher{initErr: errors.New("no browser")}
	runner := &Runner{Fetcher: fetcher}

	_, err := runner.Run(context.Background(), []records.Record{rec("123456789")})
	require.Error(t, err)
	assert.Empty(t, fetcher.processed)
}

func TestRunConnectFailureAbortsBatch(t *testing.T) {
	fetcher := &fakeFetcher{connectErr: errors.New("auth timeout")}
	runner := &Runner{Fetcher: fetcher}

	_, err := runner.Run(context.Background(), []records.Record{rec("123456789")})
	require.Error(t, err)
	assert.Empty(t, fetcher.processed)
	assert.True(t, fetcher.closed)
}

// stoppingFrontend requests a stop once two records have rendered. The
// runner renders once before the loop, then once per record.
type stoppingFrontend struct {
	renders int
}

func (f *stoppingFrontend) WaitStart(ctx context.Context) error { return nil }
func (f *stoppingFrontend) Stopped() bool                       { return f.renders > 2 }
func (f *stoppingFrontend) Render(Snapshot)                     { f.renders++ }
func (f *stoppingFrontend) SetState(string)                     {}

func TestRunStopsBetweenRecords(t *testing.T) {
	fetcher := &fakeFetcher{outcomes: map[string]bool{
		"111111111": true, "222222222": true, "333333333": true,
	}}
	runner := &Runner{Fetcher: fetcher, Frontend: &stoppingFrontend{}}

	snap, err := runner.Run(context.Background(), []records.Record{
		rec("111111111"), rec("222222222"), rec("333333333"),
	})
	require.NoError(t, err)

	// The stop lands after the second record.
	assert.Equal(t, []string{"111111111", "222222222"}, fetcher.processed)
	assert.Equal(t, Snapshot{Total: 3, Processed: 2, Succeeded: 2, Failed: 0, Remaining: 1}, snap)
}

func TestRunCancelledContextProcessesNothing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := &fakeFetcher{}
	runner := &Runner{Fetcher: fetcher}

	snap, err := runner.Run(ctx, []records.Record{rec("123456789")})
	require.NoError(t, err)

	assert.Empty(t, fetcher.processed)
	assert.Equal(t, Snapshot{Total: 1, Processed: 0, Succeeded: 0, Failed: 0, Remaining: 1}, snap)
}
