package scrapers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollUntilSucceedsBeforeBound(t *testing.T) {
	var slept []time.Duration
	sleep := func(d time.Duration) { slept = append(slept, d) }

	calls := 0
	done, err := pollUntil(context.Background(), 5*time.Second, time.Second, sleep, func() (bool, error) {
		calls++
		return calls == 3, nil
	})
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, 3, calls)
	assert.Len(t, slept, 2)
}

func TestPollUntilExhaustsAttempts(t *testing.T) {
	sleep := func(time.Duration) {}

	calls := 0
	done, err := pollUntil(context.Background(), 3*time.Second, time.Second, sleep, func() (bool, error) {
		calls++
		return false, nil
	})
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, 3, calls)
}

func TestPollUntilPropagatesError(t *testing.T) {
	sleep := func(time.Duration) {}

	wantErr := errors.New("boom")
	done, err := pollUntil(context.Background(), 10*time.Second, time.Second, sleep, func() (bool, error) {
		return false, wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.False(t, done)
}

func TestPollUntilStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sleep := func(time.Duration) {}

	calls := 0
	done, err := pollUntil(ctx, 10*time.Second, time.Second, sleep, func() (bool, error) {
		calls++
		cancel()
		return false, nil
	})
	require.Error(t, err)
	assert.False(t, done)
	assert.Equal(t, 1, calls)
}

func TestStatusClassification(t *testing.T) {
	pending := []string{
		"Demandé le 12/05/2026 - En cours",
		"Demandé le 12/05/2026 - dans moins d'une minute",
	}
	for _, text := range pending {
		assert.True(t, statusPending(text), text)
		assert.False(t, statusError(text), text)
	}

	assert.False(t, statusPending("Demandé le 12/05/2026 - Terminé"))
	assert.True(t, statusError("Demandé le 12/05/2026 - En erreur"))
	assert.False(t, statusError("Demandé le 12/05/2026 - Terminé"))
}

func TestDownloadStatusString(t *testing.T) {
	assert.Equal(t, "completed", DownloadCompleted.String())
	assert.Equal(t, "not-found", DownloadNotFound.String())
	assert.Equal(t, "failed", DownloadFailed.String())
}
