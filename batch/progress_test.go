package batch

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressCounters(t *testing.T) {
	p := NewProgress(4)

	assert.Equal(t, Snapshot{Total: 4, Remaining: 4}, p.Snapshot())

	p.Update(true)
	p.Update(false)
	p.Update(true)

	snap := p.Snapshot()
	assert.Equal(t, Snapshot{Total: 4, Processed: 3, Succeeded: 2, Failed: 1, Remaining: 1}, snap)

	// Counters always reconcile.
	assert.Equal(t, snap.Total, snap.Processed+snap.Remaining)
	assert.Equal(t, snap.Processed, snap.Succeeded+snap.Failed)
}

func TestProgressConcurrentReaders(t *testing.T) {
	p := NewProgress(100)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(ok bool) {
			defer wg.Done()
			p.Update(ok)
			snap := p.Snapshot()
			assert.Equal(t, snap.Total, snap.Processed+snap.Remaining)
			assert.Equal(t, snap.Processed, snap.Succeeded+snap.Failed)
		}(i%2 == 0)
	}
	wg.Wait()

	assert.Equal(t, Snapshot{Total: 100, Processed: 100, Succeeded: 50, Failed: 50, Remaining: 0}, p.Snapshot())
}
