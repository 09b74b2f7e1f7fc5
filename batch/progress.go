package batch

import "sync"

// Snapshot is one immutable view of the batch counters, pushed to the
// front-end after every record.
type Snapshot struct {
	Total     int `json:"total"`
	Processed int `json:"processed"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Remaining int `json:"remaining"`
}

// Progress tracks batch counters. Updates happen exactly once per record,
// so succeeded+failed == processed and remaining == total-processed hold
// after every update.
type Progress struct {
	mu        sync.Mutex
	total     int
	processed int
	succeeded int
	failed    int
}

// NewProgress creates counters for a batch of total records.
func NewProgress(total int) *Progress {
	return &Progress{total: total}
}

// Update records the outcome of one record.
func (p *Progress) Update(success bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.processed++
	if success {
		p.succeeded++
	} else {
		p.failed++
	}
}

// Snapshot returns the current counter values.
func (p *Progress) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{
		Total:     p.total,
		Processed: p.processed,
		Succeeded: p.succeeded,
		Failed:    p.failed,
		Remaining: p.total - p.processed,
	}
}
