package scrapers

import (
	"context"
	"sync"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"
)

// windowSet tracks the open page windows of the session in creation order.
// The first entry is the main window, which persists across records; every
// other window must be closed before the next record begins.
type windowSet struct {
	mu  sync.Mutex
	ids []target.ID
}

func (w *windowSet) add(id target.ID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, existing := range w.ids {
		if existing == id {
			return
		}
	}
	w.ids = append(w.ids, id)
}

func (w *windowSet) remove(id target.ID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, existing := range w.ids {
		if existing == id {
			w.ids = append(w.ids[:i], w.ids[i+1:]...)
			return
		}
	}
}

func (w *windowSet) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.ids)
}

func (w *windowSet) newest() (target.ID, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.ids) == 0 {
		return "", false
	}
	return w.ids[len(w.ids)-1], true
}

// extras returns every window opened after the first keep entries.
func (w *windowSet) extras(keep int) []target.ID {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.ids) <= keep {
		return nil
	}
	out := make([]target.ID, len(w.ids)-keep)
	copy(out, w.ids[keep:])
	return out
}

// attach builds a child context driving the given window.
func (s *CFE) attach(id target.ID) (context.Context, context.CancelFunc) {
	return chromedp.NewContext(s.ctx, chromedp.WithTargetID(id))
}

// closeWindow closes one window and drops it from the set. The destroyed
// event also removes it; the explicit remove keeps counts correct when
// events lag.
func (s *CFE) closeWindow(id target.ID) error {
	ctx, cancel := s.attach(id)
	defer cancel()
	err := chromedp.Run(ctx, page.Close())
	s.windows.remove(id)
	return err
}

// closeWindowsDownTo closes the most recent windows until only keep remain,
// newest first.
func (s *CFE) closeWindowsDownTo(keep int) error {
	var first error
	extras := s.windows.extras(keep)
	for i := len(extras) - 1; i >= 0; i-- {
		if err := s.closeWindow(extras[i]); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// ResetWindows enforces the per-record invariant: only the main window
// survives.
func (s *CFE) ResetWindows() error {
	return s.closeWindowsDownTo(1)
}
