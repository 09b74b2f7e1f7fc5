package scrapers

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"
)

// driver is the browser surface the lookup and harvest state machines run
// on: navigation, visibility probes, clicks, window bookkeeping and the two
// page reads they depend on. The production implementation delegates to
// chromedp; tests script it to drive the state machines without a browser.
type driver interface {
	navigate(ctx context.Context, url string) error
	navigateBack(ctx context.Context) error
	visible(ctx context.Context, sel string, timeout time.Duration, opts ...chromedp.QueryOption) bool
	click(ctx context.Context, sel string, opts ...chromedp.QueryOption) error
	clickIfVisible(ctx context.Context, sel string, timeout time.Duration, opts ...chromedp.QueryOption) bool
	fillSiren(siren string) error
	windowCount() int
	newestWindow() (target.ID, bool)
	attach(id target.ID) (context.Context, context.CancelFunc)
	documentRows(ctx context.Context) ([]rowInfo, error)
	statusText(ctx context.Context) (*string, error)
}

// chromeDriver runs the driver operations against the live session.
type chromeDriver struct {
	s *CFE
}

func (d *chromeDriver) navigate(ctx context.Context, url string) error {
	return chromedp.Run(ctx, chromedp.Navigate(url), chromedp.WaitReady("body"))
}

func (d *chromeDriver) navigateBack(ctx context.Context) error {
	return chromedp.Run(ctx, chromedp.NavigateBack())
}

// visible reports whether sel becomes visible within timeout.
func (d *chromeDriver) visible(ctx context.Context, sel string, timeout time.Duration, opts ...chromedp.QueryOption) bool {
	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return chromedp.Run(tctx, chromedp.WaitVisible(sel, opts...)) == nil
}

func (d *chromeDriver) click(ctx context.Context, sel string, opts ...chromedp.QueryOption) error {
	return chromedp.Run(ctx, chromedp.Click(sel, opts...))
}

// clickIfVisible clicks sel when it appears within timeout and reports
// whether the click happened.
func (d *chromeDriver) clickIfVisible(ctx context.Context, sel string, timeout time.Duration, opts ...chromedp.QueryOption) bool {
	if !d.visible(ctx, sel, timeout, opts...) {
		return false
	}
	return d.click(ctx, sel, opts...) == nil
}

// fillSiren clears and fills the nine single-digit lookup inputs.
func (d *chromeDriver) fillSiren(siren string) error {
	var actions []chromedp.Action
	for i, digit := range siren {
		sel := fmt.Sprintf("#siren%d", i)
		actions = append(actions,
			chromedp.SetValue(sel, ""),
			chromedp.SendKeys(sel, string(digit)),
		)
	}
	return chromedp.Run(d.s.ctx, actions...)
}

func (d *chromeDriver) windowCount() int {
	return d.s.windows.count()
}

func (d *chromeDriver) newestWindow() (target.ID, bool) {
	return d.s.windows.newest()
}

func (d *chromeDriver) attach(id target.ID) (context.Context, context.CancelFunc) {
	return d.s.attach(id)
}

// documentRows captures the index and establishment-suffix cell of every
// linked row of the document table in one pass.
func (d *chromeDriver) documentRows(ctx context.Context) ([]rowInfo, error) {
	var rows []rowInfo
	err := chromedp.Run(ctx, chromedp.Evaluate(`
		(function() {
			var rows = document.querySelectorAll('tbody tr');
			var out = [];
			for (var i = 0; i < rows.length; i++) {
				var cells = rows[i].querySelectorAll('td');
				if (cells.length === 0 || !rows[i].querySelector('a')) {
					continue;
				}
				var suffix = cells.length > `+fmt.Sprint(suffixCellIndex)+`
					? cells[`+fmt.Sprint(suffixCellIndex)+`].textContent.trim() : '';
				out.push({index: i, suffix: suffix});
			}
			return out;
		})()
	`, &rows))
	return rows, err
}

// statusText reads the print request's status cell, nil when the cell is
// not in the document.
func (d *chromeDriver) statusText(ctx context.Context) (*string, error) {
	var text *string
	err := chromedp.Run(ctx, chromedp.Evaluate(`
		(function() {
			var tds = document.getElementsByTagName('td');
			for (var i = 0; i < tds.length; i++) {
				if (tds[i].textContent.indexOf('Demandé le') >= 0) {
					return tds[i].textContent;
				}
			}
			return null;
		})()
	`, &text))
	return text, err
}
