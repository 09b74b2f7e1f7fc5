package scrapers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfe-fetch/logs"
	"github.com/cfe-fetch/records"
)

// fakeDriver scripts the browser surface: which selectors are visible,
// which clicks open a window and the successive status cell reads.
type fakeDriver struct {
	windows     int
	visibleSels map[string]bool
	openOnClick map[string]bool
	statuses    []string

	clicks      []string
	backs       int
	statusReads int
}

var _ driver = (*fakeDriver)(nil)

func (d *fakeDriver) navigate(ctx context.Context, url string) error { return nil }

func (d *fakeDriver) navigateBack(ctx context.Context) error {
	d.backs++
	return nil
}

func (d *fakeDriver) visible(ctx context.Context, sel string, timeout time.Duration, opts ...chromedp.QueryOption) bool {
	return d.visibleSels[sel]
}

func (d *fakeDriver) click(ctx context.Context, sel string, opts ...chromedp.QueryOption) error {
	d.clicks = append(d.clicks, sel)
	if d.openOnClick[sel] {
		d.windows++
	}
	return nil
}

func (d *fakeDriver) clickIfVisible(ctx context.Context, sel string, timeout time.Duration, opts ...chromedp.QueryOption) bool {
	if !d.visibleSels[sel] {
		return false
	}
	return d.click(ctx, sel, opts...) == nil
}

func (d *fakeDriver) fillSiren(siren string) error { return nil }

func (d *fakeDriver) windowCount() int { return d.windows }

func (d *fakeDriver) newestWindow() (target.ID, bool) {
	if d.windows == 0 {
		return "", false
	}
	return target.ID(fmt.Sprintf("window-%d", d.windows)), true
}

func (d *fakeDriver) attach(id target.ID) (context.Context, context.CancelFunc) {
	return context.WithCancel(context.Background())
}

func (d *fakeDriver) documentRows(ctx context.Context) ([]rowInfo, error) { return nil, nil }

func (d *fakeDriver) statusText(ctx context.Context) (*string, error) {
	i := d.statusReads
	if i >= len(d.statuses) {
		i = len(d.statuses) - 1
	}
	d.statusReads++
	text := d.statuses[i]
	return &text, nil
}

func (d *fakeDriver) clicked(sel string) bool {
	for _, c := range d.clicks {
		if c == sel {
			return true
		}
	}
	return false
}

func newFakeCFE(t *testing.T, d *fakeDriver) *CFE {
	t.Helper()
	s := NewCFE(&Config{
		DownloadPath: t.TempDir(),
		ArchivePath:  t.TempDir(),
	}, logs.ConsolePair(), nil)
	s.ctx = context.Background()
	s.downloadPath = s.config.DownloadPath
	s.drv = d
	s.sleep = func(time.Duration) {}
	return s
}

func TestLocateAccountNoWindowAfterSubmit(t *testing.T) {
	d := &fakeDriver{
		windows:     1,
		visibleSels: map[string]bool{selAvisCFELink: true},
		openOnClick: map[string]bool{},
	}
	s := newFakeCFE(t, d)

	_, _, found, err := s.locateAccount("123456789")
	require.NoError(t, err)
	assert.False(t, found)

	assert.True(t, d.clicked(selSirenSubmit))
	assert.False(t, d.clicked(selCFEAccess))
	assert.Equal(t, 1, d.windows)
}

func TestLocateAccountReachesNoticeArea(t *testing.T) {
	d := &fakeDriver{
		windows: 1,
		visibleSels: map[string]bool{
			selAvisCFELink: true,
			selAccountHome: true,
			selCFEAccess:   true,
		},
		openOnClick: map[string]bool{selSirenSubmit: true},
	}
	s := newFakeCFE(t, d)

	acctCtx, acctCancel, found, err := s.locateAccount("123456789")
	require.NoError(t, err)
	assert.True(t, found)
	require.NotNil(t, acctCtx)
	acctCancel()

	assert.True(t, d.clicked(selCFEAccess))
	assert.Equal(t, 2, d.windows)
}

func TestLocateAccountStaleWindowExhaustsRetries(t *testing.T) {
	d := &fakeDriver{
		windows:     1,
		visibleSels: map[string]bool{selAvisCFELink: true},
		openOnClick: map[string]bool{selSirenSubmit: true},
	}
	s := newFakeCFE(t, d)

	_, _, _, err := s.locateAccount("123456789")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exhausted 3 attempts")
}

func TestHarvestRowRemoteErrorCleansUp(t *testing.T) {
	rowLink := `(//tbody/tr)[1]//a`
	d := &fakeDriver{
		windows: 1,
		visibleSels: map[string]bool{
			selStatusCell: true,
			selClearAll:   true,
		},
		openOnClick: map[string]bool{rowLink: true},
		statuses: []string{
			"Demandé le 02/05/2026 En cours",
			"Demandé le 02/05/2026 En erreur",
		},
	}
	s := newFakeCFE(t, d)
	rec := records.Record{Siren: "123456789", CompanyName: "Acme", DossierCode: "415"}

	outcome := s.harvestRow(context.Background(), rowInfo{Index: 0, Suffix: "00012"}, rec)
	assert.Equal(t, DownloadFailed, outcome.Status)
	assert.Contains(t, outcome.Reason, "remote print pipeline")

	// The queue is cleared, the PDF is never requested and the result
	// window is stepped back so the next row starts from it.
	assert.True(t, d.clicked(selClearAll))
	assert.False(t, d.clicked(selPrintPDF))
	assert.Equal(t, 1, d.backs)
}

func TestHarvestRowFilesDownload(t *testing.T) {
	rowLink := `(//tbody/tr)[1]//a`
	d := &fakeDriver{
		windows: 1,
		visibleSels: map[string]bool{
			selStatusCell: true,
			selPrintPDF:   true,
			selClearAll:   true,
		},
		openOnClick: map[string]bool{rowLink: true},
		statuses:    []string{"Demandé le 02/05/2026 Terminé"},
	}
	s := newFakeCFE(t, d)
	rec := records.Record{Siren: "123456789", CompanyName: "Acme Co", DossierCode: "415"}

	planted := false
	s.sleep = func(time.Duration) {
		if !planted {
			planted = true
			path := filepath.Join(s.downloadPath, "AvisCfe777.pdf")
			require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0644))
		}
	}

	outcome := s.harvestRow(context.Background(), rowInfo{Index: 0, Suffix: " 00012 "}, rec)
	require.Equal(t, DownloadCompleted, outcome.Status, outcome.Reason)

	want := fmt.Sprintf("415_Acme_Co_12345678900012_CFE_%d.pdf", time.Now().Year())
	assert.Equal(t, want, filepath.Base(outcome.File))
	assert.FileExists(t, outcome.File)
}

func TestAwaitDownloadIgnoresStaleEvent(t *testing.T) {
	s := newFakeCFE(t, &fakeDriver{windows: 1})
	s.downloadDone <- filepath.Join(t.TempDir(), "AvisCfeOld.pdf")

	assert.False(t, s.awaitDownload())

	// The stale event is consumed, not left for the next row either.
	select {
	case path := <-s.downloadDone:
		t.Fatalf("stale event still buffered: %s", path)
	default:
	}
}

func TestAwaitDownloadIgnoresLeftoverArtifact(t *testing.T) {
	s := newFakeCFE(t, &fakeDriver{windows: 1})
	old := filepath.Join(s.downloadPath, "AvisCfeOld.pdf")
	require.NoError(t, os.WriteFile(old, []byte("%PDF"), 0644))

	assert.False(t, s.awaitDownload())
}

func TestAwaitDownloadSignalsFreshEvent(t *testing.T) {
	s := newFakeCFE(t, &fakeDriver{windows: 1})
	path := filepath.Join(s.downloadPath, "AvisCfe1.pdf")

	sent := false
	s.sleep = func(time.Duration) {
		if !sent {
			sent = true
			s.downloadDone <- path
		}
	}

	assert.True(t, s.awaitDownload())
}
