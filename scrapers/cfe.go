package scrapers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/browser"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"

	"github.com/cfe-fetch/logs"
	"github.com/cfe-fetch/records"
)

// PortalURL is the landing page of the professional tax portal. Reaching it
// again after the login form is the only reliable signal that the human has
// solved the captcha and submitted.
const PortalURL = "https://cfspro.impots.gouv.fr/mire/accueil.do"

// Selector strategy: stable anchors only. IDs where the portal provides
// them, text XPath for links and markers, the portal's class for the CFE
// access button. The SIRET suffix cell has no such anchor and is addressed
// by its fixed column index.
const (
	selLoggedInMarker = `#identifiant_après_connexion`
	selLoginUser      = `#ident`
	selLoginPassword  = `input[name='password']`
	selCaptchaInput   = `#inputcaptcha`

	selAvisCFELink  = `//a[normalize-space()='Avis CFE']`
	selSirenSubmit  = `input[name='button.submitValider']`
	selAccountHome  = `//*[contains(text(), 'Accueil du compte fiscal des professionnels')]`
	selCFEAccess    = `//a[@class='custom_bouton_cfe']`
	selNoDocuments  = `div.messageTableau ul li`
	selDocumentRows = `//tbody/tr`
	selStatusCell   = `//td[contains(text(), 'Demandé le')]`
	selPrintPDF     = `//img[contains(@alt, 'Imprimer - PDF')]`
	selClearAll     = `//a[contains(text(), 'Tout effacer')]`
)

// Wait policy: long waits guard rendering races and are retried; sub-second
// waits probe feature presence and are definitive.
const (
	landingProbeWait = 2 * time.Second
	clickableWait    = 10 * time.Second
	windowOpenWait   = 3 * time.Second
	accountHomeWait  = 5 * time.Second
	featureProbeWait = 500 * time.Millisecond
	noDocumentsWait  = 1 * time.Second
	rowsWait         = 3 * time.Second
	shortClickWait   = 1 * time.Second
	downloadWait     = 30 * time.Second
	pollInterval     = 1 * time.Second

	lookupAttempts = 3

	defaultAuthWait   = 120 * time.Second
	defaultStatusWait = 90 * time.Second

	// 0-based index of the establishment-suffix cell in a document row.
	suffixCellIndex = 4
)

// Prompter surfaces the captcha notice to the human operator.
type Prompter interface {
	NotifyCaptcha(message string)
}

const captchaMessage = "Saisissez le captcha et cliquez sur le bouton de connexion."

// CFE fetches "avis de CFE" notices from the professional tax portal. It
// implements Fetcher. All methods must be called from a single goroutine.
type CFE struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc

	config   *Config
	logs     *logs.Pair
	prompter Prompter

	windows      windowSet
	downloads    sync.Map // download GUID -> suggested filename
	downloadDone chan string
	downloadPath string

	drv   driver
	sleep sleepFunc
}

// NewCFE creates an unstarted fetcher.
func NewCFE(config *Config, lg *logs.Pair, prompter Prompter) *CFE {
	if lg == nil {
		lg = logs.ConsolePair()
	}
	if config.AuthWait == 0 {
		config.AuthWait = defaultAuthWait
	}
	if config.StatusWait == 0 {
		config.StatusWait = defaultStatusWait
	}
	c := &CFE{
		config:       config,
		logs:         lg,
		prompter:     prompter,
		downloadDone: make(chan string, 1),
	}
	c.drv = &chromeDriver{c}
	return c
}

// Initialize starts the browser, points downloads at the session directory
// and wires the download and window listeners.
func (s *CFE) Initialize() error {
	s.logs.Info.Println("Initializing browser...")

	if err := os.MkdirAll(s.config.DownloadPath, 0755); err != nil {
		return fmt.Errorf("failed to create download directory: %w", err)
	}
	absDownloadPath, err := filepath.Abs(s.config.DownloadPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	s.downloadPath = absDownloadPath

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", s.config.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-notifications", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(1920, 1080),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	ctx, cancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(s.logs.Info.Printf))

	s.ctx = ctx
	s.cancel = cancel
	s.allocCancel = allocCancel

	// Browser-wide so downloads triggered from spawned windows land in the
	// same directory under their server-suggested names.
	if err := chromedp.Run(s.ctx,
		browser.SetDownloadBehavior(browser.SetDownloadBehaviorBehaviorAllow).
			WithDownloadPath(absDownloadPath).
			WithEventsEnabled(true),
	); err != nil {
		return fmt.Errorf("failed to set download behavior: %w", err)
	}

	if chromedp.FromContext(s.ctx).Target != nil {
		s.windows.add(chromedp.FromContext(s.ctx).Target.TargetID)
	}

	chromedp.ListenBrowser(s.ctx, func(ev interface{}) {
		switch e := ev.(type) {
		case *browser.EventDownloadWillBegin:
			s.downloads.Store(e.GUID, e.SuggestedFilename)
		case *browser.EventDownloadProgress:
			if e.State != browser.DownloadProgressStateCompleted {
				return
			}
			name := e.GUID
			if v, ok := s.downloads.Load(e.GUID); ok {
				name = v.(string)
				s.downloads.Delete(e.GUID)
			}
			path := filepath.Join(absDownloadPath, name)
			s.logs.Info.Printf("Download completed: %s", path)
			select {
			case s.downloadDone <- path:
			default:
			}
		case *target.EventTargetCreated:
			if e.TargetInfo.Type == "page" {
				s.windows.add(e.TargetInfo.TargetID)
			}
		case *target.EventTargetDestroyed:
			s.windows.remove(e.TargetID)
		}
	})

	chromedp.ListenTarget(s.ctx, func(ev interface{}) {
		if e, ok := ev.(*page.EventJavascriptDialogOpening); ok {
			s.logs.Info.Printf("Dialog: %s", e.Message)
			go chromedp.Run(s.ctx, page.HandleJavaScriptDialog(true))
		}
	})

	s.logs.Info.Printf("Browser initialized. Download path: %s", absDownloadPath)
	return nil
}

// Connect authenticates the session. The captcha must be entered by a human;
// the method notifies the operator, then waits for the URL to come back to
// the landing page. A timed-out attempt is retried from the top: an
// authentication failure blocks the batch, it is never converted into
// per-record failures.
func (s *CFE) Connect() error {
	for {
		ok, err := s.connectOnce()
		if err != nil {
			return err
		}
		if ok {
			s.logs.Info.Println("Authenticated.")
			return nil
		}
		s.logs.Error.Println("Authentication timed out, retrying login sequence")
		if s.ctx.Err() != nil {
			return s.ctx.Err()
		}
	}
}

func (s *CFE) connectOnce() (bool, error) {
	s.logs.Info.Printf("Opening %s", PortalURL)
	if err := chromedp.Run(s.ctx,
		chromedp.Navigate(PortalURL),
		chromedp.WaitReady("body"),
	); err != nil {
		return false, fmt.Errorf("failed to open portal: %w", err)
	}

	// A previous session may still be valid.
	if s.drv.visible(s.ctx, selLoggedInMarker, landingProbeWait) {
		s.logs.Info.Println("Already authenticated.")
		return true, nil
	}

	if !s.drv.visible(s.ctx, selLoginUser, clickableWait) {
		return false, nil
	}
	if err := chromedp.Run(s.ctx,
		chromedp.SendKeys(selLoginUser, s.config.Credentials.Username),
		chromedp.SendKeys(selLoginPassword, s.config.Credentials.Password),
		// Swallow stray keystrokes so they cannot disturb the filled
		// form while the operator types the captcha.
		chromedp.Evaluate(`document.body.addEventListener('keydown', function(ev) {
			ev.stopPropagation();
		}, true); true`, nil),
	); err != nil {
		return false, fmt.Errorf("failed to fill credentials: %w", err)
	}

	if s.prompter != nil {
		s.prompter.NotifyCaptcha(captchaMessage)
	}
	s.logs.Info.Println("Waiting for the operator to solve the captcha...")

	// Focus the captcha field for the operator. Best effort.
	s.drv.clickIfVisible(s.ctx, selCaptchaInput, shortClickWait)

	return pollUntil(s.ctx, s.config.AuthWait, pollInterval, s.sleep, func() (bool, error) {
		var loc string
		if err := chromedp.Run(s.ctx, chromedp.Location(&loc)); err != nil {
			return false, nil
		}
		return loc == PortalURL, nil
	})
}

// Process runs one record: locate its account, then harvest every document
// row. The record counts as succeeded when the account's CFE notice area was
// reached; individual row failures are logged but do not flip the record.
func (s *CFE) Process(rec records.Record) (bool, error) {
	acctCtx, acctCancel, found, err := s.locateAccount(rec.Siren)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	defer acctCancel()

	for _, outcome := range s.harvest(acctCtx, rec) {
		switch outcome.Status {
		case DownloadCompleted:
			s.logs.Info.Printf("SIREN %s: filed %s", rec.Siren, outcome.File)
		case DownloadNotFound:
			s.logs.Info.Printf("SIREN %s: document not materialized: %s", rec.Siren, outcome.Reason)
		case DownloadFailed:
			s.logs.Error.Printf("SIREN %s: document failed: %s", rec.Siren, outcome.Reason)
		}
	}
	return true, nil
}

// locateAccount drives the site from the landing page to the account's CFE
// document list. Rendering races are retried a bounded number of times;
// "no account" and "no CFE feature" are definitive outcomes, not errors.
func (s *CFE) locateAccount(siren string) (context.Context, context.CancelFunc, bool, error) {
	for attempt := 1; attempt <= lookupAttempts; attempt++ {
		acctCtx, acctCancel, found, retry := s.lookupOnce(siren)
		if !retry {
			return acctCtx, acctCancel, found, nil
		}
		s.logs.Info.Printf("SIREN %s: lookup attempt %d/%d did not render, retrying", siren, attempt, lookupAttempts)
		if err := s.ResetWindows(); err != nil {
			s.logs.Error.Printf("SIREN %s: window cleanup between lookup attempts: %v", siren, err)
		}
		if s.ctx.Err() != nil {
			return nil, nil, false, s.ctx.Err()
		}
	}
	return nil, nil, false, fmt.Errorf("lookup for SIREN %s exhausted %d attempts", siren, lookupAttempts)
}

// lookupOnce returns retry=true on rendering races; otherwise found reports
// whether the CFE notice area was reached.
func (s *CFE) lookupOnce(siren string) (context.Context, context.CancelFunc, bool, bool) {
	if err := s.ReturnHome(); err != nil {
		s.logs.Error.Printf("SIREN %s: %v", siren, err)
		return nil, nil, false, true
	}

	if !s.drv.visible(s.ctx, selAvisCFELink, clickableWait, chromedp.BySearch) {
		return nil, nil, false, true
	}
	if err := s.drv.click(s.ctx, selAvisCFELink, chromedp.BySearch); err != nil {
		return nil, nil, false, true
	}

	if err := s.drv.fillSiren(siren); err != nil {
		s.logs.Error.Printf("SIREN %s: failed to fill lookup form: %v", siren, err)
		return nil, nil, false, true
	}

	// The submission must open a new window; when it does not, the
	// identifier has no reachable account. Expected outcome, no retry.
	before := s.drv.windowCount()
	if err := s.drv.click(s.ctx, selSirenSubmit); err != nil {
		s.logs.Error.Printf("SIREN %s: failed to submit lookup: %v", siren, err)
		return nil, nil, false, true
	}
	opened, _ := pollUntil(s.ctx, windowOpenWait, pollInterval, s.sleep, func() (bool, error) {
		return s.drv.windowCount() > before, nil
	})
	if !opened {
		s.logs.Info.Printf("SIREN %s not accessible", siren)
		return nil, nil, false, false
	}

	id, ok := s.drv.newestWindow()
	if !ok {
		return nil, nil, false, true
	}
	acctCtx, acctCancel := s.drv.attach(id)

	// The account window occasionally renders stale or incomplete.
	if !s.drv.visible(acctCtx, selAccountHome, accountHomeWait, chromedp.BySearch) {
		acctCancel()
		return nil, nil, false, true
	}

	// Sub-second probe: absence means the account genuinely has no CFE
	// notices, a normal outcome.
	if !s.drv.clickIfVisible(acctCtx, selCFEAccess, featureProbeWait, chromedp.BySearch) {
		s.logs.Info.Printf("SIREN %s has no CFE notices", siren)
		acctCancel()
		return nil, nil, false, false
	}

	return acctCtx, acctCancel, true, false
}

// rowInfo is the per-row data captured in one pass over the document table.
type rowInfo struct {
	Index  int    `json:"index"`
	Suffix string `json:"suffix"`
}

// harvest enumerates the account's document rows and retrieves each notice.
// Rows are independent: one row failing never aborts the rest.
func (s *CFE) harvest(acctCtx context.Context, rec records.Record) []DownloadOutcome {
	// An explicit "no documents" message renders faster than the table.
	if s.drv.visible(acctCtx, selNoDocuments, noDocumentsWait) {
		s.logs.Info.Printf("SIREN %s: no documents listed", rec.Siren)
		return nil
	}
	if !s.drv.visible(acctCtx, selDocumentRows, rowsWait, chromedp.BySearch) {
		s.logs.Info.Printf("SIREN %s: no documents listed", rec.Siren)
		return nil
	}

	rows, err := s.drv.documentRows(acctCtx)
	if err != nil {
		s.logs.Error.Printf("SIREN %s: failed to read document table: %v", rec.Siren, err)
		return nil
	}

	s.logs.Info.Printf("SIREN %s: %d document(s)", rec.Siren, len(rows))

	outcomes := make([]DownloadOutcome, 0, len(rows))
	baseline := s.drv.windowCount()
	for _, row := range rows {
		outcomes = append(outcomes, s.harvestRow(acctCtx, row, rec))

		// Per-row window hygiene: whatever the outcome, the spawned
		// window is gone and the result window is current again.
		if err := s.closeWindowsDownTo(baseline); err != nil {
			s.logs.Error.Printf("SIREN %s: row window cleanup: %v", rec.Siren, err)
		}
	}
	return outcomes
}

// harvestRow triggers one document's print pipeline, polls it to completion
// and files the downloaded notice.
func (s *CFE) harvestRow(acctCtx context.Context, row rowInfo, rec records.Record) DownloadOutcome {
	rowLink := fmt.Sprintf(`(//tbody/tr)[%d]//a`, row.Index+1)

	before := s.drv.windowCount()
	if err := s.drv.click(acctCtx, rowLink, chromedp.BySearch); err != nil {
		return DownloadOutcome{Status: DownloadFailed, Reason: fmt.Sprintf("failed to open document: %v", err)}
	}

	opened, _ := pollUntil(acctCtx, windowOpenWait, pollInterval, s.sleep, func() (bool, error) {
		return s.drv.windowCount() > before, nil
	})
	if !opened {
		return DownloadOutcome{Status: DownloadFailed, Reason: "print window did not open"}
	}
	id, ok := s.drv.newestWindow()
	if !ok {
		return DownloadOutcome{Status: DownloadFailed, Reason: "print window did not open"}
	}
	printCtx, printCancel := s.drv.attach(id)
	defer printCancel()

	if !s.drv.visible(printCtx, selStatusCell, accountHomeWait, chromedp.BySearch) {
		s.abortPrint(printCtx, acctCtx)
		return DownloadOutcome{Status: DownloadFailed, Reason: "print request status never appeared"}
	}

	status, err := s.awaitStatus(printCtx)
	if err != nil {
		s.abortPrint(printCtx, acctCtx)
		return DownloadOutcome{Status: DownloadFailed, Reason: err.Error()}
	}
	if statusError(status) {
		s.abortPrint(printCtx, acctCtx)
		return DownloadOutcome{Status: DownloadFailed, Reason: "remote print pipeline reported an error"}
	}

	if !s.drv.clickIfVisible(printCtx, selPrintPDF, shortClickWait, chromedp.BySearch) {
		s.abortPrint(printCtx, acctCtx)
		return DownloadOutcome{Status: DownloadFailed, Reason: "print-as-PDF control not found"}
	}
	// Acknowledge the finished request so the queue stays empty.
	s.drv.clickIfVisible(printCtx, selClearAll, shortClickWait, chromedp.BySearch)

	if !s.awaitDownload() {
		s.navigateBack(acctCtx)
		return DownloadOutcome{Status: DownloadNotFound, Reason: "download never appeared on disk"}
	}

	siret := rec.Siren + strings.TrimSpace(row.Suffix)
	dest, err := Materialize(s.downloadPath, s.config.ArchivePath,
		rec.DossierCode, rec.CompanyName, siret, time.Now().Year())
	s.navigateBack(acctCtx)
	if err != nil {
		if errors.Is(err, ErrNoDownload) {
			return DownloadOutcome{Status: DownloadNotFound, Reason: err.Error()}
		}
		return DownloadOutcome{Status: DownloadFailed, Reason: err.Error()}
	}
	return DownloadOutcome{Status: DownloadCompleted, File: dest}
}

// awaitStatus polls the request's status cell until it leaves the
// in-progress states. A read error is treated as "not yet rendered"; a
// genuinely missing cell ends the row.
func (s *CFE) awaitStatus(printCtx context.Context) (string, error) {
	var last string
	var missing bool
	done, _ := pollUntil(printCtx, s.config.StatusWait, pollInterval, s.sleep, func() (bool, error) {
		text, err := s.drv.statusText(printCtx)
		if err != nil {
			// Mid-refresh reads fail like stale elements: not ready.
			return false, nil
		}
		if text == nil {
			missing = true
			return true, nil
		}
		last = *text
		return !statusPending(last), nil
	})
	if missing {
		return "", fmt.Errorf("print request status disappeared")
	}
	if !done {
		return "", fmt.Errorf("print request still pending after %s", s.config.StatusWait)
	}
	return last, nil
}

// abortPrint cleans up a failed print request: clear the queue when the
// control is present, close the spawned window and step the result window
// back so the next row starts from a consistent position.
func (s *CFE) abortPrint(printCtx, acctCtx context.Context) {
	s.drv.clickIfVisible(printCtx, selClearAll, shortClickWait, chromedp.BySearch)
	s.navigateBack(acctCtx)
}

func (s *CFE) navigateBack(ctx context.Context) {
	if err := s.drv.navigateBack(ctx); err != nil {
		s.logs.Error.Printf("Failed to navigate back: %v", err)
	}
}

// awaitDownload waits for the triggered download to finish, either through
// the browser's completion event or by the artifact appearing on disk. The
// wait must only observe its own download: completion events and artifacts
// left over from a previous row are discarded up front.
func (s *CFE) awaitDownload() bool {
	for stale := true; stale; {
		select {
		case path := <-s.downloadDone:
			s.logs.Info.Printf("Dropping stale download event: %s", path)
		default:
			stale = false
		}
	}

	leftover := make(map[string]bool)
	if matches, err := filepath.Glob(filepath.Join(s.downloadPath, downloadGlob)); err == nil {
		for _, m := range matches {
			leftover[m] = true
		}
	}

	done, _ := pollUntil(s.ctx, downloadWait, pollInterval, s.sleep, func() (bool, error) {
		select {
		case path := <-s.downloadDone:
			s.logs.Info.Printf("Downloaded (event): %s", path)
			return true, nil
		default:
		}
		matches, _ := filepath.Glob(filepath.Join(s.downloadPath, downloadGlob))
		for _, m := range matches {
			if !leftover[m] {
				return true, nil
			}
		}
		return false, nil
	})
	return done
}

// ReturnHome navigates the main window back to the landing page.
func (s *CFE) ReturnHome() error {
	if err := s.drv.navigate(s.ctx, PortalURL); err != nil {
		return fmt.Errorf("failed to return to landing page: %w", err)
	}
	return nil
}

// Close releases the browser.
func (s *CFE) Close() error {
	if s.cancel != nil {
		s.cancel()
	}
	if s.allocCancel != nil {
		s.allocCancel()
	}
	return nil
}

// statusPending reports whether the status text still shows an in-progress
// state ("En cours", "moins d'une minute").
func statusPending(text string) bool {
	return strings.Contains(text, "En cours") || strings.Contains(text, "moins")
}

// statusError reports whether the resolved status text is an error state.
func statusError(text string) bool {
	return strings.Contains(text, "En erreur")
}
