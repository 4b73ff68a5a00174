package mailwatch

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"

	"internlink-gateway/internal/api"
	"internlink-gateway/internal/config"
	"internlink-gateway/internal/events"
)

// Watcher polls the user's inbox for the marketplace's signed verification
// mail and completes verification automatically, saving the copy-the-link
// dance after signup. Entirely optional; disabled unless configured.
type Watcher struct {
	API *api.Client
	Hub *events.Hub
	Cfg func() config.Config
}

// Run polls until ctx ends. Errors are logged and the next tick retries;
// a broken inbox never takes the gateway down.
func (w *Watcher) Run(ctx context.Context) {
	cfg := w.Cfg()
	if !cfg.Mailwatch.Enabled {
		return
	}
	interval := time.Duration(cfg.Mailwatch.PollSeconds) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		if err := w.RunOnce(ctx); err != nil {
			log.Printf("level=warn msg=\"mailwatch\" err=%v", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}

// RunOnce dials IMAP, scans unseen mail for a verification link, and
// verifies the first one found. Matched messages are marked \Seen so the
// same link is not replayed next tick.
func (w *Watcher) RunOnce(ctx context.Context) error {
	cfg := w.Cfg()
	if !cfg.Mailwatch.Enabled {
		return nil
	}

	password, err := IMAPPassword(cfg)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Mailwatch.IMAPHost, cfg.Mailwatch.IMAPPort)
	c, err := imapclient.DialTLS(addr, &imapclient.Options{
		TLSConfig: &tls.Config{MinVersion: tls.VersionTLS12, ServerName: cfg.Mailwatch.IMAPHost},
	})
	if err != nil {
		return fmt.Errorf("mailwatch dial: %w", err)
	}
	defer c.Close()

	stop := closeOnCancel(ctx, c)
	defer stop()

	if err := c.Login(cfg.Mailwatch.Username, password).Wait(); err != nil {
		return fmt.Errorf("mailwatch login: %w", err)
	}
	if _, err := c.Select("INBOX", &imap.SelectOptions{ReadOnly: false}).Wait(); err != nil {
		return fmt.Errorf("mailwatch select inbox: %w", err)
	}

	// Only unseen mail from the last week is worth scanning; signed links
	// expire long before that anyway.
	criteria := &imap.SearchCriteria{
		NotFlag: []imap.Flag{imap.FlagSeen},
		Since:   time.Now().AddDate(0, 0, -7),
	}
	searchData, err := c.UIDSearch(criteria, nil).Wait()
	if err != nil {
		return fmt.Errorf("mailwatch search: %w", err)
	}
	uids := searchData.AllUIDs()
	if len(uids) == 0 {
		return nil
	}
	if len(uids) > 50 {
		uids = uids[len(uids)-50:]
	}

	bodyAll := &imap.FetchItemBodySection{
		Specifier: imap.PartSpecifierNone,
		Peek:      true,
	}
	fetchCmd := c.Fetch(imap.UIDSetNum(uids...), &imap.FetchOptions{
		UID:         true,
		Envelope:    true,
		BodySection: []*imap.FetchItemBodySection{bodyAll},
	})
	defer func() { _ = fetchCmd.Close() }()

	var matched []imap.UID
	for {
		msgData := fetchCmd.Next()
		if msgData == nil {
			break
		}
		buf, err := msgData.Collect()
		if err != nil {
			return fmt.Errorf("mailwatch fetch collect: %w", err)
		}

		if f := cfg.Mailwatch.SenderFilter; f != "" && buf.Envelope != nil {
			if !fromMatches(buf.Envelope.From, f) {
				continue
			}
		}

		body := buf.FindBodySection(bodyAll)
		if body == nil {
			continue
		}
		link, ok := ExtractVerifyLink(string(body))
		if !ok {
			continue
		}

		msg, err := w.API.VerifyEmail(ctx, link.ID, link.Hash, link.Expires, link.Signature)
		if err != nil {
			// Expired or already-used link; mark it seen and move on.
			var se *api.StatusError
			if !errors.As(err, &se) {
				return err
			}
			log.Printf("level=warn msg=\"mailwatch verify rejected\" status=%d err=%q", se.Status, se.Message)
		} else {
			log.Printf("level=info msg=\"mailwatch verified\" id=%s", link.ID)
			w.Hub.Publish(events.MakeEvent("", events.TypeEmailVerified, 1, map[string]any{
				"id":      link.ID,
				"message": msg,
			}))
		}
		matched = append(matched, buf.UID)
	}
	if err := fetchCmd.Close(); err != nil {
		return fmt.Errorf("mailwatch fetch close: %w", err)
	}

	return markSeen(c, matched)
}

// closeOnCancel force-closes the connection if ctx ends mid-run. The returned
// stop func releases the watchdog once the run is over, so a finished poll
// does not pin a goroutine until process shutdown; stop returns only after
// the watchdog has exited.
func closeOnCancel(ctx context.Context, c io.Closer) (stop func()) {
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		select {
		case <-ctx.Done():
			_ = c.Close()
		case <-done:
		}
	}()
	return func() {
		close(done)
		<-exited
	}
}

func fromMatches(addrs []imap.Address, filter string) bool {
	filter = strings.ToLower(filter)
	for _, a := range addrs {
		addr := strings.ToLower(a.Mailbox + "@" + a.Host)
		if strings.Contains(addr, filter) {
			return true
		}
	}
	return false
}

func markSeen(c *imapclient.Client, uids []imap.UID) error {
	if len(uids) == 0 {
		return nil
	}
	cmd := c.Store(imap.UIDSetNum(uids...), &imap.StoreFlags{
		Op:     imap.StoreFlagsAdd,
		Silent: true,
		Flags:  []imap.Flag{imap.FlagSeen},
	}, nil)
	if err := cmd.Close(); err != nil {
		return fmt.Errorf("mailwatch mark seen: %w", err)
	}
	return nil
}
