package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/outreachkit/contactscout/internal/cache"
	"github.com/outreachkit/contactscout/internal/contacts"
	"github.com/outreachkit/contactscout/internal/fetch"
	"github.com/outreachkit/contactscout/internal/htmltext"
)

// App wires the extraction pipeline: normalize -> fetch -> flatten ->
// match -> resolve -> dedupe. It holds no per-request state and is safe
// for concurrent use.
type App struct {
	cfg     Config
	fetcher *fetch.Client
}

// New builds the pipeline from configuration.
func New(cfg Config) *App {
	c := &fetch.Client{
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.FetchTimeout,
	}
	if cfg.CacheDir != "" {
		c.Cache = &cache.PageCache{Dir: cfg.CacheDir}
	}
	return &App{cfg: cfg, fetcher: c}
}

// FetchError reports a failure to retrieve the target page. It is the only
// error the pipeline returns; matching over text is total and an absent
// match yields empty fields, never an error.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("Failed to fetch URL: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ExtractContacts fetches the page at rawURL, flattens it to text and
// applies the contact heuristics. The returned list may be empty; the
// error, when non-nil, is always a *FetchError.
func (a *App) ExtractContacts(ctx context.Context, rawURL string) ([]contacts.Contact, error) {
	target := fetch.NormalizeURL(rawURL)
	body, contentType, err := a.fetcher.Get(ctx, target)
	if err != nil {
		return nil, &FetchError{URL: target, Err: err}
	}
	log.Debug().Str("url", target).Str("contentType", contentType).Int("bytes", len(body)).Msg("fetched page")

	text := htmltext.Flatten(body)

	// Page-wide pools are surfaced in logs only; per-contact email and
	// phone resolution consults the local after-window, not these sets.
	emails := contacts.Emails(text)
	phones := contacts.Phones(text)
	log.Debug().Str("url", target).Int("emails", len(emails)).Int("phones", len(phones)).Msg("page-wide matches")

	list := contacts.FromText(text)
	log.Info().Str("url", target).Int("contacts", len(list)).Msg("extraction complete")
	return list, nil
}
