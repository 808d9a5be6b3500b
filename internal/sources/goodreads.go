package sources

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/andrei/quote-harvester/internal/fetch"
	"github.com/andrei/quote-harvester/internal/types"
)

// DefaultGoodreadsBaseURL is the public Goodreads quote listing.
const DefaultGoodreadsBaseURL = "https://www.goodreads.com"

// Goodreads scrapes the Goodreads popular-quotes listing.
type Goodreads struct {
	BaseURL        string
	opts           *fetch.Options
	useBrowser     bool
	browserTimeout time.Duration
}

// NewGoodreads creates the Goodreads adapter.
func NewGoodreads(cfg Config) *Goodreads {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = fetch.DefaultTimeout
	}
	return &Goodreads{
		BaseURL:        DefaultGoodreadsBaseURL,
		opts:           cfg.fetchOptions(),
		useBrowser:     cfg.UseBrowser,
		browserTimeout: timeout,
	}
}

// Name implements Adapter.
func (g *Goodreads) Name() string { return "goodreads" }

// Language implements Adapter.
func (g *Goodreads) Language() types.Language { return types.LanguageEnglish }

// Trust implements Adapter.
func (g *Goodreads) Trust() Trust { return TrustScraped }

// Fetch implements Adapter. Falls back to headless-browser rendering when
// the static page comes back as a client-side shell.
func (g *Goodreads) Fetch(ctx context.Context, limit int) ([]types.Candidate, error) {
	listURL := g.BaseURL + "/quotes"
	result, err := fetch.URL(ctx, listURL, g.opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch goodreads listing: %w", err)
	}

	body := result.Body
	if g.useBrowser && fetch.ShouldUseBrowser(body) {
		rendered, berr := fetch.WithBrowser(ctx, listURL, g.browserTimeout)
		if berr == nil {
			body = rendered
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse goodreads listing: %w", err)
	}

	return parseQuoteBlocks(doc, types.LanguageEnglish, listURL, limit), nil
}
