// Package sources contains the origin adapters that produce quotation
// candidates. Each adapter wraps one origin; new origins are added by
// implementing the Adapter interface and registering the adapter in the
// ordered list, never by touching the loader.
package sources

import (
	"context"
	"time"

	"github.com/andrei/quote-harvester/internal/fetch"
	"github.com/andrei/quote-harvester/internal/types"
)

// Trust classifies how much an origin's content can be taken at face value.
type Trust int

const (
	// TrustCurated marks hand-maintained lists shipped with the binary.
	TrustCurated Trust = iota
	// TrustAPI marks structured public quote APIs.
	TrustAPI
	// TrustScraped marks content scraped out of HTML pages.
	TrustScraped
)

// String returns the trust class name.
func (t Trust) String() string {
	switch t {
	case TrustCurated:
		return "curated"
	case TrustAPI:
		return "api"
	case TrustScraped:
		return "scraped"
	default:
		return "unknown"
	}
}

// Adapter produces candidates from a single origin. Fetch is one attempt
// against the origin: a transport failure returns an error (with whatever
// partial results were parsed) and the caller treats it as soft. Each call
// starts a fresh fetch; adapters are not restartable mid-stream.
type Adapter interface {
	Name() string
	Language() types.Language
	Trust() Trust
	Fetch(ctx context.Context, limit int) ([]types.Candidate, error)
}

// Config carries the fetch settings shared by all adapters.
type Config struct {
	UserAgent string
	Timeout   time.Duration
	// UseBrowser enables the headless-browser fallback on scraped origins
	// that render client-side.
	UseBrowser bool
}

func (c Config) fetchOptions() *fetch.Options {
	opts := fetch.DefaultOptions()
	if c.UserAgent != "" {
		opts.UserAgent = c.UserAgent
	}
	if c.Timeout > 0 {
		opts.Timeout = c.Timeout
	}
	return opts
}

// Defaults returns every built-in adapter in pipeline priority order:
// curated lists first, then the public APIs, then the scraped sites.
func Defaults(cfg Config) []Adapter {
	return []Adapter{
		NewCurated(types.LanguageEnglish),
		NewCurated(types.LanguageRussian),
		NewQuotable(cfg),
		NewZenQuotes(cfg),
		NewForismatic(types.LanguageEnglish, cfg),
		NewForismatic(types.LanguageRussian, cfg),
		NewWikiquote(types.LanguageEnglish, cfg),
		NewWikiquote(types.LanguageRussian, cfg),
		NewCitaty(cfg),
		NewGoodreads(cfg),
	}
}
