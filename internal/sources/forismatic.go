package sources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/andrei/quote-harvester/internal/fetch"
	"github.com/andrei/quote-harvester/internal/types"
)

// DefaultForismaticBaseURL is the public Forismatic API.
const DefaultForismaticBaseURL = "http://api.forismatic.com/api/1.0/"

// forismaticMaxCalls caps the number of single-quote requests per fetch;
// the API serves one quote per call.
const forismaticMaxCalls = 200

// Forismatic pulls quotations from the Forismatic getQuote API, which
// serves both English and Russian.
type Forismatic struct {
	BaseURL string
	lang    types.Language
	opts    *fetch.Options
}

// NewForismatic creates the Forismatic adapter for a language.
func NewForismatic(lang types.Language, cfg Config) *Forismatic {
	return &Forismatic{
		BaseURL: DefaultForismaticBaseURL,
		lang:    lang,
		opts:    cfg.fetchOptions(),
	}
}

// Name implements Adapter.
func (f *Forismatic) Name() string { return "forismatic-" + string(f.lang) }

// Language implements Adapter.
func (f *Forismatic) Language() types.Language { return f.lang }

// Trust implements Adapter.
func (f *Forismatic) Trust() Trust { return TrustAPI }

type forismaticQuote struct {
	QuoteText   string `json:"quoteText"`
	QuoteAuthor string `json:"quoteAuthor"`
}

// Fetch implements Adapter. The key parameter varies per call to keep the
// API from serving the same quote repeatedly.
func (f *Forismatic) Fetch(ctx context.Context, limit int) ([]types.Candidate, error) {
	var out []types.Candidate
	for key := 1; key <= forismaticMaxCalls && len(out) < limit; key++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		url := fmt.Sprintf("%s?method=getQuote&format=json&lang=%s&key=%d", f.BaseURL, f.lang, key)
		result, err := fetch.URL(ctx, url, f.opts)
		if err != nil {
			if len(out) > 0 {
				return out, nil
			}
			return nil, fmt.Errorf("failed to fetch forismatic quote: %w", err)
		}

		var quote forismaticQuote
		if err := json.Unmarshal([]byte(result.Body), &quote); err != nil {
			// The API occasionally emits broken JSON escapes; skip the quote.
			continue
		}

		text := fetch.CleanText(quote.QuoteText)
		if text == "" {
			continue
		}
		out = append(out, types.Candidate{
			Text:      text,
			Language:  f.lang,
			Author:    CleanAuthor(quote.QuoteAuthor),
			SourceURL: f.BaseURL,
		})
	}
	return out, nil
}
