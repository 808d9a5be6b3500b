package sources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/andrei/quote-harvester/internal/fetch"
	"github.com/andrei/quote-harvester/internal/types"
)

// DefaultZenQuotesBaseURL is the public ZenQuotes API.
const DefaultZenQuotesBaseURL = "https://zenquotes.io"

// ZenQuotes pulls English quotations from the ZenQuotes batch endpoint.
type ZenQuotes struct {
	BaseURL string
	opts    *fetch.Options
}

// NewZenQuotes creates the ZenQuotes adapter.
func NewZenQuotes(cfg Config) *ZenQuotes {
	return &ZenQuotes{
		BaseURL: DefaultZenQuotesBaseURL,
		opts:    cfg.fetchOptions(),
	}
}

// Name implements Adapter.
func (z *ZenQuotes) Name() string { return "zenquotes" }

// Language implements Adapter.
func (z *ZenQuotes) Language() types.Language { return types.LanguageEnglish }

// Trust implements Adapter.
func (z *ZenQuotes) Trust() Trust { return TrustAPI }

type zenQuote struct {
	Quote  string `json:"q"`
	Author string `json:"a"`
}

// Fetch implements Adapter. The endpoint returns one fixed-size batch; the
// limit only truncates it.
func (z *ZenQuotes) Fetch(ctx context.Context, limit int) ([]types.Candidate, error) {
	result, err := fetch.URL(ctx, z.BaseURL+"/api/quotes", z.opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch zenquotes batch: %w", err)
	}

	var batch []zenQuote
	if err := json.Unmarshal([]byte(result.Body), &batch); err != nil {
		return nil, fmt.Errorf("failed to decode zenquotes batch: %w", err)
	}

	out := make([]types.Candidate, 0, min(limit, len(batch)))
	for _, item := range batch {
		if len(out) >= limit {
			break
		}
		text := fetch.CleanText(item.Quote)
		if text == "" {
			continue
		}
		out = append(out, types.Candidate{
			Text:      text,
			Language:  types.LanguageEnglish,
			Author:    CleanAuthor(item.Author),
			SourceURL: z.BaseURL,
		})
	}
	return out, nil
}
