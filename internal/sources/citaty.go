package sources

import (
	"context"
	"fmt"

	"github.com/andrei/quote-harvester/internal/fetch"
	"github.com/andrei/quote-harvester/internal/types"
)

// DefaultCitatyBaseURL is the public citaty.net Russian quote listing.
const DefaultCitatyBaseURL = "https://ru.citaty.net"

// citatyMaxPages caps how deep the pagination walk goes in one run.
const citatyMaxPages = 40

// Citaty scrapes the paginated quote listing of ru.citaty.net.
type Citaty struct {
	BaseURL string
	opts    *fetch.Options
}

// NewCitaty creates the citaty.net adapter.
func NewCitaty(cfg Config) *Citaty {
	return &Citaty{
		BaseURL: DefaultCitatyBaseURL,
		opts:    cfg.fetchOptions(),
	}
}

// Name implements Adapter.
func (c *Citaty) Name() string { return "citaty" }

// Language implements Adapter.
func (c *Citaty) Language() types.Language { return types.LanguageRussian }

// Trust implements Adapter.
func (c *Citaty) Trust() Trust { return TrustScraped }

// Fetch implements Adapter. Pages are walked until the limit is reached,
// a page yields nothing, or the pagination cap is hit.
func (c *Citaty) Fetch(ctx context.Context, limit int) ([]types.Candidate, error) {
	var out []types.Candidate
	for page := 1; page <= citatyMaxPages && len(out) < limit; page++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		pageURL := fmt.Sprintf("%s/tsitaty/?page=%d", c.BaseURL, page)
		result, err := fetch.URL(ctx, pageURL, c.opts)
		if err != nil {
			if len(out) > 0 {
				// Keep what earlier pages produced.
				return out, nil
			}
			return nil, fmt.Errorf("failed to fetch citaty page %d: %w", page, err)
		}

		doc, err := result.Document()
		if err != nil {
			return out, fmt.Errorf("failed to parse citaty page %d: %w", page, err)
		}

		batch := parseQuoteBlocks(doc, types.LanguageRussian, pageURL, limit-len(out))
		if len(batch) == 0 {
			break
		}
		out = append(out, batch...)
	}
	return out, nil
}
