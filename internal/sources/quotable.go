package sources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/andrei/quote-harvester/internal/fetch"
	"github.com/andrei/quote-harvester/internal/types"
)

// DefaultQuotableBaseURL is the public Quotable API.
const DefaultQuotableBaseURL = "https://api.quotable.io"

const quotablePageSize = 100

// Quotable pulls English quotations from the paginated Quotable API.
type Quotable struct {
	BaseURL string
	opts    *fetch.Options
}

// NewQuotable creates the Quotable adapter.
func NewQuotable(cfg Config) *Quotable {
	return &Quotable{
		BaseURL: DefaultQuotableBaseURL,
		opts:    cfg.fetchOptions(),
	}
}

// Name implements Adapter.
func (q *Quotable) Name() string { return "quotable" }

// Language implements Adapter.
func (q *Quotable) Language() types.Language { return types.LanguageEnglish }

// Trust implements Adapter.
func (q *Quotable) Trust() Trust { return TrustAPI }

type quotablePage struct {
	Results []struct {
		Content string `json:"content"`
		Author  string `json:"author"`
	} `json:"results"`
	TotalPages int `json:"totalPages"`
}

// Fetch implements Adapter. Pages are walked until the limit is reached or
// the API reports no further pages.
func (q *Quotable) Fetch(ctx context.Context, limit int) ([]types.Candidate, error) {
	var out []types.Candidate
	for page := 1; len(out) < limit; page++ {
		pageSize := min(quotablePageSize, limit-len(out))
		url := fmt.Sprintf("%s/quotes?page=%d&limit=%d", q.BaseURL, page, pageSize)

		result, err := fetch.URL(ctx, url, q.opts)
		if err != nil {
			if len(out) > 0 {
				// Keep what earlier pages produced.
				return out, nil
			}
			return nil, fmt.Errorf("failed to fetch quotable page %d: %w", page, err)
		}

		var parsed quotablePage
		if err := json.Unmarshal([]byte(result.Body), &parsed); err != nil {
			return out, fmt.Errorf("failed to decode quotable page %d: %w", page, err)
		}
		if len(parsed.Results) == 0 {
			break
		}

		for _, r := range parsed.Results {
			text := fetch.CleanText(r.Content)
			if text == "" {
				continue
			}
			out = append(out, types.Candidate{
				Text:      text,
				Language:  types.LanguageEnglish,
				Author:    CleanAuthor(r.Author),
				SourceURL: q.BaseURL,
			})
			if len(out) >= limit {
				break
			}
		}

		if parsed.TotalPages > 0 && page >= parsed.TotalPages {
			break
		}
	}
	return out, nil
}
