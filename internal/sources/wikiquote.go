package sources

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/gocolly/colly"

	"github.com/andrei/quote-harvester/internal/fetch"
	"github.com/andrei/quote-harvester/internal/types"
)

// wikiquoteMinLength drops list fragments that cannot be quotations; the
// validator applies the real bounds later.
const wikiquoteMinLength = 20

// Wikiquote crawls author pages on a Wikiquote instance and extracts the
// top-level bullet points, which is where that wiki keeps the quotations.
type Wikiquote struct {
	BaseURL   string
	Authors   []string
	lang      types.Language
	userAgent string
}

// NewWikiquote creates the Wikiquote adapter for a language.
func NewWikiquote(lang types.Language, cfg Config) *Wikiquote {
	w := &Wikiquote{
		lang:      lang,
		userAgent: cfg.UserAgent,
	}
	if w.userAgent == "" {
		w.userAgent = fetch.DefaultUserAgent
	}
	switch lang {
	case types.LanguageRussian:
		w.BaseURL = "https://ru.wikiquote.org"
		w.Authors = wikiquoteAuthorsRU
	default:
		w.BaseURL = "https://en.wikiquote.org"
		w.Authors = wikiquoteAuthorsEN
	}
	return w
}

// Name implements Adapter.
func (w *Wikiquote) Name() string { return "wikiquote-" + string(w.lang) }

// Language implements Adapter.
func (w *Wikiquote) Language() types.Language { return w.lang }

// Trust implements Adapter.
func (w *Wikiquote) Trust() Trust { return TrustScraped }

// Fetch implements Adapter. Author pages are visited in order until the
// limit is reached; a page that fails to load is skipped.
func (w *Wikiquote) Fetch(ctx context.Context, limit int) ([]types.Candidate, error) {
	parsed, err := url.Parse(w.BaseURL)
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("invalid wikiquote base URL %q: %w", w.BaseURL, err)
	}

	var out []types.Candidate
	var lastErr error
	pageURL := ""

	collector := colly.NewCollector(
		colly.UserAgent(w.userAgent),
		colly.AllowedDomains(parsed.Host),
	)

	collector.OnHTML("div.mw-parser-output > ul > li", func(e *colly.HTMLElement) {
		if len(out) >= limit {
			return
		}
		// Nested sub-lists carry citation metadata, not quotation text.
		sel := e.DOM.Clone()
		sel.Find("ul, ol, sup, .reference").Remove()

		text := fetch.CleanText(sel.Text())
		if len([]rune(text)) < wikiquoteMinLength || isNavigationText(text) {
			return
		}
		out = append(out, types.Candidate{
			Text:      text,
			Language:  w.lang,
			SourceURL: pageURL,
		})
	})

	collector.OnError(func(_ *colly.Response, err error) {
		lastErr = err
	})

	for _, author := range w.Authors {
		if len(out) >= limit {
			break
		}
		if err := ctx.Err(); err != nil {
			return out, err
		}

		pageURL = w.BaseURL + "/wiki/" + url.PathEscape(strings.ReplaceAll(author, " ", "_"))
		if err := collector.Visit(pageURL); err != nil {
			lastErr = err
		}
	}

	if len(out) == 0 && lastErr != nil {
		return nil, fmt.Errorf("failed to crawl %s: %w", w.Name(), lastErr)
	}
	return out, nil
}

var wikiquoteAuthorsEN = []string{
	"Albert Einstein", "William Shakespeare", "Mark Twain",
	"Oscar Wilde", "Winston Churchill", "Mahatma Gandhi",
	"Confucius", "Plato", "Aristotle", "Voltaire",
	"Friedrich Nietzsche", "Ralph Waldo Emerson",
	"Benjamin Franklin", "Abraham Lincoln", "Nelson Mandela",
	"Maya Angelou", "Helen Keller", "Leonardo da Vinci",
}

var wikiquoteAuthorsRU = []string{
	"Лев Толстой", "Фёдор Достоевский", "Антон Чехов",
	"Александр Пушкин", "Николай Гоголь", "Иван Тургенев",
	"Михаил Булгаков", "Максим Горький", "Сократ",
	"Конфуций", "Вольтер", "Оскар Уайльд",
}
