package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrei/quote-harvester/internal/types"
)

const citatyPage = `<html><body>
<div class="quote-text">
  Краткость — сестра таланта.
  <a class="quote-author" href="/avtory/chekhov">Антон Чехов</a>
</div>
<div class="quote-text">
  Повторение — мать учения.
</div>
</body></html>`

func TestCitaty_Fetch_Paginates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tsitaty/", r.URL.Path)
		switch r.URL.Query().Get("page") {
		case "1":
			fmt.Fprint(w, citatyPage)
		default:
			fmt.Fprint(w, `<html><body></body></html>`)
		}
	}))
	defer server.Close()

	adapter := NewCitaty(Config{})
	adapter.BaseURL = server.URL

	candidates, err := adapter.Fetch(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	assert.Equal(t, "Краткость — сестра таланта.", candidates[0].Text)
	assert.Equal(t, "Антон Чехов", candidates[0].Author)
	assert.Equal(t, types.LanguageRussian, candidates[0].Language)
	assert.Contains(t, candidates[0].SourceURL, "/tsitaty/?page=1")
	assert.Equal(t, "Повторение — мать учения.", candidates[1].Text)
	assert.Empty(t, candidates[1].Author)
}

func TestCitaty_Fetch_RespectsLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, citatyPage)
	}))
	defer server.Close()

	adapter := NewCitaty(Config{})
	adapter.BaseURL = server.URL

	candidates, err := adapter.Fetch(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, candidates, 1)
}

func TestCitaty_Fetch_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	adapter := NewCitaty(Config{})
	adapter.BaseURL = server.URL

	_, err := adapter.Fetch(context.Background(), 10)
	assert.Error(t, err)
}

func TestParseQuoteBlocks_BlockquoteFallback(t *testing.T) {
	// No class-based quote family on the page; the blockquote selector
	// further down the list picks the content up, with cite attribution.
	page := `<html><body>
	<blockquote>
	  Тише едешь — дальше будешь.
	  <cite>Русская пословица</cite>
	</blockquote>
	</body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	candidates := parseQuoteBlocks(doc, types.LanguageRussian, "https://example.org/quotes", 10)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Тише едешь — дальше будешь.", candidates[0].Text)
	assert.Equal(t, "Русская пословица", candidates[0].Author)
}
