package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrei/quote-harvester/internal/types"
)

const wikiquotePage = `<html><body>
<div class="mw-parser-output">
  <ul>
    <li>The only true wisdom is in knowing you know nothing.<sup class="reference">[1]</sup>
      <ul><li>Attributed in some dialogues</li></ul>
    </li>
    <li>Short one</li>
    <li>Edit this section of quotations</li>
    <li>An unexamined life is not worth living for a human being.</li>
  </ul>
</div>
<ul><li>Navigation entry outside the parser output area entirely</li></ul>
</body></html>`

func TestWikiquote_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/wiki/")
		fmt.Fprint(w, wikiquotePage)
	}))
	defer server.Close()

	adapter := NewWikiquote(types.LanguageEnglish, Config{})
	adapter.BaseURL = server.URL
	adapter.Authors = []string{"Socrates"}

	candidates, err := adapter.Fetch(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	// Nested citation lists and reference markers are stripped.
	assert.Equal(t, "The only true wisdom is in knowing you know nothing.", candidates[0].Text)
	assert.Equal(t, "An unexamined life is not worth living for a human being.", candidates[1].Text)
	assert.Equal(t, types.LanguageEnglish, candidates[0].Language)

	wantURL := server.URL + "/wiki/Socrates"
	assert.Equal(t, wantURL, candidates[0].SourceURL)
}

func TestWikiquote_Fetch_RespectsLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, wikiquotePage)
	}))
	defer server.Close()

	adapter := NewWikiquote(types.LanguageEnglish, Config{})
	adapter.BaseURL = server.URL
	adapter.Authors = []string{"Socrates", "Plato"}

	candidates, err := adapter.Fetch(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, candidates, 1)
}

func TestWikiquote_Fetch_AllPagesFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	adapter := NewWikiquote(types.LanguageEnglish, Config{})
	adapter.BaseURL = server.URL
	adapter.Authors = []string{"Socrates"}

	_, err := adapter.Fetch(context.Background(), 10)
	assert.Error(t, err)
}

func TestWikiquote_AuthorPageURL(t *testing.T) {
	adapter := NewWikiquote(types.LanguageRussian, Config{})
	assert.Equal(t, "https://ru.wikiquote.org", adapter.BaseURL)
	assert.Equal(t, "wikiquote-ru", adapter.Name())
	assert.Equal(t, TrustScraped, adapter.Trust())
	assert.NotEmpty(t, adapter.Authors)

	// Spaces become underscores and the path is escaped.
	escaped := url.PathEscape("Лев_Толстой")
	assert.Contains(t, adapter.BaseURL+"/wiki/"+escaped, "/wiki/")
}
