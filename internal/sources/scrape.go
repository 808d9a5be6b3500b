package sources

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/andrei/quote-harvester/internal/fetch"
	"github.com/andrei/quote-harvester/internal/types"
)

// parseQuoteBlocks extracts candidates from a scraped listing document.
// The quote selectors are tried in order and the first family present on
// the page wins, so one parser covers the different markup conventions of
// the quote aggregation sites.
func parseQuoteBlocks(doc *goquery.Document, lang types.Language, sourceURL string, limit int) []types.Candidate {
	var blocks *goquery.Selection
	for _, selector := range fetch.QuoteSelectors() {
		if found := doc.Find(selector); found.Length() > 0 {
			blocks = found
			break
		}
	}
	if blocks == nil {
		return nil
	}

	var out []types.Candidate
	blocks.EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		author := ""
		for _, selector := range fetch.AuthorSelectors() {
			if found := sel.Find(selector).First(); found.Length() > 0 {
				author = CleanAuthor(found.Text())
				break
			}
		}

		textSel := sel.Clone()
		textSel.Find("span, script, a, sup, cite, .reference").Remove()
		text := fetch.CleanText(textSel.Text())
		// The attribution dash survives the node removal on some layouts.
		text = strings.TrimRight(strings.TrimSpace(text), "―—– ")
		text = fetch.CleanText(text)
		if text == "" {
			return true
		}

		out = append(out, types.Candidate{
			Text:      text,
			Language:  lang,
			Author:    author,
			SourceURL: sourceURL,
		})
		return len(out) < limit
	})
	return out
}
