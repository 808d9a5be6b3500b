package sources

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reAuthorPrefix = regexp.MustCompile(`^(?i)[—–\-\s]*(by\s+)?`)
	reNavText      = regexp.MustCompile(`(?i)^(edit|править|ссылки|links|see also|categories|категории)`)
)

// CleanAuthor normalizes an author attribution scraped from a page: strips
// leading dashes and "by", trailing punctuation, and collapses whitespace.
// Returns the empty string when the remainder is not a plausible name.
func CleanAuthor(author string) string {
	author = reAuthorPrefix.ReplaceAllString(author, "")
	author = strings.Join(strings.Fields(author), " ")
	author = strings.Trim(author, ",;:")
	if !ValidAuthor(author) {
		return ""
	}
	return author
}

// ValidAuthor reports whether a string is a plausible author name: between
// two and a hundred runes of letters, spaces, dots, hyphens and apostrophes.
func ValidAuthor(author string) bool {
	runes := []rune(author)
	if len(runes) < 2 || len(runes) > 100 {
		return false
	}
	for _, r := range runes {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			continue
		}
		switch r {
		case '.', '-', '\'':
			continue
		}
		return false
	}
	return true
}

// isNavigationText reports whether scraped list text is site chrome
// (edit links, category footers) rather than a quotation.
func isNavigationText(text string) bool {
	return reNavText.MatchString(strings.TrimSpace(text))
}
