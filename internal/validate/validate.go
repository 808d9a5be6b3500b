// Package validate implements the acceptance heuristics for quotation
// candidates. A candidate must pass every predicate before it may be
// translated and persisted; the first failing predicate determines the
// rejection reason.
package validate

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/andrei/quote-harvester/internal/types"
)

// Reason identifies which predicate rejected a candidate.
type Reason string

const (
	// ReasonNone means the candidate passed every predicate.
	ReasonNone Reason = ""
	// ReasonMalformed means the candidate's field shape is invalid: a
	// required field is missing or the source URL is not a URL.
	ReasonMalformed Reason = "malformed"
	// ReasonLanguage means the candidate's language is outside the pool.
	ReasonLanguage Reason = "unsupported_language"
	// ReasonLength means the normalized text is shorter than MinLength or
	// longer than MaxLength runes.
	ReasonLength Reason = "length"
	// ReasonDigits means the text contains numeral characters.
	ReasonDigits Reason = "digits"
	// ReasonCharacters means the text contains characters outside the
	// letter/whitespace/punctuation whitelist.
	ReasonCharacters Reason = "characters"
	// ReasonRepetition means a single character is repeated beyond the
	// spam threshold.
	ReasonRepetition Reason = "repetition"
	// ReasonSource means the candidate's source domain is denylisted.
	ReasonSource Reason = "untrusted_source"
)

// Reasons lists every rejection reason, in evaluation order. Used by the
// loader to build its reason-breakdown statistics.
func Reasons() []Reason {
	return []Reason{
		ReasonMalformed,
		ReasonLanguage,
		ReasonLength,
		ReasonDigits,
		ReasonCharacters,
		ReasonRepetition,
		ReasonSource,
	}
}

const (
	// MinLength is the minimum accepted text length in runes.
	MinLength = 10
	// MaxLength is the maximum accepted text length in runes.
	MaxLength = 500
	// maxRunLength is the longest accepted run of one repeated character.
	maxRunLength = 4
)

// defaultDenylist lists substrings of known-unreliable source domains.
var defaultDenylist = []string{
	"spam", "adult", "casino", "gambling", "porn",
	"xxx", "bitcoin", "crypto", "scam",
}

// allowedPunctuation is the set of non-letter characters permitted in
// quotation text besides whitespace. Covers both Latin and Cyrillic
// typographic conventions.
const allowedPunctuation = `.,!?;:-—–…'"«»„“”()`

// Checker evaluates the predicate pipeline against candidates.
type Checker struct {
	denylist []string
}

// NewChecker creates a Checker with the default source denylist.
func NewChecker() *Checker {
	return &Checker{denylist: defaultDenylist}
}

// NewCheckerWithDenylist creates a Checker with a custom source denylist.
func NewCheckerWithDenylist(denylist []string) *Checker {
	return &Checker{denylist: denylist}
}

// Check evaluates all predicates against the candidate, short-circuiting on
// the first failure. It returns ReasonNone and true when the candidate is
// acceptable.
func (ch *Checker) Check(c types.Candidate) (Reason, bool) {
	if err := c.Validate(); err != nil {
		return ReasonMalformed, false
	}
	if !c.Language.Supported() {
		return ReasonLanguage, false
	}

	text := normalize(c.Text)
	runes := []rune(text)

	if len(runes) < MinLength || len(runes) > MaxLength {
		return ReasonLength, false
	}
	if containsDigit(runes) {
		return ReasonDigits, false
	}
	if hasForbiddenCharacters(runes) {
		return ReasonCharacters, false
	}
	if hasExcessiveRepetition(runes) {
		return ReasonRepetition, false
	}
	if ch.isDenylistedSource(c.SourceURL) {
		return ReasonSource, false
	}

	return ReasonNone, true
}

// normalize trims the text and collapses internal whitespace, matching the
// normalization used for the uniqueness key.
func normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func containsDigit(runes []rune) bool {
	for _, r := range runes {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func hasForbiddenCharacters(runes []rune) bool {
	for _, r := range runes {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			continue
		}
		if strings.ContainsRune(allowedPunctuation, r) {
			continue
		}
		return true
	}
	return false
}

func hasExcessiveRepetition(runes []rune) bool {
	run := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			run++
			if run > maxRunLength {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

// isDenylistedSource reports whether the source URL's host contains any
// denylisted substring. Candidates without a source URL are allowed; the
// curated list has no origin to distrust.
func (ch *Checker) isDenylistedSource(sourceURL string) bool {
	if sourceURL == "" {
		return false
	}
	parsed, err := url.Parse(strings.ToLower(sourceURL))
	if err != nil || parsed.Host == "" {
		// An unparseable origin cannot be trusted.
		return true
	}
	for _, bad := range ch.denylist {
		if strings.Contains(parsed.Host, bad) {
			return true
		}
	}
	return false
}
