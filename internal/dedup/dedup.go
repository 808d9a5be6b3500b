// Package dedup provides run-local duplicate suppression for quotation
// candidates. The database uniqueness constraint remains the authoritative
// guard; the in-memory set exists to avoid paying the translation rate
// limit for text that has already been seen in the current run.
package dedup

import (
	"strings"

	"github.com/andrei/quote-harvester/internal/types"
)

// Key builds the normalized uniqueness key for a text/language pair:
// trimmed, internal whitespace collapsed, case-folded.
func Key(text string, lang types.Language) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(text), " "))
	return normalized + "\x00" + string(lang)
}

// Set is a run-local collection of normalized keys. It is not safe for
// concurrent use; candidates are processed sequentially.
type Set struct {
	seen map[string]struct{}
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{seen: make(map[string]struct{})}
}

// Add records a key and reports whether it was new.
func (s *Set) Add(key string) bool {
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}
	return true
}

// Seen reports whether a key has been recorded without recording it.
func (s *Set) Seen(key string) bool {
	_, ok := s.seen[key]
	return ok
}

// Len returns the number of recorded keys.
func (s *Set) Len() int {
	return len(s.seen)
}
