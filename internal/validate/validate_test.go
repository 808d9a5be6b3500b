package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrei/quote-harvester/internal/types"
)

func candidate(text string) types.Candidate {
	return types.Candidate{
		Text:     text,
		Language: types.LanguageEnglish,
	}
}

func TestChecker_Check(t *testing.T) {
	checker := NewChecker()

	tests := []struct {
		name       string
		candidate  types.Candidate
		wantReason Reason
		wantOK     bool
	}{
		{
			name:       "valid english quote",
			candidate:  candidate("To be or not to be"),
			wantReason: ReasonNone,
			wantOK:     true,
		},
		{
			name: "valid russian quote",
			candidate: types.Candidate{
				Text:     "Счастье — это когда тебя понимают",
				Language: types.LanguageRussian,
			},
			wantReason: ReasonNone,
			wantOK:     true,
		},
		{
			name:       "typographic punctuation allowed",
			candidate:  candidate(`Wit is the salt of conversation — not, as some think, the food!`),
			wantReason: ReasonNone,
			wantOK:     true,
		},
		{
			name:       "missing text",
			candidate:  types.Candidate{Language: types.LanguageEnglish},
			wantReason: ReasonMalformed,
			wantOK:     false,
		},
		{
			name: "source url not a url",
			candidate: types.Candidate{
				Text:      "A perfectly fine quotation text",
				Language:  types.LanguageEnglish,
				SourceURL: "not a url",
			},
			wantReason: ReasonMalformed,
			wantOK:     false,
		},
		{
			name: "unsupported language",
			candidate: types.Candidate{
				Text:     "Der Mensch ist was er isst",
				Language: types.Language("de"),
			},
			wantReason: ReasonLanguage,
			wantOK:     false,
		},
		{
			name:       "too short",
			candidate:  candidate("Too short"),
			wantReason: ReasonLength,
			wantOK:     false,
		},
		{
			name:       "too long",
			candidate:  candidate(strings.Repeat("wisdom ", 100)),
			wantReason: ReasonLength,
			wantOK:     false,
		},
		{
			name:       "contains digits",
			candidate:  candidate("Rule number 1 of life"),
			wantReason: ReasonDigits,
			wantOK:     false,
		},
		{
			name:       "markup remnants rejected",
			candidate:  candidate("The best of times <br> the worst of times"),
			wantReason: ReasonCharacters,
			wantOK:     false,
		},
		{
			name:       "control characters rejected",
			candidate:  candidate("To be or not\x00to be that is"),
			wantReason: ReasonCharacters,
			wantOK:     false,
		},
		{
			name:       "excessive repetition",
			candidate:  candidate("This is sooooo wonderfully deep"),
			wantReason: ReasonRepetition,
			wantOK:     false,
		},
		{
			name: "denylisted source domain",
			candidate: types.Candidate{
				Text:      "A perfectly fine quotation text",
				Language:  types.LanguageEnglish,
				SourceURL: "https://best-casino-quotes.example.com/daily",
			},
			wantReason: ReasonSource,
			wantOK:     false,
		},
		{
			name: "clean source domain accepted",
			candidate: types.Candidate{
				Text:      "A perfectly fine quotation text",
				Language:  types.LanguageEnglish,
				SourceURL: "https://en.wikiquote.org/wiki/Oscar_Wilde",
			},
			wantReason: ReasonNone,
			wantOK:     true,
		},
		{
			name: "length measured after whitespace collapse",
			candidate: candidate("a   b   c   d"),
			// 7 runes once collapsed, below the minimum
			wantReason: ReasonLength,
			wantOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, ok := checker.Check(tt.candidate)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestChecker_FirstFailureWins(t *testing.T) {
	checker := NewChecker()

	// Contains a digit AND a forbidden character; digits are checked first.
	reason, ok := checker.Check(candidate("Rule number 1 of life <b>bold</b>"))
	assert.False(t, ok)
	assert.Equal(t, ReasonDigits, reason)
}

func TestChecker_CustomDenylist(t *testing.T) {
	checker := NewCheckerWithDenylist([]string{"contentfarm"})

	c := types.Candidate{
		Text:      "A perfectly fine quotation text",
		Language:  types.LanguageEnglish,
		SourceURL: "https://quotes.contentfarm.io/page",
	}
	reason, ok := checker.Check(c)
	assert.False(t, ok)
	assert.Equal(t, ReasonSource, reason)

	// The default denylist does not know this domain.
	reason, ok = NewChecker().Check(c)
	assert.True(t, ok)
	assert.Equal(t, ReasonNone, reason)
}

func TestReasons_CoversAllReasons(t *testing.T) {
	rs := Reasons()
	assert.Len(t, rs, 7)
	assert.NotContains(t, rs, ReasonNone)
}
