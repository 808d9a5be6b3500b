package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanAuthor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name", "Oscar Wilde", "Oscar Wilde"},
		{"leading dash", "— Oscar Wilde", "Oscar Wilde"},
		{"by prefix", "by Oscar Wilde", "Oscar Wilde"},
		{"trailing comma", "Frank Zappa,", "Frank Zappa"},
		{"cyrillic", "Антон Чехов", "Антон Чехов"},
		{"initials", "J. R. R. Tolkien", "J. R. R. Tolkien"},
		{"apostrophe", "Flannery O'Connor", "Flannery O'Connor"},
		{"too short", "A", ""},
		{"contains digits", "Author no. четыре 4", ""},
		{"markup garbage", "<span>Oscar Wilde</span>", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanAuthor(tt.in))
		})
	}
}

func TestValidAuthor(t *testing.T) {
	assert.True(t, ValidAuthor("Oscar Wilde"))
	assert.True(t, ValidAuthor("Антуан де Сент-Экзюпери"))
	assert.False(t, ValidAuthor(""))
	assert.False(t, ValidAuthor("X"))
	assert.False(t, ValidAuthor("name@example.com"))
}

func TestIsNavigationText(t *testing.T) {
	assert.True(t, isNavigationText("Edit this section"))
	assert.True(t, isNavigationText("See also other pages"))
	assert.True(t, isNavigationText("Править раздел"))
	assert.False(t, isNavigationText("To be or not to be"))
}
