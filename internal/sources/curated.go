package sources

import (
	"context"

	"github.com/andrei/quote-harvester/internal/types"
)

// Curated serves the built-in starter list for one language. It performs
// no I/O and never fails, which is why it sits first in priority order.
type Curated struct {
	lang types.Language
}

// NewCurated creates the curated adapter for a language.
func NewCurated(lang types.Language) *Curated {
	return &Curated{lang: lang}
}

// Name implements Adapter.
func (c *Curated) Name() string { return "curated-" + string(c.lang) }

// Language implements Adapter.
func (c *Curated) Language() types.Language { return c.lang }

// Trust implements Adapter.
func (c *Curated) Trust() Trust { return TrustCurated }

// Fetch implements Adapter.
func (c *Curated) Fetch(_ context.Context, limit int) ([]types.Candidate, error) {
	var entries []curatedEntry
	switch c.lang {
	case types.LanguageEnglish:
		entries = curatedEnglish
	case types.LanguageRussian:
		entries = curatedRussian
	}

	out := make([]types.Candidate, 0, min(limit, len(entries)))
	for _, e := range entries {
		if len(out) >= limit {
			break
		}
		out = append(out, types.Candidate{
			Text:     e.text,
			Language: c.lang,
			Author:   e.author,
		})
	}
	return out, nil
}

type curatedEntry struct {
	text   string
	author string
}

var curatedEnglish = []curatedEntry{
	{"To be or not to be, that is the question", "William Shakespeare"},
	{"The only true wisdom is in knowing you know nothing", "Socrates"},
	{"Imagination is more important than knowledge", "Albert Einstein"},
	{"Be yourself; everyone else is already taken", "Oscar Wilde"},
	{"The unexamined life is not worth living", "Socrates"},
	{"In the middle of difficulty lies opportunity", "Albert Einstein"},
	{"It is never too late to be what you might have been", "George Eliot"},
	{"Whatever you are, be a good one", "Abraham Lincoln"},
	{"The journey of a thousand miles begins with one step", "Laozi"},
	{"Life is what happens when you are busy making other plans", "John Lennon"},
	{"Simplicity is the ultimate sophistication", "Leonardo da Vinci"},
	{"We are what we repeatedly do. Excellence, then, is not an act, but a habit", "Aristotle"},
	{"Happiness depends upon ourselves", "Aristotle"},
	{"He who has a why to live can bear almost any how", "Friedrich Nietzsche"},
	{"The best way to predict the future is to invent it", "Alan Kay"},
	{"A room without books is like a body without a soul", "Cicero"},
	{"No act of kindness, no matter how small, is ever wasted", "Aesop"},
	{"What we think, we become", "Buddha"},
	{"Knowing yourself is the beginning of all wisdom", "Aristotle"},
	{"Everything has beauty, but not everyone sees it", "Confucius"},
}

var curatedRussian = []curatedEntry{
	{"Счастье — это когда тебя понимают", ""},
	{"Краткость — сестра таланта", "Антон Чехов"},
	{"В человеке должно быть всё прекрасно", "Антон Чехов"},
	{"Все счастливые семьи похожи друг на друга, каждая несчастливая семья несчастлива по-своему", "Лев Толстой"},
	{"Красота спасёт мир", "Фёдор Достоевский"},
	{"Мы в ответе за тех, кого приручили", "Антуан де Сент-Экзюпери"},
	{"Учиться, учиться и ещё раз учиться", ""},
	{"Надежда умирает последней", ""},
	{"Век живи — век учись", ""},
	{"Без труда не вытащишь и рыбку из пруда", ""},
	{"Тише едешь — дальше будешь", ""},
	{"Семь раз отмерь, один раз отрежь", ""},
	{"Не имей сто рублей, а имей сто друзей", ""},
	{"Слово — серебро, молчание — золото", ""},
	{"Лучше поздно, чем никогда", ""},
	{"Терпение и труд всё перетрут", ""},
	{"Под лежачий камень вода не течёт", ""},
	{"Глаза боятся, а руки делают", ""},
	{"Не откладывай на завтра то, что можно сделать сегодня", ""},
	{"Старый друг лучше новых двух", ""},
}
