package policy

import (
	"regexp"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello, World! 2024":       "hello-world-2024",
		"Go Concurrency Patterns":  "go-concurrency-patterns",
		"  leading":                "--leading",
		"Already-Hyphenated Title": "already-hyphenated-title",
		"Crème Brûlée":             "crme-brle",
		"tabs\tare dropped":        "tabsare-dropped",
		"!!!":                      "",
	}
	for title, want := range cases {
		assert.Equal(t, want, Slugify(title), title)
	}
}

func TestSlugifyAlphabet(t *testing.T) {
	allowed := regexp.MustCompile(`^[a-z0-9-]*$`)
	for i := 0; i < 200; i++ {
		title := gofakeit.Sentence(6) + " " + gofakeit.Emoji() + " " + gofakeit.LoremIpsumWord()
		slug := Slugify(title)
		require.Regexp(t, allowed, slug, title)
		require.NotContains(t, slug, " ")
	}
}
