package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	cases := map[string]string{
		"Coimbatore Vizha 2025!":     "coimbatore-vizha-2025",
		"Hello, World":               "hello-world",
		"  spaced   out  ":           "spaced-out",
		"--already--hyphenated--":    "already-hyphenated",
		"ALL CAPS TITLE":             "all-caps-title",
		"breaking: market up 3.5%":   "breaking-market-up-3-5",
		"தமிழ் header with latin ab": "header-with-latin-ab",
	}

	for input, want := range cases {
		assert.Equal(t, want, Make(input), "input %q", input)
	}
}

func TestMakeEmpty(t *testing.T) {
	assert.Equal(t, "", Make("!!!"))
	assert.Equal(t, "", Make(""))
}

func TestUnique_NoCollision(t *testing.T) {
	got, err := Unique("Fresh Title", func(string) (bool, error) { return false, nil })
	require.NoError(t, err)
	assert.Equal(t, "fresh-title", got)
}

func TestUnique_ProbesNumberedVariants(t *testing.T) {
	taken := map[string]bool{
		"fresh-title":   true,
		"fresh-title-2": true,
	}
	got, err := Unique("Fresh Title", func(s string) (bool, error) { return taken[s], nil })
	require.NoError(t, err)
	assert.Equal(t, "fresh-title-3", got)
}

func TestUnique_EmptyTitleFallsBack(t *testing.T) {
	got, err := Unique("???", func(string) (bool, error) { return false, nil })
	require.NoError(t, err)
	assert.Equal(t, "untitled", got)
}
