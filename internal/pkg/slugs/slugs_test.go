package slugs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Open House 2024!", "open-house-2024"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Under_scores and-hyphens", "under-scores-and-hyphens"},
		{"Multiple   spaces", "multiple-spaces"},
		{"Special #$% characters?", "special-characters"},
		{"---edge---", "edge"},
		{"", ""},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, Slugify(tc.in), "input %q", tc.in)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Open House 2024!", "already-a-slug", "Mixed CASE Title"}
	for _, in := range inputs {
		once := Slugify(in)
		require.Equal(t, once, Slugify(once))
	}
}
