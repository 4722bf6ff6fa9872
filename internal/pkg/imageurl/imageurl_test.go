package imageurl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{
			"https://drive.google.com/file/d/1AbC-xyz_9/view?usp=sharing",
			"https://drive.google.com/uc?id=1AbC-xyz_9&export=download",
		},
		{
			"https://drive.google.com/open?id=1AbC-xyz_9",
			"https://drive.google.com/uc?id=1AbC-xyz_9&export=download",
		},
		// Already direct, unchanged.
		{
			"https://drive.google.com/uc?id=1AbC-xyz_9&export=download",
			"https://drive.google.com/uc?id=1AbC-xyz_9&export=download",
		},
		// Non-Drive URLs pass through.
		{"https://example.edu/images/banner.png", "https://example.edu/images/banner.png"},
		{"", ""},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, Normalize(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeAll(t *testing.T) {
	require.Nil(t, NormalizeAll(nil))

	got := NormalizeAll([]string{
		"https://drive.google.com/file/d/abc123/view",
		"https://example.edu/a.jpg",
	})
	require.Equal(t, []string{
		"https://drive.google.com/uc?id=abc123&export=download",
		"https://example.edu/a.jpg",
	}, got)
}
