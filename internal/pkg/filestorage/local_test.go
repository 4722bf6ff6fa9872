package filestorage_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osahenru/uniportal/internal/pkg/filestorage"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "PHOTO.JPG", "photo.jpg"},
		{"spaces to hyphens", "campus aerial view.png", "campus-aerial-view.png"},
		{"underscores to hyphens", "annual_report_2026.pdf", "annual-report-2026.pdf"},
		{"strips unsafe characters", "budget (final) [v2].xlsx", "budget-final-v2.xlsx"},
		{"collapses hyphen runs", "a - b -- c.txt", "a-b-c.txt"},
		{"trims leading and trailing hyphens", "--wrapped--.txt", "wrapped.txt"},
		{"empty base falls back", "???.png", "file.png"},
		{"no extension", "README", "readme"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, filestorage.SanitizeFilename(tc.input))
		})
	}
}
