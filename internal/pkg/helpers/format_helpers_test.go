package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatFileSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{1, "1 Bytes"},
		{512, "512 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048576, "1 MB"},
		{1073741824, "1 GB"},
		{1099511627776, "1024 GB"}, // capped at GB
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, FormatFileSize(tc.bytes), "bytes %d", tc.bytes)
	}
}

func TestCalculateSliceIndices(t *testing.T) {
	start, end := CalculateSliceIndices(1, 10, 25)
	require.Equal(t, 0, start)
	require.Equal(t, 10, end)

	start, end = CalculateSliceIndices(3, 10, 25)
	require.Equal(t, 20, start)
	require.Equal(t, 25, end)

	// Pages past the end collapse to an empty window.
	start, end = CalculateSliceIndices(5, 10, 25)
	require.Equal(t, start, end)
}
