// Package imageurl rewrites third-party share links into directly
// embeddable URLs. Editors tend to paste Google Drive sharing links into
// image fields, which do not render inside <img> tags.
package imageurl

import (
	"regexp"
	"strings"
)

var (
	driveViewPattern = regexp.MustCompile(`/file/d/([a-zA-Z0-9-_]+)/`)
	driveOpenPattern = regexp.MustCompile(`[?&]id=([a-zA-Z0-9-_]+)`)
)

// IsGoogleDriveURL reports whether the URL points at Google Drive.
func IsGoogleDriveURL(url string) bool {
	return strings.Contains(url, "drive.google.com")
}

// Normalize converts a Google Drive sharing URL into a direct download URL.
// URLs that are already direct, or that do not match a known share format,
// are returned unchanged.
func Normalize(url string) string {
	if url == "" || !IsGoogleDriveURL(url) {
		return url
	}

	if strings.Contains(url, "drive.google.com/uc?id=") {
		return url
	}

	var fileID string

	// Format: https://drive.google.com/file/d/FILE_ID/view?usp=sharing
	if m := driveViewPattern.FindStringSubmatch(url); m != nil {
		fileID = m[1]
	}

	// Format: https://drive.google.com/open?id=FILE_ID
	if m := driveOpenPattern.FindStringSubmatch(url); m != nil {
		fileID = m[1]
	}

	if fileID != "" {
		return "https://drive.google.com/uc?id=" + fileID + "&export=download"
	}

	return url
}

// NormalizeAll applies Normalize to every URL in the slice, in place order.
func NormalizeAll(urls []string) []string {
	if urls == nil {
		return nil
	}
	out := make([]string, len(urls))
	for i, u := range urls {
		out[i] = Normalize(u)
	}
	return out
}
