package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/osahenru/uniportal/internal/pkg/logger"
)

var (
	unsafeChars = regexp.MustCompile(`[^a-z0-9.-]`)
	hyphenRuns  = regexp.MustCompile(`-+`)
)

// LocalStorage writes uploaded files to a directory on the local filesystem.
type LocalStorage struct {
	basePath string // root directory where files are stored
	baseURL  string // base URL files are served under
}

// NewLocalStorage creates a LocalStorage rooted at basePath. Stored files are
// addressed as baseURL + "/" + filename.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// SanitizeFilename converts an uploaded filename into a safe storage name:
// lowercase, separators collapsed to hyphens, anything outside [a-z0-9.-]
// removed. The extension is preserved.
func SanitizeFilename(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	base := strings.TrimSuffix(name, filepath.Ext(name))

	base = strings.ToLower(strings.TrimSpace(base))
	base = strings.NewReplacer(" ", "-", "_", "-").Replace(base)
	base = unsafeChars.ReplaceAllString(base, "")
	base = hyphenRuns.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-.")

	if base == "" {
		base = "file"
	}

	return base + ext
}

// SaveFile writes an uploaded file under its sanitized name. If a file with
// that name already exists, a millisecond timestamp is appended to keep the
// name unique.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader) (*StoredFile, error) {
	if fileHeader == nil {
		return nil, fmt.Errorf("no file provided")
	}

	src, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	filename := SanitizeFilename(fileHeader.Filename)
	dstPath := filepath.Join(ls.basePath, filename)

	if _, err := os.Stat(dstPath); err == nil {
		ext := filepath.Ext(filename)
		base := strings.TrimSuffix(filename, ext)
		filename = base + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10) + ext
		dstPath = filepath.Join(ls.basePath, filename)
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to save file content: %w", err)
	}

	stored := &StoredFile{
		Filename: filename,
		URL:      ls.baseURL + "/" + filename,
		Size:     written,
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", filename).Int64("size", written).Msg("File saved")
	return stored, nil
}

// DeleteFile removes a stored file by name. Missing files are treated as
// already deleted.
func (ls *LocalStorage) DeleteFile(filename string) error {
	if filename == "" {
		return nil
	}

	// Only the base name is honored so callers cannot escape the storage root.
	name := filepath.Base(filename)
	if name == "" || name == "." || name == "/" {
		return fmt.Errorf("invalid filename: %s", filename)
	}

	physicalPath := filepath.Join(ls.basePath, name)

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}
