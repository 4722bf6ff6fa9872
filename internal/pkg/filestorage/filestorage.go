package filestorage

import "mime/multipart"

// StoredFile describes a file after it has been written to storage.
type StoredFile struct {
	// Filename is the sanitized name the file is stored under
	Filename string
	// URL is the public URL the file can be fetched from
	URL string
	// Size is the file size in bytes
	Size int64
}

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFile writes an uploaded file and returns where it was stored
	SaveFile(fileHeader *multipart.FileHeader) (*StoredFile, error)

	// DeleteFile removes a stored file; deleting a missing file is not an error
	DeleteFile(filename string) error
}
