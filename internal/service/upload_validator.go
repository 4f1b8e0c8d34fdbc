package service

import (
	"io"

	"constructora/internal/errors"
)

// UploadValidator checks uploaded files against the configured mime
// allow-list and size ceiling before they are persisted.
type UploadValidator struct {
	allowed  map[string]struct{}
	maxBytes int64
}

// NewUploadValidator creates a validator for the given allow-list and ceiling.
func NewUploadValidator(allowedMimes []string, maxBytes int64) *UploadValidator {
	allowed := make(map[string]struct{}, len(allowedMimes))
	for _, m := range allowedMimes {
		allowed[m] = struct{}{}
	}
	return &UploadValidator{allowed: allowed, maxBytes: maxBytes}
}

// Validate checks the declared mime type and the measured stream size.
// The size is taken from the stream itself; client-supplied length headers
// are never trusted. A stream whose size cannot be measured is rejected.
func (v *UploadValidator) Validate(declaredMime string, file io.Seeker) error {
	if declaredMime == "" {
		declaredMime = "application/octet-stream"
	}
	if _, ok := v.allowed[declaredMime]; !ok {
		return errors.ErrUnsupportedMediaType
	}

	size, err := measureSize(file)
	if err != nil {
		return errors.ErrUnreadableUpload
	}
	if size > v.maxBytes {
		return errors.ErrFileTooLarge
	}
	return nil
}

// measureSize determines stream length by seeking to the end, then rewinds.
func measureSize(file io.Seeker) (int64, error) {
	size, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	return size, nil
}
