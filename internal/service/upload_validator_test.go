package service

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"constructora/internal/errors"
)

// brokenSeeker simulates a stream whose size cannot be determined.
type brokenSeeker struct{}

func (brokenSeeker) Seek(offset int64, whence int) (int64, error) {
	return 0, fmt.Errorf("seek unsupported")
}

func TestUploadValidator_Validate(t *testing.T) {
	const mb = 1024 * 1024
	validator := NewUploadValidator([]string{"image/jpeg", "image/png"}, 5*mb)

	tests := []struct {
		name          string
		mime          string
		size          int
		expectedError error
	}{
		{name: "allowed mime within limit", mime: "image/png", size: 2 * mb, expectedError: nil},
		{name: "exactly at limit", mime: "image/jpeg", size: 5 * mb, expectedError: nil},
		{name: "mime not in allow-list", mime: "image/gif", size: 1 * mb, expectedError: errors.ErrUnsupportedMediaType},
		{name: "empty mime", mime: "", size: 1 * mb, expectedError: errors.ErrUnsupportedMediaType},
		{name: "oversized file", mime: "image/png", size: 10 * mb, expectedError: errors.ErrFileTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := bytes.NewReader(make([]byte, tt.size))
			err := validator.Validate(tt.mime, file)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
				// The stream must be rewound for the caller to persist it.
				pos, serr := file.Seek(0, io.SeekCurrent)
				assert.NoError(t, serr)
				assert.Equal(t, int64(0), pos)
			}
		})
	}
}

func TestUploadValidator_UnreadableSize(t *testing.T) {
	validator := NewUploadValidator([]string{"image/png"}, 1024)
	err := validator.Validate("image/png", brokenSeeker{})
	assert.Equal(t, errors.ErrUnreadableUpload, err)
}

func TestUploadValidator_MimeCheckedBeforeSize(t *testing.T) {
	// A disallowed mime is rejected even when the size is unreadable.
	validator := NewUploadValidator([]string{"image/png"}, 1024)
	err := validator.Validate("image/gif", brokenSeeker{})
	assert.Equal(t, errors.ErrUnsupportedMediaType, err)
}
