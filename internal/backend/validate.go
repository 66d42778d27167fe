package backend

import (
	"errors"
	"strings"
)

// MaxUploadBytes is the largest PDF the client will send.
const MaxUploadBytes = 10 * 1024 * 1024

var (
	ErrNotPDF   = errors.New("not a PDF file")
	ErrTooLarge = errors.New("file exceeds upload limit")
)

// CheckName rejects file names without a .pdf extension.
func CheckName(name string) error {
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		return ErrNotPDF
	}
	return nil
}

// CheckSize rejects files above MaxUploadBytes.
func CheckSize(size int64) error {
	if size > MaxUploadBytes {
		return ErrTooLarge
	}
	return nil
}
