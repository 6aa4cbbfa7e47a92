package resumeparse

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jonathan/jobtracker/internal/types"
	"github.com/jonathan/jobtracker/internal/validation"
)

// DefaultMaxUploadBytes is the largest accepted resume file (10 MB).
const DefaultMaxUploadBytes int64 = 10 << 20

// AcceptedExtensions are the resume formats the upload panel offers.
var AcceptedExtensions = []string{".pdf", ".doc", ".docx"}

// UploadError reports a file the panel refuses to parse.
type UploadError struct {
	File    string
	Message string
	Cause   error
}

func (e *UploadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("upload %q rejected: %s: %v", e.File, e.Message, e.Cause)
	}
	return fmt.Sprintf("upload %q rejected: %s", e.File, e.Message)
}

func (e *UploadError) Unwrap() error {
	return e.Cause
}

// CheckUpload applies the panel's file rules. maxBytes <= 0 uses DefaultMaxUploadBytes.
func CheckUpload(file types.UploadedFile, maxBytes int64) error {
	if err := validation.Struct(file); err != nil {
		return &UploadError{File: file.Name, Message: "incomplete file description", Cause: err}
	}

	ext := strings.ToLower(filepath.Ext(file.Name))
	if !slices.Contains(AcceptedExtensions, ext) {
		return &UploadError{
			File:    file.Name,
			Message: "unsupported format, expected PDF, DOC or DOCX",
		}
	}

	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	if file.Size > maxBytes {
		return &UploadError{
			File:    file.Name,
			Message: fmt.Sprintf("file is %d bytes, limit is %d", file.Size, maxBytes),
		}
	}
	return nil
}
