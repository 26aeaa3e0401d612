package dto

import (
	"fmt"
	"mime/multipart"
	"strings"
)

// ExtractRequest represents an upload of invoice JSON files
type ExtractRequest struct {
	Files []*multipart.FileHeader `form:"files[]" binding:"required"`
}

// Validate performs basic validation on the request
func (r *ExtractRequest) Validate() error {
	if len(r.Files) == 0 {
		return ErrNoFiles
	}

	for _, file := range r.Files {
		if !strings.HasSuffix(strings.ToLower(file.Filename), ".json") {
			return fmt.Errorf("invalid file type for %s. Supported: JSON", file.Filename)
		}
	}
	return nil
}

// ExtractTextRequest runs PO extraction directly on a raw string
type ExtractTextRequest struct {
	Text string `json:"text" binding:"required"`
}
