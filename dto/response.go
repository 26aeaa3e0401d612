package dto

import "errors"

// Custom errors
var (
	ErrNoFiles = errors.New("no invoice files provided")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ExtractResponse is the final response structure for an upload
type ExtractResponse struct {
	Records     []RecordResult `json:"records"`
	Processed   int            `json:"processed"`
	Failed      int            `json:"failed"`
	Errors      []string       `json:"errors,omitempty"`
	ProcessedAt string         `json:"processed_at"`
}
