package dto

// ParagraphResponse represents a generated paragraph in the API response
// @Description Generated paragraph
type ParagraphResponse struct {
	Paragraph string `json:"paragraph"`
}

// ErrorResponse represents an error in the API response
// @Description Error information
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HealthResponse represents the service health
type HealthResponse struct {
	Status string `json:"status"`
}
