package models

import "strings"

// AnalysisRequest is the body accepted by POST /analyze.
// ImageURL is decoded loosely so a non-string value is reported the same way as a missing one.
type AnalysisRequest struct {
	ImageURL interface{} `json:"imageUrl"`
}

// URL returns the image URL and whether it was a non-blank string
func (r AnalysisRequest) URL() (string, bool) {
	s, ok := r.ImageURL.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of GET /
type HealthResponse struct {
	Status string `json:"status"`
}
