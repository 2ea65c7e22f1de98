// Package model - API types for combining models in API requests/responses
package model

// FindingsIngestRequest is the body of POST /api/v1/findings: one complete,
// ordered batch of classified findings. An empty batch is valid input.
type FindingsIngestRequest struct {
	Source   string    `json:"source,omitempty"`
	Findings []Finding `json:"findings"`
}

// FindingsIngestResponse returns the result of a findings ingestion.
type FindingsIngestResponse struct {
	Success   bool    `json:"success"`
	Message   string  `json:"message,omitempty"`
	ReportKey string  `json:"report_key,omitempty"`
	Summary   Summary `json:"summary"`
	Report    string  `json:"report"`
}

// ReportResponse wraps a stored report for the read endpoints.
type ReportResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Report  *ReportRecord `json:"report,omitempty"`
}
