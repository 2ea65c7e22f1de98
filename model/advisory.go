// Package model - Advisory and PackageState back the registry mirror and
// dependency-freshness collaborators.
package model

import "time"

// Advisory is a mirrored vulnerability advisory normalized from OSV data.
type Advisory struct {
	Key        string    `json:"_key,omitempty"`
	ObjType    string    `json:"objtype,omitempty"`
	ID         string    `json:"id"`
	Ecosystem  string    `json:"ecosystem"`
	Summary    string    `json:"summary,omitempty"`
	Aliases    []string  `json:"aliases,omitempty"`
	Score      float64   `json:"cvss_base_score"`
	Rating     string    `json:"severity_rating"`
	Published  time.Time `json:"published,omitempty"`
	Modified   time.Time `json:"modified,omitempty"`
	MirroredAt time.Time `json:"mirrored_at"`
}

// PackageState is one tracked dependency as recorded by the freshness poller.
type PackageState struct {
	Key       string    `json:"_key,omitempty"`
	ObjType   string    `json:"objtype,omitempty"`
	Purl      string    `json:"purl"`
	Ecosystem string    `json:"ecosystem"`
	Installed string    `json:"installed"`
	Latest    string    `json:"latest,omitempty"`
	Outdated  bool      `json:"outdated"`
	CheckedAt time.Time `json:"checked_at"`
}
