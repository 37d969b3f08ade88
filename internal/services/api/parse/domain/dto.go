// Package domain holds DTOs for parse http and service contracts
package domain

import (
	"humanize/internal/core/matcher"
	"humanize/internal/core/value"
)

// MaxBatchItems caps a single batch request
const MaxBatchItems = 100

// ParseInput asks for the value of one piece of text
type ParseInput struct {
	Text string `json:"text" validate:"required,max=512" example:"twenty-first"`
	Kind string `json:"kind" validate:"required,kind" example:"ordinal"`
	// Locale overrides the negotiated request locale; "*" asks for the wildcard
	Locale string `json:"locale,omitempty" validate:"omitempty,locale" example:"en-GB"`
	// All returns every candidate in rank order, not only the best
	All bool `json:"all,omitempty"`
	// Strict turns an unrecognized text into a no_match error
	Strict bool `json:"strict,omitempty"`
}

// ParseResult is the outcome of one resolution. Value is absent when nothing matched
type ParseResult struct {
	Text       string            `json:"text"`
	Kind       value.Kind        `json:"kind"`
	Locale     string            `json:"locale" example:"en-GB"`
	Matched    bool              `json:"matched"`
	Value      *value.Value      `json:"value,omitempty"`
	Candidates []value.Candidate `json:"candidates,omitempty"`
}

// BatchItem is one entry of a batch; an empty Locale inherits the batch locale
type BatchItem struct {
	Text   string `json:"text" validate:"required,max=512"`
	Kind   string `json:"kind" validate:"required,kind"`
	Locale string `json:"locale,omitempty" validate:"omitempty,locale"`
}

// BatchInput resolves up to MaxBatchItems texts in one request
type BatchInput struct {
	Items  []BatchItem `json:"items" validate:"required,min=1,max=100,dive"`
	Locale string      `json:"locale,omitempty" validate:"omitempty,locale"`
	All    bool        `json:"all,omitempty"`
}

// BatchResult keeps results in input order
type BatchResult struct {
	BatchID string        `json:"batch_id" example:"2f1c7e0a-1b9d-4c55-9a3e-0d6f4c1e8b21"`
	Results []ParseResult `json:"results"`
}

// MatchersResult is a snapshot of the serving registry
type MatchersResult struct {
	Scope    string         `json:"scope" example:"*"`
	Locked   bool           `json:"locked"`
	Ranking  string         `json:"ranking" example:"weight"`
	Count    int            `json:"count"`
	Matchers []matcher.Info `json:"matchers"`
}
