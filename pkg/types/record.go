// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractionRecord pairs an input entity with the response derived for it.
// Exactly one record exists per input row, in input order.
type ExtractionRecord struct {
	// Entity is the value taken from the user-selected column.
	Entity string `json:"entity" yaml:"entity"`

	// Response is the summarization reply on success, or the failure reason
	// when Failed is set.
	Response string `json:"response" yaml:"response"`

	// Failed marks a record whose Response holds an error message rather than
	// an extracted answer, so consumers need not inspect the text.
	Failed bool `json:"failed,omitempty" yaml:"failed,omitempty"`
}

// OK reports whether the record holds a successful extraction.
func (r ExtractionRecord) OK() bool { return !r.Failed }
