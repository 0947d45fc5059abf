// Package record defines the Token Record and its line-oriented JSON stream.
package record

import "errors"

// ErrMalformed marks a stream line that is not a valid record.
var ErrMalformed = errors.New("malformed record")

// Record is one unit of labelable text with its listing context.
// Text is required and never rewritten once a record exists; the
// remaining metadata fields are optional and default to their zero
// values when absent from the stream.
type Record struct {
	Text       string  `json:"text"`
	ImageFile  string  `json:"image_file,omitempty"`
	LotCode    string  `json:"lot_code,omitempty"`
	Brand      string  `json:"brand,omitempty"`
	Type       string  `json:"type,omitempty"`
	Category   string  `json:"category,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	MLLabel    string  `json:"ml_label,omitempty"`
}

// Labeled reports whether any labeling pass has set a label.
func (r Record) Labeled() bool {
	return r.MLLabel != ""
}

// DisplayLabel returns the label for presentation, "none" when unset.
func (r Record) DisplayLabel() string {
	if r.MLLabel == "" {
		return "none"
	}
	return r.MLLabel
}
