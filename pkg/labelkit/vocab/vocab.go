// Package vocab defines the closed label vocabularies of the pipeline.
package vocab

// LabelNone is the sentinel assigned when a record carries no real label,
// including the fallback for invalid operator input.
const LabelNone = "none"

// Vocabulary is a closed, ordered set of assignable labels.
type Vocabulary struct {
	labels []string
	set    map[string]struct{}
}

// New builds a vocabulary from an explicit label list. Order is preserved
// for display; duplicates and empty strings are dropped.
func New(labels []string) Vocabulary {
	v := Vocabulary{set: make(map[string]struct{}, len(labels))}
	for _, l := range labels {
		if l == "" {
			continue
		}
		if _, ok := v.set[l]; ok {
			continue
		}
		v.set[l] = struct{}{}
		v.labels = append(v.labels, l)
	}
	return v
}

// Manual returns the vocabulary a human reviewer may assign interactively.
func Manual() Vocabulary {
	return New([]string{"ean", "serial_number", "model_number", "part_number", LabelNone})
}

// Full returns the manual vocabulary plus the rule-only labels. Rules may
// assign labels (series, brand) that are not confirmable by hand.
func Full() Vocabulary {
	return New([]string{"ean", "serial_number", "model_number", "part_number", "series", "brand", LabelNone})
}

// Contains reports whether label is a member of the vocabulary.
func (v Vocabulary) Contains(label string) bool {
	_, ok := v.set[label]
	return ok
}

// Labels returns the members in declaration order.
func (v Vocabulary) Labels() []string {
	out := make([]string, len(v.labels))
	copy(out, v.labels)
	return out
}

// Len returns the number of members.
func (v Vocabulary) Len() int {
	return len(v.labels)
}
