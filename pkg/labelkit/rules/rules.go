// Package rules implements the ordered rule engine that pre-labels
// token records.
package rules

import (
	"strings"

	"github.com/cognicore/labelkit/pkg/labelkit/record"
)

// Rule pairs a predicate over token text with the label to assign
// when the predicate holds.
type Rule struct {
	Match func(text string) bool
	Label string
}

// Contains builds a rule matching any text that contains substr,
// case-insensitively.
func Contains(substr, label string) Rule {
	needle := strings.ToUpper(substr)
	return Rule{
		Match: func(text string) bool {
			return strings.Contains(strings.ToUpper(text), needle)
		},
		Label: label,
	}
}

// Engine evaluates an ordered rule list against records.
//
// Every rule is evaluated in declaration order and each match assigns
// its label, so the last matching rule determines the final label:
// operators put more specific rules later in the list instead of
// maintaining priority numbers. The engine never short-circuits.
type Engine struct {
	rules []Rule
}

// NewEngine builds an engine over an ordered rule list.
func NewEngine(rules []Rule) *Engine {
	e := &Engine{}
	e.SetRules(rules)
	return e
}

// SetRules replaces the rule list, preserving the given order.
func (e *Engine) SetRules(rules []Rule) {
	e.rules = make([]Rule, len(rules))
	copy(e.rules, rules)
}

// Rules returns the current rule list in evaluation order.
func (e *Engine) Rules() []Rule {
	out := make([]Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Apply evaluates every rule against the record's text and reports
// whether any rule matched. On a match the engine's verdict overwrites
// any pre-existing label; when nothing matches the record is left
// untouched, so a label from an earlier pass survives. Re-applying the
// same rule list to the same text always yields the same final label.
func (e *Engine) Apply(rec *record.Record) bool {
	matched := false
	for _, r := range e.rules {
		if r.Match == nil {
			continue
		}
		if r.Match(rec.Text) {
			rec.MLLabel = r.Label
			matched = true
		}
	}
	return matched
}
