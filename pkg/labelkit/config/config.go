// Package config loads rule and vocabulary configuration files.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/labelkit/pkg/labelkit/rules"
)

// ErrInvalidConfig marks a configuration file that parsed but is unusable.
var ErrInvalidConfig = errors.New("invalid configuration")

// RuleFile is the on-disk rule list. File order is evaluation order,
// so the last matching entry decides a record's label.
type RuleFile struct {
	Rules []RuleEntry `yaml:"rules"`
}

// RuleEntry is one contains-predicate rule.
type RuleEntry struct {
	Contains string `yaml:"contains"`
	Label    string `yaml:"label"`
}

// LoadRules reads an ordered rule list from a YAML file.
func LoadRules(path string) ([]rules.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules %s: %w", path, err)
	}

	var rf RuleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse rules %s: %w", path, err)
	}
	if len(rf.Rules) == 0 {
		return nil, fmt.Errorf("%s: %w: no rules defined", path, ErrInvalidConfig)
	}

	out := make([]rules.Rule, 0, len(rf.Rules))
	for i, entry := range rf.Rules {
		if entry.Contains == "" {
			return nil, fmt.Errorf("%s: rule %d: %w: empty contains predicate", path, i+1, ErrInvalidConfig)
		}
		if entry.Label == "" {
			return nil, fmt.Errorf("%s: rule %d: %w: empty label", path, i+1, ErrInvalidConfig)
		}
		out = append(out, rules.Contains(entry.Contains, entry.Label))
	}
	return out, nil
}

// LabelFile is the on-disk manual vocabulary override.
type LabelFile struct {
	Labels []string `yaml:"labels"`
}

// LoadLabels reads a manual vocabulary override from a YAML file.
func LoadLabels(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read labels %s: %w", path, err)
	}

	var lf LabelFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parse labels %s: %w", path, err)
	}
	if len(lf.Labels) == 0 {
		return nil, fmt.Errorf("%s: %w: no labels defined", path, ErrInvalidConfig)
	}
	return lf.Labels, nil
}
