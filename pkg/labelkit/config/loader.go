package config

import (
	"fmt"

	"github.com/cognicore/labelkit/pkg/labelkit/rules"
	"github.com/cognicore/labelkit/pkg/labelkit/vocab"
)

// Loader assembles pipeline components from configuration paths.
// Empty paths fall back to the built-in defaults.
type Loader struct {
	RulesPath  string
	LabelsPath string
}

// Components holds the loaded pipeline configuration.
type Components struct {
	Engine *rules.Engine
	Manual vocab.Vocabulary
}

// Load reads the configured files and returns initialized components.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	if l.RulesPath != "" {
		ruleList, err := LoadRules(l.RulesPath)
		if err != nil {
			return nil, fmt.Errorf("load rules: %w", err)
		}
		comp.Engine = rules.NewEngine(ruleList)
	} else {
		comp.Engine = rules.NewEngine(rules.Defaults())
	}

	if l.LabelsPath != "" {
		labels, err := LoadLabels(l.LabelsPath)
		if err != nil {
			return nil, fmt.Errorf("load labels: %w", err)
		}
		comp.Manual = vocab.New(labels)
	} else {
		comp.Manual = vocab.Manual()
	}

	return comp, nil
}
