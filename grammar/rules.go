package grammar

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed rules/default.yaml
var defaultRules []byte

// RuleSource is a human-authored grammar rule before compilation.
type RuleSource struct {
	ID          string `yaml:"id" json:"id,omitempty"`
	Pattern     string `yaml:"pattern" json:"pattern"`
	Meaning     string `yaml:"meaning" json:"meaning,omitempty"`
	Description string `yaml:"description" json:"description,omitempty"`
	Level       string `yaml:"level" json:"level,omitempty"`
}

type ruleFile struct {
	Rules []RuleSource `yaml:"rules"`
}

// ParseRules decodes a rule file. YAML is accepted, and so is JSON since it is a YAML subset.
func ParseRules(data []byte) ([]RuleSource, error) {
	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("grammar: failed to decode rules: %w", err)
	}
	return f.Rules, nil
}

// LoadRules reads and decodes the rule file at path.
func LoadRules(path string) ([]RuleSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("grammar: failed to read rules %q: %w", path, err)
	}
	return ParseRules(data)
}

// DefaultRules returns the rule set bundled with the binary.
func DefaultRules() []RuleSource {
	rules, err := ParseRules(defaultRules)
	if err != nil {
		panic(err)
	}
	return rules
}
