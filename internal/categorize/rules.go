package categorize

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rule maps a category label to lowercase keyword substrings.
type Rule struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// Ruleset is an ordered list of rules plus a fallback category. Order is
// significant: the first rule whose keyword appears in a description wins.
// The fallback has no keywords and is skipped during matching.
type Ruleset struct {
	rules    []Rule
	fallback string
}

// NewRuleset builds a Ruleset from rules and a fallback label.
// Keywords are lowercased once here so matching stays cheap.
func NewRuleset(rules []Rule, fallback string) *Ruleset {
	owned := make([]Rule, len(rules))
	for i, r := range rules {
		keywords := make([]string, len(r.Keywords))
		for j, k := range r.Keywords {
			keywords[j] = strings.ToLower(k)
		}
		owned[i] = Rule{Category: r.Category, Keywords: keywords}
	}
	return &Ruleset{rules: owned, fallback: fallback}
}

// Categorize maps a free-text description to a category label.
// Matching is case-insensitive substring matching, not word-boundary
// matching, so "gas" matches "Vegas". That is intentional: rule keywords
// like "gas" are meant to hit "GAS STATION 4411" too.
func (rs *Ruleset) Categorize(description string) string {
	lower := strings.ToLower(description)
	for _, r := range rs.rules {
		if r.Category == rs.fallback {
			continue
		}
		for _, k := range r.Keywords {
			if strings.Contains(lower, k) {
				return r.Category
			}
		}
	}
	return rs.fallback
}

// Fallback returns the catch-all category label.
func (rs *Ruleset) Fallback() string {
	return rs.fallback
}

// Categories returns the category labels in rule order. The fallback is
// included where it sits in the list, or appended if absent.
func (rs *Ruleset) Categories() []string {
	labels := make([]string, 0, len(rs.rules)+1)
	seenFallback := false
	for _, r := range rs.rules {
		if r.Category == rs.fallback {
			seenFallback = true
		}
		labels = append(labels, r.Category)
	}
	if !seenFallback {
		labels = append(labels, rs.fallback)
	}
	return labels
}

// rulesFile is the on-disk YAML form of a Ruleset.
type rulesFile struct {
	Fallback string `yaml:"fallback"`
	Rules    []Rule `yaml:"rules"`
}

// LoadRules reads a ruleset from a YAML file.
func LoadRules(path string) (*Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}
	var rf rulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}
	if rf.Fallback == "" {
		rf.Fallback = FallbackCategory
	}
	return NewRuleset(rf.Rules, rf.Fallback), nil
}

// SaveRules writes a ruleset to a YAML file.
func SaveRules(path string, rs *Ruleset) error {
	data, err := yaml.Marshal(rulesFile{Fallback: rs.fallback, Rules: rs.rules})
	if err != nil {
		return fmt.Errorf("marshaling rules: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing rules: %w", err)
	}
	return nil
}
