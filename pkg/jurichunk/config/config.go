// Package config loads optional YAML overrides for the built-in
// registries and assembles pipeline components from them.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Keywords overrides the quality keyword tiers.
// Format:
//
//	tiers:
//	  - word: contrat
//	    tier: 3
type Keywords struct {
	Tiers []KeywordEntry `yaml:"tiers"`
}

// KeywordEntry is one weighted keyword.
type KeywordEntry struct {
	Word string `yaml:"word"`
	Tier int    `yaml:"tier"`
}

// LoadKeywords loads a keyword tier file.
func LoadKeywords(path string) (*Keywords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var kw Keywords
	if err := yaml.Unmarshal(data, &kw); err != nil {
		return nil, err
	}

	return &kw, nil
}

// Categories overrides the weighted classification categories. Patterns
// stay built-in; only keywords and weights are configurable.
type Categories struct {
	Categories []CategoryEntry `yaml:"categories"`
}

// CategoryEntry is one category override, matched by name.
type CategoryEntry struct {
	Name     string   `yaml:"name"`
	Weight   float64  `yaml:"weight"`
	Keywords []string `yaml:"keywords"`
}

// LoadCategories loads a category override file.
func LoadCategories(path string) (*Categories, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cats Categories
	if err := yaml.Unmarshal(data, &cats); err != nil {
		return nil, err
	}

	return &cats, nil
}
