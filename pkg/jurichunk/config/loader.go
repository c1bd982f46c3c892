package config

import (
	"fmt"

	"github.com/cognicore/jurichunk/pkg/jurichunk/internalerr"
	"github.com/cognicore/jurichunk/pkg/jurichunk/registry"
)

// Loader builds a registry from the built-in defaults plus optional
// override files. Empty paths keep the defaults.
type Loader struct {
	KeywordsPath   string
	CategoriesPath string
}

// Load returns the assembled registry.
func (l *Loader) Load() (*registry.Registry, error) {
	reg := registry.Default()

	if l.KeywordsPath != "" {
		kw, err := LoadKeywords(l.KeywordsPath)
		if err != nil {
			return nil, fmt.Errorf("load keywords: %w", err)
		}
		if len(kw.Tiers) > 0 {
			tiers := make([]registry.KeywordTier, len(kw.Tiers))
			for i, entry := range kw.Tiers {
				if entry.Word == "" || entry.Tier < 1 || entry.Tier > 3 {
					return nil, fmt.Errorf("%w: keyword %q tier %d", internalerr.ErrInvalidConfig, entry.Word, entry.Tier)
				}
				tiers[i] = registry.KeywordTier{Word: entry.Word, Tier: entry.Tier}
			}
			reg.QualityKeywords = tiers
		}
	}

	if l.CategoriesPath != "" {
		cats, err := LoadCategories(l.CategoriesPath)
		if err != nil {
			return nil, fmt.Errorf("load categories: %w", err)
		}
		for _, entry := range cats.Categories {
			if entry.Weight < 0 {
				return nil, fmt.Errorf("%w: category %q has negative weight", internalerr.ErrInvalidConfig, entry.Name)
			}
			for i := range reg.Categories {
				if string(reg.Categories[i].Name) != entry.Name {
					continue
				}
				if entry.Weight > 0 {
					reg.Categories[i].Weight = entry.Weight
				}
				if len(entry.Keywords) > 0 {
					reg.Categories[i].Keywords = entry.Keywords
				}
			}
		}
	}

	return reg, nil
}
