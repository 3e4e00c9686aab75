package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"newsdeck/domain"
)

// LoadSectionsFile reads a YAML file listing the sections to scrape:
//
//	sections:
//	  - label: Tech latest
//	    url: https://example.com/Tech?type=ln
func LoadSectionsFile(path string) ([]domain.NewsSection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc struct {
		Sections []domain.NewsSection `yaml:"sections"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if len(doc.Sections) == 0 {
		return nil, fmt.Errorf("%s lists no sections", path)
	}
	for i, section := range doc.Sections {
		if section.Label == "" || section.URL == "" {
			return nil, fmt.Errorf("%s: section %d needs both label and url", path, i)
		}
	}

	return doc.Sections, nil
}
