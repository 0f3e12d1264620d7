package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Feed is one RSS/Atom feed used by the general news fallback.
type Feed struct {
	Name       string   `yaml:"name"`
	URL        string   `yaml:"url"`
	Categories []string `yaml:"categories"`
}

// FeedsConfig is the layout of FALLBACK_FEEDS_FILE.
//
//	feeds:
//	  - name: Reuters Business
//	    url: https://example.com/business.rss
//	    categories: [business]
type FeedsConfig struct {
	Feeds []Feed `yaml:"feeds"`
}

// LoadFeeds reads the fallback feed list from a YAML file.
// The path comes from deployment configuration, not request input.
func LoadFeeds(path string) ([]Feed, error) {
	// #nosec G304 -- path is provided by trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feeds file: %w", err)
	}

	var cfg FeedsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse feeds file: %w", err)
	}

	if err := validateFeeds(cfg.Feeds); err != nil {
		return nil, fmt.Errorf("feeds validation failed: %w", err)
	}

	for i := range cfg.Feeds {
		for j, c := range cfg.Feeds[i].Categories {
			cfg.Feeds[i].Categories[j] = strings.ToLower(strings.TrimSpace(c))
		}
	}
	return cfg.Feeds, nil
}

func validateFeeds(feeds []Feed) error {
	for i, f := range feeds {
		if f.URL == "" {
			return fmt.Errorf("feed %d: url is required", i)
		}
		if !strings.HasPrefix(f.URL, "http://") && !strings.HasPrefix(f.URL, "https://") {
			return fmt.Errorf("feed %d: url must be http or https", i)
		}
	}
	return nil
}
