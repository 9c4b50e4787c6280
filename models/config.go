// Package models defines data structures shared across the consultant pipeline.
package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds process-wide settings. Everything is optional; zero values fall
// back to the defaults below. CLI flags override file values.
type Config struct {
	Listen           string        `yaml:"listen"`
	HistoryDB        string        `yaml:"history_db"`
	IndustryMapping  string        `yaml:"industry_mapping"` // override path, empty = embedded table
	SolutionsCorpus  string        `yaml:"solutions_corpus"` // override path, empty = embedded corpus
	CommunityBaseURL string        `yaml:"community_base_url"`
	CommunityCache   string        `yaml:"community_cache"`
	CommunityTTL     time.Duration `yaml:"community_ttl"`
	TopN             int           `yaml:"top_n"`
}

const (
	DefaultListen           = ":8080"
	DefaultHistoryDB        = "consultant.db"
	DefaultCommunityBaseURL = "https://api.n8n.io/api"
	DefaultCommunityCache   = ".community-cache"
	DefaultCommunityTTL     = 24 * time.Hour
	DefaultTopN             = 3
)

// UnmarshalYAML parses the duration field from the usual "24h" string form,
// which yaml.v3 does not do for time.Duration on its own.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	type rawConfig struct {
		Listen           string `yaml:"listen"`
		HistoryDB        string `yaml:"history_db"`
		IndustryMapping  string `yaml:"industry_mapping"`
		SolutionsCorpus  string `yaml:"solutions_corpus"`
		CommunityBaseURL string `yaml:"community_base_url"`
		CommunityTTL     string `yaml:"community_ttl"`
		CommunityCache   string `yaml:"community_cache"`
		TopN             int    `yaml:"top_n"`
	}

	var raw rawConfig
	if err := value.Decode(&raw); err != nil {
		return err
	}

	c.Listen = raw.Listen
	c.HistoryDB = raw.HistoryDB
	c.IndustryMapping = raw.IndustryMapping
	c.SolutionsCorpus = raw.SolutionsCorpus
	c.CommunityBaseURL = raw.CommunityBaseURL
	c.CommunityCache = raw.CommunityCache
	c.TopN = raw.TopN

	if raw.CommunityTTL != "" {
		ttl, err := time.ParseDuration(raw.CommunityTTL)
		if err != nil {
			return fmt.Errorf("invalid community_ttl duration: %w", err)
		}
		c.CommunityTTL = ttl
	}
	return nil
}

// LoadConfig reads a YAML config file and applies defaults. A missing file is
// not an error: the defaults alone are a complete configuration.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if c.HistoryDB == "" {
		c.HistoryDB = DefaultHistoryDB
	}
	if c.CommunityBaseURL == "" {
		c.CommunityBaseURL = DefaultCommunityBaseURL
	}
	if c.CommunityCache == "" {
		c.CommunityCache = DefaultCommunityCache
	}
	if c.CommunityTTL == 0 {
		c.CommunityTTL = DefaultCommunityTTL
	}
	if c.TopN == 0 {
		c.TopN = DefaultTopN
	}
}
