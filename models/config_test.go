package models

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "no-such-config.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Listen != DefaultListen {
		t.Errorf("Listen = %q, want %q", cfg.Listen, DefaultListen)
	}
	if cfg.HistoryDB != DefaultHistoryDB {
		t.Errorf("HistoryDB = %q, want %q", cfg.HistoryDB, DefaultHistoryDB)
	}
	if cfg.CommunityTTL != DefaultCommunityTTL {
		t.Errorf("CommunityTTL = %v, want %v", cfg.CommunityTTL, DefaultCommunityTTL)
	}
	if cfg.TopN != DefaultTopN {
		t.Errorf("TopN = %d, want %d", cfg.TopN, DefaultTopN)
	}
	if cfg.IndustryMapping != "" || cfg.SolutionsCorpus != "" {
		t.Errorf("override paths should stay empty, got %q / %q", cfg.IndustryMapping, cfg.SolutionsCorpus)
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "listen: \":9090\"\nhistory_db: custom.db\ncommunity_ttl: 1h\ntop_n: 5\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Listen != ":9090" {
		t.Errorf("Listen = %q, want :9090", cfg.Listen)
	}
	if cfg.HistoryDB != "custom.db" {
		t.Errorf("HistoryDB = %q, want custom.db", cfg.HistoryDB)
	}
	if cfg.CommunityTTL != time.Hour {
		t.Errorf("CommunityTTL = %v, want 1h", cfg.CommunityTTL)
	}
	if cfg.TopN != 5 {
		t.Errorf("TopN = %d, want 5", cfg.TopN)
	}
	if cfg.CommunityBaseURL != DefaultCommunityBaseURL {
		t.Errorf("unset field should default, got %q", cfg.CommunityBaseURL)
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("listen: [unclosed"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig() expected error for malformed YAML")
	}
}
