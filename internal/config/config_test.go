package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeConfigFile drops a config.yaml with a symbols list into a temp working
// directory, since symbols are only read from the config file.
func writeConfigFile(t *testing.T, contents string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change working directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Fatalf("failed to restore working directory: %v", err)
		}
	})
}

func TestLoad_Success(t *testing.T) {
	writeConfigFile(t, "symbols:\n  - AAPL\n  - MSFT\n")

	envVars := map[string]string{
		"FROM_DATE":      "2024-01-01",
		"TO_DATE":        "2024-06-01",
		"INTERVAL":       "1wk",
		"YAHOO_BASE_URL": "https://test.example.com/download",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"FromDate", cfg.FromDate, "2024-01-01"},
		{"ToDate", cfg.ToDate, "2024-06-01"},
		{"Interval", cfg.Interval, "1wk"},
		{"YahooBaseURL", cfg.YahooBaseURL, "https://test.example.com/download"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}

	if len(cfg.Symbols) != 2 || cfg.Symbols[0] != "AAPL" || cfg.Symbols[1] != "MSFT" {
		t.Errorf("Symbols = %v, want [AAPL MSFT]", cfg.Symbols)
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	writeConfigFile(t, "symbols:\n  - AAPL\n")

	t.Setenv("FROM_DATE", "2024-01-01")
	t.Setenv("TO_DATE", "2024-06-01")

	// Ensure optional env vars are unset
	os.Unsetenv("YAHOO_BASE_URL")
	os.Unsetenv("INTERVAL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.YahooBaseURL != "https://query1.finance.yahoo.com/v7/finance/download" {
		t.Errorf("YahooBaseURL = %q, want the production default", cfg.YahooBaseURL)
	}
	if cfg.Interval != "1d" {
		t.Errorf("Interval = %q, want default %q", cfg.Interval, "1d")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name        string
		fileYAML    string
		setupEnv    map[string]string
		wantErrText string
	}{
		{
			name:        "missing everything",
			fileYAML:    "",
			setupEnv:    map[string]string{},
			wantErrText: "missing required configuration",
		},
		{
			name:     "missing symbols",
			fileYAML: "",
			setupEnv: map[string]string{
				"FROM_DATE": "2024-01-01",
				"TO_DATE":   "2024-06-01",
			},
			wantErrText: "symbols",
		},
		{
			name:     "missing FROM_DATE",
			fileYAML: "symbols:\n  - AAPL\n",
			setupEnv: map[string]string{
				"TO_DATE": "2024-06-01",
			},
			wantErrText: "FROM_DATE",
		},
		{
			name:     "missing TO_DATE",
			fileYAML: "symbols:\n  - AAPL\n",
			setupEnv: map[string]string{
				"FROM_DATE": "2024-01-01",
			},
			wantErrText: "TO_DATE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeConfigFile(t, tt.fileYAML)

			os.Unsetenv("FROM_DATE")
			os.Unsetenv("TO_DATE")
			for key, value := range tt.setupEnv {
				t.Setenv(key, value)
			}

			_, err := Load()
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}

			if !strings.Contains(err.Error(), tt.wantErrText) {
				t.Errorf("Load() error = %q, want error containing %q", err.Error(), tt.wantErrText)
			}
		})
	}
}
