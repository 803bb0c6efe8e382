package kcalbot

import (
	"fmt"
	"testing"
)

type fakeFileReader map[string][]byte

func (f fakeFileReader) ReadFile(path string) ([]byte, error) {
	data, ok := f[path]
	if !ok {
		return nil, fmt.Errorf("open %s: no such file", path)
	}
	return data, nil
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(fakeFileReader{}, "")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.HTTPPort != 8080 {
		t.Errorf("HTTPPort = %d, want 8080", cfg.HTTPPort)
	}
	if cfg.Transport != "console" {
		t.Errorf("Transport = %q, want console", cfg.Transport)
	}
	if cfg.Estimator.Enabled {
		t.Error("estimator must be off by default")
	}
	if cfg.Conversation.PendingTTLSeconds != 300 {
		t.Errorf("PendingTTLSeconds = %d, want 300", cfg.Conversation.PendingTTLSeconds)
	}
	if cfg.DailyResetCron != "0 0 * * *" {
		t.Errorf("DailyResetCron = %q, want midnight", cfg.DailyResetCron)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	fr := fakeFileReader{
		"kcalbot.yaml": []byte(`
http_port: 9090
transport: channel
estimator:
  enabled: true
  provider: gemini
  timeout_seconds: 10
conversation:
  pending_ttl_seconds: 60
`),
	}

	cfg, err := LoadConfig(fr, "kcalbot.yaml")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.HTTPPort != 9090 {
		t.Errorf("HTTPPort = %d, want 9090", cfg.HTTPPort)
	}
	if cfg.Transport != "channel" {
		t.Errorf("Transport = %q, want channel", cfg.Transport)
	}
	if !cfg.Estimator.Enabled || cfg.Estimator.Provider != "gemini" {
		t.Errorf("estimator = %+v, want enabled gemini", cfg.Estimator)
	}
	if cfg.Estimator.TimeoutSeconds != 10 {
		t.Errorf("TimeoutSeconds = %d, want 10", cfg.Estimator.TimeoutSeconds)
	}
	if cfg.Conversation.PendingTTLSeconds != 60 {
		t.Errorf("PendingTTLSeconds = %d, want 60", cfg.Conversation.PendingTTLSeconds)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad port", "http_port: -1"},
		{"unknown transport", "transport: telegram"},
		{"estimator without provider", "estimator:\n  enabled: true\n  provider: \"\""},
		{"malformed yaml", "transport: [unclosed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fr := fakeFileReader{"c.yaml": []byte(tt.yaml)}
			if _, err := LoadConfig(fr, "c.yaml"); err == nil {
				t.Error("LoadConfig accepted invalid config")
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(fakeFileReader{}, "nope.yaml"); err == nil {
		t.Error("LoadConfig must fail on a missing explicit config file")
	}
}
