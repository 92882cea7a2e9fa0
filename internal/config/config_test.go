package config

import (
	"os"
	"testing"
)

func TestReadDefaults(t *testing.T) {
	for _, key := range []string{"WINDOW_DAYS", "BASELINE_THRESHOLD"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if cfg.WindowDays != 28 {
		t.Errorf("WindowDays = %d, want 28", cfg.WindowDays)
	}
	if cfg.BaselineThreshold != 7 {
		t.Errorf("BaselineThreshold = %d, want 7", cfg.BaselineThreshold)
	}
}

func TestReadBaselineThreshold(t *testing.T) {
	t.Setenv("WINDOW_DAYS", "14")
	t.Setenv("BASELINE_THRESHOLD", "5")

	cfg, err := Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if cfg.WindowDays != 14 {
		t.Errorf("WindowDays = %d, want 14", cfg.WindowDays)
	}
	if cfg.BaselineThreshold != 5 {
		t.Errorf("BaselineThreshold = %d, want 5", cfg.BaselineThreshold)
	}
}
