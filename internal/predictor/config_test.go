package predictor

import (
	"testing"
	"time"
)

func TestConfigFromEnv_Timeout(t *testing.T) {
	t.Setenv("STRESSWATCH_ML_TIMEOUT", "250ms")

	cfg := ConfigFromEnv()
	if cfg.Timeout != 250*time.Millisecond {
		t.Errorf("expected 250ms timeout, got %v", cfg.Timeout)
	}
}

func TestConfigFromEnv_TimeoutDefault(t *testing.T) {
	t.Setenv("STRESSWATCH_ML_TIMEOUT", "")

	cfg := ConfigFromEnv()
	if cfg.Timeout != 15*time.Second {
		t.Errorf("expected 15s default, got %v", cfg.Timeout)
	}
}

func TestConfigFromEnv_InvalidTimeoutIgnored(t *testing.T) {
	t.Setenv("STRESSWATCH_ML_TIMEOUT", "soon")

	cfg := ConfigFromEnv()
	if cfg.Timeout != 15*time.Second {
		t.Errorf("invalid duration must keep the default, got %v", cfg.Timeout)
	}
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "oracle"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}
