package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level       string
		environment string
		enabled     zapcore.Level
		disabled    zapcore.Level
	}{
		{level: "info", environment: "prod", enabled: zapcore.InfoLevel, disabled: zapcore.DebugLevel},
		{level: "debug", environment: "dev", enabled: zapcore.DebugLevel, disabled: zapcore.DebugLevel - 1},
		{level: "error", environment: "prod", enabled: zapcore.ErrorLevel, disabled: zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.environment, func(t *testing.T) {
			logger, err := New(tt.level, tt.environment)
			if err != nil {
				t.Fatalf("New() unexpected error: %v", err)
			}
			if !logger.Core().Enabled(tt.enabled) {
				t.Errorf("level %v should be enabled", tt.enabled)
			}
			if logger.Core().Enabled(tt.disabled) {
				t.Errorf("level %v should be disabled", tt.disabled)
			}
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New("loud", "prod"); err == nil {
		t.Errorf("New() should reject an unknown level")
	}
}
