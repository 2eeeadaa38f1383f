package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/tetherhq/tether/pkg/config"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name   string
		cfg    config.LoggingConfig
		level  zapcore.Level
	}{
		{
			name:  "json info",
			cfg:   config.LoggingConfig{Level: "INFO", Format: "json"},
			level: zapcore.InfoLevel,
		},
		{
			name:  "text debug",
			cfg:   config.LoggingConfig{Level: "DEBUG", Format: "text"},
			level: zapcore.DebugLevel,
		},
		{
			name:  "unknown level falls back to info",
			cfg:   config.LoggingConfig{Level: "LOUD", Format: "json"},
			level: zapcore.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldLogger := Logger
			defer func() { Logger = oldLogger }()

			if err := InitLogger(&tt.cfg); err != nil {
				t.Fatalf("InitLogger() error: %v", err)
			}
			if Logger == nil {
				t.Fatal("InitLogger() left Logger nil")
			}
			if !Logger.Core().Enabled(tt.level) {
				t.Errorf("Logger should be enabled at %v", tt.level)
			}
		})
	}
}

func TestGetLoggerFallback(t *testing.T) {
	oldLogger := Logger
	defer func() { Logger = oldLogger }()

	Logger = nil
	if GetLogger() == nil {
		t.Error("GetLogger() should never return nil")
	}
}
