package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"INFO", zapcore.InfoLevel, false},
		{"", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestInit_File(t *testing.T) {
	oldL, oldZ := L, Z
	t.Cleanup(func() { L, Z = oldL, oldZ })

	path := filepath.Join(t.TempDir(), "logs", "g2p.log")
	if err := Init(Config{Level: "info", Format: "json", File: path}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	Infof("[test] hello %d", 42)
	Debugf("[test] hidden")
	Named("frontend").Info("named")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "[test] hello 42") {
		t.Errorf("log file missing info message: %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message should be filtered at info level: %s", out)
	}
	if !strings.Contains(out, `"N":"frontend"`) {
		t.Errorf("named logger should carry its name: %s", out)
	}
}

func TestInit_InvalidFormat(t *testing.T) {
	if err := Init(Config{Level: "info", Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}
