package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid sqlite backend",
			config:  Config{Port: "8081", DataBackend: "sqlite", SQLiteDBPath: "./test.db"},
			wantErr: false,
		},
		{
			name:    "valid memory backend",
			config:  Config{Port: "8081", DataBackend: "memory"},
			wantErr: false,
		},
		{
			name:        "invalid port - non-numeric",
			config:      Config{Port: "abc", DataBackend: "memory"},
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range low",
			config:      Config{Port: "0", DataBackend: "memory"},
			wantErr:     true,
			errorString: "invalid port 0: must be between 1 and 65535",
		},
		{
			name:        "invalid port - out of range high",
			config:      Config{Port: "70000", DataBackend: "memory"},
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "invalid backend",
			config:      Config{Port: "8081", DataBackend: "redis"},
			wantErr:     true,
			errorString: "invalid data backend 'redis'",
		},
		{
			name:        "sqlite backend without path",
			config:      Config{Port: "8081", DataBackend: "sqlite", SQLiteDBPath: ""},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty",
		},
		{
			name:        "multiple errors collected",
			config:      Config{Port: "abc", DataBackend: "redis"},
			wantErr:     true,
			errorString: "invalid port 'abc'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errorString) {
				t.Fatalf("error %q does not contain %q", err.Error(), tt.errorString)
			}
		})
	}
}

func TestConfig_ValidateCreatesDBDirectory(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		Port:         "8081",
		DataBackend:  "sqlite",
		SQLiteDBPath: filepath.Join(dir, "nested", "tinocontrol.db"),
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATA_BACKEND", "")
	t.Setenv("SQLITE_DB_PATH", "")
	cfg := Load()
	if cfg.Port != "8081" {
		t.Fatalf("default port = %s", cfg.Port)
	}
	if cfg.DataBackend != "sqlite" {
		t.Fatalf("default backend = %s", cfg.DataBackend)
	}
	if cfg.SQLiteDBPath == "" {
		t.Fatal("default sqlite path should not be empty")
	}
}
