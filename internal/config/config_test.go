package config

import (
	"log/slog"
	"testing"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "LOG_LEVEL", "BLE_ADAPTER", "DEVICE_NAME", "HTTP_ADDR", "MQTT_BROKER", "MQTT_PORT", "MQTT_CLIENT_ID"} {
		t.Setenv(k, "")
	}

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v; want nil", err)
	}
	if cfg.AppEnv != "dev" {
		t.Errorf("AppEnv = %q; want dev", cfg.AppEnv)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v; want info", cfg.LogLevel)
	}
	if cfg.BLEAdapter != "hci0" {
		t.Errorf("BLEAdapter = %q; want hci0", cfg.BLEAdapter)
	}
	if cfg.DeviceName != "xG27-Sensor" {
		t.Errorf("DeviceName = %q; want xG27-Sensor", cfg.DeviceName)
	}
	if cfg.HTTPAddr != ":5555" {
		t.Errorf("HTTPAddr = %q; want :5555", cfg.HTTPAddr)
	}
	if cfg.MQTTPort != 1883 {
		t.Errorf("MQTTPort = %d; want 1883", cfg.MQTTPort)
	}
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEVICE_NAME", "bench-node")
	t.Setenv("MQTT_PORT", "8883")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v; want nil", err)
	}
	if cfg.AppEnv != "prod" {
		t.Errorf("AppEnv = %q; want prod", cfg.AppEnv)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v; want debug", cfg.LogLevel)
	}
	if cfg.DeviceName != "bench-node" {
		t.Errorf("DeviceName = %q; want bench-node", cfg.DeviceName)
	}
	if cfg.MQTTPort != 8883 {
		t.Errorf("MQTTPort = %d; want 8883", cfg.MQTTPort)
	}
}

func TestLoadFromEnvRejectsBadValues(t *testing.T) {
	tests := []struct {
		name, key, val string
	}{
		{"bad env", "APP_ENV", "staging"},
		{"bad level", "LOG_LEVEL", "verbose"},
		{"bad port", "MQTT_PORT", "not-a-port"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			if _, err := LoadFromEnv(); err == nil {
				t.Errorf("LoadFromEnv() with %s=%q = nil; want error", tt.key, tt.val)
			}
		})
	}
}
