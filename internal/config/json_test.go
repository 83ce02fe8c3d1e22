package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSONConfig(t, `{
		"app": {"version": "2.1.0"},
		"adapter": {"server_url": "https://api.example.org", "request_timeout": "25s"},
		"storage": {"db": {"dsn": "/data/offline.db"}},
		"workers": {"sync_interval": "1m", "probe_interval": "20s"},
		"facade": {"address": "127.0.0.1:7600"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "2.1.0", cfg.App.Version)
	assert.Equal(t, "https://api.example.org", cfg.Adapter.ServerURL)
	assert.Equal(t, 25*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/data/offline.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 20*time.Second, cfg.Workers.ProbeInterval)
	assert.Equal(t, "127.0.0.1:7600", cfg.Facade.Address)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON("/no/such/path.json")
	assert.Nil(t, cfg)
	require.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeTempJSONConfig(t, `{"adapter": `)

	cfg, err := parseJSON(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
}

// ── Duration ──────────────────────────────────────────────────────────────────

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"string form", `"30s"`, 30 * time.Second, false},
		{"compound string", `"1h30m"`, 90 * time.Minute, false},
		{"numeric nanoseconds", `1000000000`, time.Second, false},
		{"garbage string", `"soon"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(Duration(45 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"45s"`, string(out))
}
