package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result, with earlier entries winning.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{ServerURL: "http://first"}},
		&StructuredConfig{
			Adapter: Adapter{ServerURL: "http://second", RequestTimeout: 5 * time.Second},
			Workers: Workers{SyncInterval: time.Minute},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://first", cfg.Adapter.ServerURL)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("ADAPTER_SERVER_URL", "http://from-env")
	t.Setenv("FACADE_ADDRESS", "127.0.0.1:9999")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://from-env", b.configs[0].Adapter.ServerURL)
	assert.Equal(t, "127.0.0.1:9999", b.configs[0].Facade.Address)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPathIsNoOp verifies that withJSON appends nothing when no
// prior source carries a JSON path.
func TestWithJSON_NoPathIsNoOp(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_MissingFileSetsError verifies that an unreadable JSON file is
// recorded on the builder and surfaces from build.
func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/file.json"})
	b.withJSON()

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

// TestWithDefaults_FillsEveryRequiredField verifies that defaults alone
// produce a config that passes client validation.
func TestWithDefaults_FillsEveryRequiredField(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{ServerURL: cfg.Adapter.ServerURL, RequestTimeout: cfg.Adapter.RequestTimeout},
		Storage: ClientStorage{DB: ClientDB{DSN: cfg.Storage.DB.DSN}},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval, ProbeInterval: cfg.Workers.ProbeInterval},
		Facade:  ClientFacade{Address: cfg.Facade.Address},
	}
	assert.NoError(t, clientCfg.validate())
}

// TestWithDefaults_LosesToEarlierSources verifies that defaults never
// override an explicitly configured value.
func TestWithDefaults_LosesToEarlierSources(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Adapter: Adapter{ServerURL: "http://explicit"},
	})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://explicit", cfg.Adapter.ServerURL)
	// untouched fields still come from defaults
	assert.Equal(t, 30*time.Second, cfg.Workers.SyncInterval)
}

// ── ClientConfig.validate ─────────────────────────────────────────────────────

func TestClientConfigValidate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			Adapter: ClientAdapter{ServerURL: "http://localhost:4000", RequestTimeout: 15 * time.Second},
			Storage: ClientStorage{DB: ClientDB{DSN: "offline.db"}},
			Workers: ClientWorkers{SyncInterval: 30 * time.Second, ProbeInterval: 15 * time.Second},
			Facade:  ClientFacade{Address: "127.0.0.1:7411"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		wantErr error
	}{
		{"valid", func(c *ClientConfig) {}, nil},
		{"empty dsn", func(c *ClientConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"in-memory dsn", func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, ErrInvalidStorageConfigs},
		{"empty server url", func(c *ClientConfig) { c.Adapter.ServerURL = "" }, ErrInvalidAdapterConfigs},
		{"zero timeout", func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"zero sync interval", func(c *ClientConfig) { c.Workers.SyncInterval = 0 }, ErrInvalidWorkerConfigs},
		{"zero probe interval", func(c *ClientConfig) { c.Workers.ProbeInterval = 0 }, ErrInvalidWorkerConfigs},
		{"empty facade address", func(c *ClientConfig) { c.Facade.Address = "" }, ErrInvalidFacadeConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
