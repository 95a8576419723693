package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
		},
		"geocoding": map[string]any{
			"userAgent": "",
			"cacheTtl":  "24h",
		},
		"routing": map[string]any{
			"maxTwoOptPasses": 1000,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "GEOCODING_USERAGENT", want: "geocoding.userAgent"},
		{envKey: "GEOCODING_CACHETTL", want: "geocoding.cacheTtl"},
		{envKey: "ROUTING_MAXTWOOPTPASSES", want: "routing.maxTwoOptPasses"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "OUTBOX__ENABLED", want: "outbox.enabled"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

type testConfig struct {
	Routing struct {
		DefaultSpeedKmh  float64       `yaml:"defaultSpeedKmh"`
		TwoOptTimeBudget time.Duration `yaml:"twoOptTimeBudget"`
	} `yaml:"routing"`
	Geocoding struct {
		UserAgent string `yaml:"userAgent"`
	} `yaml:"geocoding"`
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `routing:
  defaultSpeedKmh: 30
  twoOptTimeBudget: 2s
geocoding:
  userAgent: from-yaml
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unit.yaml"), []byte(yamlBody), 0o644))

	t.Chdir(dir)
	t.Setenv("GEOCODING_USERAGENT", "from-env")

	cfg, err := LoadWithEnv[testConfig]("unit")
	require.NoError(t, err)

	assert.InDelta(t, 30.0, cfg.Routing.DefaultSpeedKmh, 1e-9)
	assert.Equal(t, 2*time.Second, cfg.Routing.TwoOptTimeBudget)
	assert.Equal(t, "from-env", cfg.Geocoding.UserAgent)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[testConfig]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestLoadWithEnv_ShippedConfig(t *testing.T) {
	t.Setenv("SECRETKEY_ACCESS", "")

	cfg, err := LoadWithEnv[Config](defaultConfigName)
	require.NoError(t, err)

	// The signing secret has no usable default; it must come from the environment.
	assert.Empty(t, cfg.SecretKey.Access)

	require.NotNil(t, cfg.Routing)
	assert.Equal(t, 10, cfg.Routing.MaxReverseLookups)
	require.NotNil(t, cfg.DatabaseLog)
	assert.Equal(t, 200*time.Millisecond, cfg.DatabaseLog.SlowQueryThreshold)
}
