package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultConfigName         = "config"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	DatabaseLog *DatabaseLogConfig `json:"databaseLog" yaml:"databaseLog"`

	// AutoMigrate creates or updates the report and outbox tables at startup.
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Routing *RoutingConfig `json:"routing" yaml:"routing"`

	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Outbox *OutboxConfig `json:"outbox" yaml:"outbox"`

	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseLogConfig controls how GORM statements are logged.
type DatabaseLogConfig struct {
	// Statements slower than this are logged at WARN. Negative disables slow-query logging.
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`

	// LogIdlePolls keeps outbox polls that matched no rows in the debug query log.
	LogIdlePolls bool `json:"logIdlePolls" yaml:"logIdlePolls"`
}

// RoutingConfig tunes the collection route optimizer.
type RoutingConfig struct {
	// Average collection vehicle speed used for the time estimate.
	DefaultSpeedKmh float64 `json:"defaultSpeedKmh" yaml:"defaultSpeedKmh"`

	// 2-opt runs only when the route has more points than this.
	TwoOptThreshold int `json:"twoOptThreshold" yaml:"twoOptThreshold"`

	// Maximum number of 2-opt passes. Negative disables the cap.
	MaxTwoOptPasses int `json:"maxTwoOptPasses" yaml:"maxTwoOptPasses"`

	// Wall-clock budget for 2-opt. Negative disables the budget.
	TwoOptTimeBudget time.Duration `json:"twoOptTimeBudget" yaml:"twoOptTimeBudget"`

	// Reverse geocoding calls allowed per request for reports without an address.
	// Negative removes the limit.
	MaxReverseLookups int `json:"maxReverseLookups" yaml:"maxReverseLookups"`
}

// GeocodingConfig configures the Nominatim client and its cache.
type GeocodingConfig struct {
	BaseURL   string `json:"baseUrl" yaml:"baseUrl"`
	UserAgent string `json:"userAgent" yaml:"userAgent"`
	Email     string `json:"email" yaml:"email"`

	// Nominatim's public instance allows one request per second.
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int     `json:"burst" yaml:"burst"`

	Timeout        time.Duration `json:"timeout" yaml:"timeout"`
	MaxAttempts    int           `json:"maxAttempts" yaml:"maxAttempts"`
	InitialBackoff time.Duration `json:"initialBackoff" yaml:"initialBackoff"`

	// CacheTTL is how long geocoding results stay in Redis. Zero disables caching.
	CacheTTL time.Duration `json:"cacheTtl" yaml:"cacheTtl"`
}

// RedisConfig defines the Redis connection used for caching.
type RedisConfig struct {
	// URL takes precedence over Addr when set, e.g. redis://:pass@localhost:6379/0
	URL      string `json:"url" yaml:"url"`
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// OutboxConfig controls the event outbox and its dispatcher.
type OutboxConfig struct {
	Enabled      bool          `json:"enabled" yaml:"enabled"`
	PollInterval time.Duration `json:"pollInterval" yaml:"pollInterval"`
	BatchSize    int           `json:"batchSize" yaml:"batchSize"`
	MaxAttempts  int           `json:"maxAttempts" yaml:"maxAttempts"`
	BaseBackoff  time.Duration `json:"baseBackoff" yaml:"baseBackoff"`
	MaxBackoff   time.Duration `json:"maxBackoff" yaml:"maxBackoff"`
}

// QRCodeConfig defines route QR code generation
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads <currEnv>.yaml through koanf and overlays environment variables.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	configFile, err := findConfigFile(currEnv, configPath)
	if err != nil {
		return nil, err
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// GEOCODING_USERAGENT -> geocoding.userAgent, matching the YAML key casing.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(currEnv string, configPath []string) (string, error) {
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", currEnv)
}

func New() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	cfg, err := LoadWithEnv[Config](defaultConfigName, "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// loadDotEnv reads a local .env into the process environment, if present.
// Variables that are already set win over the file.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return errors.Wrap(err, "load .env failed")
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		matched, next, ok := findExistingSegment(current, segment)
		if !ok {
			canonical = append(canonical, segment)
			current = nil

			continue
		}

		canonical = append(canonical, matched)
		current = next
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			normalized.WriteRune(unicode.ToLower(r))
		}
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index without a host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}
}
