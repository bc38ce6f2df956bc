package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrMissingCredential is returned when a collection run has no DART API key.
var ErrMissingCredential = errors.New("dart api key is required (set DART_API_KEY)")

type Config struct {
	Environment string `yaml:"environment" default:"development" validate:"required"`
	Log         struct {
		Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
		Format string `yaml:"format" default:"console" validate:"oneof=console json"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`
	DART struct {
		APIKey           string        `yaml:"api_key"`
		BaseURL          string        `yaml:"base_url" default:"https://opendart.fss.or.kr/api" validate:"required,url"`
		RequestTimeout   time.Duration `yaml:"request_timeout" default:"10s" validate:"gt=0"`
		DirectoryTimeout time.Duration `yaml:"directory_timeout" default:"30s" validate:"gt=0"`
		RequestDelay     time.Duration `yaml:"request_delay" default:"100ms" validate:"gte=0"`
	} `yaml:"dart"`
	Collect struct {
		RegistryPath string `yaml:"registry_path" default:"config/registry.yaml" validate:"required"`
		WindowDays   int    `yaml:"window_days" default:"90" validate:"gt=0"`
		Period       string `yaml:"period" default:"3M" validate:"required"`
	} `yaml:"collect"`
	Output struct {
		Path            string `yaml:"path" default:"data/insider.json" validate:"required"`
		TradesLimit     int    `yaml:"trades_limit" default:"500" validate:"gt=0"`
		HotStocksLimit  int    `yaml:"hot_stocks_limit" default:"20" validate:"gt=0"`
		BigPlayersLimit int    `yaml:"big_players_limit" default:"20" validate:"gt=0"`
	} `yaml:"output"`
	Cache struct {
		Backend string        `yaml:"backend" default:"file" validate:"oneof=none memory file redis"`
		TTL     time.Duration `yaml:"ttl" default:"24h" validate:"gt=0"`
		Dir     string        `yaml:"dir" default:"data/cache"`
		Redis   struct {
			Addr     string `yaml:"addr" default:"localhost:6379"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix" default:"insiderpull"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	ClickHouse struct {
		Enabled          bool          `yaml:"enabled"`
		Host             string        `yaml:"host" default:"localhost"`
		Port             int           `yaml:"port" default:"9000"`
		Database         string        `yaml:"database" default:"insider"`
		Table            string        `yaml:"table" default:"trades_latest"`
		User             string        `yaml:"user" default:"default"`
		Password         string        `yaml:"password"`
		UseHTTP          bool          `yaml:"use_http"`
		DialTimeout      time.Duration `yaml:"dial_timeout" default:"5s"`
		ReadTimeout      time.Duration `yaml:"read_timeout" default:"10s"`
		MaxExecutionTime time.Duration `yaml:"max_execution_time" default:"60s"`
	} `yaml:"clickhouse"`
	Kafka struct {
		Enabled      bool          `yaml:"enabled"`
		Brokers      []string      `yaml:"brokers"`
		ReportTopic  string        `yaml:"report_topic" default:"insider.report"`
		RecordsTopic string        `yaml:"records_topic" default:"insider.trades"`
		RequiredAcks int           `yaml:"required_acks" default:"-1"`
		Compression  string        `yaml:"compression" default:"gzip" validate:"oneof=none gzip snappy lz4 zstd"`
		MaxAttempts  int           `yaml:"max_attempts" default:"3"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"10s"`
	} `yaml:"kafka"`
	Server struct {
		Port            int           `yaml:"port" default:"8080" validate:"gt=0,lt=65536"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"15s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"15s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
	} `yaml:"server"`
	Metrics struct {
		PushgatewayURL string `yaml:"pushgateway_url"`
		Job            string `yaml:"job" default:"insiderpull"`
	} `yaml:"metrics"`
}

// Default returns a configuration populated only from struct defaults.
func Default() (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	return &c, nil
}

// Load reads and parses a YAML configuration file on top of the defaults.
func Load(path string) (*Config, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
// A .env file in the working directory is loaded first when present.
func LoadWithEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("DART_API_KEY"); v != "" {
		c.DART.APIKey = v
	}
	if v := os.Getenv("INSIDER_REGISTRY"); v != "" {
		c.Collect.RegistryPath = v
	}
	if v := os.Getenv("INSIDER_OUTPUT"); v != "" {
		c.Output.Path = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("CLICKHOUSE_HOST"); v != "" {
		c.ClickHouse.Host = v
	}
	if v := os.Getenv("PUSHGATEWAY_URL"); v != "" {
		c.Metrics.PushgatewayURL = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers cannot be empty when kafka is enabled")
	}
	if c.ClickHouse.Enabled && c.ClickHouse.Host == "" {
		return fmt.Errorf("clickhouse.host is required when clickhouse is enabled")
	}
	if c.Cache.Backend == "redis" && c.Cache.Redis.Addr == "" {
		return fmt.Errorf("cache.redis.addr is required for the redis backend")
	}
	if c.Cache.Backend == "file" && c.Cache.Dir == "" {
		return fmt.Errorf("cache.dir is required for the file backend")
	}
	return nil
}

// RequireCredential reports ErrMissingCredential when no DART API key is configured.
func (c *Config) RequireCredential() error {
	if strings.TrimSpace(c.DART.APIKey) == "" {
		return ErrMissingCredential
	}
	return nil
}
