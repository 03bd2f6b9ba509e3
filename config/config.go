package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig
	Tracing    TracingConfig

	// Concierge
	Concierge ConciergeConfig
	Session   SessionConfig
	Simulator SimulatorConfig

	// Infrastructure
	Redis     RedisConfig
	Postgres  PostgresConfig
	Retrieval RetrievalConfig
	Qdrant    QdrantConfig
	Voyage    VoyageConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	FilePath     string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

// ConciergeConfig tunes routing, retrieval and generation.
type ConciergeConfig struct {
	DefaultLocation   string
	ScopeCodes        []string
	GenerationTimeout string
	NumCandidates     int
	SearchLimit       int
	TopN              int
}

type SessionConfig struct {
	Backend         string // memory | redis
	TTL             string
	CleanupInterval string
}

type SimulatorConfig struct {
	Enabled     bool
	MinInterval string
	MaxInterval string
}

type RedisConfig struct {
	URL string
}

type PostgresConfig struct {
	DSN          string
	MaxIdleConns int
	MaxOpenConns int
}

type RetrievalConfig struct {
	Backend string // qdrant | pgvector
}

type QdrantConfig struct {
	URL            string
	CollectionName string
	VectorSize     int
}

type VoyageConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = v.GetString("logger.file_path")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.Tracing.Enabled = v.GetBool("tracing.enabled")
	cfg.Tracing.Endpoint = v.GetString("tracing.endpoint")
	cfg.Tracing.ServiceName = v.GetString("tracing.service_name")

	// Concierge
	cfg.Concierge.DefaultLocation = strings.ToUpper(v.GetString("concierge.default_location"))
	cfg.Concierge.ScopeCodes = splitList(v.GetStringSlice("concierge.scope_codes"))
	cfg.Concierge.GenerationTimeout = v.GetString("concierge.generation_timeout")
	cfg.Concierge.NumCandidates = v.GetInt("concierge.num_candidates")
	cfg.Concierge.SearchLimit = v.GetInt("concierge.search_limit")
	cfg.Concierge.TopN = v.GetInt("concierge.top_n")

	cfg.Session.Backend = v.GetString("session.backend")
	cfg.Session.TTL = v.GetString("session.ttl")
	cfg.Session.CleanupInterval = v.GetString("session.cleanup_interval")

	cfg.Simulator.Enabled = v.GetBool("simulator.enabled")
	cfg.Simulator.MinInterval = v.GetString("simulator.min_interval")
	cfg.Simulator.MaxInterval = v.GetString("simulator.max_interval")

	// Infrastructure
	cfg.Redis.URL = v.GetString("redis.url")
	if redisURL := v.GetString("redis_url"); redisURL != "" {
		cfg.Redis.URL = redisURL
	}

	cfg.Postgres.DSN = v.GetString("postgres.dsn")
	if dsn := v.GetString("postgres_dsn"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxIdleConns = v.GetInt("postgres.max_idle_conns")
	cfg.Postgres.MaxOpenConns = v.GetInt("postgres.max_open_conns")

	cfg.Retrieval.Backend = v.GetString("retrieval.backend")

	cfg.Qdrant.URL = v.GetString("qdrant.url")
	cfg.Qdrant.CollectionName = v.GetString("qdrant.collection_name")
	cfg.Qdrant.VectorSize = v.GetInt("qdrant.vector_size")
	if qdrantURL := v.GetString("qdrant_url"); qdrantURL != "" {
		cfg.Qdrant.URL = qdrantURL
	}

	cfg.Voyage.APIKey = expandEnvVar(v, v.GetString("voyage.api_key"))
	cfg.Voyage.Model = v.GetString("voyage.model")
	cfg.Voyage.BaseURL = v.GetString("voyage.base_url")
	if voyageKey := v.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Voyage.APIKey = voyageKey
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	// Providers are optional: without one the concierge answers from templates.
	if len(cfg.LLM.Providers) > 0 {
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return nil, fmt.Errorf("invalid llm config: %w", err)
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 120)
	v.SetDefault("tracing.service_name", "layover-os")
	v.SetDefault("tracing.endpoint", "localhost:4318")

	v.SetDefault("concierge.default_location", "SFO")
	v.SetDefault("concierge.scope_codes", []string{"SFO", "JFK", "DEN"})
	v.SetDefault("concierge.generation_timeout", "15s")
	v.SetDefault("concierge.num_candidates", 100)
	v.SetDefault("concierge.search_limit", 10)
	v.SetDefault("concierge.top_n", 3)

	v.SetDefault("session.backend", "memory")
	v.SetDefault("session.ttl", "24h")
	v.SetDefault("session.cleanup_interval", "10m")

	v.SetDefault("simulator.enabled", false)
	v.SetDefault("simulator.min_interval", "2s")
	v.SetDefault("simulator.max_interval", "4s")

	v.SetDefault("postgres.max_idle_conns", 10)
	v.SetDefault("postgres.max_open_conns", 100)

	v.SetDefault("retrieval.backend", "qdrant")
	v.SetDefault("qdrant.url", "http://localhost:6333")
	v.SetDefault("qdrant.collection_name", "amenities")
	v.SetDefault("qdrant.vector_size", 1024)

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 2)
	v.SetDefault("llm.retry_delay", "500ms")
	v.SetDefault("llm.max_total_timeout", "30s")
}

func validate(cfg *Config) error {
	switch cfg.Session.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
	if cfg.Session.Backend == "redis" && cfg.Redis.URL == "" {
		return fmt.Errorf("session backend redis requires redis.url")
	}

	switch cfg.Retrieval.Backend {
	case "qdrant", "pgvector":
	default:
		return fmt.Errorf("unknown retrieval backend %q", cfg.Retrieval.Backend)
	}

	if len(cfg.Concierge.ScopeCodes) == 0 {
		return fmt.Errorf("concierge.scope_codes must not be empty")
	}
	return nil
}

// splitList normalizes a list that may arrive as a single comma-separated env value.
func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			part = strings.ToUpper(strings.TrimSpace(part))
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		return os.Getenv(envVar)
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
