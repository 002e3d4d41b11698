package config

import "fmt"

type Config struct {
	App           AppConfig               `mapstructure:"app"`
	Camunda       CamundaConfig           `mapstructure:"camunda"`
	Generation    GenerationConfig        `mapstructure:"generation"`
	Store         StoreConfig             `mapstructure:"store"`
	Database      DatabaseConfig          `mapstructure:"database"`
	Workers       map[string]WorkerConfig `mapstructure:"workers"`
	Logging       LoggingConfig           `mapstructure:"logging"`
	Metrics       MetricsConfig           `mapstructure:"metrics"`
	Notifications NotificationConfig      `mapstructure:"notifications"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type CamundaConfig struct {
	BrokerAddress  string `mapstructure:"broker_address"`
	MaxJobsActive  int    `mapstructure:"max_jobs_active"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

// GenerationConfig drives the router backends and the tracker.
type GenerationConfig struct {
	// Backend is "http" (remote generation service) or "local" (in-process assembly).
	Backend          string            `mapstructure:"backend"`
	BaseURL          string            `mapstructure:"base_url"`
	APIKey           string            `mapstructure:"api_key"`
	Timeout          int               `mapstructure:"timeout"`       // milliseconds
	PhaseTimeout     int               `mapstructure:"phase_timeout"` // milliseconds, deploy and cleanup; 0 disables
	ProjectsDir      string            `mapstructure:"projects_dir"`
	Renderer         string            `mapstructure:"renderer"`
	PresetsPath      string            `mapstructure:"presets_path"`
	BatchConcurrency int               `mapstructure:"batch_concurrency"`
	EnableRebuild    bool              `mapstructure:"enable_rebuild"`
	Auth             ServiceAuthConfig `mapstructure:"auth"`
}

// ServiceAuthConfig enables client-credentials tokens for the http backend.
// Either token_url or keycloak_url plus realm locate the token endpoint.
type ServiceAuthConfig struct {
	TokenURL     string   `mapstructure:"token_url"`
	KeycloakURL  string   `mapstructure:"keycloak_url"`
	Realm        string   `mapstructure:"realm"`
	ClientID     string   `mapstructure:"client_id"`
	ClientSecret string   `mapstructure:"client_secret"`
	Scopes       []string `mapstructure:"scopes"`
}

// StoreConfig selects where run history lives: memory, redis or postgres.
type StoreConfig struct {
	Driver    string `mapstructure:"driver"`
	RedisKey  string `mapstructure:"redis_key"`
	Table     string `mapstructure:"table"`
	IndexRuns bool   `mapstructure:"index_runs"`
}

type DatabaseConfig struct {
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Redis         RedisConfig         `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type ElasticsearchConfig struct {
	Addresses []string `mapstructure:"addresses"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
	URL       string   `mapstructure:"url"`
	RunsIndex string   `mapstructure:"runs_index"`
}

func (e ElasticsearchConfig) GetURL() string {
	if e.URL != "" {
		return e.URL
	}
	if len(e.Addresses) > 0 {
		return e.Addresses[0]
	}
	return ""
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"` // milliseconds
	MaxRetries    int  `mapstructure:"max_retries"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// MetricsConfig covers the health and metrics listener. JaegerEndpoint, when set,
// exports traces to a Jaeger collector.
type MetricsConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	Address        string `mapstructure:"address"`
	JaegerEndpoint string `mapstructure:"jaeger_endpoint"`
}

type NotificationConfig struct {
	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`
	Email struct {
		Enabled   bool     `mapstructure:"enabled"`
		FromEmail string   `mapstructure:"from_email"`
		To        []string `mapstructure:"to"`
	} `mapstructure:"email"`
	SNS struct {
		Enabled  bool   `mapstructure:"enabled"`
		TopicARN string `mapstructure:"topic_arn"`
	} `mapstructure:"sns"`
}
