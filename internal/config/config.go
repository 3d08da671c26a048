package config

import (
	"time"

	"github.com/heartmarshall/termstamps/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	GraphQL    GraphQLConfig    `yaml:"graphql"`
	Log        LogConfig        `yaml:"log"`
	Redis      RedisConfig      `yaml:"redis"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	CORS       CORSConfig       `yaml:"cors"`
	Timestamps TimestampsConfig `yaml:"timestamps"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds bearer-token verification settings. Tokens are issued
// by the identity provider in front of this service; only verification
// happens here.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"termstamps"`
}

// GraphQLConfig holds GraphQL server settings.
type GraphQLConfig struct {
	Path            string `yaml:"path"             env:"GRAPHQL_PATH"             env-default:"/graphql"`
	ComplexityLimit int    `yaml:"complexity_limit" env:"GRAPHQL_COMPLEXITY_LIMIT" env-default:"300"`
	// RateLimit is requests per minute per caller; 0 disables limiting.
	RateLimit int `yaml:"rate_limit" env:"GRAPHQL_RATE_LIMIT"`
	// Concurrency bounds the resolvers running at once per request.
	Concurrency int `yaml:"concurrency" env:"GRAPHQL_CONCURRENCY"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RedisConfig holds settings for the user lookup cache.
// An empty Addr disables the cache.
type RedisConfig struct {
	Addr     string        `yaml:"addr"     env:"REDIS_ADDR"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
	UserTTL  time.Duration `yaml:"user_ttl" env:"REDIS_USER_TTL" env-default:"5m"`
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	// AllowedOrigins is a comma-separated list; empty turns CORS off.
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// TimestampsConfig controls where the audit trail is stored and how it is
// exposed. Every meta key and field name can be renamed to avoid
// collisions with other extensions sharing the same term meta or schema.
type TimestampsConfig struct {
	CreatedByKey             string `yaml:"created_by_key"              env:"TIMESTAMPS_CREATED_BY_KEY"              env-default:"created_by"`
	CreatedTimestampKey      string `yaml:"created_timestamp_key"       env:"TIMESTAMPS_CREATED_TIMESTAMP_KEY"       env-default:"created_timestamp"`
	LastModifiedByKey        string `yaml:"last_modified_by_key"        env:"TIMESTAMPS_LAST_MODIFIED_BY_KEY"        env-default:"last_modified_by"`
	LastModifiedTimestampKey string `yaml:"last_modified_timestamp_key" env:"TIMESTAMPS_LAST_MODIFIED_TIMESTAMP_KEY" env-default:"last_modified_timestamp"`
	ModificationsKey         string `yaml:"modifications_key"           env:"TIMESTAMPS_MODIFICATIONS_KEY"           env-default:"modifications"`

	CreatedField       string `yaml:"created_field"       env:"TIMESTAMPS_CREATED_FIELD"       env-default:"created"`
	ModificationsField string `yaml:"modifications_field" env:"TIMESTAMPS_MODIFICATIONS_FIELD" env-default:"modifications"`
	LastModifiedField  string `yaml:"last_modified_field" env:"TIMESTAMPS_LAST_MODIFIED_FIELD" env-default:"lastModified"`

	// Timezone is the IANA zone stored timestamps are written in.
	Timezone string `yaml:"timezone" env:"TIMESTAMPS_TIMEZONE" env-default:"UTC"`

	// Location is loaded from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// MetaKeys returns the configured meta key names.
func (c TimestampsConfig) MetaKeys() domain.MetaKeys {
	return domain.MetaKeys{
		CreatedBy:             c.CreatedByKey,
		CreatedTimestamp:      c.CreatedTimestampKey,
		LastModifiedBy:        c.LastModifiedByKey,
		LastModifiedTimestamp: c.LastModifiedTimestampKey,
		Modifications:         c.ModificationsKey,
	}
}
