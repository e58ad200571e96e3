package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix is the envconfig prefix shared by every binary.
	EnvPrefix = "GLOWMART"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	JWT          JWTConfig
	Password     PasswordConfig
	Catalog      CatalogConfig
	Redis        RedisConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("GLOWMART_DB_DSN is required")
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GLOWMART_APP_ENV" required:"true"`
	Port         string `envconfig:"GLOWMART_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"GLOWMART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GLOWMART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"GLOWMART_DB_DSN"`

	MaxOpenConns    int           `envconfig:"GLOWMART_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"GLOWMART_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"GLOWMART_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"GLOWMART_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type JWTConfig struct {
	Secret          string `envconfig:"GLOWMART_JWT_SECRET" required:"true"`
	Issuer          string `envconfig:"GLOWMART_JWT_ISSUER" default:"glowmart-admin"`
	ExpirationHours int    `envconfig:"GLOWMART_JWT_EXPIRATION_HOURS" default:"48"`
}

// SessionLifetime returns the configured token TTL.
func (j JWTConfig) SessionLifetime() time.Duration {
	if j.ExpirationHours <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationHours) * time.Hour
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"GLOWMART_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"GLOWMART_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"GLOWMART_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"GLOWMART_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"GLOWMART_ARGON_KEY_LEN" default:"32"`
}

type CatalogConfig struct {
	DefaultPageSize int `envconfig:"GLOWMART_CATALOG_DEFAULT_PAGE_SIZE" default:"20"`
	MaxPageSize     int `envconfig:"GLOWMART_CATALOG_MAX_PAGE_SIZE" default:"100"`
}

type RedisConfig struct {
	URL          string        `envconfig:"GLOWMART_REDIS_URL"`
	Address      string        `envconfig:"GLOWMART_REDIS_ADDR"`
	Password     string        `envconfig:"GLOWMART_REDIS_PASSWORD"`
	DB           int           `envconfig:"GLOWMART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"GLOWMART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GLOWMART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GLOWMART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GLOWMART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"GLOWMART_REDIS_WRITE_TIMEOUT" default:"5s"`

	HotProductsTTL time.Duration `envconfig:"GLOWMART_REDIS_HOT_PRODUCTS_TTL" default:"10m"`
}

// Enabled reports whether a Redis endpoint was configured at all. The cache
// is optional; without it reads go straight to the database.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"GLOWMART_AUTO_MIGRATE" default:"false"`
}
