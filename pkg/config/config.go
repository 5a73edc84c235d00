package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App        AppConfig
	DB         DBConfig
	Redis      RedisConfig
	Settlement SettlementConfig
	Catalog    CatalogConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MAVAZI_APP_ENV" required:"true"`
	Port         string `envconfig:"MAVAZI_APP_PORT" default:"4000"`
	LogLevel     string `envconfig:"MAVAZI_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MAVAZI_LOG_WARN_STACK" default:"false"`
	AutoMigrate  bool   `envconfig:"MAVAZI_AUTO_MIGRATE" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"MAVAZI_DB_DSN"`
	Driver string `envconfig:"MAVAZI_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"MAVAZI_DB_HOST"`
	Port     int    `envconfig:"MAVAZI_DB_PORT" default:"5432"`
	User     string `envconfig:"MAVAZI_DB_USER"`
	Password string `envconfig:"MAVAZI_DB_PASSWORD"`
	Name     string `envconfig:"MAVAZI_DB_NAME" default:"mavazi"`
	SSLMode  string `envconfig:"MAVAZI_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MAVAZI_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MAVAZI_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MAVAZI_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MAVAZI_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// ensureDSN derives a postgres DSN from the discrete fields when none was given.
func (d *DBConfig) ensureDSN() error {
	if d.DSN != "" {
		return nil
	}
	if d.Host == "" || d.User == "" {
		return fmt.Errorf("either MAVAZI_DB_DSN or MAVAZI_DB_HOST/MAVAZI_DB_USER must be set")
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.Name,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	d.DSN = u.String()
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"MAVAZI_REDIS_URL"`
	Address      string        `envconfig:"MAVAZI_REDIS_ADDR"`
	Password     string        `envconfig:"MAVAZI_REDIS_PASSWORD"`
	DB           int           `envconfig:"MAVAZI_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MAVAZI_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MAVAZI_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MAVAZI_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MAVAZI_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MAVAZI_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type SettlementConfig struct {
	// MaxRetries bounds how many times a settlement transaction is retried
	// after a serialization conflict before the error surfaces.
	MaxRetries int `envconfig:"MAVAZI_SETTLEMENT_MAX_RETRIES" default:"3"`
}

type CatalogConfig struct {
	ListingCacheTTL time.Duration `envconfig:"MAVAZI_CATALOG_CACHE_TTL" default:"30s"`
}
