package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sagarikadotcom/canaan-pet-resort/logger"
	"github.com/spf13/viper"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	GinMode     string `mapstructure:"GIN_MODE"`
	LogDir      string `mapstructure:"LOG_DIR"`
	Debug       bool   `mapstructure:"DEBUG"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	RedisURL    string `mapstructure:"REDIS_URL"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`

	DBMaxConns        int32         `mapstructure:"DB_MAX_CONNS"`
	DBMinConns        int32         `mapstructure:"DB_MIN_CONNS"`
	DBMaxConnLifetime time.Duration `mapstructure:"DB_MAX_CONN_LIFETIME"`
	DBMaxConnIdleTime time.Duration `mapstructure:"DB_MAX_CONN_IDLE_TIME"`

	// Timezone used for today/tomorrow bucketing and display; empty means server local.
	KennelTimezone string        `mapstructure:"KENNEL_TIMEZONE"`
	KennelCacheTTL time.Duration `mapstructure:"KENNEL_CACHE_TTL"`

	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	WriteRateLimit     string `mapstructure:"WRITE_RATE_LIMIT"`
}

var keys = []string{
	"PORT", "GIN_MODE", "LOG_DIR", "DEBUG", "DATABASE_URL", "REDIS_URL", "JWT_SECRET",
	"DB_MAX_CONNS", "DB_MIN_CONNS", "DB_MAX_CONN_LIFETIME", "DB_MAX_CONN_IDLE_TIME",
	"KENNEL_TIMEZONE", "KENNEL_CACHE_TTL", "CORS_ALLOWED_ORIGINS", "WRITE_RATE_LIMIT",
}

// LoadEnv loads a .env file into the process environment if one exists.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logger.InfoLogger.Info("No .env file found, using environment variables")
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8081")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_DIR", "logs")
	v.SetDefault("DEBUG", false)
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("DB_MAX_CONN_LIFETIME", time.Hour)
	v.SetDefault("DB_MAX_CONN_IDLE_TIME", 30*time.Minute)
	v.SetDefault("KENNEL_TIMEZONE", "")
	v.SetDefault("KENNEL_CACHE_TTL", 5*time.Minute)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("WRITE_RATE_LIMIT", "30-1m")
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	// Unmarshal only sees keys viper knows about; bind the ones without defaults.
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("bind %s: %w", k, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL not set")
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Location resolves KennelTimezone.
func (c *Config) Location() (*time.Location, error) {
	if c.KennelTimezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.KennelTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid KENNEL_TIMEZONE %q: %w", c.KennelTimezone, err)
	}
	return loc, nil
}

func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
