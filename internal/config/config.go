package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Token    TokenConfig
	Sweeper  SweeperConfig
	Cache    CacheConfig
	SMTP     SMTPConfig
	Notify   NotifyConfig
	Admin    AdminConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type TokenConfig struct {
	Secret     string
	TTLMinutes int
}

func (c TokenConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

type SweeperConfig struct {
	Period         time.Duration
	StallThreshold time.Duration
}

type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type NotifyConfig struct {
	Workers   int
	QueueSize int
}

// AdminConfig seeds the first ADMIN account when the users table is empty.
// Registration requires ADMIN, so without this the system cannot bootstrap.
type AdminConfig struct {
	Email    string
	Password string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "foodcourt")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "foodcourt")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("TOKEN_SECRET", "")
	viper.SetDefault("TOKEN_TTL_MINUTES", 60)
	viper.SetDefault("SWEEPER_PERIOD", "5m")
	viper.SetDefault("SWEEPER_STALL_THRESHOLD", "30m")
	viper.SetDefault("CACHE_SIZE", 1024)
	viper.SetDefault("CACHE_TTL", "10m")
	viper.SetDefault("SMTP_HOST", "localhost")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM", "orders@foodcourt.local")
	viper.SetDefault("NOTIFY_WORKERS", 4)
	viper.SetDefault("NOTIFY_QUEUE_SIZE", 256)
	viper.SetDefault("ADMIN_EMAIL", "")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("LOG_LEVEL", "info")

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, fmt.Errorf("parsing DB_CONN_MAX_LIFETIME: %w", err)
	}

	sweeperPeriod, err := time.ParseDuration(viper.GetString("SWEEPER_PERIOD"))
	if err != nil {
		return nil, fmt.Errorf("parsing SWEEPER_PERIOD: %w", err)
	}

	stallThreshold, err := time.ParseDuration(viper.GetString("SWEEPER_STALL_THRESHOLD"))
	if err != nil {
		return nil, fmt.Errorf("parsing SWEEPER_STALL_THRESHOLD: %w", err)
	}

	cacheTTL, err := time.ParseDuration(viper.GetString("CACHE_TTL"))
	if err != nil {
		return nil, fmt.Errorf("parsing CACHE_TTL: %w", err)
	}

	secret := viper.GetString("TOKEN_SECRET")
	if len(secret) < 32 {
		return nil, fmt.Errorf("TOKEN_SECRET must be at least 32 bytes, got %d", len(secret))
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Token: TokenConfig{
			Secret:     secret,
			TTLMinutes: viper.GetInt("TOKEN_TTL_MINUTES"),
		},
		Sweeper: SweeperConfig{
			Period:         sweeperPeriod,
			StallThreshold: stallThreshold,
		},
		Cache: CacheConfig{
			Size: viper.GetInt("CACHE_SIZE"),
			TTL:  cacheTTL,
		},
		SMTP: SMTPConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASSWORD"),
			From:     viper.GetString("SMTP_FROM"),
		},
		Notify: NotifyConfig{
			Workers:   viper.GetInt("NOTIFY_WORKERS"),
			QueueSize: viper.GetInt("NOTIFY_QUEUE_SIZE"),
		},
		Admin: AdminConfig{
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
