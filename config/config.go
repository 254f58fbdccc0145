package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Store backends
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	RabbitMQ RabbitMQConfig
}

type AppConfig struct {
	Port           string
	Env            string
	LogLevel       string
	Store          string
	StoreLatency   time.Duration
	ContactLatency time.Duration
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	// Embedded runs an in-process Redis instead of dialing Host:Port
	Embedded bool
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

type RabbitMQConfig struct {
	URL      string
	Exchange string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_LOG_LEVEL", "info")
	viper.SetDefault("APP_STORE", StoreMemory)
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("RABBITMQ_EXCHANGE", "healthcare.events")

	// .env is optional, the environment alone is enough
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	storeLatency := durationOrDefault("APP_STORE_LATENCY", 500*time.Millisecond)
	contactLatency := durationOrDefault("APP_CONTACT_LATENCY", 1500*time.Millisecond)
	accessExpiry := durationOrDefault("JWT_ACCESS_EXPIRY", 24*time.Hour)

	config := &Config{
		App: AppConfig{
			Port:           viper.GetString("APP_PORT"),
			Env:            viper.GetString("APP_ENV"),
			LogLevel:       viper.GetString("APP_LOG_LEVEL"),
			Store:          viper.GetString("APP_STORE"),
			StoreLatency:   storeLatency,
			ContactLatency: contactLatency,
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
			Embedded: viper.GetBool("REDIS_EMBEDDED"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
		RabbitMQ: RabbitMQConfig{
			URL:      viper.GetString("RABBITMQ_URL"),
			Exchange: viper.GetString("RABBITMQ_EXCHANGE"),
		},
	}

	if config.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return config, nil
}

// durationOrDefault reads key as a Go duration ("500ms", "2h"). Unset keys
// fall back to def quietly, malformed ones fall back with a warning.
func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"key":     key,
			"value":   raw,
			"default": def.String(),
		}).Warn("Invalid duration, using default")
		return def
	}
	return d
}
