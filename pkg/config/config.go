// Package config loads process configuration from configs/config.yml,
// environment variables and an optional .env file.
package config

import (
	"strings"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DatabaseURLEnv is read from the environment only; it never lives in the YAML file.
const DatabaseURLEnv = "DATABASE_URL"

type Config struct {
	Port        string       `mapstructure:"port" validate:"required,numeric"`
	LogLevel    string       `mapstructure:"log_level" validate:"required,oneof=trace debug info warn warning error fatal panic"`
	DatabaseURL string       `mapstructure:"database_url" validate:"required"`
	CORS        CORSConfig   `mapstructure:"cors"`
	DB          DBConfig     `mapstructure:"db"`
	Server      ServerConfig `mapstructure:"server"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins" validate:"required,min=1,dive,url"`
}

type DBConfig struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"gte=0"`
}

type ServerConfig struct {
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// Load reads .env (if present) and then the YAML config under configPath.
// A missing config file is not an error: defaults and environment still apply.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Infof("Файл .env не загружен: %s", err)
	}

	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(configPath)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
		logrus.Warnf("config.yml не найден в %q, используются значения по умолчанию", configPath)
	}
	if err := v.BindEnv("database_url", DatabaseURLEnv); err != nil {
		return nil, errors.Wrap(err, "bind database_url")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8000")
	v.SetDefault("log_level", "info")
	v.SetDefault("cors.allow_origins", []string{"https://cane4ic.github.io"})
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", 30*time.Minute)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
}
