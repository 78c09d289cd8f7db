package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server   Server
	Database Database
	Polls    Polls
	LogLevel string
}

type Server struct {
	Port        string
	Mode        string // gin mode: debug, release or test
	AllowOrigin []string
}

type Database struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Path     string // sqlite only
}

type Polls struct {
	// IndexLimit caps how many questions the index lists.
	IndexLimit int
}

// NewConfig reads an optional .env file from the working directory and lets
// environment variables override it.
func NewConfig() (*Config, error) {
	return load(viper.New(), ".")
}

func load(v *viper.Viper, dir string) (*Config, error) {
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(dir)

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PATH", "quickpoll.db")
	v.SetDefault("POLLS_INDEX_LIMIT", 5)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Debug().Msg("No .env file found, using environment only")
		} else {
			log.Warn().Err(err).Msg("Error reading config file")
		}
	}

	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.Mode = v.GetString("GIN_MODE")
	config.Server.AllowOrigin = splitList(v.GetString("CORS_ALLOW_ORIGINS"))
	config.LogLevel = v.GetString("LOG_LEVEL")

	config.Database.Driver = strings.ToLower(v.GetString("DATABASE_DRIVER"))
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Database.Path = v.GetString("DATABASE_PATH")

	config.Polls.IndexLimit = v.GetInt("POLLS_INDEX_LIMIT")

	if err := config.validate(); err != nil {
		return nil, err
	}

	log.Info().
		Str("port", config.Server.Port).
		Str("mode", config.Server.Mode).
		Str("driver", config.Database.Driver).
		Int("indexLimit", config.Polls.IndexLimit).
		Msg("Config loaded")
	return &config, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverMySQL:
		if c.Database.Name == "" {
			return fmt.Errorf("DATABASE_NAME is required for driver %q", c.Database.Driver)
		}
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("DATABASE_PATH is required for driver %q", c.Database.Driver)
		}
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.Database.Driver)
	}
	if c.Polls.IndexLimit <= 0 {
		return fmt.Errorf("POLLS_INDEX_LIMIT must be positive, got %d", c.Polls.IndexLimit)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
