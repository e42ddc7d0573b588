package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
}

type AppConfig struct {
	Name    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Driver   string
	Path     string
	DSN      string
	MaxConns int
}

// flagKeys maps config keys to the command-line flags that override them.
var flagKeys = map[string]string{
	"DB_DRIVER": "db-driver",
	"DB_PATH":   "db-path",
	"DB_DSN":    "db-dsn",
	"LOG_PATH":  "log-path",
	"DEBUG":     "debug",
}

// RegisterFlags declares the command-line flags LoadConfig understands.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("config", ".env", "path to an optional dotenv config file")
	flags.String("db-driver", DriverSQLite, "database driver: sqlite or postgres")
	flags.String("db-path", "movie_booking.db", "SQLite database file")
	flags.String("db-dsn", "", "Postgres connection string (with --db-driver=postgres)")
	flags.String("log-path", "logs/", "directory for rotated log files")
	flags.Bool("debug", false, "verbose logging to stderr")
}

// LoadConfig resolves configuration from flags, environment, the optional
// dotenv file and defaults, in that order of precedence. flags may be nil.
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("APP_NAME", "Movie Ticket Booking")
	v.SetDefault("DEBUG", false)
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DB_PATH", "movie_booking.db")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("LOG_PATH", "logs/")

	configFile := ".env"
	if flags != nil {
		if f := flags.Lookup("config"); f != nil {
			configFile = f.Value.String()
		}
		for key, name := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	v.SetConfigFile(configFile)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config %s: %w", configFile, err)
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
			Path:     v.GetString("DB_PATH"),
			DSN:      v.GetString("DB_DSN"),
			MaxConns: v.GetInt("DB_MAX_CONNS"),
		},
	}

	if err := config.Database.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c DatabaseConfig) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if strings.TrimSpace(c.Path) == "" {
			return errors.New("config: DB_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if strings.TrimSpace(c.DSN) == "" {
			return errors.New("config: DB_DSN is required for the postgres driver")
		}
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.Driver)
	}
	return nil
}
