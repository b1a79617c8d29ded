package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration.
// It is built once by LoadConfig and treated as read-only afterwards.
type Config struct {
	Server struct {
		Host         string        `yaml:"host" env:"SERVER_HOST"`
		Port         string        `yaml:"port" env:"SERVER_PORT"`
		Mode         string        `yaml:"mode" env:"SERVER_MODE"`
		Swagger      bool          `yaml:"swagger" env:"SERVER_SWAGGER"`
		ReadTimeout  time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		Host            string        `yaml:"host" env:"DB_HOST"`
		Port            string        `yaml:"port" env:"DB_PORT"`
		User            string        `yaml:"user" env:"DB_USER"`
		Password        string        `yaml:"password" env:"DB_PASSWORD"`
		DBName          string        `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string        `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxOpenConns    int           `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		MinConns        int           `yaml:"min_conns" env:"DB_MIN_CONNS"`
		ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		QueryTimeout    time.Duration `yaml:"query_timeout" env:"DB_QUERY_TIMEOUT"`
		Migrate         bool          `yaml:"migrate" env:"DB_MIGRATE"`
		MigrationsDir   string        `yaml:"migrations_dir" env:"DB_MIGRATIONS_DIR"`
	} `yaml:"database"`

	Search struct {
		// CaseInsensitive switches keyword matching from LIKE to ILIKE.
		CaseInsensitive bool `yaml:"case_insensitive" env:"SEARCH_CASE_INSENSITIVE"`
	} `yaml:"search"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// clientEncoding is PostgreSQL's 4-byte-safe UTF-8 encoding.
const clientEncoding = "UTF8"

// LoadConfig loads configuration from defaults, an optional YAML file,
// optional dotenv files and finally the process environment.
// When no envFiles are given, ".env" in the working directory is used if present.
func LoadConfig(configPath string, envFiles ...string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if configPath != "" {
		if err := readFile(configPath, cfg); err != nil {
			return nil, err
		}
	}

	if err := loadDotEnv(envFiles); err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = "5000"
	cfg.Server.Mode = "development"
	cfg.Server.Swagger = true
	cfg.Server.ReadTimeout = 10 * time.Second
	cfg.Server.WriteTimeout = 30 * time.Second

	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.User = "root"
	cfg.Database.Password = ""
	cfg.Database.DBName = "test"
	cfg.Database.SSLMode = "disable"
	cfg.Database.MaxOpenConns = 10
	cfg.Database.MinConns = 1
	cfg.Database.ConnMaxLifetime = time.Hour
	cfg.Database.QueryTimeout = 30 * time.Second
	cfg.Database.MigrationsDir = "migrations"

	cfg.Logging.Level = "info"
	cfg.Logging.Format = "json"
}

// readFile overlays the YAML file onto cfg. A missing file is not an error.
func readFile(path string, cfg *Config) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(content, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

// loadDotEnv never overrides variables already present in the environment.
func loadDotEnv(files []string) error {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		files = []string{".env"}
	}
	return godotenv.Load(files...)
}

func validateConfig(cfg *Config) error {
	if _, err := strconv.Atoi(cfg.Server.Port); err != nil {
		return fmt.Errorf("server port %q is not a number", cfg.Server.Port)
	}
	if cfg.Database.Host == "" {
		return errors.New("database host is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("database name is required")
	}
	if cfg.Database.MaxOpenConns <= 0 {
		return errors.New("database max_open_conns must be positive")
	}
	if cfg.Database.MinConns < 0 || cfg.Database.MinConns > cfg.Database.MaxOpenConns {
		return fmt.Errorf("database min_conns must be between 0 and %d", cfg.Database.MaxOpenConns)
	}
	if cfg.Database.QueryTimeout <= 0 {
		return errors.New("database query_timeout must be positive")
	}
	return nil
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, c.Server.Port)
}

// GetPostgresConnectionString returns the pgx connection URL.
// Credentials are escaped and the client encoding is pinned to UTF8.
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	query := url.Values{}
	query.Set("sslmode", sslMode)
	query.Set("client_encoding", clientEncoding)

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     net.JoinHostPort(c.Database.Host, c.Database.Port),
		Path:     "/" + c.Database.DBName,
		RawQuery: query.Encode(),
	}
	return u.String()
}
