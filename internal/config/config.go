package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env        string           `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServerConfig `yaml:"http_server"`
	Admin      Admin            `yaml:"admin"`
	Redirect   RedirectConfig   `yaml:"redirect"`
	Storage    StorageConfig    `yaml:"storage"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Migrations MigrationsConfig `yaml:"migrations"`
}

type HTTPServerConfig struct {
	Address         string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	Timeout         time.Duration `yaml:"timeout" env-default:"5s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

// Admin holds the credentials checked by the auth gate. Only the password
// half of a Basic credential is compared.
type Admin struct {
	Password string `yaml:"password" env:"ADMIN_PASSWORD" env-required:"true"`
	Realm    string `yaml:"realm" env:"ADMIN_REALM" env-default:"Admin Area"`
}

type RedirectConfig struct {
	FallbackURL string `yaml:"fallback_url" env:"FALLBACK_URL" env-default:"https://google.com"`
}

type StorageConfig struct {
	Driver   string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite"`
	Path     string `yaml:"path" env:"STORAGE_PATH" env-default:"./storage/links.db"`
	DSN      string `yaml:"dsn" env:"STORAGE_DSN"`
	PageSize int    `yaml:"page_size" env:"STORAGE_PAGE_SIZE" env-default:"1000"`
}

type MetricsConfig struct {
	Address string `yaml:"address" env:"METRICS_ADDRESS"`
}

type MigrationsConfig struct {
	MigrationTable string `yaml:"migration_table" env-default:"migrations"`
	AutoApply      bool   `yaml:"auto_apply" env:"MIGRATIONS_AUTO_APPLY" env-default:"false"`
}

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var (
	ErrMissingPassword = errors.New("admin password is required")
	ErrUnknownDriver   = errors.New("unknown storage driver")
	ErrMissingDSN      = errors.New("storage dsn is required for the postgres driver")
	ErrMissingPath     = errors.New("storage path is required for the sqlite driver")
)

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config file path is empty")
	}

	return MustLoadByPath(path)
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file not found: " + configPath)
	}

	cfg, err := Load(configPath)
	if err != nil {
		panic("failed to read config: " + err.Error())
	}

	return cfg
}

// Load reads the YAML file at configPath, applies environment overrides and
// validates the result. A .env file in the working directory, if present,
// is loaded into the environment first without overriding existing values.
func Load(configPath string) (*Config, error) {
	const op = "config.Load"

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: failed to load .env: %w", op, err)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

// Validate checks the settings cleanenv cannot express with tags.
func (c *Config) Validate() error {
	if c.Admin.Password == "" {
		return ErrMissingPassword
	}

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverSQLite:
		if c.Storage.Path == "" {
			return ErrMissingPath
		}
	case DriverPostgres:
		if c.Storage.DSN == "" {
			return ErrMissingDSN
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Storage.Driver)
	}

	return nil
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}
