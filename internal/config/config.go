package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration sourced from an optional YAML file,
// an optional .env file and environment variables (highest precedence).
type Config struct {
	Environment string         `yaml:"environment"`
	HTTPPort    string         `yaml:"http_port"`
	DataDir     string         `yaml:"data_dir"`
	FrontendURL string         `yaml:"frontend_url"`
	Debug       bool           `yaml:"debug"`
	Database    DatabaseConfig `yaml:"database"`
	JWT         JWTConfig      `yaml:"jwt"`
	SMTP        SMTPConfig     `yaml:"smtp"`
	Storage     StorageConfig  `yaml:"storage"`
	MailQueue   int            `yaml:"mail_queue_size"`
}

// DatabaseConfig selects the GORM dialector.
type DatabaseConfig struct {
	Driver string `yaml:"driver"` // "sqlite" or "postgres"
	Path   string `yaml:"path"`
	DSN    string `yaml:"dsn"`
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret     string        `yaml:"secret"`
	AccessTTL  time.Duration `yaml:"access_ttl"`
	RefreshTTL time.Duration `yaml:"refresh_ttl"`
}

// SMTPConfig is the environment fallback for outbound mail; rows in the
// settings table (category "smtp") take precedence at send time.
type SMTPConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	From       string `yaml:"from"`
	Encryption string `yaml:"encryption"`
}

// StorageConfig selects where report PDFs live.
type StorageConfig struct {
	Driver   string `yaml:"driver"` // "local" or "s3"
	MediaDir string `yaml:"media_dir"`
	Bucket   string `yaml:"bucket"`
	Region   string `yaml:"region"`
	Prefix   string `yaml:"prefix"`
}

const envPrefix = "ARCANO_"

// Load reads configuration and falls back to defaults so the server can boot with zero configuration.
func Load() (Config, error) {
	// .env is optional; a missing file is not an error.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := defaults()
	if path := os.Getenv(envPrefix + "CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	if cfg.Database.Driver == "sqlite" {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
			return Config{}, fmt.Errorf("ensure data directory: %w", err)
		}
	}
	if cfg.Storage.Driver == "local" {
		if err := os.MkdirAll(cfg.Storage.MediaDir, 0o755); err != nil {
			return Config{}, fmt.Errorf("ensure media directory: %w", err)
		}
	}

	return cfg, nil
}

func defaults() Config {
	dataDir := "data"
	return Config{
		Environment: "development",
		HTTPPort:    "8080",
		DataDir:     dataDir,
		FrontendURL: "http://localhost:5173",
		MailQueue:   256,
		Database: DatabaseConfig{
			Driver: "sqlite",
			Path:   filepath.Join(dataDir, "arcano.db"),
		},
		JWT: JWTConfig{
			AccessTTL:  60 * time.Minute,
			RefreshTTL: 24 * time.Hour,
		},
		SMTP: SMTPConfig{
			Port:       587,
			Encryption: "starttls",
		},
		Storage: StorageConfig{
			Driver:   "local",
			MediaDir: filepath.Join(dataDir, "media"),
			Prefix:   "relatorios_inteligencia",
		},
	}
}

func loadFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Environment = getEnv("ENV", cfg.Environment)
	cfg.HTTPPort = getEnv("HTTP_PORT", cfg.HTTPPort)
	cfg.DataDir = getEnv("DATA_DIR", cfg.DataDir)
	cfg.FrontendURL = getEnv("FRONTEND_URL", cfg.FrontendURL)
	cfg.Debug = getEnvBool("DEBUG", cfg.Debug)
	cfg.MailQueue = getEnvInt("MAIL_QUEUE_SIZE", cfg.MailQueue)

	cfg.Database.Driver = getEnv("DB_DRIVER", cfg.Database.Driver)
	cfg.Database.Path = getEnv("DB_PATH", cfg.Database.Path)
	cfg.Database.DSN = getEnv("DB_DSN", cfg.Database.DSN)

	cfg.JWT.Secret = getEnv("JWT_SECRET", cfg.JWT.Secret)
	cfg.JWT.AccessTTL = getEnvDuration("ACCESS_TTL", cfg.JWT.AccessTTL)
	cfg.JWT.RefreshTTL = getEnvDuration("REFRESH_TTL", cfg.JWT.RefreshTTL)

	cfg.SMTP.Host = getEnv("SMTP_HOST", cfg.SMTP.Host)
	cfg.SMTP.Port = getEnvInt("SMTP_PORT", cfg.SMTP.Port)
	cfg.SMTP.Username = getEnv("SMTP_USER", cfg.SMTP.Username)
	cfg.SMTP.Password = getEnv("SMTP_PASSWORD", cfg.SMTP.Password)
	cfg.SMTP.From = getEnv("SMTP_FROM", cfg.SMTP.From)
	cfg.SMTP.Encryption = getEnv("SMTP_ENCRYPTION", cfg.SMTP.Encryption)

	cfg.Storage.Driver = getEnv("STORAGE_DRIVER", cfg.Storage.Driver)
	cfg.Storage.MediaDir = getEnv("MEDIA_DIR", cfg.Storage.MediaDir)
	cfg.Storage.Bucket = getEnv("S3_BUCKET", cfg.Storage.Bucket)
	cfg.Storage.Region = getEnv("S3_REGION", cfg.Storage.Region)
	cfg.Storage.Prefix = getEnv("S3_PREFIX", cfg.Storage.Prefix)
}

// Validate rejects combinations the server cannot run with.
func (c Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite":
	case "postgres":
		if c.Database.DSN == "" {
			return errors.New("postgres driver requires ARCANO_DB_DSN")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	switch c.Storage.Driver {
	case "local":
	case "s3":
		if c.Storage.Bucket == "" {
			return errors.New("s3 storage requires ARCANO_S3_BUCKET")
		}
	default:
		return fmt.Errorf("unsupported storage driver %q", c.Storage.Driver)
	}

	if c.IsProduction() && c.JWT.Secret == "" {
		return errors.New("ARCANO_JWT_SECRET must be set in production")
	}
	if c.JWT.AccessTTL <= 0 || c.JWT.RefreshTTL <= 0 {
		return errors.New("token lifetimes must be positive")
	}
	return nil
}

// IsProduction reports whether the server runs with production hardening.
func (c Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(envPrefix + key); val != "" {
		return val
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}
