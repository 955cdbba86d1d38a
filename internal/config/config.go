package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage providers.
const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Upload  UploadConfig
	Storage StorageConfig
	S3      S3Config
	Log     LogConfig
	CORS    CORSConfig
	Metrics MetricsConfig
	Quote   QuoteConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// UploadConfig holds price list upload settings.
type UploadConfig struct {
	MaxFileSizeMB  int64 `mapstructure:"max_file_size_mb"`
	RetainOriginal bool  `mapstructure:"retain_original"`
}

// MaxBytes returns the upload cap in bytes.
func (u *UploadConfig) MaxBytes() int64 {
	return u.MaxFileSizeMB << 20
}

// StorageConfig selects where the artifact and retained uploads live.
type StorageConfig struct {
	Provider      string `mapstructure:"provider"`
	LocalDir      string `mapstructure:"local_dir"`
	ArtifactKey   string `mapstructure:"artifact_key"`
	UploadsPrefix string `mapstructure:"uploads_prefix"`
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Log formats. "plain" drops the timestamp for platforms that add their own.
const (
	LogFormatConsole = "console"
	LogFormatPlain   = "plain"
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Debug reports whether request routing and binding should log verbosely.
func (l *LogConfig) Debug() bool {
	return l.Level == "debug"
}

// Flags returns the standard logger flags for the configured format.
func (l *LogConfig) Flags() int {
	if l.Format == LogFormatPlain {
		return 0
	}
	return log.LstdFlags | log.Lmicroseconds
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// QuoteConfig holds quote builder settings.
type QuoteConfig struct {
	MaxItems       int    `mapstructure:"max_items"`
	CurrencySymbol string `mapstructure:"currency_symbol"`
}

// Load reads configuration from environment variables with the PRICELIST_
// prefix. A .env file in the working directory is loaded first when present;
// variables already set in the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("PRICELIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8000")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 20)
	v.SetDefault("upload.retain_original", true)

	// Storage defaults
	v.SetDefault("storage.provider", StorageLocal)
	v.SetDefault("storage.local_dir", "./data")
	v.SetDefault("storage.artifact_key", "data.json")
	v.SetDefault("storage.uploads_prefix", "uploads/")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "pricelist")
	v.SetDefault("s3.endpoint", "")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", LogFormatConsole)

	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("metrics.enabled", true)

	// Quote defaults
	v.SetDefault("quote.max_items", 20)
	v.SetDefault("quote.currency_symbol", "₱")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "PRICELIST_SERVER_PORT",
		"server.read_timeout":     "PRICELIST_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "PRICELIST_SERVER_WRITE_TIMEOUT",
		"server.environment":      "PRICELIST_SERVER_ENVIRONMENT",
		"upload.max_file_size_mb": "PRICELIST_UPLOAD_MAX_FILE_SIZE_MB",
		"upload.retain_original":  "PRICELIST_UPLOAD_RETAIN_ORIGINAL",
		"storage.provider":        "PRICELIST_STORAGE_PROVIDER",
		"storage.local_dir":       "PRICELIST_STORAGE_LOCAL_DIR",
		"storage.artifact_key":    "PRICELIST_STORAGE_ARTIFACT_KEY",
		"storage.uploads_prefix":  "PRICELIST_STORAGE_UPLOADS_PREFIX",
		"s3.region":               "PRICELIST_S3_REGION",
		"s3.bucket":               "PRICELIST_S3_BUCKET",
		"s3.endpoint":             "PRICELIST_S3_ENDPOINT",
		"s3.access_key":           "PRICELIST_S3_ACCESS_KEY",
		"s3.secret_key":           "PRICELIST_S3_SECRET_KEY",
		"log.level":               "PRICELIST_LOG_LEVEL",
		"log.format":              "PRICELIST_LOG_FORMAT",
		"cors.allowed_origins":    "PRICELIST_CORS_ALLOWED_ORIGINS",
		"metrics.enabled":         "PRICELIST_METRICS_ENABLED",
		"quote.max_items":         "PRICELIST_QUOTE_MAX_ITEMS",
		"quote.currency_symbol":   "PRICELIST_QUOTE_CURRENCY_SYMBOL",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set a PORT env var. Use it if PRICELIST_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("PRICELIST_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB:  v.GetInt64("upload.max_file_size_mb"),
		RetainOriginal: v.GetBool("upload.retain_original"),
	}
	cfg.Storage = StorageConfig{
		Provider:      strings.ToLower(v.GetString("storage.provider")),
		LocalDir:      v.GetString("storage.local_dir"),
		ArtifactKey:   v.GetString("storage.artifact_key"),
		UploadsPrefix: v.GetString("storage.uploads_prefix"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Log = LogConfig{
		Level:  strings.ToLower(v.GetString("log.level")),
		Format: strings.ToLower(v.GetString("log.format")),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.Metrics = MetricsConfig{
		Enabled: v.GetBool("metrics.enabled"),
	}
	cfg.Quote = QuoteConfig{
		MaxItems:       v.GetInt("quote.max_items"),
		CurrencySymbol: v.GetString("quote.currency_symbol"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Provider {
	case StorageLocal, StorageS3:
	default:
		return fmt.Errorf("config: unknown storage provider %q", c.Storage.Provider)
	}
	if !logLevels[c.Log.Level] {
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case LogFormatConsole, LogFormatPlain:
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	if c.Storage.ArtifactKey == "" {
		return errors.New("config: storage.artifact_key must not be empty")
	}
	if c.Upload.MaxFileSizeMB <= 0 {
		return fmt.Errorf("config: upload.max_file_size_mb must be positive, got %d", c.Upload.MaxFileSizeMB)
	}
	if c.Quote.MaxItems <= 0 {
		return fmt.Errorf("config: quote.max_items must be positive, got %d", c.Quote.MaxItems)
	}
	return nil
}
