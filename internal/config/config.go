package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for both processes.
// The values are read by Viper from config.yaml, a .env file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Web      WebConfig      `mapstructure:"web"`
	Database DatabaseConfig `mapstructure:"database"`
	Gemini   GeminiConfig   `mapstructure:"gemini"`
	S3       S3Config       `mapstructure:"s3"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig configures the plan generation API process.
type ServerConfig struct {
	Address      string        `mapstructure:"address"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	CORSOrigins  []string      `mapstructure:"cors_origins"`
}

// WebConfig configures the browser-facing process.
type WebConfig struct {
	Address       string        `mapstructure:"address"`
	APIURL        string        `mapstructure:"api_url"`
	APITimeout    time.Duration `mapstructure:"api_timeout"`
	SessionSecret string        `mapstructure:"session_secret"`
	SessionTTL    time.Duration `mapstructure:"session_ttl"`
	MaxSessions   int           `mapstructure:"max_sessions"`
	TLSCertFile   string        `mapstructure:"tls_cert_file"`
	TLSKeyFile    string        `mapstructure:"tls_key_file"`
	// CookieSecure forces Secure cookies behind a TLS-terminating proxy.
	CookieSecure bool `mapstructure:"cookie_secure"`
}

// DefaultSessionSecret only suits local development.
const DefaultSessionSecret = "fitsync-dev-session-secret"

// TLSEnabled reports whether the UI serves HTTPS itself.
func (c WebConfig) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// SecureCookies reports whether session cookies must carry the Secure attribute.
func (c WebConfig) SecureCookies() bool {
	return c.CookieSecure || c.TLSEnabled()
}

type DatabaseConfig struct {
	URI        string `mapstructure:"uri"`
	Name       string `mapstructure:"name"`
	Collection string `mapstructure:"collection"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// S3Config is optional: an empty bucket name disables plan archiving.
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// Enabled reports whether an archive bucket is configured.
func (c S3Config) Enabled() bool {
	return c.BucketName != ""
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// LoadConfig reads configuration from path/config.yaml, path/.env and the environment.
// Environment variables win, e.g. gemini.api_key -> GEMINI_API_KEY.
func LoadConfig(path string) (config Config, err error) {
	// A missing .env is normal outside local development.
	if err = godotenv.Load(filepath.Join(path, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// Every key needs a default, otherwise AutomaticEnv never sees it during Unmarshal.
	v.SetDefault("server.address", ":5000")
	v.SetDefault("server.write_timeout", "2m")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("web.address", ":8501")
	v.SetDefault("web.api_url", "http://127.0.0.1:5000")
	v.SetDefault("web.api_timeout", "0s")
	v.SetDefault("web.session_secret", DefaultSessionSecret)
	v.SetDefault("web.session_ttl", "30m")
	v.SetDefault("web.max_sessions", 1024)
	v.SetDefault("web.tls_cert_file", "")
	v.SetDefault("web.tls_key_file", "")
	v.SetDefault("web.cookie_secure", false)
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "Fitness")
	v.SetDefault("database.collection", "plan")
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-1.5-flash")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	err = v.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = v.Unmarshal(&config)
	return
}
