// Package config loads environment-driven application configuration.
//
// All settings come from process environment variables, optionally seeded
// from a .env file in the working directory (matching the deployment layout
// of the storage backend and the agent workflow).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults for the proxy connection. The proxy endpoint is a fixed local
// contract; the timeout matches what the Photoshop plugin tolerates.
const (
	DefaultProxyURL     = "http://localhost:3001"
	DefaultProxyTimeout = 20 * time.Second
	DefaultPort         = "5000"
)

// Config holds all runtime settings.
type Config struct {
	// Object storage (OCI Object Storage via its S3 compatibility endpoint).
	BucketName string
	Namespace  string
	Region     string
	Endpoint   string
	AccessKey  string
	SecretKey  string

	// Photoshop proxy.
	ProxyURL     string
	ProxyTimeout time.Duration

	// Agent.
	AnthropicAPIKey string
	AnthropicModel  string

	// Session transcript store.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// HTTP facade.
	Port string
}

// ConfigFile is the optional YAML settings file read from the working
// directory. Environment variables always win over file values.
const ConfigFile = "fotoai.yaml"

// fileConfig mirrors the settings a fotoai.yaml may provide. Credentials
// stay in the environment on purpose.
type fileConfig struct {
	Bucket              string `yaml:"bucket"`
	Namespace           string `yaml:"namespace"`
	Region              string `yaml:"region"`
	Endpoint            string `yaml:"endpoint"`
	ProxyURL            string `yaml:"proxy_url"`
	ProxyTimeoutSeconds int    `yaml:"proxy_timeout_seconds"`
	Model               string `yaml:"model"`
	RedisAddr           string `yaml:"redis_addr"`
	RedisDB             int    `yaml:"redis_db"`
	Port                string `yaml:"port"`
}

// Load reads configuration from the environment. A .env file in the current
// directory is merged in first if present; real environment variables win.
// A fotoai.yaml file supplies defaults for non-secret settings.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		BucketName:      os.Getenv("OCI_BUCKET_NAME"),
		Namespace:       os.Getenv("OCI_NAMESPACE"),
		Region:          os.Getenv("OCI_REGION"),
		Endpoint:        os.Getenv("OCI_S3_ENDPOINT"),
		AccessKey:       os.Getenv("OCI_ACCESS_KEY"),
		SecretKey:       os.Getenv("OCI_SECRET_KEY"),
		ProxyURL:        getenv("PROXY_URL", DefaultProxyURL),
		ProxyTimeout:    DefaultProxyTimeout,
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  os.Getenv("ANTHROPIC_MODEL"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		Port:            getenv("PORT", DefaultPort),
	}

	if v := os.Getenv("PROXY_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.ProxyTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.RedisDB = db
		}
	}

	cfg.applyFile(ConfigFile)

	// Derive the S3 compatibility endpoint from namespace and region when it
	// is not given explicitly.
	if cfg.Endpoint == "" && cfg.Namespace != "" && cfg.Region != "" {
		cfg.Endpoint = fmt.Sprintf("%s.compat.objectstorage.%s.oraclecloud.com", cfg.Namespace, cfg.Region)
	}

	return cfg
}

// applyFile fills settings the environment left empty from a YAML file.
// A missing file is not an error; a malformed one is ignored the same way,
// since the environment alone must stay sufficient.
func (c *Config) applyFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return
	}

	if c.BucketName == "" {
		c.BucketName = fc.Bucket
	}
	if c.Namespace == "" {
		c.Namespace = fc.Namespace
	}
	if c.Region == "" {
		c.Region = fc.Region
	}
	if c.Endpoint == "" {
		c.Endpoint = fc.Endpoint
	}
	if c.ProxyURL == DefaultProxyURL && fc.ProxyURL != "" {
		c.ProxyURL = fc.ProxyURL
	}
	if os.Getenv("PROXY_TIMEOUT") == "" && fc.ProxyTimeoutSeconds > 0 {
		c.ProxyTimeout = time.Duration(fc.ProxyTimeoutSeconds) * time.Second
	}
	if c.AnthropicModel == "" {
		c.AnthropicModel = fc.Model
	}
	if c.RedisAddr == "" {
		c.RedisAddr = fc.RedisAddr
	}
	if os.Getenv("REDIS_DB") == "" && fc.RedisDB != 0 {
		c.RedisDB = fc.RedisDB
	}
	if c.Port == DefaultPort && fc.Port != "" {
		c.Port = fc.Port
	}
}

// ValidateStorage checks the settings the object storage backend needs.
// It returns an error naming every missing variable, so operators can fix
// them all in one pass.
func (c *Config) ValidateStorage() error {
	var missing []string
	if c.BucketName == "" {
		missing = append(missing, "OCI_BUCKET_NAME")
	}
	if c.Region == "" {
		missing = append(missing, "OCI_REGION")
	}
	if c.AccessKey == "" {
		missing = append(missing, "OCI_ACCESS_KEY")
	}
	if c.SecretKey == "" {
		missing = append(missing, "OCI_SECRET_KEY")
	}
	if c.Endpoint == "" {
		missing = append(missing, "OCI_S3_ENDPOINT (or OCI_NAMESPACE)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateAgent checks the settings the agent harness needs.
func (c *Config) ValidateAgent() error {
	if c.AnthropicAPIKey == "" {
		return fmt.Errorf("missing required environment variable: ANTHROPIC_API_KEY")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
