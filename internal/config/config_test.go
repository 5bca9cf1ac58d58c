package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vrun1506/foto-AI/internal/config"
)

// clearEnv blanks every variable Load reads, so the ambient environment
// cannot leak into assertions.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OCI_BUCKET_NAME", "OCI_NAMESPACE", "OCI_REGION", "OCI_S3_ENDPOINT",
		"OCI_ACCESS_KEY", "OCI_SECRET_KEY", "PROXY_URL", "PROXY_TIMEOUT",
		"ANTHROPIC_API_KEY", "ANTHROPIC_MODEL", "REDIS_ADDR", "REDIS_PASSWORD",
		"REDIS_DB", "PORT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg := config.Load()
	assert.Equal(t, config.DefaultProxyURL, cfg.ProxyURL)
	assert.Equal(t, config.DefaultProxyTimeout, cfg.ProxyTimeout)
	assert.Equal(t, config.DefaultPort, cfg.Port)
	assert.Empty(t, cfg.BucketName)
}

func TestLoad_EnvironmentWins(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("PROXY_URL", "http://proxy:9000")
	t.Setenv("PROXY_TIMEOUT", "45")
	t.Setenv("OCI_BUCKET_NAME", "images")
	t.Setenv("REDIS_DB", "3")

	cfg := config.Load()
	assert.Equal(t, "http://proxy:9000", cfg.ProxyURL)
	assert.Equal(t, 45*time.Second, cfg.ProxyTimeout)
	assert.Equal(t, "images", cfg.BucketName)
	assert.Equal(t, 3, cfg.RedisDB)
}

func TestLoad_DerivesCompatEndpoint(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("OCI_NAMESPACE", "mytenancy")
	t.Setenv("OCI_REGION", "eu-frankfurt-1")

	cfg := config.Load()
	assert.Equal(t, "mytenancy.compat.objectstorage.eu-frankfurt-1.oraclecloud.com", cfg.Endpoint)
}

func TestLoad_YAMLSuppliesDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	yaml := `
bucket: yaml-bucket
proxy_url: http://yaml-proxy:3001
proxy_timeout_seconds: 30
model: claude-sonnet-4-5
redis_addr: localhost:6379
port: "8080"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte(yaml), 0o644))
	t.Chdir(dir)

	cfg := config.Load()
	assert.Equal(t, "yaml-bucket", cfg.BucketName)
	assert.Equal(t, "http://yaml-proxy:3001", cfg.ProxyURL)
	assert.Equal(t, 30*time.Second, cfg.ProxyTimeout)
	assert.Equal(t, "claude-sonnet-4-5", cfg.AnthropicModel)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoad_EnvironmentBeatsYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	yaml := "bucket: yaml-bucket\nport: \"8080\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte(yaml), 0o644))
	t.Chdir(dir)
	t.Setenv("OCI_BUCKET_NAME", "env-bucket")

	cfg := config.Load()
	assert.Equal(t, "env-bucket", cfg.BucketName)
	assert.Equal(t, "8080", cfg.Port)
}

func TestValidateStorage_NamesEveryMissingVariable(t *testing.T) {
	cfg := &config.Config{}
	err := cfg.ValidateStorage()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OCI_BUCKET_NAME")
	assert.Contains(t, err.Error(), "OCI_REGION")
	assert.Contains(t, err.Error(), "OCI_ACCESS_KEY")
	assert.Contains(t, err.Error(), "OCI_SECRET_KEY")
}

func TestValidateStorage_Complete(t *testing.T) {
	cfg := &config.Config{
		BucketName: "b",
		Region:     "r",
		AccessKey:  "a",
		SecretKey:  "s",
		Endpoint:   "e",
	}
	assert.NoError(t, cfg.ValidateStorage())
}

func TestValidateAgent(t *testing.T) {
	cfg := &config.Config{}
	assert.Error(t, cfg.ValidateAgent())

	cfg.AnthropicAPIKey = "sk-ant"
	assert.NoError(t, cfg.ValidateAgent())
}
