package fotoai_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fotoai "github.com/Vrun1506/foto-AI"
	"github.com/Vrun1506/foto-AI/internal/config"
	"github.com/Vrun1506/foto-AI/internal/storage"
)

func TestVersionIsEmbedded(t *testing.T) {
	assert.NotEmpty(t, strings.TrimSpace(fotoai.Version))
}

func TestNew_DefaultsToProxyClient(t *testing.T) {
	cfg := &config.Config{ProxyURL: config.DefaultProxyURL, ProxyTimeout: 5 * time.Second}
	app := fotoai.New(cfg)
	defer app.Close()

	assert.NotNil(t, app.Sender)
	assert.NotNil(t, app.Toolbox)
	assert.NotNil(t, app.Logger)
}

func TestHarness_RequiresAPIKey(t *testing.T) {
	app := fotoai.New(&config.Config{}, fotoai.WithSender(noopSender{}))
	defer app.Close()

	_, err := app.Harness()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")
}

func TestHarness_WithInjectedClient(t *testing.T) {
	app := fotoai.New(&config.Config{},
		fotoai.WithSender(noopSender{}),
		fotoai.WithLLMClient(&scriptedClient{}),
	)
	defer app.Close()

	harness, err := app.Harness()
	require.NoError(t, err)
	assert.NotNil(t, harness)
}

func TestObjectStore_RequiresStorageConfig(t *testing.T) {
	app := fotoai.New(&config.Config{}, fotoai.WithSender(noopSender{}))
	defer app.Close()

	_, err := app.ObjectStore()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OCI_BUCKET_NAME")
}

func TestObjectStore_UsesInjectedStore(t *testing.T) {
	mem := storage.NewMemory()
	app := fotoai.New(&config.Config{},
		fotoai.WithSender(noopSender{}),
		fotoai.WithObjectStore(mem),
	)
	defer app.Close()

	store, err := app.ObjectStore()
	require.NoError(t, err)
	assert.Same(t, mem, store)
}
