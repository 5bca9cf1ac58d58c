// Package fotoai wires the Photoshop proxy client, the tool surface, the
// agent harness and the storage backend into one application, so the CLI
// and embedders assemble the stack the same way.
package fotoai

import (
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/Vrun1506/foto-AI/internal/adapters/redis"
	"github.com/Vrun1506/foto-AI/internal/agent"
	"github.com/Vrun1506/foto-AI/internal/agent/llm"
	"github.com/Vrun1506/foto-AI/internal/config"
	"github.com/Vrun1506/foto-AI/internal/logging"
	"github.com/Vrun1506/foto-AI/internal/photoshop"
	"github.com/Vrun1506/foto-AI/internal/photoshop/tools"
	"github.com/Vrun1506/foto-AI/internal/storage"
)

//go:embed VERSION
var Version string

// App holds the assembled application components.
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Sender  photoshop.Sender
	Toolbox *tools.Toolbox

	llmClient   llm.Client
	objectStore storage.ObjectStore
	transcripts *redis.Store
}

// Option configures the App.
type Option func(*App)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.Logger = logger
	}
}

// WithSender injects a custom command sender, replacing the websocket
// proxy client. Used by tests and embedders with their own transport.
func WithSender(sender photoshop.Sender) Option {
	return func(a *App) {
		a.Sender = sender
	}
}

// WithLLMClient injects a custom model client.
func WithLLMClient(client llm.Client) Option {
	return func(a *App) {
		a.llmClient = client
	}
}

// WithObjectStore injects a custom object store, replacing the bucket
// backend.
func WithObjectStore(store storage.ObjectStore) Option {
	return func(a *App) {
		a.objectStore = store
	}
}

// New assembles the application from configuration. Components that need
// credentials (storage, agent) are constructed lazily by their accessors so
// a command only pays for what it uses.
func New(cfg *config.Config, opts ...Option) *App {
	app := &App{Config: cfg}

	for _, opt := range opts {
		opt(app)
	}

	if app.Logger == nil {
		app.Logger = logging.New(slog.LevelInfo)
	}
	if app.Sender == nil {
		app.Sender = photoshop.NewClient(cfg.ProxyURL,
			photoshop.WithTimeout(cfg.ProxyTimeout),
			photoshop.WithLogger(app.Logger),
		)
	}
	app.Toolbox = tools.New(app.Sender, app.Logger)

	return app
}

// ObjectStore returns the bucket backend, validating storage settings on
// first use.
func (a *App) ObjectStore() (storage.ObjectStore, error) {
	if a.objectStore != nil {
		return a.objectStore, nil
	}
	if err := a.Config.ValidateStorage(); err != nil {
		return nil, err
	}
	store, err := storage.NewS3(a.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}
	a.objectStore = store
	return a.objectStore, nil
}

// transcriptTTL bounds how long idle conversations stay resumable.
const transcriptTTL = 30 * 24 * time.Hour

// Transcripts returns the Redis transcript store, or nil when Redis is not
// configured.
func (a *App) Transcripts() *redis.Store {
	if a.transcripts == nil && a.Config.RedisAddr != "" {
		a.transcripts = redis.New(a.Config.RedisAddr, a.Config.RedisPassword, a.Config.RedisDB,
			redis.WithTTL(transcriptTTL))
	}
	return a.transcripts
}

// Harness assembles the agent harness, validating agent settings.
func (a *App) Harness() (*agent.Harness, error) {
	if a.llmClient == nil {
		if err := a.Config.ValidateAgent(); err != nil {
			return nil, err
		}
		a.llmClient = llm.NewAnthropicClient(a.Config.AnthropicAPIKey, a.Config.AnthropicModel)
	}

	var store agent.TranscriptStore
	var opts []agent.HarnessOption
	if transcripts := a.Transcripts(); transcripts != nil {
		store = transcripts
		opts = append(opts, agent.WithHarnessLocker(transcripts.Locker()))
	}

	return agent.NewHarness(a.llmClient, a.Sender, a.Toolbox, store, a.Logger, opts...), nil
}

// Close releases held connections.
func (a *App) Close() error {
	if a.transcripts != nil {
		return a.transcripts.Close()
	}
	return nil
}
