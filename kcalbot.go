// Package kcalbot wires the calorie-counting conversation engine to its
// transports, the optional AI estimator and the observability server.
package kcalbot

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/kcalbot-dev/kcalbot/internal/engine"
	"github.com/kcalbot-dev/kcalbot/internal/estimate"
	"github.com/kcalbot-dev/kcalbot/internal/nutrition"
	"github.com/kcalbot-dev/kcalbot/internal/session"
	"github.com/kcalbot-dev/kcalbot/internal/transport"
	"github.com/kcalbot-dev/kcalbot/pkg/observability"
)

// Config is the top-level configuration.
type Config struct {
	// HTTPPort serves /health and /metrics.
	HTTPPort int `yaml:"http_port"`

	// Transport selects the message loop: "console" or "channel".
	Transport string `yaml:"transport"`

	Estimator EstimatorConfig `yaml:"estimator,omitempty"`

	Conversation ConversationConfig `yaml:"conversation,omitempty"`

	// DailyResetCron clears all ledgers on schedule (default midnight).
	// Empty disables the scheduled reset.
	DailyResetCron string `yaml:"daily_reset_cron"`
}

// EstimatorConfig configures the optional external AI estimator.
type EstimatorConfig struct {
	// Enabled turns the AI path on. Off by default; the keyword
	// fallback alone is a complete configuration.
	Enabled bool `yaml:"enabled"`
	// Provider is "openai" or "gemini".
	Provider string `yaml:"provider"`
	// Model overrides the provider default model.
	Model string `yaml:"model,omitempty"`
	// TimeoutSeconds bounds each estimator call.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// ConversationConfig tunes the state machine.
type ConversationConfig struct {
	// PendingTTLSeconds expires unanswered confirmations.
	PendingTTLSeconds int `yaml:"pending_ttl_seconds"`
	// RateLimitPerSecond throttles inbound messages per user (0 = off).
	RateLimitPerSecond float64 `yaml:"rate_limit_per_second"`
	RateLimitBurst     int     `yaml:"rate_limit_burst"`
}

// FileReader reads files, seam for config-loading tests.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// OSFileReader reads from the real filesystem.
type OSFileReader struct{}

func (OSFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// LoadConfig parses a yaml config file and applies defaults.
func LoadConfig(fr FileReader, path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := fr.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		HTTPPort:       8080,
		Transport:      "console",
		DailyResetCron: "0 0 * * *",
		Estimator: EstimatorConfig{
			Provider:       "openai",
			TimeoutSeconds: 30,
		},
		Conversation: ConversationConfig{
			PendingTTLSeconds:  300,
			RateLimitPerSecond: 1,
			RateLimitBurst:     5,
		},
	}
}

func (c *Config) validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("http_port out of range: %d", c.HTTPPort)
	}
	switch c.Transport {
	case "console", "channel":
	default:
		return fmt.Errorf("unknown transport %q", c.Transport)
	}
	if c.Estimator.Enabled && c.Estimator.Provider == "" {
		return fmt.Errorf("estimator enabled but no provider configured")
	}
	return nil
}

// App is an assembled bot instance.
type App struct {
	Engine    *engine.Engine
	Store     session.Store
	Transport transport.Transport
	obs       *observability.Server
	cron      *cron.Cron
}

// NewApp assembles all components from the configuration.
func NewApp(cfg *Config) (*App, error) {
	observability.InitMetrics()
	if err := observability.InitTracingFromEnv(); err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	table := nutrition.Default()
	store := session.NewMemoryStore()

	var estimator estimate.Estimator
	if cfg.Estimator.Enabled {
		var err error
		estimator, err = estimate.New(cfg.Estimator.Provider, map[string]any{
			"model": cfg.Estimator.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("create estimator: %w", err)
		}
		log.Printf("[APP] AI estimator enabled (provider: %s)", cfg.Estimator.Provider)
	} else {
		log.Println("[APP] AI estimator disabled, keyword fallback only")
	}

	eng := engine.New(table, store, engine.Options{
		Estimator:          estimator,
		AITimeout:          time.Duration(cfg.Estimator.TimeoutSeconds) * time.Second,
		PendingTTL:         time.Duration(cfg.Conversation.PendingTTLSeconds) * time.Second,
		RateLimitPerSecond: cfg.Conversation.RateLimitPerSecond,
		RateLimitBurst:     cfg.Conversation.RateLimitBurst,
	})

	var tr transport.Transport
	switch cfg.Transport {
	case "channel":
		tr = transport.NewChannel(64)
	default:
		tr = transport.NewConsole()
	}

	app := &App{
		Engine:    eng,
		Store:     store,
		Transport: tr,
		obs: observability.NewServer(cfg.HTTPPort, func() observability.Stats {
			return eng.Stats(context.Background())
		}),
	}

	if cfg.DailyResetCron != "" {
		app.cron = cron.New()
		_, err := app.cron.AddFunc(cfg.DailyResetCron, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if n, err := eng.ResetAllDays(ctx); err == nil {
				log.Printf("[CRON] daily reset: %d ledgers cleared", n)
			}
			if n, err := eng.SweepStale(ctx); err == nil && n > 0 {
				log.Printf("[CRON] swept %d stale confirmations", n)
			}
		})
		if err != nil {
			return nil, fmt.Errorf("schedule daily reset: %w", err)
		}
	}

	return app, nil
}

// Run starts the observability server, the transport loop and the reset
// scheduler, and blocks until the context is cancelled or a component
// fails.
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.Transport.Run(ctx, a.Engine.Handle)
	})

	g.Go(func() error {
		errCh := make(chan error, 1)
		go func() { errCh <- a.obs.Start() }()
		select {
		case err := <-errCh:
			return fmt.Errorf("observability server: %w", err)
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return a.obs.Shutdown(shutdownCtx)
		}
	})

	if a.cron != nil {
		a.cron.Start()
		defer a.cron.Stop()
	}

	err := g.Wait()

	flushCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if terr := observability.ShutdownTracing(flushCtx); terr != nil {
		log.Printf("[APP] tracing shutdown: %v", terr)
	}
	_ = a.Store.Close()
	return err
}
