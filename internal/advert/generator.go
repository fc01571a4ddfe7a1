package advert

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/advert-generator/internal/llm"
	"github.com/jonathan/advert-generator/internal/logging"
	"github.com/jonathan/advert-generator/internal/metrics"
)

// Config is the explicit configuration of the generation client
type Config struct {
	APIKey string
	LLM    *llm.Config
}

// Generator performs one model call per Generate invocation. It never retries.
type Generator struct {
	config    Config
	newClient llm.Factory
	logger    *zap.Logger
}

// Option customizes a Generator
type Option func(*Generator)

// WithClientFactory replaces how the provider client is built.
func WithClientFactory(factory llm.Factory) Option {
	return func(g *Generator) {
		g.newClient = factory
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// NewGenerator creates a generator. A missing API key is reported by Generate,
// not here, so the server can start and show the error on submit.
func NewGenerator(config Config, opts ...Option) *Generator {
	if config.LLM == nil {
		config.LLM = llm.DefaultConfig()
	}

	g := &Generator{
		config:    config,
		newClient: llm.NewClient,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = logging.OrNop(g.logger)
	return g
}

// Model returns the model name adverts are generated with.
func (g *Generator) Model() string {
	return g.config.LLM.GetModel(llm.TierStandard)
}

// Generate sends prompt to the model and returns the advert markdown.
// It returns *ConfigurationError without touching the network when no API key
// is configured, and *ProviderError when the provider call fails.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.config.APIKey == "" {
		metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeConfigError).Inc()
		return "", &ConfigurationError{Variable: APIKeyVariable}
	}

	client, err := g.newClient(ctx, g.config.LLM, g.config.APIKey)
	if err != nil {
		return "", g.providerFailure(err)
	}
	defer func() {
		if cerr := client.Close(); cerr != nil {
			g.logger.Warn("failed to close model client", zap.Error(cerr))
		}
	}()

	start := time.Now()
	text, err := client.GenerateContent(ctx, prompt, llm.TierStandard)
	metrics.GenerationDuration.WithLabelValues(g.Model()).Observe(time.Since(start).Seconds())

	if errors.Is(err, llm.ErrEmptyResponse) {
		metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeEmpty).Inc()
		g.logger.Info("model returned no content", zap.String("model", g.Model()))
		return EmptyContentPlaceholder, nil
	}
	if err != nil {
		return "", g.providerFailure(err)
	}
	if text == "" {
		metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeEmpty).Inc()
		return EmptyContentPlaceholder, nil
	}

	metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	g.logger.Debug("advert generated",
		zap.String("model", g.Model()),
		zap.Int("prompt_chars", len(prompt)),
		zap.Int("content_chars", len(text)),
	)
	return text, nil
}

func (g *Generator) providerFailure(err error) error {
	metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeProvider).Inc()
	g.logger.Error("model provider call failed",
		zap.String("model", g.Model()),
		zap.Error(err),
	)
	return &ProviderError{Cause: err}
}
