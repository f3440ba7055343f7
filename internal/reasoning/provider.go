package reasoning

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/slotwise/putaway/internal/catalog"
	"github.com/slotwise/putaway/internal/config"
	"github.com/slotwise/putaway/internal/model"
)

// minUsableResponse is the shortest trimmed reply length worth parsing.
const minUsableResponse = 10

// Provider turns an item and its eligible zone set into a zone selection
// with a natural-language justification. A nil backend means no usable
// backend was configured and every selection resolves through the
// deterministic fallback. That asymmetry is deliberate: a missing credential
// silently falls back, while a runtime backend failure is fatal to the
// decision and is never retried.
type Provider struct {
	backend Backend
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewProvider builds a provider from configuration. Backend resolution
// happens once here, not per call: "ollama" selects the local endpoint,
// "openrouter" selects the hosted API when a credential is present and the
// fallback-only provider when it is not.
func NewProvider(cfg config.Config, cat *catalog.Catalog, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	var backend Backend
	switch cfg.Backend {
	case config.BackendOllama:
		backend = NewOllamaBackend(cfg.BaseURL, cfg.Model)
	case config.BackendOpenRouter:
		if cfg.APIKey != "" {
			backend = NewOpenRouterBackend(cfg.BaseURL, cfg.APIKey, cfg.Model)
		} else {
			logger.Info("no reasoning credential configured, using deterministic fallback")
		}
	}
	return &Provider{backend: backend, catalog: cat, logger: logger}
}

// NewProviderWithBackend builds a provider over an explicit backend.
// A nil backend selects the fallback path.
func NewProviderWithBackend(backend Backend, cat *catalog.Catalog, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{backend: backend, catalog: cat, logger: logger}
}

// Select picks a zone from the eligible set and explains the choice. The
// returned zone is always a member of eligible. Failure is reported on the
// result, never by panicking: an empty eligible set, a backend call error,
// or an unusably short reply each yield Success=false with a distinct
// message, and the caller decides what to do.
func (p *Provider) Select(ctx context.Context, item model.ItemSpec, eligible []string) model.ReasoningResult {
	if len(eligible) == 0 {
		return model.ReasoningResult{
			Confidence: model.ConfidenceLow,
			Err:        ErrNoEligibleZones.Error(),
		}
	}

	if p.backend == nil {
		p.logger.Debug("reasoning via fallback", zap.String("item", item.ID))
		return Fallback(item, eligible, p.catalog)
	}

	prompt := buildPrompt(item, eligible, p.catalog)
	p.logger.Debug("calling reasoning backend",
		zap.String("backend", p.backend.Name()),
		zap.String("item", item.ID),
		zap.Strings("eligible", eligible))

	start := time.Now()
	text, err := p.backend.Complete(ctx, systemPrompt, prompt)
	latency := time.Since(start)

	if err != nil {
		p.logger.Warn("reasoning backend failed",
			zap.String("backend", p.backend.Name()), zap.Error(err))
		return model.ReasoningResult{
			Confidence: model.ConfidenceLow,
			Latency:    latency,
			Err:        err.Error(),
			Backend:    p.backend.Name(),
		}
	}

	if len(strings.TrimSpace(text)) < minUsableResponse {
		p.logger.Warn("reasoning backend returned unusable response",
			zap.String("backend", p.backend.Name()), zap.Int("length", len(text)))
		return model.ReasoningResult{
			Confidence: model.ConfidenceLow,
			Latency:    latency,
			Err:        ErrEmptyResponse.Error(),
			Backend:    p.backend.Name(),
		}
	}

	parsed := parseResponse(text, eligible)
	p.logger.Debug("reasoning parsed",
		zap.String("zone", parsed.Zone),
		zap.String("confidence", string(parsed.Confidence)),
		zap.Duration("latency", latency))

	return model.ReasoningResult{
		Zone:       parsed.Zone,
		Confidence: parsed.Confidence,
		Reasoning:  parsed.Reasoning,
		Latency:    latency,
		Success:    true,
		Backend:    p.backend.Name(),
	}
}
