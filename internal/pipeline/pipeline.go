// Package pipeline orchestrates one put-away decision: safety filtering,
// then reasoning, then assembly of the final Decision or a structured
// failure. The reasoning step runs even for a safety-forced zone; there its
// job is the explanatory narrative, not the choice. A decision without an
// explanation is treated as a failure, never silently assigned.
package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/slotwise/putaway/internal/audit"
	"github.com/slotwise/putaway/internal/catalog"
	"github.com/slotwise/putaway/internal/model"
	"github.com/slotwise/putaway/internal/reasoning"
	"github.com/slotwise/putaway/internal/safety"
)

// State is a pipeline stage marker, used for logging and failure context.
type State string

// Pipeline states, in order.
const (
	StateReceived  State = "RECEIVED"
	StateFiltered  State = "FILTERED"
	StateReasoning State = "REASONING"
	StateDecided   State = "DECIDED"
	StateFailed    State = "FAILED"
)

// Pipeline sequences the safety engine and the reasoning provider. The
// audit store is optional; when present, decided items are logged
// best-effort.
type Pipeline struct {
	engine   *safety.Engine
	provider *reasoning.Provider
	catalog  *catalog.Catalog
	audit    audit.Store
	logger   *zap.Logger
}

// New builds a pipeline. store may be nil to disable audit logging.
func New(engine *safety.Engine, provider *reasoning.Provider, cat *catalog.Catalog, store audit.Store, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{engine: engine, provider: provider, catalog: cat, audit: store, logger: logger}
}

// Decide runs the full pipeline for one item. The returned Decision is
// either a success carrying the assigned zone and its justification, or a
// failure carrying the error and the safety assessment that was still
// computed. The assigned zone is always inside the safety-filtered set.
func (p *Pipeline) Decide(ctx context.Context, item model.ItemSpec) model.Decision {
	p.logger.Debug("decision received", zap.String("item", item.ID), zap.String("state", string(StateReceived)))

	assessment := p.engine.Assess(item)
	p.logger.Debug("safety filtering complete",
		zap.String("item", item.ID),
		zap.String("state", string(StateFiltered)),
		zap.Strings("eligible", assessment.Eligible),
		zap.String("mandatory", assessment.Mandatory))

	// Capacity-exceeded policy: with nothing to choose from or narrate,
	// the reasoning stage is skipped and the decision fails outright.
	if len(assessment.Eligible) == 0 {
		return p.fail(item, assessment, fmt.Sprintf(
			"no eligible zone: item weight %gkg exceeds every zone capacity", item.WeightKg))
	}

	p.logger.Debug("invoking reasoning", zap.String("item", item.ID), zap.String("state", string(StateReasoning)))
	result := p.provider.Select(ctx, item, assessment.Eligible)
	if !result.Success {
		return p.fail(item, assessment, result.Err)
	}

	mandatory := assessment.Mandatory != ""
	zone := result.Zone
	confidence := result.Confidence
	if mandatory {
		// The provider was constrained to the singleton set, so this holds
		// already; the assignment keeps the invariant independent of the
		// provider implementation.
		zone = assessment.Mandatory
		confidence = model.ConfidenceHigh
	}

	profile, ok := p.catalog.Get(zone)
	if !ok {
		return p.fail(item, assessment, fmt.Sprintf("zone %q not in catalog", zone))
	}

	decision := model.Decision{
		Success:    true,
		Zone:       zone,
		ZoneName:   profile.Name,
		Profile:    profile,
		Confidence: confidence,
		Reasoning:  result.Reasoning,
		Elapsed:    result.Latency,
		Mandatory:  mandatory,
		Assessment: assessment,
	}

	if p.audit != nil {
		entry, err := p.audit.Append(ctx, audit.AppendParams{
			ItemID:     item.ID,
			Product:    item.ProductName,
			Zone:       zone,
			Confidence: confidence,
			Mandatory:  mandatory,
		})
		if err != nil {
			// Audit is an external collaborator; its failure does not
			// invalidate an already-made decision.
			p.logger.Warn("audit append failed", zap.String("item", item.ID), zap.Error(err))
		} else {
			decision.AuditID = entry.ID
		}
	}

	p.logger.Info("decision made",
		zap.String("item", item.ID),
		zap.String("state", string(StateDecided)),
		zap.String("zone", zone),
		zap.String("confidence", string(confidence)),
		zap.Bool("mandatory", mandatory),
		zap.Duration("elapsed", result.Latency))

	return decision
}

func (p *Pipeline) fail(item model.ItemSpec, assessment model.SafetyAssessment, msg string) model.Decision {
	p.logger.Warn("decision failed",
		zap.String("item", item.ID),
		zap.String("state", string(StateFailed)),
		zap.String("error", msg))
	return model.Decision{
		Error:      msg,
		Assessment: assessment,
	}
}
