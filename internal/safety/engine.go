// Package safety implements the hard-constraint rule engine that runs before
// any reasoning. Safety rules are non-negotiable: they can force a mandatory
// zone or shrink the eligible set, and the reasoning stage may never widen
// the result.
package safety

import (
	"fmt"
	"strings"

	"github.com/slotwise/putaway/internal/catalog"
	"github.com/slotwise/putaway/internal/model"
)

// Regulatory citations attached to rejection records.
const (
	regHazmat    = "OSHA 1910.106 / EPA 40 CFR"
	regColdChain = "FDA 21 CFR 110 / HACCP"
	regCapacity  = "Rack capacity spec"
)

// Engine derives zone eligibility from an item and a zone catalog.
type Engine struct {
	catalog *catalog.Catalog
}

// New returns an engine over the given catalog.
func New(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Assess evaluates the safety rules for one item. Pure function of its
// inputs: no side effects, no external calls, always returns an assessment.
// Rules are ordered; the first applicable branch wins. An empty eligible set
// (item heavier than every zone) is a valid result the caller must handle.
func (e *Engine) Assess(item model.ItemSpec) model.SafetyAssessment {
	a := model.SafetyAssessment{
		Checks: model.SafetyChecks{
			FireSafety:        model.SafetyCheck{Status: true, Message: "No hazardous materials detected"},
			WeightLimit:       model.SafetyCheck{Status: true, Message: fmt.Sprintf("Weight %gkg within limits", item.WeightKg)},
			TempRequirement:   model.SafetyCheck{Status: true, Message: "Ambient storage acceptable"},
			DispatchProximity: model.SafetyCheck{Status: true, Message: "Standard dispatch routing"},
		},
	}

	switch {
	case item.Hazard.Hazardous():
		e.forceZone(&a, e.catalog.FireSafeZone(),
			fmt.Sprintf("Not certified for %s materials", item.Hazard), regHazmat)
		a.Checks.FireSafety.Message = fmt.Sprintf(
			"HAZMAT protocol: %s routed to fire-safe zone", strings.ToUpper(string(item.Hazard)))

	case item.Temperature.ColdChain():
		e.forceZone(&a, e.catalog.RefrigeratedZone(),
			"No temperature control capability", regColdChain)
		a.Checks.TempRequirement.Message = fmt.Sprintf(
			"Cold chain required: %s storage activated", strings.ToUpper(string(item.Temperature)))

	default:
		for _, id := range e.catalog.IDs() {
			profile, _ := e.catalog.Get(id)
			if item.WeightKg > profile.MaxWeightKg {
				a.Rejected = append(a.Rejected, model.Rejection{
					Zone:       id,
					Reason:     fmt.Sprintf("Exceeds %gkg limit (item: %gkg)", profile.MaxWeightKg, item.WeightKg),
					Regulation: regCapacity,
				})
				continue
			}
			a.Eligible = append(a.Eligible, id)
		}
		if item.WeightKg > catalog.HeavyThresholdKg {
			a.Checks.WeightLimit.Message = fmt.Sprintf(
				"Heavy item (%gkg): reinforced storage required", item.WeightKg)
		}
	}

	// High-velocity annotation. Recommendation only; never restricts eligibility.
	fastPick := e.catalog.FastPickZone()
	if item.Turnover == model.TurnoverHigh && fastPick != "" {
		if profile, ok := e.catalog.Get(fastPick); ok &&
			item.WeightKg < profile.MaxWeightKg && contains(a.Eligible, fastPick) {
			a.Checks.DispatchProximity.Message = fmt.Sprintf(
				"High-velocity SKU: fast-pick zone %s recommended", fastPick)
		}
	}

	return a
}

// forceZone makes zone the mandatory assignment and rejects every other
// catalog zone with the given reason. A catalog without a designated zone
// yields an empty eligible set with every zone rejected.
func (e *Engine) forceZone(a *model.SafetyAssessment, zone, reason, regulation string) {
	if zone != "" {
		a.Mandatory = zone
		a.Eligible = []string{zone}
	}
	for _, id := range e.catalog.IDs() {
		if id == zone {
			continue
		}
		a.Rejected = append(a.Rejected, model.Rejection{
			Zone: id, Reason: reason, Regulation: regulation,
		})
	}
}

func contains(zones []string, id string) bool {
	for _, z := range zones {
		if z == id {
			return true
		}
	}
	return false
}
