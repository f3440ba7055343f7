package reasoning

import (
	"fmt"
	"time"

	"github.com/slotwise/putaway/internal/catalog"
	"github.com/slotwise/putaway/internal/model"
)

// fallbackLatency is the fixed latency reported by the heuristic path; no
// external work is performed.
const fallbackLatency = 50 * time.Millisecond

// FallbackName identifies the deterministic heuristic in result records.
const FallbackName = "fallback"

// Fallback deterministically selects a zone when no reasoning backend is
// usable. Ordered heuristic, first match wins. Always succeeds; pure
// function of its inputs.
func Fallback(item model.ItemSpec, eligible []string, cat *catalog.Catalog) model.ReasoningResult {
	res := model.ReasoningResult{
		Success: true,
		Latency: fallbackLatency,
		Backend: FallbackName,
	}

	bulk := cat.ReinforcedZone()
	fastPick := cat.FastPickZone()
	general := cat.GeneralZone()

	switch {
	case item.WeightKg > catalog.HeavyThresholdKg && zoneIn(bulk, eligible):
		p, _ := cat.Get(bulk)
		res.Zone = bulk
		res.Confidence = model.ConfidenceHigh
		res.Reasoning = fmt.Sprintf(
			"Heavy item (%gkg) requires Zone %s's reinforced infrastructure with %gkg capacity, heavy-duty equipment, and structural support for safe handling.",
			item.WeightKg, bulk, p.MaxWeightKg)

	case item.Turnover == model.TurnoverHigh && fastPickFits(item, fastPick, cat) && zoneIn(fastPick, eligible):
		p, _ := cat.Get(fastPick)
		res.Zone = fastPick
		res.Confidence = model.ConfidenceHigh
		res.Reasoning = fmt.Sprintf(
			"High-turnover %s item optimally placed in Zone %s fast-pick area. Close dispatch proximity (%dm) and %s maximize picking efficiency.",
			item.Category, fastPick, p.DispatchDistanceM, p.RackType)

	case item.Turnover == model.TurnoverMedium && zoneIn(general, eligible):
		p, _ := cat.Get(general)
		res.Zone = general
		res.Confidence = model.ConfidenceMedium
		res.Reasoning = fmt.Sprintf(
			"Standard %s item with medium turnover suited for Zone %s general storage. %s provides flexible slotting with balanced accessibility.",
			item.Category, general, p.RackType)

	default:
		zone := general
		if len(eligible) > 0 {
			zone = eligible[0]
		}
		p, _ := cat.Get(zone)
		res.Zone = zone
		res.Confidence = model.ConfidenceMedium
		res.Reasoning = fmt.Sprintf(
			"Item assigned to Zone %s (%s) based on operational constraints. %s compatible with %gkg load.",
			zone, p.Name, p.RackType, item.WeightKg)
	}

	return res
}

func fastPickFits(item model.ItemSpec, fastPick string, cat *catalog.Catalog) bool {
	p, ok := cat.Get(fastPick)
	return ok && item.WeightKg < p.MaxWeightKg
}

func zoneIn(zone string, eligible []string) bool {
	if zone == "" {
		return false
	}
	for _, id := range eligible {
		if id == zone {
			return true
		}
	}
	return false
}
