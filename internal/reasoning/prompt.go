package reasoning

import (
	"fmt"
	"strings"

	"github.com/slotwise/putaway/internal/catalog"
	"github.com/slotwise/putaway/internal/model"
)

const systemPrompt = "You are a warehouse optimization expert. Provide zone recommendations with detailed reasoning."

// buildPrompt renders the user prompt for the given item and eligible zones.
// A singleton set selects the justification variant: the zone is already
// decided by safety rules and the model only explains it. Otherwise the
// model weighs the decision criteria and picks one zone.
func buildPrompt(item model.ItemSpec, eligible []string, cat *catalog.Catalog) string {
	zones := zoneDescriptions(eligible, cat)

	if len(eligible) == 1 {
		return fmt.Sprintf(`You are an expert warehouse management AI agent. Explain why this item MUST be stored in the designated zone.

INCOMING ITEM DETAILS:
%s

DESIGNATED ZONE:
%s
This zone assignment is MANDATORY due to safety regulations. Explain in 2-3 detailed sentences WHY this specific item requires this zone, referencing the item's properties and the zone's specialized capabilities.

Respond in this EXACT format:

ZONE: %s
CONFIDENCE: high
REASONING: [Provide detailed explanation about why this item's specific characteristics (hazard class, temperature needs, weight, etc.) require this zone's specialized features (temperature control, fire safety, equipment, etc.). Be specific and technical.]`,
			itemDetails(item), zones, eligible[0])
	}

	return fmt.Sprintf(`You are an expert warehouse management AI agent. Your task is to select the optimal storage zone for an incoming item and provide detailed reasoning.

INCOMING ITEM DETAILS:
%s

AVAILABLE ZONES (after safety filtering):
%s
DECISION CRITERIA:
1. Safety compliance (hazmat regulations, weight limits, temperature control)
2. Operational efficiency (pick time, dispatch distance)
3. Space utilization (rack type compatibility)
4. Equipment availability (handling requirements)

Provide your recommendation in this EXACT format:

ZONE: [single letter from: %s]
CONFIDENCE: [high/medium/low]
REASONING: [Provide 2-3 sentences explaining why this zone is optimal for this specific item, considering its weight, turnover rate, handling requirements, and operational benefits. Reference specific zone characteristics like rack type, equipment, or dispatch distance.]`,
		itemDetails(item), zones, strings.Join(eligible, ", "))
}

func itemDetails(item model.ItemSpec) string {
	return fmt.Sprintf(`- Product Name: %s
- Category: %s
- Weight: %gkg
- Hazard Classification: %s
- Temperature Requirement: %s
- Turnover Rate: %s`,
		item.ProductName, item.Category, item.WeightKg,
		item.Hazard, item.Temperature, item.Turnover)
}

// zoneDescriptions renders the catalog excerpt restricted to the eligible set.
func zoneDescriptions(eligible []string, cat *catalog.Catalog) string {
	var b strings.Builder
	for _, id := range eligible {
		p, ok := cat.Get(id)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "Zone %s: %s\n", id, p.Name)
		fmt.Fprintf(&b, "  - Type: %s\n", p.Type)
		fmt.Fprintf(&b, "  - Max Weight: %gkg\n", p.MaxWeightKg)
		fmt.Fprintf(&b, "  - Temperature: %s\n", p.TempRange)
		fmt.Fprintf(&b, "  - Rack: %s\n", p.RackType)
		fmt.Fprintf(&b, "  - Equipment: %s\n", p.Equipment)
		fmt.Fprintf(&b, "  - Dispatch Distance: %dm\n", p.DispatchDistanceM)
	}
	return b.String()
}
