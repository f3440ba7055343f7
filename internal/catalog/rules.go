package catalog

import (
	"fmt"

	"github.com/slotwise/putaway/internal/model"
)

// CategoryRule holds the expected defaults for a product category. Used for
// form prefill and advisory validation only; never enforced.
type CategoryRule struct {
	TempDefault   model.TempRequirement
	HazardDefault model.HazardClass
	Description   string
}

// CategoryRules maps known product categories to their expected defaults.
var CategoryRules = map[string]CategoryRule{
	"Frozen Food": {
		TempDefault:   model.TempFrozen,
		HazardDefault: model.HazardNone,
		Description:   "Perishable food requiring -18°C storage",
	},
	"Chemicals": {
		TempDefault:   model.TempAmbient,
		HazardDefault: model.HazardCorrosive,
		Description:   "May contain hazardous substances",
	},
	"Pharmaceuticals": {
		TempDefault:   model.TempControlled,
		HazardDefault: model.HazardNone,
		Description:   "Temperature-sensitive medical products",
	},
	"Electronics": {
		TempDefault:   model.TempAmbient,
		HazardDefault: model.HazardNone,
		Description:   "Standard electronics goods",
	},
	"Machinery": {
		TempDefault:   model.TempAmbient,
		HazardDefault: model.HazardNone,
		Description:   "Heavy industrial equipment",
	},
	"Textiles": {
		TempDefault:   model.TempAmbient,
		HazardDefault: model.HazardNone,
		Description:   "Fabric and clothing items",
	},
	"Automotive": {
		TempDefault:   model.TempAmbient,
		HazardDefault: model.HazardNone,
		Description:   "Auto parts and components",
	},
	"General Goods": {
		TempDefault:   model.TempAmbient,
		HazardDefault: model.HazardNone,
		Description:   "Standard merchandise",
	},
}

// ValidateItem checks an item's selections against the expectations for its
// category and returns advisory warnings. Unknown categories produce none.
// Warnings never block a decision.
func ValidateItem(item model.ItemSpec) []string {
	rule, ok := CategoryRules[item.Category]
	if !ok {
		return nil
	}

	var warnings []string
	switch {
	case rule.TempDefault == model.TempFrozen &&
		item.Temperature != model.TempFrozen && item.Temperature != model.TempCold:
		warnings = append(warnings, fmt.Sprintf(
			"CRITICAL: %q typically requires frozen/cold storage, but %q is selected",
			item.Category, item.Temperature))
	case rule.TempDefault == model.TempCold && item.Temperature == model.TempAmbient:
		warnings = append(warnings, fmt.Sprintf(
			"WARNING: %q usually needs cold storage, but ambient is selected", item.Category))
	case rule.TempDefault == model.TempControlled && item.Temperature == model.TempAmbient:
		warnings = append(warnings, fmt.Sprintf(
			"NOTICE: %q may need controlled temperature, but ambient is selected", item.Category))
	}

	if rule.HazardDefault != model.HazardNone && item.Hazard == model.HazardNone {
		warnings = append(warnings, fmt.Sprintf(
			"WARNING: %q may contain hazardous materials; review the hazard classification",
			item.Category))
	}
	return warnings
}
