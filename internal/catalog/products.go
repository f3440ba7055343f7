package catalog

import (
	"sort"

	"github.com/slotwise/putaway/internal/model"
)

// Preset is a predefined product for quick item entry.
type Preset struct {
	Category    string                `json:"category"`
	WeightKg    float64               `json:"weight_kg"`
	Hazard      model.HazardClass     `json:"hazard"`
	Temperature model.TempRequirement `json:"temperature"`
	Turnover    model.TurnoverRate    `json:"turnover"`
}

// Products is the predefined product catalog.
var Products = map[string]Preset{
	"Industrial Solvent (Flammable)": {
		Category: "Chemicals", WeightKg: 25.0,
		Hazard: model.HazardFlammable, Temperature: model.TempAmbient, Turnover: model.TurnoverMedium,
	},
	"Frozen Vegetables - 20kg Case": {
		Category: "Frozen Food", WeightKg: 20.0,
		Hazard: model.HazardNone, Temperature: model.TempFrozen, Turnover: model.TurnoverHigh,
	},
	"Smartphone - iPhone 15 Pro": {
		Category: "Electronics", WeightKg: 2.5,
		Hazard: model.HazardNone, Temperature: model.TempAmbient, Turnover: model.TurnoverHigh,
	},
	"Industrial Motor - 800kg": {
		Category: "Machinery", WeightKg: 800.0,
		Hazard: model.HazardNone, Temperature: model.TempAmbient, Turnover: model.TurnoverLow,
	},
	"Laptop - Dell XPS 13": {
		Category: "Electronics", WeightKg: 3.0,
		Hazard: model.HazardNone, Temperature: model.TempAmbient, Turnover: model.TurnoverHigh,
	},
	"Frozen Pizza - Bulk Pack": {
		Category: "Frozen Food", WeightKg: 15.0,
		Hazard: model.HazardNone, Temperature: model.TempFrozen, Turnover: model.TurnoverHigh,
	},
	"Hydrochloric Acid 5L": {
		Category: "Chemicals", WeightKg: 6.5,
		Hazard: model.HazardCorrosive, Temperature: model.TempAmbient, Turnover: model.TurnoverLow,
	},
	"Insulin Vials - Refrigerated": {
		Category: "Pharmaceuticals", WeightKg: 1.2,
		Hazard: model.HazardNone, Temperature: model.TempCold, Turnover: model.TurnoverMedium,
	},
	"Cotton T-Shirts - 100pc Carton": {
		Category: "Textiles", WeightKg: 25.0,
		Hazard: model.HazardNone, Temperature: model.TempAmbient, Turnover: model.TurnoverMedium,
	},
	"Car Engine Block - V6": {
		Category: "Automotive", WeightKg: 180.0,
		Hazard: model.HazardNone, Temperature: model.TempAmbient, Turnover: model.TurnoverLow,
	},
	"Lithium Battery Pack - Industrial": {
		Category: "Electronics", WeightKg: 45.0,
		Hazard: model.HazardFlammable, Temperature: model.TempAmbient, Turnover: model.TurnoverMedium,
	},
	"Steel Beams - 2500kg Pallet": {
		Category: "Machinery", WeightKg: 2500.0,
		Hazard: model.HazardNone, Temperature: model.TempAmbient, Turnover: model.TurnoverLow,
	},
	"Frozen Seafood - Premium Pack": {
		Category: "Frozen Food", WeightKg: 30.0,
		Hazard: model.HazardNone, Temperature: model.TempFrozen, Turnover: model.TurnoverMedium,
	},
	"Medical Equipment - Sterile": {
		Category: "Pharmaceuticals", WeightKg: 8.0,
		Hazard: model.HazardNone, Temperature: model.TempControlled, Turnover: model.TurnoverMedium,
	},
	"Paint Thinner - 25L Drum": {
		Category: "Chemicals", WeightKg: 22.0,
		Hazard: model.HazardFlammable, Temperature: model.TempAmbient, Turnover: model.TurnoverLow,
	},
	"Gaming Console - PS5": {
		Category: "Electronics", WeightKg: 4.5,
		Hazard: model.HazardNone, Temperature: model.TempAmbient, Turnover: model.TurnoverHigh,
	},
	"Winter Jackets - 50pc Box": {
		Category: "Textiles", WeightKg: 35.0,
		Hazard: model.HazardNone, Temperature: model.TempAmbient, Turnover: model.TurnoverMedium,
	},
	"Brake Pads - Assorted Set": {
		Category: "Automotive", WeightKg: 12.0,
		Hazard: model.HazardNone, Temperature: model.TempAmbient, Turnover: model.TurnoverHigh,
	},
	"Ammonia Solution - 10L": {
		Category: "Chemicals", WeightKg: 11.0,
		Hazard: model.HazardToxic, Temperature: model.TempAmbient, Turnover: model.TurnoverLow,
	},
	"Industrial Forklift Battery": {
		Category: "Machinery", WeightKg: 650.0,
		Hazard: model.HazardNone, Temperature: model.TempAmbient, Turnover: model.TurnoverLow,
	},
}

// ProductNames returns the preset names sorted alphabetically.
func ProductNames() []string {
	names := make([]string, 0, len(Products))
	for name := range Products {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
