// Package model defines the core decision domain types.
package model

// HazardClass classifies an item's hazardous-material status.
type HazardClass string

// Hazard classifications.
const (
	HazardNone      HazardClass = "none"
	HazardFlammable HazardClass = "flammable"
	HazardCorrosive HazardClass = "corrosive"
	HazardToxic     HazardClass = "toxic"
	HazardExplosive HazardClass = "explosive"
	HazardOxidizer  HazardClass = "oxidizer"
)

// ValidHazards are the allowed hazard classifications.
var ValidHazards = map[HazardClass]bool{
	HazardNone:      true,
	HazardFlammable: true,
	HazardCorrosive: true,
	HazardToxic:     true,
	HazardExplosive: true,
	HazardOxidizer:  true,
}

// Hazardous reports whether the classification triggers hazmat handling.
func (h HazardClass) Hazardous() bool {
	return h != HazardNone && ValidHazards[h]
}

// TempRequirement is an item's storage temperature requirement.
type TempRequirement string

// Temperature requirements.
const (
	TempAmbient    TempRequirement = "ambient"
	TempCold       TempRequirement = "cold"
	TempFrozen     TempRequirement = "frozen"
	TempChilled    TempRequirement = "chilled"
	TempControlled TempRequirement = "controlled"
)

// ValidTemps are the allowed temperature requirements.
var ValidTemps = map[TempRequirement]bool{
	TempAmbient:    true,
	TempCold:       true,
	TempFrozen:     true,
	TempChilled:    true,
	TempControlled: true,
}

// ColdChain reports whether the requirement forces refrigerated storage.
func (t TempRequirement) ColdChain() bool {
	return t == TempCold || t == TempFrozen || t == TempChilled
}

// TurnoverRate is how frequently an item is picked.
type TurnoverRate string

// Turnover rates.
const (
	TurnoverLow    TurnoverRate = "low"
	TurnoverMedium TurnoverRate = "medium"
	TurnoverHigh   TurnoverRate = "high"
)

// ValidTurnovers are the allowed turnover rates.
var ValidTurnovers = map[TurnoverRate]bool{
	TurnoverLow:    true,
	TurnoverMedium: true,
	TurnoverHigh:   true,
}

// Confidence is the reasoning confidence level.
type Confidence string

// Confidence levels.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ValidConfidences are the allowed confidence levels.
var ValidConfidences = map[Confidence]bool{
	ConfidenceHigh:   true,
	ConfidenceMedium: true,
	ConfidenceLow:    true,
}

// ItemSpec describes one incoming item. Immutable once constructed;
// one ItemSpec per decision request.
type ItemSpec struct {
	ID          string          `json:"id"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	WeightKg    float64         `json:"weight_kg"`
	Hazard      HazardClass     `json:"hazard"`
	Temperature TempRequirement `json:"temperature"`
	Turnover    TurnoverRate    `json:"turnover"`
}

// StorageType is a zone's physical storage capability class.
type StorageType string

// Storage types.
const (
	StorageAmbient      StorageType = "ambient"
	StorageRefrigerated StorageType = "refrigerated"
	StorageFireSafe     StorageType = "fire_safe"
	StorageReinforced   StorageType = "reinforced"
)

// ZoneProfile is the capability profile of one storage zone.
// Read-only reference data with process lifetime.
type ZoneProfile struct {
	Name              string      `json:"name" yaml:"name"`
	Type              StorageType `json:"type" yaml:"type"`
	MaxWeightKg       float64     `json:"max_weight_kg" yaml:"max_weight_kg"`
	TempRange         string      `json:"temp_range" yaml:"temp_range"`
	FireSafe          bool        `json:"fire_safe" yaml:"fire_safe"`
	DispatchDistanceM int         `json:"dispatch_distance_m" yaml:"dispatch_distance_m"`
	RackType          string      `json:"rack_type" yaml:"rack_type"`
	Equipment         string      `json:"equipment" yaml:"equipment"`
}
