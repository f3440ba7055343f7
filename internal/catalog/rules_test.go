package catalog

import (
	"strings"
	"testing"

	"github.com/slotwise/putaway/internal/model"
)

func TestValidateItem_FrozenCategoryAtAmbient(t *testing.T) {
	item := model.ItemSpec{
		Category: "Frozen Food", Temperature: model.TempAmbient,
		Hazard: model.HazardNone,
	}
	warnings := ValidateItem(item)
	if len(warnings) != 1 || !strings.Contains(warnings[0], "CRITICAL") {
		t.Errorf("warnings = %v", warnings)
	}
}

func TestValidateItem_FrozenCategoryAtCold_NoWarning(t *testing.T) {
	item := model.ItemSpec{
		Category: "Frozen Food", Temperature: model.TempCold,
		Hazard: model.HazardNone,
	}
	if w := ValidateItem(item); len(w) != 0 {
		t.Errorf("cold satisfies a frozen-default category, got %v", w)
	}
}

func TestValidateItem_ChemicalsWithoutHazard(t *testing.T) {
	item := model.ItemSpec{
		Category: "Chemicals", Temperature: model.TempAmbient,
		Hazard: model.HazardNone,
	}
	warnings := ValidateItem(item)
	if len(warnings) != 1 || !strings.Contains(warnings[0], "hazardous") {
		t.Errorf("warnings = %v", warnings)
	}
}

func TestValidateItem_ControlledCategoryAtAmbient(t *testing.T) {
	item := model.ItemSpec{
		Category: "Pharmaceuticals", Temperature: model.TempAmbient,
		Hazard: model.HazardNone,
	}
	warnings := ValidateItem(item)
	if len(warnings) != 1 || !strings.Contains(warnings[0], "NOTICE") {
		t.Errorf("warnings = %v", warnings)
	}
}

func TestValidateItem_UnknownCategory(t *testing.T) {
	item := model.ItemSpec{Category: "Mystery", Temperature: model.TempAmbient, Hazard: model.HazardNone}
	if w := ValidateItem(item); w != nil {
		t.Errorf("unknown category should produce no warnings, got %v", w)
	}
}

func TestProducts_PresetsAreValid(t *testing.T) {
	for name, p := range Products {
		if p.WeightKg <= 0 {
			t.Errorf("%s: non-positive weight", name)
		}
		if !model.ValidHazards[p.Hazard] {
			t.Errorf("%s: invalid hazard %q", name, p.Hazard)
		}
		if !model.ValidTemps[p.Temperature] {
			t.Errorf("%s: invalid temperature %q", name, p.Temperature)
		}
		if !model.ValidTurnovers[p.Turnover] {
			t.Errorf("%s: invalid turnover %q", name, p.Turnover)
		}
		if _, ok := CategoryRules[p.Category]; !ok {
			t.Errorf("%s: unknown category %q", name, p.Category)
		}
	}
}

func TestProductNames_Sorted(t *testing.T) {
	names := ProductNames()
	if len(names) != len(Products) {
		t.Fatalf("got %d names, want %d", len(names), len(Products))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted at %d: %q > %q", i, names[i-1], names[i])
		}
	}
}
