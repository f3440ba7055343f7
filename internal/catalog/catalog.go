// Package catalog provides the warehouse zone reference data: zone capability
// profiles, category inference rules, and the predefined product presets.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/slotwise/putaway/internal/model"
)

// HeavyThresholdKg is the weight above which an item is flagged as needing
// reinforced storage.
const HeavyThresholdKg = 500

// Catalog is an ordered, read-only set of zone profiles.
type Catalog struct {
	ids   []string
	zones map[string]model.ZoneProfile
}

// zoneEntry is the YAML representation of one zone. A list keeps the
// operator's declaration order, which a YAML map would not.
type zoneEntry struct {
	ID                string            `yaml:"id"`
	model.ZoneProfile `yaml:",inline"`
}

type catalogFile struct {
	Zones []zoneEntry `yaml:"zones"`
}

// Default returns the built-in five-zone warehouse catalog.
func Default() *Catalog {
	c := &Catalog{zones: map[string]model.ZoneProfile{}}
	c.add("A", model.ZoneProfile{
		Name:              "General Storage",
		Type:              model.StorageAmbient,
		MaxWeightKg:       500,
		TempRange:         "15-25°C",
		DispatchDistanceM: 50,
		RackType:          "Selective Pallet Rack",
		Equipment:         "Forklift, Pallet Jack",
	})
	c.add("B", model.ZoneProfile{
		Name:              "Cold Storage",
		Type:              model.StorageRefrigerated,
		MaxWeightKg:       300,
		TempRange:         "-25 to 4°C",
		DispatchDistanceM: 80,
		RackType:          "Drive-In Rack",
		Equipment:         "Cold-rated Forklift",
	})
	c.add("C", model.ZoneProfile{
		Name:              "Hazmat Area",
		Type:              model.StorageFireSafe,
		MaxWeightKg:       400,
		TempRange:         "15-20°C",
		FireSafe:          true,
		DispatchDistanceM: 120,
		RackType:          "Containment Pallet Rack",
		Equipment:         "Explosion-proof Forklift",
	})
	c.add("D", model.ZoneProfile{
		Name:              "Fast-Pick Zone",
		Type:              model.StorageAmbient,
		MaxWeightKg:       50,
		TempRange:         "18-22°C",
		DispatchDistanceM: 15,
		RackType:          "Carton Flow Rack",
		Equipment:         "Pick Cart, Conveyor",
	})
	c.add("E", model.ZoneProfile{
		Name:              "Bulk & Heavy",
		Type:              model.StorageReinforced,
		MaxWeightKg:       2500,
		TempRange:         "10-30°C",
		DispatchDistanceM: 90,
		RackType:          "Heavy-Duty Cantilever",
		Equipment:         "Heavy Forklift, Crane",
	})
	return c
}

// Load reads a zone catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Zones) == 0 {
		return nil, fmt.Errorf("catalog %s defines no zones", path)
	}
	c := &Catalog{zones: map[string]model.ZoneProfile{}}
	for _, z := range f.Zones {
		if z.ID == "" {
			return nil, fmt.Errorf("catalog %s: zone with empty id", path)
		}
		if _, dup := c.zones[z.ID]; dup {
			return nil, fmt.Errorf("catalog %s: duplicate zone %q", path, z.ID)
		}
		c.add(z.ID, z.ZoneProfile)
	}
	return c, nil
}

func (c *Catalog) add(id string, p model.ZoneProfile) {
	c.ids = append(c.ids, id)
	c.zones[id] = p
}

// IDs returns the zone identifiers in declaration order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Get returns the profile for a zone id.
func (c *Catalog) Get(id string) (model.ZoneProfile, bool) {
	p, ok := c.zones[id]
	return p, ok
}

// Len returns the number of zones.
func (c *Catalog) Len() int { return len(c.ids) }

// FireSafeZone returns the designated hazmat zone: the first zone with the
// fire-safe flag set. Empty if the catalog has none.
func (c *Catalog) FireSafeZone() string {
	for _, id := range c.ids {
		if c.zones[id].FireSafe {
			return id
		}
	}
	return ""
}

// RefrigeratedZone returns the designated cold-chain zone.
func (c *Catalog) RefrigeratedZone() string {
	return c.firstOfType(model.StorageRefrigerated)
}

// ReinforcedZone returns the designated bulk/heavy zone.
func (c *Catalog) ReinforcedZone() string {
	return c.firstOfType(model.StorageReinforced)
}

// GeneralZone returns the first plain ambient zone, used as the fallback
// default when nothing else applies.
func (c *Catalog) GeneralZone() string {
	return c.firstOfType(model.StorageAmbient)
}

// FastPickZone returns the ambient zone with the shortest dispatch distance.
func (c *Catalog) FastPickZone() string {
	best := ""
	for _, id := range c.ids {
		p := c.zones[id]
		if p.Type != model.StorageAmbient {
			continue
		}
		if best == "" || p.DispatchDistanceM < c.zones[best].DispatchDistanceM {
			best = id
		}
	}
	return best
}

func (c *Catalog) firstOfType(t model.StorageType) string {
	for _, id := range c.ids {
		if c.zones[id].Type == t {
			return id
		}
	}
	return ""
}
