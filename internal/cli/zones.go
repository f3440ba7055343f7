package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slotwise/putaway/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "zones",
		Short: "List the zone catalog",
		Run:   runZones,
	}
	RootCmd.AddCommand(cmd)
}

func runZones(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	cat := loadCatalog(cfg)

	if formatFlag == "json" {
		type zone struct {
			ID string `json:"id"`
			model.ZoneProfile
		}
		var out []zone
		for _, id := range cat.IDs() {
			p, _ := cat.Get(id)
			out = append(out, zone{ID: id, ZoneProfile: p})
		}
		raw, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(raw))
		return
	}

	for _, id := range cat.IDs() {
		p, _ := cat.Get(id)
		fireSafe := ""
		if p.FireSafe {
			fireSafe = ", fire-safe"
		}
		fmt.Printf("Zone %s: %s (%s%s)\n", id, p.Name, p.Type, fireSafe)
		fmt.Printf("  max weight: %gkg, temp: %s, dispatch: %dm\n", p.MaxWeightKg, p.TempRange, p.DispatchDistanceM)
		fmt.Printf("  rack: %s, equipment: %s\n", p.RackType, p.Equipment)
	}
}
