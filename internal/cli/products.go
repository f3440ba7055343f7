package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slotwise/putaway/internal/catalog"
)

func init() {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List the predefined product presets",
		Run:   runProducts,
	}
	RootCmd.AddCommand(cmd)
}

func runProducts(cmd *cobra.Command, args []string) {
	if formatFlag == "json" {
		raw, _ := json.MarshalIndent(catalog.Products, "", "  ")
		fmt.Println(string(raw))
		return
	}

	for _, name := range catalog.ProductNames() {
		p := catalog.Products[name]
		fmt.Printf("%s\n", name)
		fmt.Printf("  %s, %gkg, hazard=%s, temp=%s, turnover=%s\n",
			p.Category, p.WeightKg, p.Hazard, p.Temperature, p.Turnover)
	}
}
