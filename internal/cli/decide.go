package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slotwise/putaway/internal/audit"
	"github.com/slotwise/putaway/internal/catalog"
	"github.com/slotwise/putaway/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "decide",
		Short: "Recommend a storage zone for an item",
		Long:  "Runs the decision pipeline for one item: safety rules, then LLM (or fallback) reasoning. Prints the decision and appends it to the audit log.",
		Run:   runDecide,
	}

	cmd.Flags().String("preset", "", "Prefill from a product preset (see 'putaway products')")
	cmd.Flags().String("item-id", "", "Item identifier (default: derived from product name)")
	cmd.Flags().String("product", "", "Product name")
	cmd.Flags().String("category", "General Goods", "Product category")
	cmd.Flags().Float64("weight", 0, "Weight in kg")
	cmd.Flags().String("hazard", "none", "Hazard class: none, flammable, corrosive, toxic, explosive, oxidizer")
	cmd.Flags().String("temp", "ambient", "Temperature requirement: ambient, cold, frozen, chilled, controlled")
	cmd.Flags().String("turnover", "medium", "Turnover rate: low, medium, high")
	cmd.Flags().Bool("no-log", false, "Skip the audit log append")

	RootCmd.AddCommand(cmd)
}

func runDecide(cmd *cobra.Command, args []string) {
	item, err := itemFromFlags(cmd)
	if err != nil {
		exitErr("decide", err)
	}

	for _, w := range catalog.ValidateItem(item) {
		fmt.Fprintf(os.Stderr, "advisory: %s\n", w)
	}

	logger := newLogger()
	defer logger.Sync()

	cfg := loadConfig()
	cat := loadCatalog(cfg)

	noLog, _ := cmd.Flags().GetBool("no-log")
	var store audit.Store
	if !noLog {
		s := openAudit(cfg)
		defer s.Close()
		store = s
	}

	p := buildPipeline(cfg, cat, store, logger)
	decision := p.Decide(cmd.Context(), item)

	printDecision(decision)
	if !decision.Success {
		os.Exit(1)
	}
}

func itemFromFlags(cmd *cobra.Command) (model.ItemSpec, error) {
	var item model.ItemSpec

	if preset, _ := cmd.Flags().GetString("preset"); preset != "" {
		p, ok := catalog.Products[preset]
		if !ok {
			return item, fmt.Errorf("unknown preset %q (see 'putaway products')", preset)
		}
		item = model.ItemSpec{
			ProductName: preset,
			Category:    p.Category,
			WeightKg:    p.WeightKg,
			Hazard:      p.Hazard,
			Temperature: p.Temperature,
			Turnover:    p.Turnover,
		}
	}

	// Explicit flags win over preset values.
	if cmd.Flags().Changed("product") {
		item.ProductName, _ = cmd.Flags().GetString("product")
	}
	if cmd.Flags().Changed("category") || item.Category == "" {
		item.Category, _ = cmd.Flags().GetString("category")
	}
	if cmd.Flags().Changed("weight") {
		item.WeightKg, _ = cmd.Flags().GetFloat64("weight")
	}
	if cmd.Flags().Changed("hazard") || item.Hazard == "" {
		h, _ := cmd.Flags().GetString("hazard")
		item.Hazard = model.HazardClass(h)
	}
	if cmd.Flags().Changed("temp") || item.Temperature == "" {
		t, _ := cmd.Flags().GetString("temp")
		item.Temperature = model.TempRequirement(t)
	}
	if cmd.Flags().Changed("turnover") || item.Turnover == "" {
		r, _ := cmd.Flags().GetString("turnover")
		item.Turnover = model.TurnoverRate(r)
	}
	if id, _ := cmd.Flags().GetString("item-id"); id != "" {
		item.ID = id
	} else {
		item.ID = deriveItemID(item.ProductName)
	}

	if item.ProductName == "" {
		return item, fmt.Errorf("--product or --preset is required")
	}
	if item.WeightKg <= 0 {
		return item, fmt.Errorf("--weight must be a positive number of kg")
	}
	if !model.ValidHazards[item.Hazard] {
		return item, fmt.Errorf("invalid hazard class %q", item.Hazard)
	}
	if !model.ValidTemps[item.Temperature] {
		return item, fmt.Errorf("invalid temperature requirement %q", item.Temperature)
	}
	if !model.ValidTurnovers[item.Turnover] {
		return item, fmt.Errorf("invalid turnover rate %q", item.Turnover)
	}
	return item, nil
}

func deriveItemID(product string) string {
	id := strings.ToUpper(strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, product))
	if len(id) > 16 {
		id = id[:16]
	}
	return strings.Trim(id, "-")
}

func printDecision(d model.Decision) {
	if formatFlag == "json" {
		out, _ := json.MarshalIndent(d, "", "  ")
		fmt.Println(string(out))
		return
	}

	if !d.Success {
		fmt.Printf("FAILED: %s\n\n", d.Error)
		printChecks(d.Assessment)
		return
	}

	label := ""
	if d.Mandatory {
		label = " (mandatory)"
	}
	fmt.Printf("Zone %s: %s%s\n", d.Zone, d.ZoneName, label)
	fmt.Printf("Confidence: %s\n", d.Confidence)
	fmt.Printf("Reasoning:  %s\n", d.Reasoning)
	fmt.Printf("Elapsed:    %s\n", d.Elapsed)
	if d.AuditID != "" {
		fmt.Printf("Audit ID:   %s\n", d.AuditID)
	}
	fmt.Println()
	printChecks(d.Assessment)
}

func printChecks(a model.SafetyAssessment) {
	fmt.Println("Safety checks:")
	fmt.Printf("  fire safety:        %s\n", a.Checks.FireSafety.Message)
	fmt.Printf("  weight limit:       %s\n", a.Checks.WeightLimit.Message)
	fmt.Printf("  temp requirement:   %s\n", a.Checks.TempRequirement.Message)
	fmt.Printf("  dispatch proximity: %s\n", a.Checks.DispatchProximity.Message)
	for _, r := range a.Rejected {
		fmt.Printf("  rejected %s: %s [%s]\n", r.Zone, r.Reason, r.Regulation)
	}
}
