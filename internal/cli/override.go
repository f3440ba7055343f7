package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slotwise/putaway/internal/audit"
)

func init() {
	cmd := &cobra.Command{
		Use:   "override",
		Short: "Apply a human override to a logged decision",
		Long:  "Replaces the final zone on an audit entry and marks it overridden. The original AI decision stays recorded next to the override.",
		Run:   runOverride,
	}

	cmd.Flags().String("id", "", "Audit entry id (required)")
	cmd.Flags().String("zone", "", "Override zone (required)")
	cmd.Flags().String("reason", "", "Justification for the override")

	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("zone")

	RootCmd.AddCommand(cmd)
}

func runOverride(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")
	zone, _ := cmd.Flags().GetString("zone")
	reason, _ := cmd.Flags().GetString("reason")

	cfg := loadConfig()
	cat := loadCatalog(cfg)
	if _, ok := cat.Get(zone); !ok {
		exitErr("override", fmt.Errorf("zone %q not in catalog", zone))
	}

	s := openAudit(cfg)
	defer s.Close()

	if err := s.Override(cmd.Context(), audit.OverrideParams{ID: id, Zone: zone, Reason: reason}); err != nil {
		exitErr("override", err)
	}

	entry, err := s.Get(cmd.Context(), id)
	if err != nil {
		exitErr("override", err)
	}
	fmt.Printf("Override applied: %s AI:%s final:%s\n", entry.ID, entry.AIZone, entry.FinalZone)
}
