package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the decision audit trail",
		Run:   runLog,
	}
	cmd.Flags().IntP("limit", "n", 20, "Maximum entries to show (0 = all)")
	RootCmd.AddCommand(cmd)
}

func runLog(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	s := openAudit(cfg)
	defer s.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := s.List(cmd.Context(), limit)
	if err != nil {
		exitErr("list audit log", err)
	}

	if formatFlag == "json" {
		raw, _ := json.MarshalIndent(entries, "", "  ")
		fmt.Println(string(raw))
		return
	}

	if len(entries) == 0 {
		fmt.Println("No decisions logged yet.")
		return
	}
	for _, e := range entries {
		flag := " "
		if e.Overridden {
			flag = "*"
		}
		fmt.Printf("%s %s  %-20s  AI:%s  final:%s%s  %s  %s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			e.ID, truncate(e.Product, 20), e.AIZone, e.FinalZone, flag,
			e.Confidence, mandatoryTag(e.Mandatory))
		if e.Overridden && e.OverrideReason != "" {
			fmt.Printf("    override: %s\n", e.OverrideReason)
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func mandatoryTag(m bool) string {
	if m {
		return "mandatory"
	}
	return ""
}
