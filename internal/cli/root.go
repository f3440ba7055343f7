// Package cli implements the putaway CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/slotwise/putaway/internal/audit"
	"github.com/slotwise/putaway/internal/catalog"
	"github.com/slotwise/putaway/internal/config"
	"github.com/slotwise/putaway/internal/pipeline"
	"github.com/slotwise/putaway/internal/reasoning"
	"github.com/slotwise/putaway/internal/safety"
)

var (
	configPath string
	dbPath     string
	formatFlag string
	verbose    bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "putaway",
	Short: "AI put-away decisions with safety guarantees",
	Long:  "Recommends a warehouse storage zone for an incoming item. Hard safety rules filter the zones, an LLM (or a deterministic fallback) picks and explains, and every decision lands in an audit log.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML, optional)")
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Audit database path (default: $PUTAWAY_DB or ~/.putaway/putaway.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: json or text")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
}

func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func loadConfig() config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		exitErr("load config", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	return cfg
}

func loadCatalog(cfg config.Config) *catalog.Catalog {
	if cfg.ZonesPath == "" {
		return catalog.Default()
	}
	cat, err := catalog.Load(cfg.ZonesPath)
	if err != nil {
		exitErr("load zone catalog", err)
	}
	return cat
}

func openAudit(cfg config.Config) *audit.SQLiteStore {
	s, err := audit.NewSQLiteStore(cfg.EffectiveDBPath())
	if err != nil {
		exitErr("open audit store", err)
	}
	return s
}

func buildPipeline(cfg config.Config, cat *catalog.Catalog, store audit.Store, logger *zap.Logger) *pipeline.Pipeline {
	engine := safety.New(cat)
	provider := reasoning.NewProvider(cfg, cat, logger)
	return pipeline.New(engine, provider, cat, store, logger)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
