// Package cli implements the gutcheck CLI commands.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tmori/gutcheck/internal/config"
	"github.com/tmori/gutcheck/internal/logging"
	"github.com/tmori/gutcheck/internal/store"
)

var (
	dbFlag     string
	configFlag string
	verbose    bool

	cfg *config.Config
	log *zap.SugaredLogger
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "gutcheck",
	Short: "Daily gut-health journal and score",
	Long: "gutcheck keeps a per-date journal of meals, supplements, sleep and body logs,\n" +
		"and once a day composes a 7-day gut-health score with optional generated advice.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log = logging.New(verbose)
		var err error
		cfg, err = config.Load(configFlag)
		if err != nil {
			return err
		}
		if dbFlag != "" {
			cfg.DBPath = dbFlag
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbFlag, "db", "d", "", "Journal path (default: $GUTCHECK_DB or ~/.gutcheck/journal.db)")
	RootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default: ~/.gutcheck/config.yaml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(cfg.DBPath, log)
}

// resolveDate turns a --date flag into a journal date, defaulting to today
// in the configured timezone.
func resolveDate(cmd *cobra.Command) time.Time {
	s, _ := cmd.Flags().GetString("date")
	if s == "" {
		return cfg.Today()
	}
	t, err := cfg.ParseDate(s)
	if err != nil {
		exitErr("parse date", err)
	}
	return t
}

func addDateFlag(cmd *cobra.Command) {
	cmd.Flags().String("date", "", "Target date YYYY-MM-DD (default: today)")
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
