package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrei/quote-harvester/internal/config"
	"github.com/andrei/quote-harvester/internal/db"
)

var statsCommand = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus-level counts for the persisted quotations",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCommand)
}

func runStats(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	stats, err := database.Stats(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "total\t%d\n", stats.Total)
	for lang, count := range stats.ByLanguage {
		fmt.Fprintf(w, "language %s\t%d\n", lang, count)
	}
	fmt.Fprintf(w, "translated\t%d\n", stats.WithTranslation)
	fmt.Fprintf(w, "untranslated\t%d\n", stats.WithoutTranslation)
	fmt.Fprintf(w, "with author\t%d\n", stats.WithAuthor)
	fmt.Fprintf(w, "without author\t%d\n", stats.WithoutAuthor)
	return w.Flush()
}
