package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrei/quote-harvester/internal/config"
	"github.com/andrei/quote-harvester/internal/db"
	"github.com/andrei/quote-harvester/internal/types"
)

var listCommand = &cobra.Command{
	Use:   "list",
	Short: "List recently persisted quotations",
	RunE:  runList,
}

var (
	listLanguage     string
	listAuthor       string
	listUntranslated bool
	listLimit        uint64
)

func init() {
	listCommand.Flags().StringVarP(&listLanguage, "language", "l", "", "Filter by original language (en or ru)")
	listCommand.Flags().StringVarP(&listAuthor, "author", "a", "", "Filter by author substring")
	listCommand.Flags().BoolVar(&listUntranslated, "untranslated", false, "Only quotations without a translation")
	listCommand.Flags().Uint64Var(&listLimit, "limit", 50, "Maximum rows to show")

	rootCmd.AddCommand(listCommand)
}

func runList(cmd *cobra.Command, _ []string) error {
	lang := types.Language(listLanguage)
	if listLanguage != "" && !lang.Supported() {
		return fmt.Errorf("unsupported language %q", listLanguage)
	}

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

	quotations, err := database.ListQuotations(ctx, db.ListFilters{
		Language:     lang,
		Author:       listAuthor,
		Untranslated: listUntranslated,
		Limit:        listLimit,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLANG\tAUTHOR\tTEXT\tTRANSLATED")
	for _, q := range quotations {
		author := ""
		if q.Author != nil {
			author = *q.Author
		}
		translated := "no"
		if q.TextTranslated != nil {
			translated = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			q.ID, q.LanguageOriginal, author, truncate(q.TextOriginal, 60), translated)
	}
	return w.Flush()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
