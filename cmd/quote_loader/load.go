package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrei/quote-harvester/internal/config"
	"github.com/andrei/quote-harvester/internal/db"
	"github.com/andrei/quote-harvester/internal/loader"
	"github.com/andrei/quote-harvester/internal/logging"
	"github.com/andrei/quote-harvester/internal/sources"
	"github.com/andrei/quote-harvester/internal/translate"
)

var loadCommand = &cobra.Command{
	Use:   "load",
	Short: "Run one ingestion pass toward the target quotation count",
	Long: `Pulls candidates from every configured source in priority order, runs each
through validation, deduplication, and best-effort translation, and persists
the survivors. Re-running is safe: existing rows are reported as duplicates,
never inserted twice.`,
	RunE: runLoad,
}

var (
	loadTarget        int
	loadSkipTranslate bool
	loadUseBrowser    bool
	loadSources       []string
)

func init() {
	loadCommand.Flags().IntVarP(&loadTarget, "target", "t", loader.DefaultTarget, "Number of persisted quotations to aim for")
	loadCommand.Flags().BoolVar(&loadSkipTranslate, "skip-translate", false, "Persist without calling the translation service")
	loadCommand.Flags().BoolVar(&loadUseBrowser, "use-browser", false, "Use headless browser for scraped sites that render client-side (requires Chrome)")
	loadCommand.Flags().StringSliceVar(&loadSources, "sources", nil, "Only use the named sources (default: all, in priority order)")

	rootCmd.AddCommand(loadCommand)
}

func runLoad(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	adapters := sources.Defaults(sources.Config{
		UserAgent:  cfg.UserAgent,
		Timeout:    cfg.FetchTimeout,
		UseBrowser: loadUseBrowser,
	})
	if len(loadSources) > 0 {
		adapters, err = filterAdapters(adapters, loadSources)
		if err != nil {
			return err
		}
	}

	var translator loader.Translator
	if !loadSkipTranslate {
		translator = translate.New(translate.Config{
			Interval:  cfg.TranslateInterval,
			Timeout:   cfg.TranslateTimeout,
			UserAgent: cfg.UserAgent,
		})
	}

	l := loader.New(adapters, database, translator, log, loader.Options{
		Target:        loadTarget,
		SkipTranslate: loadSkipTranslate,
	})

	log.Info("ingestion run starting",
		slog.Int("target", loadTarget),
		slog.Int("sources", len(adapters)))
	started := time.Now()

	summary, runErr := l.Run(ctx)

	rec := &db.RunRecord{
		TargetCount:         loadTarget,
		Fetched:             summary.Fetched,
		Inserted:            summary.Inserted,
		Duplicates:          summary.Duplicates,
		Rejected:            summary.RejectedTotal(),
		TranslationFailures: summary.TranslationFailures,
		SaveErrors:          summary.SaveErrors,
		StartedAt:           started,
		FinishedAt:          time.Now(),
	}
	if err := database.RecordRun(ctx, rec); err != nil {
		log.Warn("failed to record run", slog.String("error", err.Error()))
	}

	attrs := append(summary.Attrs(), slog.Duration("elapsed", time.Since(started)))
	if runErr != nil {
		log.Error("ingestion run aborted", append(attrs, slog.String("error", runErr.Error()))...)
		return runErr
	}
	log.Info("ingestion run finished", attrs...)

	for reason, count := range summary.Rejected {
		log.Info("rejection breakdown",
			slog.String("reason", string(reason)),
			slog.Int("count", count))
	}
	return nil
}

// filterAdapters keeps only the named adapters, preserving priority order.
func filterAdapters(adapters []sources.Adapter, names []string) ([]sources.Adapter, error) {
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	var out []sources.Adapter
	for _, a := range adapters {
		if wanted[a.Name()] {
			out = append(out, a)
			delete(wanted, a.Name())
		}
	}
	for name := range wanted {
		return nil, fmt.Errorf("unknown source %q", name)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no sources selected")
	}
	return out, nil
}
