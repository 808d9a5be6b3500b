// Package loader provides the high-level orchestration for a quotation
// ingestion run.
package loader

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/andrei/quote-harvester/internal/db"
	"github.com/andrei/quote-harvester/internal/dedup"
	"github.com/andrei/quote-harvester/internal/sources"
	"github.com/andrei/quote-harvester/internal/types"
	"github.com/andrei/quote-harvester/internal/validate"
)

// DefaultTarget is how many persisted quotations a run aims for when the
// caller does not say otherwise.
const DefaultTarget = 10000

// maxConcurrentFetches bounds how many remote origins are queried at once.
const maxConcurrentFetches = 4

// Sink is the persistence surface the loader writes to.
type Sink interface {
	SaveQuotation(ctx context.Context, q *types.Quotation) (db.SaveOutcome, error)
	Ping(ctx context.Context) error
}

// Translator produces a cross-language rendering of accepted text.
type Translator interface {
	Translate(ctx context.Context, text string, source, target types.Language) (string, error)
}

// Options holds configuration for a run.
type Options struct {
	// Target is the number of accepted-and-persisted records to aim for.
	// Zero means DefaultTarget.
	Target int
	// SkipTranslate disables translation; records are persisted with the
	// translated fields absent.
	SkipTranslate bool
}

// Summary reports what happened during a run. The run always produces one,
// even when it aborts early on a store failure.
type Summary struct {
	Fetched             int
	Inserted            int
	InsertedByLanguage  map[types.Language]int
	Duplicates          int
	TranslationFailures int
	SaveErrors          int
	SourceFailures      int
	Rejected            map[validate.Reason]int
}

// RejectedTotal sums validator rejections across all reasons.
func (s *Summary) RejectedTotal() int {
	total := 0
	for _, n := range s.Rejected {
		total += n
	}
	return total
}

// Attrs renders the summary as structured log attributes.
func (s *Summary) Attrs() []any {
	return []any{
		slog.Int("fetched", s.Fetched),
		slog.Int("inserted", s.Inserted),
		slog.Int("inserted_en", s.InsertedByLanguage[types.LanguageEnglish]),
		slog.Int("inserted_ru", s.InsertedByLanguage[types.LanguageRussian]),
		slog.Int("duplicates", s.Duplicates),
		slog.Int("rejected", s.RejectedTotal()),
		slog.Int("translation_failures", s.TranslationFailures),
		slog.Int("save_errors", s.SaveErrors),
		slog.Int("source_failures", s.SourceFailures),
	}
}

// Loader drives source adapters toward a target count of persisted
// quotations, applying validation, deduplication, and best-effort
// translation to each candidate on the way to the sink.
type Loader struct {
	adapters   []sources.Adapter
	sink       Sink
	translator Translator
	checker    *validate.Checker
	seen       *dedup.Set
	log        *slog.Logger
	opts       Options
	// quota splits the target evenly across the language pool so one
	// language's abundant sources cannot crowd out the other's.
	quota map[types.Language]int
}

// New builds a loader over the given adapters in priority order. The
// translator may be nil when translation is disabled.
func New(adapters []sources.Adapter, sink Sink, translator Translator, log *slog.Logger, opts Options) *Loader {
	if opts.Target <= 0 {
		opts.Target = DefaultTarget
	}
	half := opts.Target / 2
	return &Loader{
		adapters:   adapters,
		sink:       sink,
		translator: translator,
		checker:    validate.NewChecker(),
		seen:       dedup.NewSet(),
		log:        log,
		opts:       opts,
		quota: map[types.Language]int{
			types.LanguageEnglish: half,
			types.LanguageRussian: half,
		},
	}
}

// remaining reports how many more quotations of a language the run wants.
func (l *Loader) remaining(summary *Summary, lang types.Language) int {
	return l.quota[lang] - summary.InsertedByLanguage[lang]
}

// done reports whether every language quota has been filled.
func (l *Loader) done(summary *Summary) bool {
	for lang, quota := range l.quota {
		if summary.InsertedByLanguage[lang] < quota {
			return false
		}
	}
	return true
}

// Run executes one ingestion run. Curated adapters are drained first;
// remote origins are then fetched concurrently and their candidates
// processed in adapter priority order. Each adapter draws against its own
// language's share of the target, half each, so the English sources at the
// front of the priority order cannot fill the run before the Russian ones
// are reached. The summary is non-nil even when the run aborts on a store
// failure.
func (l *Loader) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{
		InsertedByLanguage: make(map[types.Language]int),
		Rejected:           make(map[validate.Reason]int),
	}

	var remote []sources.Adapter
	for _, a := range l.adapters {
		if a.Trust() == sources.TrustCurated {
			if err := l.drain(ctx, a, summary); err != nil {
				return summary, err
			}
			continue
		}
		remote = append(remote, a)
	}
	if l.done(summary) || ctx.Err() != nil {
		return summary, ctx.Err()
	}

	batches, err := l.fetchRemote(ctx, remote, summary)
	if err != nil {
		return summary, err
	}
	for i, a := range remote {
		if l.done(summary) {
			break
		}
		if err := l.process(ctx, a, batches[i], summary); err != nil {
			return summary, err
		}
	}
	return summary, ctx.Err()
}

// drain fetches one adapter and pipelines its candidates immediately.
func (l *Loader) drain(ctx context.Context, a sources.Adapter, summary *Summary) error {
	limit := l.remaining(summary, a.Language())
	if limit <= 0 {
		return nil
	}
	candidates, failed := l.fetch(ctx, a, limit)
	if failed {
		summary.SourceFailures++
	}
	return l.process(ctx, a, candidates, summary)
}

// fetchRemote queries the remote origins concurrently. Transport failures
// are soft; the only error out of here is context cancellation. The
// summary is only touched after Wait so goroutines never share it.
// Origins whose language quota is already filled are not contacted.
func (l *Loader) fetchRemote(ctx context.Context, remote []sources.Adapter, summary *Summary) ([][]types.Candidate, error) {
	batches := make([][]types.Candidate, len(remote))
	failures := make([]bool, len(remote))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, a := range remote {
		limit := l.remaining(summary, a.Language())
		if limit <= 0 {
			continue
		}
		i, a := i, a
		g.Go(func() error {
			batches[i], failures[i] = l.fetch(gCtx, a, limit)
			return gCtx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, failed := range failures {
		if failed {
			summary.SourceFailures++
		}
	}
	return batches, nil
}

// fetch pulls candidates from one adapter, treating failure as an empty
// yield plus a soft-failure flag.
func (l *Loader) fetch(ctx context.Context, a sources.Adapter, limit int) ([]types.Candidate, bool) {
	candidates, err := a.Fetch(ctx, limit)
	if err != nil {
		l.log.Warn("source fetch failed",
			slog.String("source", a.Name()),
			slog.String("error", err.Error()))
		return candidates, true
	}
	l.log.Info("source fetched",
		slog.String("source", a.Name()),
		slog.Int("candidates", len(candidates)))
	return candidates, false
}

// process runs each candidate through validate, dedup, translate, and the
// sink. It returns an error only when the run can no longer make progress.
func (l *Loader) process(ctx context.Context, a sources.Adapter, candidates []types.Candidate, summary *Summary) error {
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.Language.Supported() && l.remaining(summary, c.Language) <= 0 {
			continue
		}
		summary.Fetched++

		if reason, ok := l.checker.Check(c); !ok {
			summary.Rejected[reason]++
			l.log.Debug("candidate rejected",
				slog.String("source", a.Name()),
				slog.String("reason", string(reason)))
			continue
		}

		if !l.seen.Add(dedup.Key(c.Text, c.Language)) {
			summary.Duplicates++
			continue
		}

		q := types.FromCandidate(c)
		l.translate(ctx, q, summary)

		outcome, err := l.sink.SaveQuotation(ctx, q)
		if err != nil {
			summary.SaveErrors++
			l.log.Error("save failed",
				slog.String("source", a.Name()),
				slog.String("error", err.Error()))
			if pingErr := l.sink.Ping(ctx); pingErr != nil {
				return fmt.Errorf("store unreachable: %w", pingErr)
			}
			continue
		}
		switch outcome {
		case db.SaveInserted:
			summary.Inserted++
			summary.InsertedByLanguage[c.Language]++
		case db.SaveDuplicate:
			summary.Duplicates++
		}
	}
	return nil
}

// translate enriches the quotation with its counterpart-language text.
// Failure leaves both translated fields absent and the candidate proceeds.
func (l *Loader) translate(ctx context.Context, q *types.Quotation, summary *Summary) {
	if l.opts.SkipTranslate || l.translator == nil {
		return
	}
	target, ok := q.LanguageOriginal.Counterpart()
	if !ok {
		return
	}

	text, err := l.translator.Translate(ctx, q.TextOriginal, q.LanguageOriginal, target)
	if err != nil {
		summary.TranslationFailures++
		l.log.Warn("translation failed",
			slog.String("language", string(q.LanguageOriginal)),
			slog.String("error", err.Error()))
		return
	}
	q.SetTranslation(text, target)
}
