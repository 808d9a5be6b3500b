package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/andrei/quote-harvester/internal/types"
)

// SaveOutcome reports what the sink did with a quotation.
type SaveOutcome int

const (
	// SaveInserted means a new row was written.
	SaveInserted SaveOutcome = iota
	// SaveDuplicate means an equivalent row already existed; nothing changed.
	SaveDuplicate
)

// String returns the outcome name.
func (o SaveOutcome) String() string {
	switch o {
	case SaveInserted:
		return "inserted"
	case SaveDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// SaveQuotation persists a quotation idempotently. A conflict on the
// uniqueness constraint is a no-op reported as SaveDuplicate, never an
// error and never a second row. On insert the store-assigned id and
// created_at are written back into q.
func (db *DB) SaveQuotation(ctx context.Context, q *types.Quotation) (SaveOutcome, error) {
	err := db.q.QueryRow(ctx,
		`INSERT INTO quotations
		 (text_original, language_original, text_translated, language_translated,
		  author, source_url, is_validated)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT DO NOTHING
		 RETURNING id, created_at`,
		q.TextOriginal, q.LanguageOriginal, q.TextTranslated, q.LanguageTranslated,
		q.Author, q.SourceURL, q.IsValidated,
	).Scan(&q.ID, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return SaveDuplicate, nil
		}
		return 0, fmt.Errorf("failed to save quotation: %w", err)
	}
	return SaveInserted, nil
}

// Stats summarizes the persisted corpus.
type Stats struct {
	Total              int64
	ByLanguage         map[types.Language]int64
	WithTranslation    int64
	WithoutTranslation int64
	WithAuthor         int64
	WithoutAuthor      int64
}

// Stats returns corpus-level counts for the stats command.
func (db *DB) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{ByLanguage: make(map[types.Language]int64)}

	err := db.q.QueryRow(ctx,
		`SELECT count(*),
		        count(*) FILTER (WHERE text_translated IS NOT NULL),
		        count(*) FILTER (WHERE author IS NOT NULL)
		 FROM quotations`,
	).Scan(&stats.Total, &stats.WithTranslation, &stats.WithAuthor)
	if err != nil {
		return nil, fmt.Errorf("failed to count quotations: %w", err)
	}
	stats.WithoutTranslation = stats.Total - stats.WithTranslation
	stats.WithoutAuthor = stats.Total - stats.WithAuthor

	rows, err := db.q.Query(ctx,
		`SELECT language_original, count(*)
		 FROM quotations
		 GROUP BY language_original
		 ORDER BY count(*) DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count quotations by language: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var lang types.Language
		var count int64
		if err := rows.Scan(&lang, &count); err != nil {
			return nil, fmt.Errorf("failed to scan language count: %w", err)
		}
		stats.ByLanguage[lang] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read language counts: %w", err)
	}

	return stats, nil
}

// ListFilters holds optional filters for listing quotations.
type ListFilters struct {
	Language     types.Language
	Author       string
	Untranslated bool
	Limit        uint64
}

var quotationColumns = []string{
	"id", "text_original", "language_original", "text_translated",
	"language_translated", "author", "source_url", "is_validated", "created_at",
}

// ListQuotations returns recent quotations matching the filters.
func (db *DB) ListQuotations(ctx context.Context, filters ListFilters) ([]types.Quotation, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	builder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select(quotationColumns...).
		From("quotations").
		OrderBy("created_at DESC", "id DESC").
		Limit(filters.Limit)

	if filters.Language != "" {
		builder = builder.Where(squirrel.Eq{"language_original": filters.Language})
	}
	if filters.Author != "" {
		builder = builder.Where(squirrel.ILike{"author": "%" + filters.Author + "%"})
	}
	if filters.Untranslated {
		builder = builder.Where(squirrel.Eq{"text_translated": nil})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := db.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotations: %w", err)
	}
	defer rows.Close()

	var out []types.Quotation
	for rows.Next() {
		var q types.Quotation
		if err := rows.Scan(&q.ID, &q.TextOriginal, &q.LanguageOriginal,
			&q.TextTranslated, &q.LanguageTranslated, &q.Author,
			&q.SourceURL, &q.IsValidated, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan quotation: %w", err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read quotations: %w", err)
	}
	return out, nil
}
