package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunRecord captures the aggregate outcome of one ingestion run.
type RunRecord struct {
	ID                  uuid.UUID
	TargetCount         int
	Fetched             int
	Inserted            int
	Duplicates          int
	Rejected            int
	TranslationFailures int
	SaveErrors          int
	StartedAt           time.Time
	FinishedAt          time.Time
}

// RecordRun stores a run summary. An ID is assigned if the record has none.
func (db *DB) RecordRun(ctx context.Context, rec *RunRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	_, err := db.q.Exec(ctx,
		`INSERT INTO ingest_runs
		 (id, target_count, fetched, inserted, duplicates, rejected,
		  translation_failures, save_errors, started_at, finished_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rec.ID, rec.TargetCount, rec.Fetched, rec.Inserted, rec.Duplicates,
		rec.Rejected, rec.TranslationFailures, rec.SaveErrors,
		rec.StartedAt, rec.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}
