package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSchema(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS quotations").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec("CREATE UNIQUE INDEX IF NOT EXISTS quotations_normalized_uniq").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS ingest_runs").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, db.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchemaError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS quotations").
		WillReturnError(errors.New("permission denied"))

	err := db.EnsureSchema(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ensure schema")
}

func TestPing(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectPing()
	assert.NoError(t, db.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRun(t *testing.T) {
	db, mock := newMockDB(t)

	rec := &RunRecord{
		TargetCount:         10000,
		Fetched:             120,
		Inserted:            90,
		Duplicates:          20,
		Rejected:            10,
		TranslationFailures: 3,
		SaveErrors:          0,
		StartedAt:           time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		FinishedAt:          time.Date(2026, 8, 1, 12, 5, 0, 0, time.UTC),
	}

	mock.ExpectExec("INSERT INTO ingest_runs").
		WithArgs(pgxmock.AnyArg(), rec.TargetCount, rec.Fetched, rec.Inserted,
			rec.Duplicates, rec.Rejected, rec.TranslationFailures,
			rec.SaveErrors, rec.StartedAt, rec.FinishedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, db.RecordRun(context.Background(), rec))
	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRunKeepsExistingID(t *testing.T) {
	db, mock := newMockDB(t)

	id := uuid.New()
	rec := &RunRecord{ID: id, TargetCount: 100}

	mock.ExpectExec("INSERT INTO ingest_runs").
		WithArgs(id, rec.TargetCount, 0, 0, 0, 0, 0, 0,
			rec.StartedAt, rec.FinishedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, db.RecordRun(context.Background(), rec))
	assert.Equal(t, id, rec.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
