package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/riskibarqy/cricket-ingest/internal/domain/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchRepositoryUpsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMatchRepository(db)

	mock.ExpectExec(`INSERT INTO matches`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	startDate := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)
	err := repo.Upsert(context.Background(), match.Match{
		ID:           "980961",
		StartDate:    &startDate,
		MatchType:    "T20",
		Team1:        "Mumbai Indians",
		Team2:        "Chennai Super Kings",
		BallsPerOver: 6,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchRepositoryGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMatchRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM matches WHERE match_id = \$1`).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	got, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
