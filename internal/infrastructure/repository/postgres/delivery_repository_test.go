package postgres

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/riskibarqy/cricket-ingest/internal/domain/delivery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryRepositoryReplaceByMatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeliveryRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM deliveries WHERE match_id = \$1`).
		WithArgs("980961").
		WillReturnResult(sqlmock.NewResult(0, 240))
	mock.ExpectExec(`INSERT INTO deliveries`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO deliveries`).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	batterID := int64(1)
	err := repo.ReplaceByMatch(context.Background(), "980961", []delivery.Delivery{
		{MatchID: "980961", InningsNumber: 1, OverNumber: 0, BallInOver: 1, BallSequence: 1, Batter: "V Kohli", BatterID: &batterID, RunsTotal: 4},
		{MatchID: "980961", InningsNumber: 1, OverNumber: 0, BallInOver: 2, BallSequence: 2, Batter: "V Kohli", BatterID: &batterID, RunsTotal: 1},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeliveryRepositoryReplaceByMatchRollsBackOnInsertError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeliveryRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM deliveries WHERE match_id = \$1`).
		WithArgs("980961").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO deliveries`).
		WillReturnError(fmt.Errorf("connection reset"))
	mock.ExpectRollback()

	err := repo.ReplaceByMatch(context.Background(), "980961", []delivery.Delivery{
		{MatchID: "980961", InningsNumber: 1, BallInOver: 1, BallSequence: 1},
	})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeliveryRepositoryCountByMatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeliveryRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM deliveries WHERE match_id = \$1`).
		WithArgs("980961").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(240)))

	count, err := repo.CountByMatch(context.Background(), "980961")
	require.NoError(t, err)
	assert.Equal(t, int64(240), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
