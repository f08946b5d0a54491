package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "server-inventory-dashboard/internal/inventory-service/errors"
	"server-inventory-dashboard/internal/inventory-service/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAllHistory(t *testing.T) {
	testErr := errors.New("test error")
	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
		expectedCount int
	}{
		{
			name: "Success, ordered by timestamp",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "server_id", "field", "old_value", "new_value", "timestamp"}).
					AddRow("h1", "id-1", "company", "ACME", "Globex", time.Now().Add(-time.Hour)).
					AddRow("h2", "id-1", "location", "Berlin", "Hamburg", time.Now())
				mock.ExpectQuery(`SELECT \* FROM "server_history" ORDER BY timestamp asc`).WillReturnRows(rows)
			},
			expectedCount: 2,
		},
		{
			name: "Error Database Unreachable",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT \* FROM "server_history"`).WillReturnError(testErr)
			},
			expectedError: testErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewHistoryRepository(db)
			tc.mockSetup(mock)

			entries, err := repo.FetchAllHistory(context.Background())

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.Len(t, entries, tc.expectedCount)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateHistory(t *testing.T) {
	testErr := errors.New("test error")
	tests := []struct {
		name          string
		input         model.History
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success",
			input: model.History{
				ServerID: "id-1",
				Field:    "company",
				OldValue: "ACME",
				NewValue: "Globex",
				User:     "ops",
			},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO "server_history"`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "Error Generic Database Error",
			input: model.History{
				ServerID: "id-1",
			},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO "server_history"`).WillReturnError(testErr)
				mock.ExpectRollback()
			},
			expectedError: testErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewHistoryRepository(db)
			tc.mockSetup(mock)

			created, err := repo.CreateHistory(context.Background(), tc.input)

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
				var transportErr *apperrors.TransportError
				assert.ErrorAs(t, err, &transportErr)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, created.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDeleteHistoryByServerID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewHistoryRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "server_history"`).
		WithArgs("id-1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err := repo.DeleteHistoryByServerID(context.Background(), "id-1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBatchUpsertHistory(t *testing.T) {
	t.Run("Success, conflicts ignored", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewHistoryRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "server_history" .* ON CONFLICT \("id"\) DO NOTHING`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		count, err := repo.BatchUpsertHistory(context.Background(), []model.History{
			{ID: "h1", ServerID: "id-1", Field: "company"},
			{ID: "h2", ServerID: "id-1", Field: "location"},
		})

		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success, empty input short-circuits", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewHistoryRepository(db)

		count, err := repo.BatchUpsertHistory(context.Background(), nil)

		require.NoError(t, err)
		assert.Zero(t, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
