package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "server-inventory-dashboard/internal/inventory-service/errors"
	"server-inventory-dashboard/internal/inventory-service/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestFetchAll(t *testing.T) {
	testErr := errors.New("test error")
	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
		expectedCount int
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "server_name", "server_type"}).
					AddRow("id-1", "SRV-A", "Production").
					AddRow("id-2", "SRV-B", "Test")
				mock.ExpectQuery(`SELECT \* FROM "servers"`).WillReturnRows(rows)
			},
			expectedCount: 2,
		},
		{
			name: "Error Database Unreachable",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT \* FROM "servers"`).WillReturnError(testErr)
			},
			expectedError: testErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewServerRepository(db)
			tc.mockSetup(mock)

			servers, err := repo.FetchAll(context.Background())

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
				var transportErr *apperrors.TransportError
				assert.ErrorAs(t, err, &transportErr)
			} else {
				require.NoError(t, err)
				assert.Len(t, servers, tc.expectedCount)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateServer(t *testing.T) {
	testErr := errors.New("test error")
	tests := []struct {
		name          string
		input         model.Server
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success",
			input: model.Server{
				ServerName:      "SRV-A",
				OperatingSystem: "Ubuntu 22.04",
				IPAddress:       "10.0.0.1",
			},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO "servers"`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			expectedError: nil,
		},
		{
			name: "Error Server Name Already Exists",
			input: model.Server{
				ServerName: "SRV-A",
			},
			mockSetup: func(mock sqlmock.Sqlmock) {
				pgErr := &pgconn.PgError{
					Code:           "23505",
					ConstraintName: "servers_server_name_key",
				}
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO "servers"`).WillReturnError(pgErr)
				mock.ExpectRollback()
			},
			expectedError: apperrors.ErrServerNameAlreadyExists,
		},
		{
			name: "Error Generic Database Error",
			input: model.Server{
				ServerName: "SRV-A",
			},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO "servers"`).WillReturnError(testErr)
				mock.ExpectRollback()
			},
			expectedError: testErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewServerRepository(db)
			tc.mockSetup(mock)

			created, err := repo.CreateServer(context.Background(), tc.input)

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, created.ID)
				assert.False(t, created.CreatedAt.IsZero())
				assert.Equal(t, tc.input.ServerName, created.ServerName)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateServerNormalizesEnums(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewServerRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "servers"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := repo.CreateServer(context.Background(), model.Server{
		ServerName:   "SRV-A",
		HardwareType: "mainframe",
		ServerType:   "Sandbox",
		Backup:       "maybe",
	})

	require.NoError(t, err)
	assert.Equal(t, model.HardwareTypeVMware, created.HardwareType)
	assert.Equal(t, model.ServerTypeDevelopment, created.ServerType)
	assert.Equal(t, model.BackupDisabled, created.Backup)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateServer(t *testing.T) {
	testErr := errors.New("test error")
	tests := []struct {
		name          string
		input         model.Server
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success",
			input: model.Server{
				ID:         "id-1",
				ServerName: "SRV-A",
				Company:    "NewCorp",
			},
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "server_name", "company"}).
					AddRow("id-1", "SRV-A", "NewCorp")
				mock.ExpectBegin()
				mock.ExpectQuery(`UPDATE "servers" SET`).WillReturnRows(rows)
				mock.ExpectCommit()
			},
		},
		{
			name: "Error Server Not Found",
			input: model.Server{
				ID: "missing",
			},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`UPDATE "servers" SET`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectCommit()
			},
			expectedError: apperrors.ErrServerNotFound,
		},
		{
			name: "Error Generic Database Error",
			input: model.Server{
				ID: "id-1",
			},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`UPDATE "servers" SET`).WillReturnError(testErr)
				mock.ExpectRollback()
			},
			expectedError: testErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewServerRepository(db)
			tc.mockSetup(mock)

			updated, err := repo.UpdateServer(context.Background(), tc.input)

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "NewCorp", updated.Company)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDeleteServerByID(t *testing.T) {
	testErr := errors.New("test error")
	tests := []struct {
		name          string
		serverID      string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name:     "Success",
			serverID: "id-1",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM "servers"`).
					WithArgs("id-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:     "Error Server Not Found",
			serverID: "missing",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM "servers"`).
					WithArgs("missing").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
			expectedError: apperrors.ErrServerNotFound,
		},
		{
			name:     "Error Generic Database Error",
			serverID: "id-1",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM "servers"`).WillReturnError(testErr)
				mock.ExpectRollback()
			},
			expectedError: testErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewServerRepository(db)
			tc.mockSetup(mock)

			err := repo.DeleteServerByID(context.Background(), tc.serverID)

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBatchUpsertServers(t *testing.T) {
	testErr := errors.New("test error")

	t.Run("Success", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewServerRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "servers" .* ON CONFLICT \("id"\) DO UPDATE`).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		count, err := repo.BatchUpsertServers(context.Background(), []model.Server{
			{ID: "id-1", ServerName: "SRV-A", UpdatedAt: time.Now()},
			{ServerName: "SRV-B"},
		})

		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success, empty input short-circuits", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewServerRepository(db)

		count, err := repo.BatchUpsertServers(context.Background(), nil)

		require.NoError(t, err)
		assert.Zero(t, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error Generic Database Error", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewServerRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "servers"`).WillReturnError(testErr)
		mock.ExpectRollback()

		count, err := repo.BatchUpsertServers(context.Background(), []model.Server{
			{ID: "id-1", ServerName: "SRV-A"},
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, testErr)
		assert.Zero(t, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
