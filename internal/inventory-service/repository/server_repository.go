package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "server-inventory-dashboard/internal/inventory-service/errors"
	"server-inventory-dashboard/internal/inventory-service/model"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// upsertChunkSize bounds one batch statement; callers syncing thousands
// of records go through multiple chunks.
const upsertChunkSize = 1000

type ServerRepository interface {
	FetchAll(ctx context.Context) ([]model.Server, error)
	CreateServer(ctx context.Context, server model.Server) (model.Server, error)
	UpdateServer(ctx context.Context, server model.Server) (model.Server, error)
	DeleteServerByID(ctx context.Context, serverID string) error
	BatchUpsertServers(ctx context.Context, servers []model.Server) (int, error)
}

type serverRepository struct {
	db *gorm.DB
}

func (s *serverRepository) FetchAll(ctx context.Context) ([]model.Server, error) {
	var servers []model.Server
	result := s.db.WithContext(ctx).Find(&servers)
	if result.Error != nil {
		return nil, apperrors.NewTransportError("ServerRepository.FetchAll", result.Error)
	}
	return servers, nil
}

func (s *serverRepository) CreateServer(ctx context.Context, server model.Server) (model.Server, error) {
	if server.ID == "" {
		server.ID = uuid.NewString()
	}
	now := time.Now()
	if server.CreatedAt.IsZero() {
		server.CreatedAt = now
	}
	if server.UpdatedAt.IsZero() {
		server.UpdatedAt = now
	}
	model.Normalize(&server)
	result := s.db.WithContext(ctx).Create(&server)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			if pgErr.ConstraintName == "servers_server_name_key" {
				return server, fmt.Errorf("ServerRepository.CreateServer: %w", apperrors.ErrServerNameAlreadyExists)
			}
		}
		return server, apperrors.NewTransportError("ServerRepository.CreateServer", result.Error)
	}
	return server, nil
}

func (s *serverRepository) UpdateServer(ctx context.Context, server model.Server) (model.Server, error) {
	model.Normalize(&server)
	var updated model.Server
	result := s.db.WithContext(ctx).Model(&updated).
		Clauses(clause.Returning{}).
		Where("id = ?", server.ID).
		Select("*").Omit("id", "created_at").
		Updates(server)
	if result.Error != nil {
		return updated, apperrors.NewTransportError("ServerRepository.UpdateServer", result.Error)
	}
	if result.RowsAffected == 0 {
		return updated, fmt.Errorf("ServerRepository.UpdateServer: %w", apperrors.ErrServerNotFound)
	}
	return updated, nil
}

func (s *serverRepository) DeleteServerByID(ctx context.Context, serverID string) error {
	result := s.db.WithContext(ctx).Where("id = ?", serverID).Delete(&model.Server{})
	if result.Error != nil {
		return apperrors.NewTransportError("ServerRepository.DeleteServerByID", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ServerRepository.DeleteServerByID: %w", apperrors.ErrServerNotFound)
	}
	return nil
}

func (s *serverRepository) BatchUpsertServers(ctx context.Context, servers []model.Server) (int, error) {
	if len(servers) == 0 {
		return 0, nil
	}
	count := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i := 0; i < len(servers); i += upsertChunkSize {
			j := i + upsertChunkSize
			if j > len(servers) {
				j = len(servers)
			}
			batch := make([]model.Server, j-i)
			copy(batch, servers[i:j])
			now := time.Now()
			for k := range batch {
				if batch[k].ID == "" {
					batch[k].ID = uuid.NewString()
					batch[k].CreatedAt = now
				}
				if batch[k].UpdatedAt.IsZero() {
					batch[k].UpdatedAt = now
				}
				model.Normalize(&batch[k])
			}
			result := tx.WithContext(ctx).
				Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
				Create(&batch)
			if result.Error != nil {
				return result.Error
			}
			count += len(batch)
		}
		return nil
	})
	if err != nil {
		return 0, apperrors.NewTransportError("ServerRepository.BatchUpsertServers", err)
	}
	return count, nil
}

func NewServerRepository(db *gorm.DB) ServerRepository {
	return &serverRepository{
		db: db,
	}
}
