package repository

import (
	"context"

	apperrors "server-inventory-dashboard/internal/inventory-service/errors"
	"server-inventory-dashboard/internal/inventory-service/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HistoryRepository interface {
	FetchAllHistory(ctx context.Context) ([]model.History, error)
	CreateHistory(ctx context.Context, entry model.History) (model.History, error)
	DeleteHistoryByServerID(ctx context.Context, serverID string) error
	BatchUpsertHistory(ctx context.Context, entries []model.History) (int, error)
}

type historyRepository struct {
	db *gorm.DB
}

func (h *historyRepository) FetchAllHistory(ctx context.Context) ([]model.History, error) {
	var entries []model.History
	result := h.db.WithContext(ctx).Order("timestamp asc").Find(&entries)
	if result.Error != nil {
		return nil, apperrors.NewTransportError("HistoryRepository.FetchAllHistory", result.Error)
	}
	return entries, nil
}

func (h *historyRepository) CreateHistory(ctx context.Context, entry model.History) (model.History, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	result := h.db.WithContext(ctx).Create(&entry)
	if result.Error != nil {
		return entry, apperrors.NewTransportError("HistoryRepository.CreateHistory", result.Error)
	}
	return entry, nil
}

func (h *historyRepository) DeleteHistoryByServerID(ctx context.Context, serverID string) error {
	result := h.db.WithContext(ctx).Where("server_id = ?", serverID).Delete(&model.History{})
	if result.Error != nil {
		return apperrors.NewTransportError("HistoryRepository.DeleteHistoryByServerID", result.Error)
	}
	return nil
}

func (h *historyRepository) BatchUpsertHistory(ctx context.Context, entries []model.History) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}
	count := 0
	err := h.db.Transaction(func(tx *gorm.DB) error {
		for i := 0; i < len(entries); i += upsertChunkSize {
			j := i + upsertChunkSize
			if j > len(entries) {
				j = len(entries)
			}
			batch := make([]model.History, j-i)
			copy(batch, entries[i:j])
			result := tx.WithContext(ctx).
				Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
				Create(&batch)
			if result.Error != nil {
				return result.Error
			}
			count += len(batch)
		}
		return nil
	})
	if err != nil {
		return 0, apperrors.NewTransportError("HistoryRepository.BatchUpsertHistory", err)
	}
	return count, nil
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{
		db: db,
	}
}
