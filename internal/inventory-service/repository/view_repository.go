package repository

import (
	"context"
	"fmt"

	apperrors "server-inventory-dashboard/internal/inventory-service/errors"
	"server-inventory-dashboard/internal/inventory-service/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ViewRepository interface {
	FetchViews(ctx context.Context) ([]model.View, error)
	CreateView(ctx context.Context, view model.View) (model.View, error)
	DeleteViewByID(ctx context.Context, viewID string) error
}

type viewRepository struct {
	db *gorm.DB
}

func (v *viewRepository) FetchViews(ctx context.Context) ([]model.View, error) {
	var views []model.View
	result := v.db.WithContext(ctx).Find(&views)
	if result.Error != nil {
		return nil, apperrors.NewTransportError("ViewRepository.FetchViews", result.Error)
	}
	return views, nil
}

func (v *viewRepository) CreateView(ctx context.Context, view model.View) (model.View, error) {
	if view.ID == "" {
		view.ID = uuid.NewString()
	}
	result := v.db.WithContext(ctx).Create(&view)
	if result.Error != nil {
		return view, apperrors.NewTransportError("ViewRepository.CreateView", result.Error)
	}
	return view, nil
}

func (v *viewRepository) DeleteViewByID(ctx context.Context, viewID string) error {
	result := v.db.WithContext(ctx).Where("id = ?", viewID).Delete(&model.View{})
	if result.Error != nil {
		return apperrors.NewTransportError("ViewRepository.DeleteViewByID", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ViewRepository.DeleteViewByID: %w", apperrors.ErrViewNotFound)
	}
	return nil
}

func NewViewRepository(db *gorm.DB) ViewRepository {
	return &viewRepository{
		db: db,
	}
}
