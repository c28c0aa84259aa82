package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "tripmate/internal/models/db_models"
)

type TipRepository interface {
	Insert(ctx context.Context, tip *dbm.Tip) error
	FindByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.Tip, error)
	FindByTripAndType(ctx context.Context, tripID uuid.UUID, tipType string) ([]dbm.Tip, error)
	FindByTripAndCreator(ctx context.Context, tripID uuid.UUID, createdBy string) ([]dbm.Tip, error)
}

type tipRepository struct {
	db *gorm.DB
}

func NewTipRepository(db *gorm.DB) TipRepository {
	return &tipRepository{db: db}
}

func (r *tipRepository) Insert(ctx context.Context, tip *dbm.Tip) error {
	return r.db.WithContext(ctx).Create(tip).Error
}

func (r *tipRepository) FindByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.Tip, error) {
	var tips []dbm.Tip
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at DESC").
		Find(&tips).Error
	if err != nil {
		return nil, err
	}
	return tips, nil
}

func (r *tipRepository) FindByTripAndType(ctx context.Context, tripID uuid.UUID, tipType string) ([]dbm.Tip, error) {
	var tips []dbm.Tip
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND tip_type = ?", tripID, tipType).
		Order("created_at DESC").
		Find(&tips).Error
	if err != nil {
		return nil, err
	}
	return tips, nil
}

func (r *tipRepository) FindByTripAndCreator(ctx context.Context, tripID uuid.UUID, createdBy string) ([]dbm.Tip, error) {
	var tips []dbm.Tip
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND created_by = ?", tripID, createdBy).
		Order("created_at DESC").
		Find(&tips).Error
	if err != nil {
		return nil, err
	}
	return tips, nil
}
