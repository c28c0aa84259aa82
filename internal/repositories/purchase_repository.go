package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "tripmate/internal/models/db_models"
)

type PurchaseRepository interface {
	Insert(ctx context.Context, purchase *dbm.Purchase) error
	Save(ctx context.Context, purchase *dbm.Purchase) error
	Delete(ctx context.Context, purchase *dbm.Purchase) error
	FindByIDAndTrip(ctx context.Context, purchaseID, tripID uuid.UUID) (*dbm.Purchase, error)
	FindByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.Purchase, error)
	FindGeneralByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.Purchase, error)
	FindIndividualByTripAndUser(ctx context.Context, tripID, userID uuid.UUID) ([]dbm.Purchase, error)
}

type purchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) Insert(ctx context.Context, purchase *dbm.Purchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

func (r *purchaseRepository) Save(ctx context.Context, purchase *dbm.Purchase) error {
	return r.db.WithContext(ctx).Save(purchase).Error
}

func (r *purchaseRepository) Delete(ctx context.Context, purchase *dbm.Purchase) error {
	return r.db.WithContext(ctx).Delete(purchase).Error
}

func (r *purchaseRepository) FindByIDAndTrip(ctx context.Context, purchaseID, tripID uuid.UUID) (*dbm.Purchase, error) {
	var purchase dbm.Purchase
	err := r.db.WithContext(ctx).
		Where("id = ? AND trip_id = ?", purchaseID, tripID).
		First(&purchase).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepository) FindByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.Purchase, error) {
	var purchases []dbm.Purchase
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("purchase_date").
		Find(&purchases).Error
	if err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *purchaseRepository) FindGeneralByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.Purchase, error) {
	var purchases []dbm.Purchase
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND is_general = TRUE", tripID).
		Order("purchase_date").
		Find(&purchases).Error
	if err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *purchaseRepository) FindIndividualByTripAndUser(ctx context.Context, tripID, userID uuid.UUID) ([]dbm.Purchase, error) {
	var purchases []dbm.Purchase
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND user_id = ? AND is_general = FALSE", tripID, userID).
		Order("purchase_date").
		Find(&purchases).Error
	if err != nil {
		return nil, err
	}
	return purchases, nil
}
