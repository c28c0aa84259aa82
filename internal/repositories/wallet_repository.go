package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "tripmate/internal/models/db_models"
)

type WalletRepository interface {
	Insert(ctx context.Context, wallet *dbm.Wallet) error
	Save(ctx context.Context, wallet *dbm.Wallet) error
	FindGeneralByTrip(ctx context.Context, tripID uuid.UUID) (*dbm.Wallet, error)
	FindIndividual(ctx context.Context, tripID, userID uuid.UUID) (*dbm.Wallet, error)
	FindByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.Wallet, error)
	WithTx(tx *gorm.DB) WalletRepository
}

type walletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) WithTx(tx *gorm.DB) WalletRepository {
	if tx == nil {
		return r
	}
	return &walletRepository{db: tx}
}

func (r *walletRepository) Insert(ctx context.Context, wallet *dbm.Wallet) error {
	return r.db.WithContext(ctx).Create(wallet).Error
}

func (r *walletRepository) Save(ctx context.Context, wallet *dbm.Wallet) error {
	return r.db.WithContext(ctx).Save(wallet).Error
}

func (r *walletRepository) FindGeneralByTrip(ctx context.Context, tripID uuid.UUID) (*dbm.Wallet, error) {
	var wallet dbm.Wallet
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND is_general = TRUE", tripID).
		First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &wallet, nil
}

func (r *walletRepository) FindIndividual(ctx context.Context, tripID, userID uuid.UUID) (*dbm.Wallet, error) {
	var wallet dbm.Wallet
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND user_id = ? AND is_general = FALSE", tripID, userID).
		First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &wallet, nil
}

func (r *walletRepository) FindByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.Wallet, error) {
	var wallets []dbm.Wallet
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at").
		Find(&wallets).Error
	if err != nil {
		return nil, err
	}
	return wallets, nil
}
