package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "tripmate/internal/models/db_models"
)

type TripRepository interface {
	Insert(ctx context.Context, trip *dbm.Trip) error
	Save(ctx context.Context, trip *dbm.Trip) error
	FindByID(ctx context.Context, tripID uuid.UUID) (*dbm.Trip, error)
	FindByJoinCode(ctx context.Context, code string) (*dbm.Trip, error)
	JoinCodeExists(ctx context.Context, code string) (bool, error)
	FindByMemberUser(ctx context.Context, userID uuid.UUID) ([]dbm.Trip, error)

	ExistsMembership(ctx context.Context, tripID, userID uuid.UUID) (bool, error)
	AddMembership(ctx context.Context, tripID, userID uuid.UUID) error
	RemoveMembership(ctx context.Context, tripID, userID uuid.UUID) error
	CountMembers(ctx context.Context, tripID uuid.UUID) (int64, error)

	DeleteCascade(ctx context.Context, tripID uuid.UUID) error

	WithTx(tx *gorm.DB) TripRepository
}

// ErrDuplicateMembership is returned by AddMembership when the (trip, user)
// row already exists, including the case where a concurrent insert won the
// race on the unique index.
var ErrDuplicateMembership = errors.New("membership already exists")

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) WithTx(tx *gorm.DB) TripRepository {
	if tx == nil {
		return r
	}
	return &tripRepository{db: tx}
}

func (r *tripRepository) Insert(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) Save(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

func (r *tripRepository) FindByID(ctx context.Context, tripID uuid.UUID) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).First(&trip, "id = ?", tripID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) FindByJoinCode(ctx context.Context, code string) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).First(&trip, "join_code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) JoinCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("join_code = ?", code).
		Count(&count).Error
	return count > 0, err
}

func (r *tripRepository) FindByMemberUser(ctx context.Context, userID uuid.UUID) ([]dbm.Trip, error) {
	var trips []dbm.Trip
	err := r.db.WithContext(ctx).
		Joins("JOIN trip_members ON trip_members.trip_id = trips.id").
		Where("trip_members.user_id = ?", userID).
		Order("trips.created_at").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) ExistsMembership(ctx context.Context, tripID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.TripMember{}).
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *tripRepository) AddMembership(ctx context.Context, tripID, userID uuid.UUID) error {
	member := dbm.TripMember{TripID: tripID, UserID: userID}
	err := r.db.WithContext(ctx).Create(&member).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateMembership
	}
	return err
}

func (r *tripRepository) RemoveMembership(ctx context.Context, tripID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		Delete(&dbm.TripMember{}).Error
}

func (r *tripRepository) CountMembers(ctx context.Context, tripID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.TripMember{}).
		Where("trip_id = ?", tripID).
		Count(&count).Error
	return count, err
}

// DeleteCascade removes the trip and everything hanging off it: membership
// rows, both ledgers, tips and destination links. Run inside a transaction.
func (r *tripRepository) DeleteCascade(ctx context.Context, tripID uuid.UUID) error {
	db := r.db.WithContext(ctx)

	if err := db.Where("trip_id = ?", tripID).Delete(&dbm.TripMember{}).Error; err != nil {
		return err
	}
	if err := db.Where("trip_id = ?", tripID).Delete(&dbm.Wallet{}).Error; err != nil {
		return err
	}
	if err := db.Where("trip_id = ?", tripID).Delete(&dbm.Purchase{}).Error; err != nil {
		return err
	}
	if err := db.Where("trip_id = ?", tripID).Delete(&dbm.Tip{}).Error; err != nil {
		return err
	}
	if err := db.Where("trip_id = ?", tripID).Delete(&dbm.TripDestination{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", tripID).Delete(&dbm.Trip{}).Error
}
