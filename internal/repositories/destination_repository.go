package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "tripmate/internal/models/db_models"
)

type DestinationRepository interface {
	Insert(ctx context.Context, destination *dbm.Destination) error
	FindByName(ctx context.Context, name string) (*dbm.Destination, error)

	InsertLink(ctx context.Context, link *dbm.TripDestination) error
	SaveLink(ctx context.Context, link *dbm.TripDestination) error
	DeleteLink(ctx context.Context, tripID, destinationID uuid.UUID) error
	FindLinksByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.TripDestination, error)

	WithTx(tx *gorm.DB) DestinationRepository
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) WithTx(tx *gorm.DB) DestinationRepository {
	if tx == nil {
		return r
	}
	return &destinationRepository{db: tx}
}

func (r *destinationRepository) Insert(ctx context.Context, destination *dbm.Destination) error {
	return r.db.WithContext(ctx).Create(destination).Error
}

func (r *destinationRepository) FindByName(ctx context.Context, name string) (*dbm.Destination, error) {
	var destination dbm.Destination
	err := r.db.WithContext(ctx).First(&destination, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}

func (r *destinationRepository) InsertLink(ctx context.Context, link *dbm.TripDestination) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *destinationRepository) SaveLink(ctx context.Context, link *dbm.TripDestination) error {
	return r.db.WithContext(ctx).Save(link).Error
}

func (r *destinationRepository) DeleteLink(ctx context.Context, tripID, destinationID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("trip_id = ? AND destination_id = ?", tripID, destinationID).
		Delete(&dbm.TripDestination{}).Error
}

func (r *destinationRepository) FindLinksByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.TripDestination, error) {
	var links []dbm.TripDestination
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Preload("Destination").
		Order("created_at").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}
