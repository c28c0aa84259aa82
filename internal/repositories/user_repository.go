package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "tripmate/internal/models/db_models"
)

type UserRepository interface {
	Insert(ctx context.Context, user *dbm.User) error
	FindByID(ctx context.Context, userID uuid.UUID) (*dbm.User, error)
	FindByEmail(ctx context.Context, email string) (*dbm.User, error)
	FindByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Insert(ctx context.Context, user *dbm.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, userID uuid.UUID) (*dbm.User, error) {
	var user dbm.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*dbm.User, error) {
	var user dbm.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.User, error) {
	var users []dbm.User
	err := r.db.WithContext(ctx).
		Joins("JOIN trip_members ON trip_members.user_id = users.id").
		Where("trip_members.trip_id = ?", tripID).
		Order("trip_members.created_at").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
