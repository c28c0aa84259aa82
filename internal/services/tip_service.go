package services

import (
	"context"

	"github.com/google/uuid"

	dbm "tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	resp "tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type TipServiceInterface interface {
	CreateTip(ctx context.Context, tripID, actorID uuid.UUID, createdBy string, request request_models.TipCreateRequest) (*resp.TipResponse, error)
	GetTipsByTrip(ctx context.Context, tripID uuid.UUID) ([]resp.TipResponse, error)
	GetTipsByType(ctx context.Context, tripID uuid.UUID, tipType string) ([]resp.TipResponse, error)
	GetTipsByCreator(ctx context.Context, tripID uuid.UUID, createdBy string) ([]resp.TipResponse, error)
}

type TipService struct {
	tipRepo  repositories.TipRepository
	tripRepo repositories.TripRepository
}

func NewTipService(tipRepo repositories.TipRepository, tripRepo repositories.TripRepository) TipServiceInterface {
	return &TipService{tipRepo: tipRepo, tripRepo: tripRepo}
}

func (t *TipService) CreateTip(ctx context.Context, tripID, actorID uuid.UUID, createdBy string, request request_models.TipCreateRequest) (*resp.TipResponse, error) {
	trip, err := t.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	isMember, err := t.tripRepo.ExistsMembership(ctx, tripID, actorID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, utils.ErrNotMember
	}

	icon := request.TipIcon
	if icon == "" {
		icon = defaultTipIcon
	}

	tip := &dbm.Tip{
		TripID:      tripID,
		Name:        request.Name,
		Description: request.Description,
		Address:     request.Address,
		Latitude:    request.Latitude,
		Longitude:   request.Longitude,
		Rating:      request.Rating,
		DistanceKm:  request.DistanceKm,
		TipType:     request.TipType,
		TipIcon:     icon,
		Types:       request.Types,
		CreatedBy:   createdBy,
	}
	if err := t.tipRepo.Insert(ctx, tip); err != nil {
		return nil, err
	}
	return buildTipResponse(tip), nil
}

func (t *TipService) GetTipsByTrip(ctx context.Context, tripID uuid.UUID) ([]resp.TipResponse, error) {
	tips, err := t.tipRepo.FindByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return buildTipResponses(tips), nil
}

func (t *TipService) GetTipsByType(ctx context.Context, tripID uuid.UUID, tipType string) ([]resp.TipResponse, error) {
	tips, err := t.tipRepo.FindByTripAndType(ctx, tripID, tipType)
	if err != nil {
		return nil, err
	}
	return buildTipResponses(tips), nil
}

func (t *TipService) GetTipsByCreator(ctx context.Context, tripID uuid.UUID, createdBy string) ([]resp.TipResponse, error) {
	tips, err := t.tipRepo.FindByTripAndCreator(ctx, tripID, createdBy)
	if err != nil {
		return nil, err
	}
	return buildTipResponses(tips), nil
}

func buildTipResponse(tip *dbm.Tip) *resp.TipResponse {
	return &resp.TipResponse{
		ID:          tip.ID.String(),
		TripID:      tip.TripID.String(),
		Name:        tip.Name,
		Description: tip.Description,
		Address:     tip.Address,
		Latitude:    tip.Latitude,
		Longitude:   tip.Longitude,
		Rating:      tip.Rating,
		DistanceKm:  tip.DistanceKm,
		TipType:     tip.TipType,
		TipIcon:     tip.TipIcon,
		Types:       tip.Types,
		CreatedBy:   tip.CreatedBy,
		CreatedAt:   tip.CreatedAt,
	}
}

func buildTipResponses(tips []dbm.Tip) []resp.TipResponse {
	out := make([]resp.TipResponse, 0, len(tips))
	for i := range tips {
		out = append(out, *buildTipResponse(&tips[i]))
	}
	return out
}
