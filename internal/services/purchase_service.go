package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	dbm "tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	resp "tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

const dateLayout = "2006-01-02"

type PurchaseServiceInterface interface {
	CreatePurchase(ctx context.Context, tripID uuid.UUID, scope dbm.Scope, actorID uuid.UUID, request request_models.PurchaseCreateRequest) (*resp.PurchaseResponse, error)
	GetPurchaseByID(ctx context.Context, tripID, purchaseID uuid.UUID) (*resp.PurchaseResponse, error)
	GetAllPurchasesByTrip(ctx context.Context, tripID uuid.UUID) ([]resp.PurchaseResponse, error)
	GetGeneralPurchases(ctx context.Context, tripID uuid.UUID) ([]resp.PurchaseResponse, error)
	GetIndividualPurchases(ctx context.Context, tripID, userID uuid.UUID) ([]resp.PurchaseResponse, error)
	UpdatePurchase(ctx context.Context, tripID uuid.UUID, scope dbm.Scope, purchaseID uuid.UUID, request request_models.PurchaseUpdateRequest) (*resp.PurchaseResponse, error)
	DeletePurchase(ctx context.Context, tripID, purchaseID uuid.UUID) error
}

type PurchaseService struct {
	purchaseRepo repositories.PurchaseRepository
	tripRepo     repositories.TripRepository
	userRepo     repositories.UserRepository
}

func NewPurchaseService(
	purchaseRepo repositories.PurchaseRepository,
	tripRepo repositories.TripRepository,
	userRepo repositories.UserRepository,
) PurchaseServiceInterface {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		tripRepo:     tripRepo,
		userRepo:     userRepo,
	}
}

// CreatePurchase records an expense against either ledger. Individual
// purchases require the scoped user to be a member of the trip; the price
// must be strictly positive.
func (p *PurchaseService) CreatePurchase(ctx context.Context, tripID uuid.UUID, scope dbm.Scope, actorID uuid.UUID, request request_models.PurchaseCreateRequest) (*resp.PurchaseResponse, error) {
	price, currency, purchaseDate, err := p.validatePurchaseFields(request.Price, request.Currency, request.PurchaseDate)
	if err != nil {
		return nil, err
	}

	trip, err := p.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	creator, err := p.userRepo.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if creator == nil {
		return nil, utils.ErrUserNotFound
	}

	if userID, ok := scope.UserID(); ok {
		user, err := p.userRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, utils.ErrUserNotFound
		}
		isMember, err := p.tripRepo.ExistsMembership(ctx, tripID, userID)
		if err != nil {
			return nil, err
		}
		if !isMember {
			return nil, utils.ErrNotMember
		}
	}

	purchase := dbm.NewPurchase(tripID, scope, actorID, request.Description, price, currency, purchaseDate)
	if err := p.purchaseRepo.Insert(ctx, purchase); err != nil {
		return nil, err
	}
	return buildPurchaseResponse(purchase), nil
}

func (p *PurchaseService) GetPurchaseByID(ctx context.Context, tripID, purchaseID uuid.UUID) (*resp.PurchaseResponse, error) {
	purchase, err := p.findPurchase(ctx, tripID, purchaseID)
	if err != nil {
		return nil, err
	}
	return buildPurchaseResponse(purchase), nil
}

func (p *PurchaseService) GetAllPurchasesByTrip(ctx context.Context, tripID uuid.UUID) ([]resp.PurchaseResponse, error) {
	purchases, err := p.purchaseRepo.FindByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return buildPurchaseResponses(purchases), nil
}

func (p *PurchaseService) GetGeneralPurchases(ctx context.Context, tripID uuid.UUID) ([]resp.PurchaseResponse, error) {
	purchases, err := p.purchaseRepo.FindGeneralByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return buildPurchaseResponses(purchases), nil
}

func (p *PurchaseService) GetIndividualPurchases(ctx context.Context, tripID, userID uuid.UUID) ([]resp.PurchaseResponse, error) {
	purchases, err := p.purchaseRepo.FindIndividualByTripAndUser(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}
	return buildPurchaseResponses(purchases), nil
}

// UpdatePurchase rewrites an existing expense. The caller's scope must match
// the ledger the purchase sits on, and an individual purchase may only be
// edited by its owner.
func (p *PurchaseService) UpdatePurchase(ctx context.Context, tripID uuid.UUID, scope dbm.Scope, purchaseID uuid.UUID, request request_models.PurchaseUpdateRequest) (*resp.PurchaseResponse, error) {
	price, currency, purchaseDate, err := p.validatePurchaseFields(request.Price, request.Currency, request.PurchaseDate)
	if err != nil {
		return nil, err
	}

	purchase, err := p.findPurchase(ctx, tripID, purchaseID)
	if err != nil {
		return nil, err
	}

	if userID, ok := scope.UserID(); ok {
		if purchase.IsGeneral {
			return nil, utils.ErrScopeMismatch
		}
		if !purchase.OwnedBy(userID) {
			return nil, utils.ErrOwnershipMismatch
		}
	} else if !purchase.IsGeneral {
		return nil, utils.ErrScopeMismatch
	}

	purchase.Description = request.Description
	purchase.Price = price
	purchase.Currency = currency
	purchase.PurchaseDate = purchaseDate
	if err := p.purchaseRepo.Save(ctx, purchase); err != nil {
		return nil, err
	}
	return buildPurchaseResponse(purchase), nil
}

func (p *PurchaseService) DeletePurchase(ctx context.Context, tripID, purchaseID uuid.UUID) error {
	purchase, err := p.findPurchase(ctx, tripID, purchaseID)
	if err != nil {
		return err
	}
	return p.purchaseRepo.Delete(ctx, purchase)
}

func (p *PurchaseService) findPurchase(ctx context.Context, tripID, purchaseID uuid.UUID) (*dbm.Purchase, error) {
	purchase, err := p.purchaseRepo.FindByIDAndTrip(ctx, purchaseID, tripID)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, utils.ErrPurchaseNotFound
	}
	return purchase, nil
}

func (p *PurchaseService) validatePurchaseFields(price decimal.Decimal, rawCurrency, rawDate string) (decimal.Decimal, dbm.Currency, time.Time, error) {
	if !price.IsPositive() {
		return decimal.Zero, "", time.Time{}, utils.ErrNonPositivePrice
	}
	currency := dbm.Currency(rawCurrency)
	if !currency.Valid() {
		return decimal.Zero, "", time.Time{}, utils.ErrInvalidCurrency
	}
	purchaseDate, err := time.Parse(dateLayout, rawDate)
	if err != nil {
		return decimal.Zero, "", time.Time{}, utils.ErrInvalidInput
	}
	return price, currency, purchaseDate, nil
}

func buildPurchaseResponse(purchase *dbm.Purchase) *resp.PurchaseResponse {
	out := &resp.PurchaseResponse{
		ID:             purchase.ID.String(),
		TripID:         purchase.TripID.String(),
		Description:    purchase.Description,
		Price:          purchase.Price,
		Currency:       purchase.Currency.String(),
		CurrencyCode:   purchase.Currency.Code(),
		CurrencySymbol: purchase.Currency.Symbol(),
		PurchaseDate:   purchase.PurchaseDate.Format(dateLayout),
		IsGeneral:      purchase.IsGeneral,
		CreatedBy:      purchase.CreatedBy.String(),
		CreatedAt:      purchase.CreatedAt,
		UpdatedAt:      purchase.UpdatedAt,
	}
	if purchase.UserID != nil {
		out.UserID = purchase.UserID.String()
	}
	return out
}

func buildPurchaseResponses(purchases []dbm.Purchase) []resp.PurchaseResponse {
	out := make([]resp.PurchaseResponse, 0, len(purchases))
	for i := range purchases {
		out = append(out, *buildPurchaseResponse(&purchases[i]))
	}
	return out
}
