package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	dbm "tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	resp "tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type WalletServiceInterface interface {
	// CreateGeneralWallet and CreateIndividualWallet run inside the caller's
	// transaction: wallet provisioning is never visible without the membership
	// change that caused it.
	CreateGeneralWallet(ctx context.Context, tx *gorm.DB, tripID uuid.UUID, amount decimal.Decimal, currency dbm.Currency) (*dbm.Wallet, error)
	CreateIndividualWallet(ctx context.Context, tx *gorm.DB, tripID, userID uuid.UUID, currency dbm.Currency) (*dbm.Wallet, error)

	GetGeneralWallet(ctx context.Context, tripID uuid.UUID) (*resp.WalletResponse, error)
	GetIndividualWallet(ctx context.Context, tripID, userID uuid.UUID) (*resp.WalletResponse, error)
	GetAllWalletsByTrip(ctx context.Context, tripID uuid.UUID) ([]resp.WalletResponse, error)
	UpdateWallet(ctx context.Context, tripID uuid.UUID, scope dbm.Scope, request request_models.WalletUpdateRequest) (*resp.WalletResponse, error)
}

type WalletService struct {
	walletRepo repositories.WalletRepository
	tripRepo   repositories.TripRepository
	userRepo   repositories.UserRepository
}

func NewWalletService(
	walletRepo repositories.WalletRepository,
	tripRepo repositories.TripRepository,
	userRepo repositories.UserRepository,
) WalletServiceInterface {
	return &WalletService{
		walletRepo: walletRepo,
		tripRepo:   tripRepo,
		userRepo:   userRepo,
	}
}

func (w *WalletService) CreateGeneralWallet(ctx context.Context, tx *gorm.DB, tripID uuid.UUID, amount decimal.Decimal, currency dbm.Currency) (*dbm.Wallet, error) {
	wallet := dbm.NewWallet(tripID, dbm.GeneralScope(), amount, currency)
	if err := w.walletRepo.WithTx(tx).Insert(ctx, wallet); err != nil {
		return nil, err
	}
	return wallet, nil
}

// CreateIndividualWallet always starts at zero; members record what they
// carry through wallet updates, not at provisioning time.
func (w *WalletService) CreateIndividualWallet(ctx context.Context, tx *gorm.DB, tripID, userID uuid.UUID, currency dbm.Currency) (*dbm.Wallet, error) {
	wallet := dbm.NewWallet(tripID, dbm.IndividualScope(userID), decimal.Zero, currency)
	if err := w.walletRepo.WithTx(tx).Insert(ctx, wallet); err != nil {
		return nil, err
	}
	return wallet, nil
}

func (w *WalletService) GetGeneralWallet(ctx context.Context, tripID uuid.UUID) (*resp.WalletResponse, error) {
	wallet, err := w.walletRepo.FindGeneralByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, utils.ErrWalletNotFound
	}
	return buildWalletResponse(wallet), nil
}

func (w *WalletService) GetIndividualWallet(ctx context.Context, tripID, userID uuid.UUID) (*resp.WalletResponse, error) {
	wallet, err := w.walletRepo.FindIndividual(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, utils.ErrWalletNotFound
	}
	return buildWalletResponse(wallet), nil
}

func (w *WalletService) GetAllWalletsByTrip(ctx context.Context, tripID uuid.UUID) ([]resp.WalletResponse, error) {
	wallets, err := w.walletRepo.FindByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	out := make([]resp.WalletResponse, 0, len(wallets))
	for i := range wallets {
		out = append(out, *buildWalletResponse(&wallets[i]))
	}
	return out, nil
}

// UpdateWallet replaces amount and currency together. A negative amount is
// rejected before anything is written.
func (w *WalletService) UpdateWallet(ctx context.Context, tripID uuid.UUID, scope dbm.Scope, request request_models.WalletUpdateRequest) (*resp.WalletResponse, error) {
	if request.Amount.IsNegative() {
		return nil, utils.ErrNegativeAmount
	}
	currency := dbm.Currency(request.Currency)
	if !currency.Valid() {
		return nil, utils.ErrInvalidCurrency
	}

	trip, err := w.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	var wallet *dbm.Wallet
	if userID, ok := scope.UserID(); ok {
		user, err := w.userRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, utils.ErrUserNotFound
		}

		isMember, err := w.tripRepo.ExistsMembership(ctx, tripID, userID)
		if err != nil {
			return nil, err
		}
		if !isMember {
			return nil, utils.ErrNotMember
		}

		wallet, err = w.walletRepo.FindIndividual(ctx, tripID, userID)
		if err != nil {
			return nil, err
		}
	} else {
		wallet, err = w.walletRepo.FindGeneralByTrip(ctx, tripID)
		if err != nil {
			return nil, err
		}
	}
	if wallet == nil {
		return nil, utils.ErrWalletNotFound
	}

	wallet.Amount = request.Amount
	wallet.Currency = currency
	if err := w.walletRepo.Save(ctx, wallet); err != nil {
		return nil, err
	}

	return buildWalletResponse(wallet), nil
}

func buildWalletResponse(wallet *dbm.Wallet) *resp.WalletResponse {
	out := &resp.WalletResponse{
		ID:             wallet.ID.String(),
		TripID:         wallet.TripID.String(),
		Amount:         wallet.Amount,
		Currency:       wallet.Currency.String(),
		CurrencyCode:   wallet.Currency.Code(),
		CurrencySymbol: wallet.Currency.Symbol(),
		IsGeneral:      wallet.IsGeneral,
		CreatedAt:      wallet.CreatedAt,
		UpdatedAt:      wallet.UpdatedAt,
	}
	if wallet.UserID != nil {
		out.UserID = wallet.UserID.String()
	}
	return out
}
