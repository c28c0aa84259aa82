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

type AccountServiceInterface interface {
	SignUp(ctx context.Context, request request_models.SignUpRequest) (*resp.AccountResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*resp.LoginResponse, error)
	GetAccount(ctx context.Context, userID uuid.UUID) (*resp.AccountResponse, error)
	GetAccountByEmail(ctx context.Context, email string) (*resp.AccountResponse, error)
}

type AccountService struct {
	userRepo repositories.UserRepository
}

func NewAccountService(userRepo repositories.UserRepository) AccountServiceInterface {
	return &AccountService{userRepo: userRepo}
}

func (a *AccountService) SignUp(ctx context.Context, request request_models.SignUpRequest) (*resp.AccountResponse, error) {
	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	user := &dbm.User{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hash,
	}
	if err := a.userRepo.Insert(ctx, user); err != nil {
		return nil, err
	}
	return buildAccountResponse(user), nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*resp.LoginResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &resp.LoginResponse{Token: token}, nil
}

func (a *AccountService) GetAccount(ctx context.Context, userID uuid.UUID) (*resp.AccountResponse, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return buildAccountResponse(user), nil
}

func (a *AccountService) GetAccountByEmail(ctx context.Context, email string) (*resp.AccountResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return buildAccountResponse(user), nil
}

func buildAccountResponse(user *dbm.User) *resp.AccountResponse {
	return &resp.AccountResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}
}
