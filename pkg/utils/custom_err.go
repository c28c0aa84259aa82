package utils

import "errors"

var (
	ErrTripNotFound     = errors.New("trip not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrWalletNotFound   = errors.New("wallet not found")
	ErrPurchaseNotFound = errors.New("purchase not found")
	ErrTipNotFound      = errors.New("tip not found")

	ErrAlreadyMember   = errors.New("user already participates in this trip")
	ErrNotMember       = errors.New("user does not belong to this trip")
	ErrForbidden       = errors.New("insufficient permissions")
	ErrInvalidJoinCode = errors.New("invalid join code")
	ErrLastAdmin       = errors.New("cannot remove the last admin")

	ErrNegativeAmount    = errors.New("amount cannot be negative")
	ErrNonPositivePrice  = errors.New("price must be greater than zero")
	ErrScopeMismatch     = errors.New("purchase scope does not match")
	ErrOwnershipMismatch = errors.New("purchase does not belong to this user")
	ErrInvalidDateRange  = errors.New("start date must not be after end date")
	ErrInvalidCurrency   = errors.New("unknown currency")

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidInput  = errors.New("invalid input")
	ErrDatabaseError = errors.New("database error")
)
