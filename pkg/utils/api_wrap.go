package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps the recoverable service errors to 4xx responses.
// Anything else is an unexpected store failure: logged and returned as 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTripNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrWalletNotFound),
		errors.Is(err, ErrPurchaseNotFound),
		errors.Is(err, ErrTipNotFound),
		errors.Is(err, ErrInvalidJoinCode):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrAlreadyMember),
		errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrForbidden),
		errors.Is(err, ErrOwnershipMismatch):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrNotMember),
		errors.Is(err, ErrLastAdmin),
		errors.Is(err, ErrNegativeAmount),
		errors.Is(err, ErrNonPositivePrice),
		errors.Is(err, ErrScopeMismatch),
		errors.Is(err, ErrInvalidDateRange),
		errors.Is(err, ErrInvalidCurrency),
		errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("Unexpected error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
