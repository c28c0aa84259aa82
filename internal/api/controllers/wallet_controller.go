package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	dbm "tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type WalletController struct {
	walletService services.WalletServiceInterface
}

func NewWalletController(walletService services.WalletServiceInterface) *WalletController {
	return &WalletController{
		walletService: walletService,
	}
}

func (w *WalletController) GetTripWallets(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	wallets, err := w.walletService.GetAllWalletsByTrip(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, wallets, "Wallets fetched successfully")
}

func (w *WalletController) GetGeneralWallet(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	wallet, err := w.walletService.GetGeneralWallet(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, wallet, "Wallet fetched successfully")
}

func (w *WalletController) GetMyWallet(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	wallet, err := w.walletService.GetIndividualWallet(c.Request.Context(), tripID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, wallet, "Wallet fetched successfully")
}

func (w *WalletController) UpdateGeneralWallet(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	var req request_models.WalletUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid wallet payload")
		return
	}

	wallet, err := w.walletService.UpdateWallet(c.Request.Context(), tripID, dbm.GeneralScope(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, wallet, "Wallet updated successfully")
}

func (w *WalletController) UpdateMyWallet(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	var req request_models.WalletUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid wallet payload")
		return
	}

	wallet, err := w.walletService.UpdateWallet(c.Request.Context(), tripID, dbm.IndividualScope(userID), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, wallet, "Wallet updated successfully")
}
