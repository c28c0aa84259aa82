package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	dbm "tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type PurchaseController struct {
	purchaseService services.PurchaseServiceInterface
}

func NewPurchaseController(purchaseService services.PurchaseServiceInterface) *PurchaseController {
	return &PurchaseController{
		purchaseService: purchaseService,
	}
}

func (p *PurchaseController) CreateGeneralPurchase(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	var req request_models.PurchaseCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid purchase payload")
		return
	}

	purchase, err := p.purchaseService.CreatePurchase(c.Request.Context(), tripID, dbm.GeneralScope(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, purchase, "Purchase created successfully")
}

func (p *PurchaseController) CreateMyPurchase(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	var req request_models.PurchaseCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid purchase payload")
		return
	}

	purchase, err := p.purchaseService.CreatePurchase(c.Request.Context(), tripID, dbm.IndividualScope(userID), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, purchase, "Purchase created successfully")
}

func (p *PurchaseController) GetTripPurchases(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	purchases, err := p.purchaseService.GetAllPurchasesByTrip(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, purchases, "Purchases fetched successfully")
}

func (p *PurchaseController) GetGeneralPurchases(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	purchases, err := p.purchaseService.GetGeneralPurchases(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, purchases, "Purchases fetched successfully")
}

func (p *PurchaseController) GetMyPurchases(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	purchases, err := p.purchaseService.GetIndividualPurchases(c.Request.Context(), tripID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, purchases, "Purchases fetched successfully")
}

func (p *PurchaseController) GetPurchase(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}
	purchaseID, ok := pathUUID(c, "purchaseId")
	if !ok {
		return
	}

	purchase, err := p.purchaseService.GetPurchaseByID(c.Request.Context(), tripID, purchaseID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, purchase, "Purchase fetched successfully")
}

func (p *PurchaseController) UpdateGeneralPurchase(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}
	purchaseID, ok := pathUUID(c, "purchaseId")
	if !ok {
		return
	}

	var req request_models.PurchaseUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid purchase payload")
		return
	}

	purchase, err := p.purchaseService.UpdatePurchase(c.Request.Context(), tripID, dbm.GeneralScope(), purchaseID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, purchase, "Purchase updated successfully")
}

func (p *PurchaseController) UpdateMyPurchase(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}
	purchaseID, ok := pathUUID(c, "purchaseId")
	if !ok {
		return
	}

	var req request_models.PurchaseUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid purchase payload")
		return
	}

	purchase, err := p.purchaseService.UpdatePurchase(c.Request.Context(), tripID, dbm.IndividualScope(userID), purchaseID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, purchase, "Purchase updated successfully")
}

func (p *PurchaseController) DeletePurchase(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}
	purchaseID, ok := pathUUID(c, "purchaseId")
	if !ok {
		return
	}

	if err := p.purchaseService.DeletePurchase(c.Request.Context(), tripID, purchaseID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Purchase deleted successfully")
}
