package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type TipController struct {
	tipService services.TipServiceInterface
}

func NewTipController(tipService services.TipServiceInterface) *TipController {
	return &TipController{
		tipService: tipService,
	}
}

func (t *TipController) CreateTip(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	var req request_models.TipCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid tip payload")
		return
	}

	tip, err := t.tipService.CreateTip(c.Request.Context(), tripID, userID, c.GetString("user_email"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tip, "Tip created successfully")
}

// GetTips lists a trip's tips, optionally filtered by ?type= or ?created_by=.
func (t *TipController) GetTips(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if tipType := c.Query("type"); tipType != "" {
		tips, err := t.tipService.GetTipsByType(ctx, tripID, tipType)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, tips, "Tips fetched successfully")
		return
	}
	if createdBy := c.Query("created_by"); createdBy != "" {
		tips, err := t.tipService.GetTipsByCreator(ctx, tripID, createdBy)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, tips, "Tips fetched successfully")
		return
	}

	tips, err := t.tipService.GetTipsByTrip(ctx, tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, tips, "Tips fetched successfully")
}
