package controllers

import (
	"net/http"
	"strconv"

	"travel-backend/apperrors"
	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

type createActivityPayload struct {
	UserID        uint   `json:"userId" binding:"required"`
	Type          string `json:"type" binding:"required"`
	Content       string `json:"content"`
	DestinationID *uint  `json:"destinationId"`
}

type ActivityController struct {
	Activities *services.ActivityService
}

func NewActivityController(activities *services.ActivityService) *ActivityController {
	return &ActivityController{Activities: activities}
}

// CreateActivity (POST /activities)
func (ac *ActivityController) CreateActivity(c *gin.Context) {
	var payload createActivityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, utils.BindError(err))
		return
	}

	activity, err := ac.Activities.Record(c.Request.Context(), services.RecordActivityInput{
		UserID:        payload.UserID,
		Type:          payload.Type,
		Content:       payload.Content,
		DestinationID: payload.DestinationID,
	})
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, activity)
}

// GetRecentActivities (GET /activities/:userId?limit=20)
func (ac *ActivityController) GetRecentActivities(c *gin.Context) {
	userID, err := utils.ParamID(c, "userId")
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			utils.JSONError(c, apperrors.Validation("limit must be a positive integer"))
			return
		}
	}

	activities, err := ac.Activities.Recent(c.Request.Context(), userID, limit)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, activities)
}
