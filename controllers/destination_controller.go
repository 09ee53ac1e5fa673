package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"travel-backend/apperrors"
	"travel-backend/models"
	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

type createDestinationPayload struct {
	Name        string  `json:"name" binding:"required"`
	Type        string  `json:"type"`
	Rating      float64 `json:"rating" binding:"gte=0,lte=5"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
}

type DestinationController struct {
	Catalog *services.CatalogService
}

func NewDestinationController(catalog *services.CatalogService) *DestinationController {
	return &DestinationController{Catalog: catalog}
}

// ListDestinations (GET /api/destinations?type=Beach&minRating=4)
func (ctrl *DestinationController) ListDestinations(c *gin.Context) {
	filter := services.DestinationFilter{Type: c.Query("type")}
	if raw := strings.TrimSpace(c.Query("minRating")); raw != "" {
		r, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.JSONError(c, apperrors.Validation("invalid minRating"))
			return
		}
		filter.MinRating = &r
	}

	destinations, err := ctrl.Catalog.ListDestinations(c.Request.Context(), filter)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, destinations)
}

// GetDestination (GET /api/destinations/:id)
func (ctrl *DestinationController) GetDestination(c *gin.Context) {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	d, err := ctrl.Catalog.GetDestination(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, d)
}

// CreateDestination (POST /api/destinations)
func (ctrl *DestinationController) CreateDestination(c *gin.Context) {
	var payload createDestinationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, utils.BindError(err))
		return
	}

	d := models.Destination{
		Name:        payload.Name,
		Type:        strings.TrimSpace(payload.Type),
		Rating:      payload.Rating,
		Description: strings.TrimSpace(payload.Description),
		ImageURL:    strings.TrimSpace(payload.ImageURL),
	}
	if err := ctrl.Catalog.CreateDestination(c.Request.Context(), &d); err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, d)
}
