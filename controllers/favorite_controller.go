package controllers

import (
	"net/http"

	"travel-backend/apperrors"
	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

type addFavoritePayload struct {
	UserID        uint `json:"userId" binding:"required"`
	DestinationID uint `json:"destinationId" binding:"required"`
}

type FavoriteController struct {
	Favorites *services.FavoriteService
}

func NewFavoriteController(favorites *services.FavoriteService) *FavoriteController {
	return &FavoriteController{Favorites: favorites}
}

// AddFavorite (POST /favorites). A repeated pair answers 409 and carries the
// existing record so the client can treat it as already saved.
func (fc *FavoriteController) AddFavorite(c *gin.Context) {
	var payload addFavoritePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, utils.BindError(err))
		return
	}

	fav, created, err := fc.Favorites.AddFavorite(c.Request.Context(), payload.UserID, payload.DestinationID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	if !created {
		utils.JSONErrorWithData(c, apperrors.AlreadyExists("destination is already in favorites"), fav)
		return
	}

	utils.JSONMessage(c, http.StatusCreated, "Added to favorites", fav)
}

// GetFavorites (GET /favorites/:userId)
func (fc *FavoriteController) GetFavorites(c *gin.Context) {
	userID, err := utils.ParamID(c, "userId")
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	favorites, err := fc.Favorites.ListFavoritesForUser(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, favorites)
}

// RemoveFavorite (DELETE /favorites/:id) succeeds even when the row is already gone.
func (fc *FavoriteController) RemoveFavorite(c *gin.Context) {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	if err := fc.Favorites.RemoveFavorite(c.Request.Context(), id); err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Removed from favorites", nil)
}
