package controllers

import (
	"net/http"

	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

type updateUserPayload struct {
	Username *string `json:"username"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Password *string `json:"password"`
}

type UserController struct {
	Identity *services.IdentityService
}

func NewUserController(identity *services.IdentityService) *UserController {
	return &UserController{Identity: identity}
}

// GetUser (GET /api/users/:id)
func (ctrl *UserController) GetUser(c *gin.Context) {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	user, err := ctrl.Identity.FindByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

// UpdateUser (PUT /api/users/:id) rehashes the password when one is sent.
func (ctrl *UserController) UpdateUser(c *gin.Context) {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	var payload updateUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, utils.BindError(err))
		return
	}

	user, err := ctrl.Identity.UpdateByID(c.Request.Context(), id, services.UpdateUserInput{
		Username: payload.Username,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Address:  payload.Address,
		Password: payload.Password,
	})
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	utils.JSONMessage(c, http.StatusOK, "User updated successfully", user)
}
