package controllers

import (
	"net/http"

	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

type signupPayload struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// loginPayload accepts the username field for either a username or an email.
type loginPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthController struct {
	Identity *services.IdentityService
}

func NewAuthController(identity *services.IdentityService) *AuthController {
	return &AuthController{Identity: identity}
}

// Signup (POST /signup)
func (ctrl *AuthController) Signup(c *gin.Context) {
	var payload signupPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, utils.BindError(err))
		return
	}

	user, err := ctrl.Identity.Signup(c.Request.Context(), services.SignupInput{
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

	utils.JSONMessage(c, http.StatusCreated, "User registered successfully!", user)
}

// Login (POST /login)
func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, utils.BindError(err))
		return
	}

	identifier := payload.Username
	if identifier == "" {
		identifier = payload.Email
	}

	user, err := ctrl.Identity.Login(c.Request.Context(), identifier, payload.Password)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	utils.JSONMessage(c, http.StatusOK, "Login successful", user)
}
