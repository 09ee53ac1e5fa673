package controllers

import (
	"net/http"

	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateBookingRequest keeps the frontend's field names; "destination" is the destination id.
type CreateBookingRequest struct {
	UserID        uint   `json:"userId"`
	DestinationID uint   `json:"destination"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	Travelers     int    `json:"travelers"`
}

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// CreateBooking (POST /api/bookings)
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.BindError(err))
		return
	}

	booking, err := bc.BookingSvc.CreateBooking(c.Request.Context(), services.CreateBookingInput{
		UserID:        req.UserID,
		DestinationID: req.DestinationID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Travelers:     req.Travelers,
	})
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	utils.JSONMessage(c, http.StatusCreated, "Booking successful!", booking)
}

// GetUserBookings (GET /api/bookings/:userId)
func (bc *BookingController) GetUserBookings(c *gin.Context) {
	userID, err := utils.ParamID(c, "userId")
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	bookings, err := bc.BookingSvc.ListBookingsForUser(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GetBookingDetails (GET /api/booking-details/:id)
func (bc *BookingController) GetBookingDetails(c *gin.Context) {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	booking, err := bc.BookingSvc.GetBooking(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}
