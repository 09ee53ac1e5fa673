package controllers

import (
	"net/http"

	"travel-backend/models"
	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// createImagePayload takes either a hosted url or base64 "data" to store under /uploads.
type createImagePayload struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Alt           string `json:"alt"`
	DestinationID *uint  `json:"destinationId"`
	Data          string `json:"data"`
}

type createPagePayload struct {
	Slug  string         `json:"slug" binding:"required"`
	Title string         `json:"title" binding:"required"`
	Body  datatypes.JSON `json:"body"`
}

type ContentController struct {
	Content *services.ContentService
}

func NewContentController(content *services.ContentService) *ContentController {
	return &ContentController{Content: content}
}

// GetImages (GET /api/images?destinationId=1)
func (cc *ContentController) GetImages(c *gin.Context) {
	destinationID, err := utils.QueryUint(c, "destinationId")
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	images, err := cc.Content.ListImages(c.Request.Context(), destinationID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, images)
}

// CreateImage (POST /api/images)
func (cc *ContentController) CreateImage(c *gin.Context) {
	var payload createImagePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, utils.BindError(err))
		return
	}

	img, err := cc.Content.CreateImage(c.Request.Context(), services.CreateImageInput{
		Title:         payload.Title,
		URL:           payload.URL,
		Alt:           payload.Alt,
		DestinationID: payload.DestinationID,
		Data:          payload.Data,
	})
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, img)
}

// GetPages (GET /api/pages)
func (cc *ContentController) GetPages(c *gin.Context) {
	pages, err := cc.Content.ListPages(c.Request.Context())
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, pages)
}

// GetPage (GET /api/pages/:slug)
func (cc *ContentController) GetPage(c *gin.Context) {
	page, err := cc.Content.GetPage(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, page)
}

// CreatePage (POST /api/pages)
func (cc *ContentController) CreatePage(c *gin.Context) {
	var payload createPagePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, utils.BindError(err))
		return
	}

	page := models.Page{Slug: payload.Slug, Title: payload.Title, Body: payload.Body}
	if err := cc.Content.CreatePage(c.Request.Context(), &page); err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, page)
}
