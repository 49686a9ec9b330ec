package controllers

import (
	"boystrip/internal/models/response_models"
	"boystrip/internal/services"
	"boystrip/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PhotoController struct {
	photoService services.PhotoServiceInterface
}

func NewPhotoController(photoService services.PhotoServiceInterface) *PhotoController {
	return &PhotoController{photoService: photoService}
}

// GenerateUploadURL godoc
// @Summary Presigned upload URL for a profile photo
// @Description The returned storageId must be sent back on the profile to claim the upload
// @Tags Photos
// @Produce json
// @Success 200 {object} response_models.UploadURLResponse
// @Failure 502 {object} utils.APIResponse
// @Router /photos/upload-url [post]
func (p *PhotoController) GenerateUploadURL(c *gin.Context) {
	res, err := p.photoService.GenerateUploadURL(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "")
}

func (p *PhotoController) GetPhotoURL(c *gin.Context) {
	url, err := p.photoService.PhotoURL(c.Request.Context(), c.Param("storageId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.PhotoURLResponse{URL: &url}, "")
}
