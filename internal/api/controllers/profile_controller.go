package controllers

import (
	"boystrip/internal/models/request_models"
	"boystrip/internal/models/response_models"
	"boystrip/internal/services"
	"boystrip/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
}

func NewProfileController(profileService services.ProfileServiceInterface) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// ListProfiles godoc
// @Summary List profiles
// @Description Newest first
// @Tags Profiles
// @Produce json
// @Success 200 {array} db_models.Profile
// @Router /profiles [get]
func (p *ProfileController) ListProfiles(c *gin.Context) {
	profiles, err := p.profileService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profiles, "Profiles fetched successfully")
}

// CreateProfile godoc
// @Summary Create a profile
// @Tags Profiles
// @Accept json
// @Produce json
// @Param request body request_models.CreateProfileRequest true "Profile"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /profiles [post]
func (p *ProfileController) CreateProfile(c *gin.Context) {
	var req request_models.CreateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := p.profileService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "Profile created successfully")
}

func (p *ProfileController) CountProfiles(c *gin.Context) {
	n, err := p.profileService.Count(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.CountResponse{Count: n}, "")
}

func (p *ProfileController) CountManagers(c *gin.Context) {
	n, err := p.profileService.CountManagers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.CountResponse{Count: n}, "")
}

// GetProfile godoc
// @Summary Get a profile
// @Tags Profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} db_models.Profile
// @Failure 404 {object} utils.APIResponse
// @Router /profiles/{id} [get]
func (p *ProfileController) GetProfile(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	profile, err := p.profileService.Get(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}

// UpdateProfile godoc
// @Summary Update a profile
// @Description Requires the profile password when one is set
// @Tags Profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param request body request_models.UpdateProfileRequest true "Password and changed fields"
// @Success 200 {object} db_models.Profile
// @Failure 403 {object} utils.APIResponse
// @Router /profiles/{id} [put]
func (p *ProfileController) UpdateProfile(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := p.profileService.Update(c.Request.Context(), id, req.Password, req.Updates)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "Profile updated successfully")
}

func (p *ProfileController) HasPassword(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	has, err := p.profileService.HasPassword(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"hasPassword": has}, "")
}

func (p *ProfileController) VerifyPassword(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.VerifyPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := p.profileService.VerifyPassword(c.Request.Context(), id, req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "")
}

// SetManager godoc
// @Summary Promote or demote an itinerary manager
// @Description At most two profiles hold the flag
// @Tags Profiles
// @Accept json
// @Param id path string true "Profile ID"
// @Param request body request_models.SetManagerRequest true "Flag"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /profiles/{id}/manager [put]
func (p *ProfileController) SetManager(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.SetManagerRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := p.profileService.SetManager(c.Request.Context(), id, *req.IsManager); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Manager flag updated")
}

func (p *ProfileController) PhotoURL(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	url, err := p.profileService.PhotoURL(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.PhotoURLResponse{URL: url}, "")
}
