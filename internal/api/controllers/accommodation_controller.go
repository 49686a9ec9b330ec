package controllers

import (
	"net/http"

	"boystrip/internal/models/request_models"
	"boystrip/internal/services"
	"boystrip/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AccommodationController struct {
	accommodationService services.AccommodationServiceInterface
}

func NewAccommodationController(accommodationService services.AccommodationServiceInterface) *AccommodationController {
	return &AccommodationController{accommodationService: accommodationService}
}

// GetAccommodation godoc
// @Summary The trip accommodation
// @Description Data is null until the villa has been seeded
// @Tags Accommodation
// @Produce json
// @Success 200 {object} db_models.Accommodation
// @Router /accommodation [get]
func (a *AccommodationController) GetAccommodation(c *gin.Context) {
	acc, err := a.accommodationService.Get(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, acc, "")
}

func (a *AccommodationController) ListRooms(c *gin.Context) {
	rooms, err := a.accommodationService.Rooms(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rooms, "")
}

func (a *AccommodationController) ListUnassigned(c *gin.Context) {
	profiles, err := a.accommodationService.UnassignedProfiles(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profiles, "")
}

func (a *AccommodationController) GetStats(c *gin.Context) {
	stats, err := a.accommodationService.Stats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "")
}

// AssignRoom godoc
// @Summary Put a profile in a room
// @Description A profile already in another room of the villa is moved
// @Tags Accommodation
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body request_models.AssignRoomRequest true "Profile"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /rooms/{id}/assignment [put]
func (a *AccommodationController) AssignRoom(c *gin.Context) {
	roomID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.AssignRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := a.accommodationService.AssignRoom(c.Request.Context(), roomID, req.ProfileID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"success": true}, "Room assigned")
}

func (a *AccommodationController) UnassignRoom(c *gin.Context) {
	roomID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := a.accommodationService.UnassignRoom(c.Request.Context(), roomID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"success": true}, "Room unassigned")
}

// SeedAccommodation godoc
// @Summary Seed the villa and its rooms
// @Description Idempotent. Admin only.
// @Tags Accommodation
// @Produce json
// @Success 200 {object} response_models.SeedResponse
// @Router /accommodation/seed [post]
func (a *AccommodationController) SeedAccommodation(c *gin.Context) {
	res, err := a.accommodationService.Seed(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: res.Message,
		TraceID: c.GetString("trace_id"),
		Data:    res,
	})
}
