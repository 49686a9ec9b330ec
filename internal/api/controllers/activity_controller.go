package controllers

import (
	"boystrip/internal/models/request_models"
	"boystrip/internal/models/response_models"
	"boystrip/internal/services"
	"boystrip/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewActivityController(itineraryService services.ItineraryServiceInterface) *ActivityController {
	return &ActivityController{itineraryService: itineraryService}
}

// SuggestActivity godoc
// @Summary Suggest an activity
// @Tags Activities
// @Accept json
// @Produce json
// @Param request body request_models.SuggestActivityRequest true "Suggestion"
// @Success 200 {object} db_models.Activity
// @Failure 400 {object} utils.APIResponse
// @Router /activities [post]
func (a *ActivityController) SuggestActivity(c *gin.Context) {
	var req request_models.SuggestActivityRequest
	if !bindJSON(c, &req) {
		return
	}

	activity, err := a.itineraryService.SuggestActivity(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, activity, "Activity suggested")
}

// GetActivity godoc
// @Summary Activity with score and comments
// @Tags Activities
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} response_models.ActivityDetails
// @Failure 404 {object} utils.APIResponse
// @Router /activities/{id} [get]
func (a *ActivityController) GetActivity(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	details, err := a.itineraryService.ActivityDetails(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, details, "")
}

// UpdateActivity godoc
// @Summary Edit an activity
// @Description Managers edit anything; the creator edits their own suggestion
// @Tags Activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param request body request_models.UpdateActivityRequest true "Editor and changed fields"
// @Success 200 {object} db_models.Activity
// @Failure 403 {object} utils.APIResponse
// @Router /activities/{id} [put]
func (a *ActivityController) UpdateActivity(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.UpdateActivityRequest
	if !bindJSON(c, &req) {
		return
	}

	activity, err := a.itineraryService.UpdateActivity(c.Request.Context(), id, req.EditorProfileID, req.Updates)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, activity, "Activity updated")
}

// DeleteActivity godoc
// @Summary Delete an activity with its votes and comments
// @Description Managers only
// @Tags Activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param request body request_models.DeleteActivityRequest true "Deleter"
// @Success 200 {object} response_models.DeleteActivityResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /activities/{id} [delete]
func (a *ActivityController) DeleteActivity(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.DeleteActivityRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := a.itineraryService.DeleteActivity(c.Request.Context(), id, req.DeleterProfileID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "Activity deleted")
}

func (a *ActivityController) GetScore(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	tally, err := a.itineraryService.Score(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, tally, "")
}

func (a *ActivityController) GetUserVote(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	dir, err := a.itineraryService.UserVote(c.Request.Context(), id, c.Query("voter_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.UserVoteResponse{VoteType: dir}, "")
}

// Vote godoc
// @Summary Cast, flip or retract a vote
// @Description Same direction twice retracts; the opposite direction flips
// @Tags Activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param request body request_models.VoteRequest true "Voter and direction"
// @Success 200 {object} response_models.VoteResult
// @Router /activities/{id}/vote [post]
func (a *ActivityController) Vote(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.VoteRequest
	if !bindJSON(c, &req) {
		return
	}

	action, err := a.itineraryService.CastVote(c.Request.Context(), id, req.VoterID, req.VoteType)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.VoteResult{Action: string(action)}, "")
}

func (a *ActivityController) AddComment(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.CommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := a.itineraryService.AddComment(c.Request.Context(), id, req.UserName, req.Text)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, comment, "Comment added")
}
