package controllers

import (
	"net/http"
	"strconv"
	"time"

	"boystrip/internal/services"
	"boystrip/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	aiService        services.AIServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface, aiService services.AIServiceInterface) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService, aiService: aiService}
}

// GetItinerary godoc
// @Summary Full itinerary
// @Description Activities grouped by day; each day ordered by time slot then score
// @Tags Itinerary
// @Produce json
// @Success 200 {object} response_models.Itinerary
// @Router /itinerary [get]
func (i *ItineraryController) GetItinerary(c *gin.Context) {
	itinerary, err := i.itineraryService.AssembleItinerary(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// GetDay godoc
// @Summary Activities for one day
// @Tags Itinerary
// @Produce json
// @Param day path int true "Trip day, 1-indexed"
// @Success 200 {array} response_models.ActivityWithScore
// @Router /itinerary/day/{day} [get]
func (i *ItineraryController) GetDay(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid day")
		return
	}

	items, err := i.itineraryService.ActivitiesForDay(c.Request.Context(), day)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, "")
}

func (i *ItineraryController) GetToday(c *gin.Context) {
	schedule, err := i.itineraryService.TodaySchedule(c.Request.Context(), time.Now())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, schedule, "")
}

func (i *ItineraryController) GetFeatured(c *gin.Context) {
	event, err := i.itineraryService.FeaturedEvent(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, event, "")
}

// GenerateItinerary godoc
// @Summary Regenerate the itinerary with AI
// @Description Replaces every activity, with its votes and comments. Admin only.
// @Tags Itinerary
// @Produce json
// @Success 200 {object} response_models.GenerateItineraryResponse
// @Failure 502 {object} utils.APIResponse
// @Router /itinerary/generate [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	res, err := i.aiService.GenerateItinerary(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "Itinerary generated")
}

func (i *ItineraryController) ClearItinerary(c *gin.Context) {
	res, err := i.itineraryService.ClearItinerary(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "Itinerary cleared")
}
