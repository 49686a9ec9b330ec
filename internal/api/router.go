// Package api assembles the gin engine from the controllers.
package api

import (
	"boystrip/internal/api/controllers"
	"boystrip/internal/config"
	"boystrip/pkg/logger"
	"boystrip/pkg/middleware"
	"boystrip/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config *config.Config
	Log    *logger.Logger
	Issuer *utils.TokenIssuer

	Health        *controllers.HealthController
	Auth          *controllers.AuthController
	Live          *controllers.LiveController
	Dashboard     *controllers.DashboardController
	Profiles      *controllers.ProfileController
	Itinerary     *controllers.ItineraryController
	Activities    *controllers.ActivityController
	Accommodation *controllers.AccommodationController
	Photos        *controllers.PhotoController
	AI            *controllers.AIController
}

func NewRouter(p RouterParams) *gin.Engine {
	gin.SetMode(p.Config.GinMode)

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(p.Config.CORSOrigins))

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	r.GET("/health", p.Health.Health)

	auth := r.Group("/auth")
	auth.POST("/unlock", p.Auth.Unlock)
	auth.POST("/admin", p.Auth.AdminUnlock)

	guest := r.Group("/", middleware.JWTAuthMiddleware(p.Issuer), middleware.RoleMiddleware(utils.RoleGuest))
	admin := middleware.RoleMiddleware(utils.RoleAdmin)
	aiLimit := middleware.RateLimitMiddleware(p.Config.AI.RatePerMinute)

	guest.GET("/ws", p.Live.Subscribe)
	guest.GET("/dashboard", p.Dashboard.GetDashboard)

	profiles := guest.Group("/profiles")
	profiles.GET("", p.Profiles.ListProfiles)
	profiles.POST("", p.Profiles.CreateProfile)
	profiles.GET("/count", p.Profiles.CountProfiles)
	profiles.GET("/:id", p.Profiles.GetProfile)
	profiles.PUT("/:id", p.Profiles.UpdateProfile)
	profiles.GET("/:id/has-password", p.Profiles.HasPassword)
	profiles.POST("/:id/verify-password", p.Profiles.VerifyPassword)
	profiles.PUT("/:id/manager", p.Profiles.SetManager)
	profiles.GET("/:id/photo-url", p.Profiles.PhotoURL)
	guest.GET("/managers/count", p.Profiles.CountManagers)

	itinerary := guest.Group("/itinerary")
	itinerary.GET("", p.Itinerary.GetItinerary)
	itinerary.GET("/day/:day", p.Itinerary.GetDay)
	itinerary.GET("/today", p.Itinerary.GetToday)
	itinerary.GET("/featured", p.Itinerary.GetFeatured)
	itinerary.POST("/generate", admin, aiLimit, p.Itinerary.GenerateItinerary)
	itinerary.DELETE("", admin, p.Itinerary.ClearItinerary)

	activities := guest.Group("/activities")
	activities.POST("", p.Activities.SuggestActivity)
	activities.GET("/:id", p.Activities.GetActivity)
	activities.PUT("/:id", p.Activities.UpdateActivity)
	activities.DELETE("/:id", p.Activities.DeleteActivity)
	activities.GET("/:id/score", p.Activities.GetScore)
	activities.GET("/:id/vote", p.Activities.GetUserVote)
	activities.POST("/:id/vote", p.Activities.Vote)
	activities.POST("/:id/comments", p.Activities.AddComment)

	accommodation := guest.Group("/accommodation")
	accommodation.GET("", p.Accommodation.GetAccommodation)
	accommodation.GET("/rooms", p.Accommodation.ListRooms)
	accommodation.GET("/unassigned", p.Accommodation.ListUnassigned)
	accommodation.GET("/stats", p.Accommodation.GetStats)
	accommodation.POST("/seed", admin, p.Accommodation.SeedAccommodation)

	rooms := guest.Group("/rooms")
	rooms.PUT("/:id/assignment", p.Accommodation.AssignRoom)
	rooms.DELETE("/:id/assignment", p.Accommodation.UnassignRoom)

	photos := guest.Group("/photos")
	photos.POST("/upload-url", p.Photos.GenerateUploadURL)
	photos.GET("/:storageId/url", p.Photos.GetPhotoURL)

	ai := guest.Group("/ai")
	ai.POST("/improve", aiLimit, p.AI.ImproveText)
	ai.POST("/quote", aiLimit, p.AI.GenerateQuote)
	ai.POST("/payments", p.AI.RecordPayment)
	ai.GET("/payments", admin, p.AI.ListPayments)
	ai.PUT("/payments/:id/status", admin, p.AI.UpdatePaymentStatus)
}
