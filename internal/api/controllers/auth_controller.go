package controllers

import (
	"boystrip/internal/models/request_models"
	"boystrip/internal/services"
	"boystrip/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{authService: authService}
}

// Unlock godoc
// @Summary Unlock the trip
// @Description Exchange the shared trip password for a guest token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.UnlockRequest true "Trip password"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/unlock [post]
func (a *AuthController) Unlock(c *gin.Context) {
	var req request_models.UnlockRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := a.authService.Unlock(c.Request.Context(), req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, res, "Trip unlocked")
}

// AdminUnlock godoc
// @Summary Unlock admin access
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.UnlockRequest true "Admin password"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/admin [post]
func (a *AuthController) AdminUnlock(c *gin.Context) {
	var req request_models.UnlockRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := a.authService.AdminUnlock(c.Request.Context(), req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, res, "Admin unlocked")
}
