package controllers

import (
	"net/http"

	"boystrip/internal/infra"
	"boystrip/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

func (h *HealthController) Health(c *gin.Context) {
	if err := infra.Ping(c.Request.Context(), h.db); err != nil {
		utils.RespondError(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	utils.RespondSuccess(c, gin.H{"status": "ok"}, "")
}
