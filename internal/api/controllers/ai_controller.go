package controllers

import (
	"boystrip/internal/models/request_models"
	"boystrip/internal/services"
	"boystrip/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	aiService      services.AIServiceInterface
	paymentService services.AIPaymentServiceInterface
}

func NewAIController(aiService services.AIServiceInterface, paymentService services.AIPaymentServiceInterface) *AIController {
	return &AIController{aiService: aiService, paymentService: paymentService}
}

// ImproveText godoc
// @Summary Rewrite a profile field with AI
// @Description action is one of expand, rewrite, shorten, custom
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.ImproveTextRequest true "Text and action"
// @Success 200 {object} response_models.ImproveTextResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /ai/improve [post]
func (a *AIController) ImproveText(c *gin.Context) {
	var req request_models.ImproveTextRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := a.aiService.ImproveText(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "")
}

func (a *AIController) GenerateQuote(c *gin.Context) {
	var req request_models.GenerateQuoteRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := a.aiService.GenerateQuote(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "")
}

func (a *AIController) RecordPayment(c *gin.Context) {
	var req request_models.RecordPaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := a.paymentService.RecordPayment(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, payment, "Payment recorded")
}

// ListPayments godoc
// @Summary List AI usage payments
// @Description Admin only. Optional status filter.
// @Tags AI
// @Produce json
// @Param status query string false "pending, collected or waived"
// @Success 200 {array} db_models.AIPayment
// @Router /ai/payments [get]
func (a *AIController) ListPayments(c *gin.Context) {
	payments, err := a.paymentService.ListPayments(c.Request.Context(), c.Query("status"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, payments, "")
}

func (a *AIController) UpdatePaymentStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.UpdatePaymentStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := a.paymentService.UpdatePaymentStatus(c.Request.Context(), id, req.Status); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"success": true}, "Payment updated")
}
