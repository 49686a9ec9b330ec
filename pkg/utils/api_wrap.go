package utils

import (
	"errors"
	"net/http"

	"boystrip/pkg/logger"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

type errorMapping struct {
	target error
	code   int
}

// ordered: the first sentinel matched by errors.Is decides the status
var errorMappings = []errorMapping{
	{ErrActivityNotFound, http.StatusNotFound},
	{ErrProfileNotFound, http.StatusNotFound},
	{ErrRoomNotFound, http.StatusNotFound},
	{ErrAccommodationNotFound, http.StatusNotFound},
	{ErrPaymentNotFound, http.StatusNotFound},
	{ErrPhotoNotFound, http.StatusNotFound},

	{ErrInvalidTripPassword, http.StatusUnauthorized},
	{ErrForbidden, http.StatusForbidden},
	{ErrManagerCapReached, http.StatusForbidden},
	{ErrPasswordRequired, http.StatusForbidden},
	{ErrIncorrectPassword, http.StatusForbidden},

	{ErrInvalidInput, http.StatusBadRequest},
	{ErrInvalidVoteType, http.StatusBadRequest},
	{ErrInvalidTimeSlot, http.StatusBadRequest},
	{ErrInvalidDay, http.StatusBadRequest},
	{ErrInvalidPaymentStatus, http.StatusBadRequest},
	{ErrUnknownAIAction, http.StatusBadRequest},
	{ErrUploadTicketUnknown, http.StatusBadRequest},

	{ErrRoomConflict, http.StatusConflict},

	{ErrAIUpstream, http.StatusBadGateway},
	{ErrStorageUpstream, http.StatusBadGateway},
}

// StatusFor returns the HTTP status a service error should be reported with.
func StatusFor(err error) int {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.code
		}
	}
	return http.StatusInternalServerError
}

func HandleServiceError(c *gin.Context, err error) {
	code := StatusFor(err)
	if code >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error().Err(err).Msg("request failed")
		if errors.Is(err, ErrDatabaseError) || code == http.StatusInternalServerError {
			RespondError(c, http.StatusInternalServerError, "Internal server error")
			return
		}
	}

	RespondError(c, code, err.Error())
}
