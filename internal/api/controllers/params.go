package controllers

import (
	"net/http"

	"boystrip/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// uuidParam parses a path parameter and answers 400 itself when it is not a
// uuid.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}
