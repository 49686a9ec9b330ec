package request_models

import "github.com/google/uuid"

type AssignRoomRequest struct {
	ProfileID uuid.UUID `json:"profileId" binding:"required"`
}
