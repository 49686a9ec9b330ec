package response_models

import "boystrip/internal/models/db_models"

type RoomWithAssignee struct {
	db_models.Room
	AssignedProfile *ProfileSummary `json:"assignedProfile"`
}

type RoomStats struct {
	TotalRooms     int `json:"totalRooms"`
	AssignedRooms  int `json:"assignedRooms"`
	AvailableRooms int `json:"availableRooms"`
	TotalCapacity  int `json:"totalCapacity"`
}

type SeedResponse struct {
	Message         string `json:"message"`
	AccommodationID string `json:"accommodationId,omitempty"`
}
