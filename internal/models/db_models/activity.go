package db_models

import (
	"github.com/google/uuid"
)

type TimeSlot string

const (
	TimeSlotMorning   TimeSlot = "Morning"
	TimeSlotAfternoon TimeSlot = "Afternoon"
	TimeSlotEvening   TimeSlot = "Evening"
)

// Rank orders slots within a day; unknown slots sort last.
func (t TimeSlot) Rank() int {
	switch t {
	case TimeSlotMorning:
		return 1
	case TimeSlotAfternoon:
		return 2
	case TimeSlotEvening:
		return 3
	default:
		return 4
	}
}

func (t TimeSlot) Valid() bool {
	return t.Rank() < 4
}

type ActivitySource string

const (
	ActivitySourceAI   ActivitySource = "ai"
	ActivitySourceUser ActivitySource = "user"
)

type Activity struct {
	BaseModel
	Day          int            `gorm:"not null;index" json:"day"`
	TimeSlot     TimeSlot       `gorm:"size:16;not null" json:"timeSlot"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Location     string         `json:"location"`
	Cost         string         `json:"cost"`
	Source       ActivitySource `gorm:"size:8;not null;index" json:"source"`
	ImageURL     string         `json:"imageUrl,omitempty"`
	ExternalLink string         `json:"externalLink,omitempty"`

	// set only for user suggestions made by a known profile
	CreatorProfileID *uuid.UUID `gorm:"type:uuid;index" json:"creatorProfileId,omitempty"`

	LastEditedBy string `json:"lastEditedBy,omitempty"`
	LastEditedAt *int64 `json:"lastEditedAt,omitempty"`
}
