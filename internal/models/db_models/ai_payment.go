package db_models

import (
	"github.com/google/uuid"
)

type AIPaymentStatus string

const (
	AIPaymentPending   AIPaymentStatus = "pending"
	AIPaymentCollected AIPaymentStatus = "collected"
	AIPaymentWaived    AIPaymentStatus = "waived"
)

func (s AIPaymentStatus) Valid() bool {
	switch s {
	case AIPaymentPending, AIPaymentCollected, AIPaymentWaived:
		return true
	}
	return false
}

// AIPayment is an IOU recorded when someone uses the paid text assist.
type AIPayment struct {
	BaseModel
	ProfileID *uuid.UUID      `gorm:"type:uuid;index" json:"profileId,omitempty"`
	UserName  string          `gorm:"not null" json:"userName"`
	Email     string          `json:"email,omitempty"`
	Amount    float64         `gorm:"not null" json:"amount"`
	FieldUsed string          `json:"fieldUsed"`
	Status    AIPaymentStatus `gorm:"size:16;not null;index" json:"status"`
}

func (AIPayment) TableName() string { return "ai_payments" }
