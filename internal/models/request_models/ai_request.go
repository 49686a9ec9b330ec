package request_models

import "github.com/google/uuid"

type ImproveTextRequest struct {
	Text         string `json:"text" binding:"required"`
	Action       string `json:"action" binding:"required"`
	CustomPrompt string `json:"customPrompt"`
	FieldName    string `json:"fieldName"`
}

type GenerateQuoteRequest struct {
	QuoteType   string   `json:"quoteType" binding:"required"`
	Themes      []string `json:"themes"`
	CustomNotes string   `json:"customNotes"`
}

type RecordPaymentRequest struct {
	ProfileID *uuid.UUID `json:"profileId"`
	UserName  string     `json:"userName" binding:"required"`
	Email     string     `json:"email"`
	Amount    float64    `json:"amount" binding:"required,gt=0"`
	FieldUsed string     `json:"fieldUsed" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
