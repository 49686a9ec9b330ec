package response_models

import "github.com/google/uuid"

// ProfileSummary is the slice of a profile shown on room cards.
type ProfileSummary struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	PhotoStorageID string    `json:"photoStorageId,omitempty"`
	PhotoURL       string    `json:"photoUrl,omitempty"`
}

type VerifyPasswordResponse struct {
	Success     bool `json:"success"`
	HasPassword bool `json:"hasPassword"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type PhotoURLResponse struct {
	URL *string `json:"url"`
}
