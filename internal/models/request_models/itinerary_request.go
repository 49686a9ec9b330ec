package request_models

import "github.com/google/uuid"

type SuggestActivityRequest struct {
	Day              int        `json:"day" binding:"required,min=1"`
	TimeSlot         string     `json:"timeSlot" binding:"required"`
	Title            string     `json:"title" binding:"required"`
	Description      string     `json:"description"`
	Location         string     `json:"location"`
	Cost             string     `json:"cost"`
	ImageURL         string     `json:"imageUrl"`
	ExternalLink     string     `json:"externalLink"`
	CreatorProfileID *uuid.UUID `json:"creatorProfileId"`
}

// ActivityPatch carries only the fields the editor sent.
type ActivityPatch struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Location     *string `json:"location"`
	Cost         *string `json:"cost"`
	Day          *int    `json:"day"`
	TimeSlot     *string `json:"timeSlot"`
	ImageURL     *string `json:"imageUrl"`
	ExternalLink *string `json:"externalLink"`
}

type UpdateActivityRequest struct {
	EditorProfileID uuid.UUID     `json:"editorProfileId" binding:"required"`
	Updates         ActivityPatch `json:"updates"`
}

type DeleteActivityRequest struct {
	DeleterProfileID uuid.UUID `json:"deleterProfileId" binding:"required"`
}

type VoteRequest struct {
	VoterID  string `json:"voterId" binding:"required"`
	VoteType int    `json:"voteType" binding:"required"`
}

type CommentRequest struct {
	UserName string `json:"userName" binding:"required"`
	Text     string `json:"text" binding:"required"`
}

// GeneratedActivity is one element of the array the text generator returns.
type GeneratedActivity struct {
	Day          int    `json:"day"`
	TimeSlot     string `json:"timeSlot"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	Cost         string `json:"cost"`
	ImageURL     string `json:"imageUrl,omitempty"`
	ExternalLink string `json:"externalLink,omitempty"`
}
