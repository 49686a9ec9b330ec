package response_models

import (
	"boystrip/internal/models/db_models"
	"boystrip/pkg/utils"

	"github.com/google/uuid"
)

type VoteTally struct {
	Score     int `json:"score"`
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
}

type ActivityWithScore struct {
	db_models.Activity
	VoteTally
}

// Itinerary maps trip day to that day's ordered activities.
type Itinerary map[int][]ActivityWithScore

type ActivityDetails struct {
	ActivityWithScore
	Comments []db_models.Comment `json:"comments"`
}

type VoteResult struct {
	Action string `json:"action"` // created | updated | removed
}

type UserVoteResponse struct {
	VoteType *int `json:"voteType"`
}

type DeleteActivityResponse struct {
	Success              bool      `json:"success"`
	DeletedActivityID    uuid.UUID `json:"deletedActivityId"`
	DeletedVotesCount    int64     `json:"deletedVotesCount"`
	DeletedCommentsCount int64     `json:"deletedCommentsCount"`
}

type TodaySchedule struct {
	Trip       utils.TripStatus    `json:"trip"`
	Day        int                 `json:"day,omitempty"`
	Activities []ActivityWithScore `json:"activities"`
}

type GenerateItineraryResponse struct {
	Count int `json:"count"`
}

type ClearItineraryResponse struct {
	DeletedActivities int64 `json:"deletedActivities"`
	DeletedVotes      int64 `json:"deletedVotes"`
	DeletedComments   int64 `json:"deletedComments"`
}
