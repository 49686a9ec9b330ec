package db_models

import (
	"github.com/google/uuid"
)

const (
	VoteUp   = 1
	VoteDown = -1
)

// Vote is one ballot. VoterID is an opaque per-device string supplied by the
// client; the unique index keeps one ballot per voter and activity.
type Vote struct {
	BaseModel
	ActivityID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_votes_voter_activity,priority:2" json:"activityId"`
	VoterID    string    `gorm:"size:128;not null;uniqueIndex:idx_votes_voter_activity,priority:1" json:"voterId"`
	VoteType   int       `gorm:"not null" json:"voteType"`
}

type Comment struct {
	BaseModel
	ActivityID uuid.UUID `gorm:"type:uuid;not null;index" json:"activityId"`
	UserName   string    `gorm:"not null" json:"userName"`
	Text       string    `gorm:"type:text;not null" json:"text"`
}

type VoteAction string

const (
	VoteCreated VoteAction = "created"
	VoteUpdated VoteAction = "updated"
	VoteRemoved VoteAction = "removed"
)
