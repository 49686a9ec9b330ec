package services

import (
	"cmp"
	"slices"

	"boystrip/internal/models/db_models"
	"boystrip/internal/models/response_models"

	"github.com/google/uuid"
)

func addBallot(t response_models.VoteTally, voteType int) response_models.VoteTally {
	t.Score += voteType
	switch voteType {
	case db_models.VoteUp:
		t.Upvotes++
	case db_models.VoteDown:
		t.Downvotes++
	}
	return t
}

// TallyVotes sums ballots per activity. Activities without ballots are
// absent and read as the zero tally.
func TallyVotes(votes []db_models.Vote) map[uuid.UUID]response_models.VoteTally {
	tallies := make(map[uuid.UUID]response_models.VoteTally)
	for _, v := range votes {
		tallies[v.ActivityID] = addBallot(tallies[v.ActivityID], v.VoteType)
	}
	return tallies
}

func tallyOne(votes []db_models.Vote) response_models.VoteTally {
	var t response_models.VoteTally
	for _, v := range votes {
		t = addBallot(t, v.VoteType)
	}
	return t
}

func compareScheduled(a, b response_models.ActivityWithScore) int {
	if c := cmp.Compare(a.TimeSlot.Rank(), b.TimeSlot.Rank()); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	if c := cmp.Compare(a.CreatedAt, b.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID.String(), b.ID.String())
}

// SortSchedule orders one day: time slot, then score descending, then
// creation time, then id.
func SortSchedule(items []response_models.ActivityWithScore) {
	slices.SortStableFunc(items, compareScheduled)
}

func withScores(activities []db_models.Activity, tallies map[uuid.UUID]response_models.VoteTally) []response_models.ActivityWithScore {
	out := make([]response_models.ActivityWithScore, 0, len(activities))
	for _, a := range activities {
		out = append(out, response_models.ActivityWithScore{Activity: a, VoteTally: tallies[a.ID]})
	}
	return out
}

// AssembleItinerary groups scored activities by day and sorts each day.
func AssembleItinerary(activities []db_models.Activity, votes []db_models.Vote) response_models.Itinerary {
	tallies := TallyVotes(votes)
	itinerary := make(response_models.Itinerary)
	for _, item := range withScores(activities, tallies) {
		itinerary[item.Day] = append(itinerary[item.Day], item)
	}
	for day := range itinerary {
		SortSchedule(itinerary[day])
	}
	return itinerary
}
