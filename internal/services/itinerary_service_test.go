package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"boystrip/internal/models/db_models"
	"boystrip/internal/models/request_models"
	"boystrip/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestItineraryService_CastVote_Toggle(t *testing.T) {
	f := newItineraryFixture(t)
	ctx := context.Background()
	a := seedActivity(t, f.db, db_models.Activity{Title: "A"})

	steps := []struct {
		direction int
		action    db_models.VoteAction
		score     int
	}{
		{1, db_models.VoteCreated, 1},
		{1, db_models.VoteRemoved, 0},
		{1, db_models.VoteCreated, 1},
		{-1, db_models.VoteUpdated, -1},
	}

	for i, step := range steps {
		action, err := f.svc.CastVote(ctx, a.ID, "u1", step.direction)
		require.NoError(t, err, "step %d", i)
		assert.Equal(t, step.action, action, "step %d", i)

		tally, err := f.svc.Score(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, step.score, tally.Score, "step %d", i)
	}

	dir, err := f.svc.UserVote(ctx, a.ID, "u1")
	require.NoError(t, err)
	require.NotNil(t, dir)
	assert.Equal(t, -1, *dir)

	assert.Len(t, f.notifier.Topics(), len(steps))
}

func TestItineraryService_CastVote_Rejects(t *testing.T) {
	f := newItineraryFixture(t)
	ctx := context.Background()
	a := seedActivity(t, f.db, db_models.Activity{Title: "A"})

	_, err := f.svc.CastVote(ctx, a.ID, "u1", 2)
	assert.ErrorIs(t, err, utils.ErrInvalidVoteType)

	_, err = f.svc.CastVote(ctx, a.ID, "  ", 1)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = f.svc.CastVote(ctx, uuid.New(), "u1", 1)
	assert.ErrorIs(t, err, utils.ErrActivityNotFound)

	assert.Empty(t, f.notifier.Topics())
}

func TestItineraryService_CastVote_Concurrent(t *testing.T) {
	f := newItineraryFixture(t)
	ctx := context.Background()
	a := seedActivity(t, f.db, db_models.Activity{Title: "A"})

	var wg sync.WaitGroup
	// one voter toggling an even number of times ends with no ballot
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.CastVote(ctx, a.ID, "same-voter", 1)
			assert.NoError(t, err)
		}()
	}
	// distinct voters each leave one ballot
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := f.svc.CastVote(ctx, a.ID, fmt.Sprintf("voter-%d", i), 1)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	tally, err := f.svc.Score(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, tally.Score)
	assert.Equal(t, 6, tally.Upvotes)

	dir, err := f.svc.UserVote(ctx, a.ID, "same-voter")
	require.NoError(t, err)
	assert.Nil(t, dir)
}

func TestItineraryService_Score_MissingActivity(t *testing.T) {
	f := newItineraryFixture(t)

	tally, err := f.svc.Score(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Zero(t, tally.Score)
}

func TestItineraryService_AssembleItinerary(t *testing.T) {
	f := newItineraryFixture(t)
	ctx := context.Background()
	p := seedActivity(t, f.db, db_models.Activity{Day: 3, TimeSlot: db_models.TimeSlotEvening, Title: "P"})
	q := seedActivity(t, f.db, db_models.Activity{Day: 3, TimeSlot: db_models.TimeSlotMorning, Title: "Q"})
	r := seedActivity(t, f.db, db_models.Activity{Day: 3, TimeSlot: db_models.TimeSlotAfternoon, Title: "R"})
	seedActivity(t, f.db, db_models.Activity{Day: 1, Title: "Arrive"})
	seedVotes(t, f.db, p, 1, 1)
	seedVotes(t, f.db, q, -1, -1, -1, -1, -1)
	seedVotes(t, f.db, r, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1)

	itinerary, err := f.svc.AssembleItinerary(ctx)
	require.NoError(t, err)
	assert.Len(t, itinerary, 2)
	assert.Equal(t, []string{"Q", "R", "P"}, titles(itinerary[3]))

	day3, err := f.svc.ActivitiesForDay(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q", "R", "P"}, titles(day3))

	empty, err := f.svc.ActivitiesForDay(ctx, 5)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestItineraryService_DeleteActivity_Cascade(t *testing.T) {
	f := newItineraryFixture(t)
	ctx := context.Background()
	manager := seedProfile(t, f.db, "Manager", true)
	x := seedActivity(t, f.db, db_models.Activity{Title: "X"})
	keep := seedActivity(t, f.db, db_models.Activity{Title: "Keep"})
	seedVotes(t, f.db, x, 1, 1, -1, 1)
	seedVotes(t, f.db, keep, 1)
	for _, text := range []string{"in", "maybe"} {
		_, err := f.svc.AddComment(ctx, x.ID, "Sam", text)
		require.NoError(t, err)
	}

	res, err := f.svc.DeleteActivity(ctx, x.ID, manager.ID)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, x.ID, res.DeletedActivityID)
	assert.EqualValues(t, 4, res.DeletedVotesCount)
	assert.EqualValues(t, 2, res.DeletedCommentsCount)

	_, err = f.svc.ActivityDetails(ctx, x.ID)
	assert.ErrorIs(t, err, utils.ErrActivityNotFound)

	var orphans int64
	require.NoError(t, f.db.Model(&db_models.Vote{}).Where("activity_id = ?", x.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)
	require.NoError(t, f.db.Model(&db_models.Comment{}).Where("activity_id = ?", x.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)

	kept, err := f.svc.Score(ctx, keep.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, kept.Score)

	_, err = f.svc.DeleteActivity(ctx, x.ID, manager.ID)
	assert.ErrorIs(t, err, utils.ErrActivityNotFound)
}

func TestItineraryService_DeleteActivity_Guarded(t *testing.T) {
	f := newItineraryFixture(t)
	ctx := context.Background()
	creator := seedProfile(t, f.db, "u7", false)
	a := seedActivity(t, f.db, db_models.Activity{Title: "Mine", Source: db_models.ActivitySourceUser, CreatorProfileID: &creator.ID})

	_, err := f.svc.DeleteActivity(ctx, a.ID, creator.ID)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	_, err = f.svc.DeleteActivity(ctx, a.ID, uuid.Nil)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	_, err = f.svc.DeleteActivity(ctx, a.ID, uuid.New())
	assert.ErrorIs(t, err, utils.ErrProfileNotFound)

	details, err := f.svc.ActivityDetails(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mine", details.Title)
}

func TestItineraryService_UpdateActivity_Authorization(t *testing.T) {
	f := newItineraryFixture(t)
	ctx := context.Background()
	u7 := seedProfile(t, f.db, "u7", false)
	u8 := seedProfile(t, f.db, "u8", false)
	manager := seedProfile(t, f.db, "Boss", true)
	a := seedActivity(t, f.db, db_models.Activity{Title: "Braai", Source: db_models.ActivitySourceUser, CreatorProfileID: &u7.ID})

	_, err := f.svc.UpdateActivity(ctx, a.ID, u8.ID, request_models.ActivityPatch{Title: strPtr("Hijack")})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	updated, err := f.svc.UpdateActivity(ctx, a.ID, u7.ID, request_models.ActivityPatch{Title: strPtr("Braai at Camps Bay")})
	require.NoError(t, err)
	assert.Equal(t, "Braai at Camps Bay", updated.Title)
	assert.Equal(t, "u7", updated.LastEditedBy)
	require.NotNil(t, updated.LastEditedAt)

	updated, err = f.svc.UpdateActivity(ctx, a.ID, manager.ID, request_models.ActivityPatch{
		Day:      intPtr(2),
		TimeSlot: strPtr("Evening"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Day)
	assert.Equal(t, db_models.TimeSlotEvening, updated.TimeSlot)
	assert.Equal(t, "Boss", updated.LastEditedBy)
	assert.Equal(t, "Braai at Camps Bay", updated.Title)
}

func TestItineraryService_UpdateActivity_Validation(t *testing.T) {
	f := newItineraryFixture(t)
	ctx := context.Background()
	manager := seedProfile(t, f.db, "Boss", true)
	a := seedActivity(t, f.db, db_models.Activity{Title: "Hike"})

	tests := []struct {
		name  string
		patch request_models.ActivityPatch
		want  error
	}{
		{"empty title", request_models.ActivityPatch{Title: strPtr(" ")}, utils.ErrInvalidInput},
		{"day after trip", request_models.ActivityPatch{Day: intPtr(10)}, utils.ErrInvalidDay},
		{"day zero", request_models.ActivityPatch{Day: intPtr(0)}, utils.ErrInvalidDay},
		{"bad slot", request_models.ActivityPatch{TimeSlot: strPtr("Midnight")}, utils.ErrInvalidTimeSlot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.UpdateActivity(ctx, a.ID, manager.ID, tt.patch)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := f.svc.UpdateActivity(ctx, uuid.New(), manager.ID, request_models.ActivityPatch{})
	assert.ErrorIs(t, err, utils.ErrActivityNotFound)
}

func TestItineraryService_SuggestActivity(t *testing.T) {
	f := newItineraryFixture(t)
	ctx := context.Background()
	creator := seedProfile(t, f.db, "u7", false)

	a, err := f.svc.SuggestActivity(ctx, request_models.SuggestActivityRequest{
		Day: 2, TimeSlot: "Afternoon", Title: " Shark cage diving ", CreatorProfileID: &creator.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.ActivitySourceUser, a.Source)
	assert.Equal(t, "Shark cage diving", a.Title)
	assert.Equal(t, []string{TopicItinerary}, f.notifier.Topics())

	ghost := uuid.New()
	_, err = f.svc.SuggestActivity(ctx, request_models.SuggestActivityRequest{
		Day: 2, TimeSlot: "Afternoon", Title: "x", CreatorProfileID: &ghost,
	})
	assert.ErrorIs(t, err, utils.ErrProfileNotFound)

	_, err = f.svc.SuggestActivity(ctx, request_models.SuggestActivityRequest{Day: 12, TimeSlot: "Morning", Title: "x"})
	assert.ErrorIs(t, err, utils.ErrInvalidDay)

	_, err = f.svc.SuggestActivity(ctx, request_models.SuggestActivityRequest{Day: 1, TimeSlot: "morning", Title: "x"})
	assert.ErrorIs(t, err, utils.ErrInvalidTimeSlot)
}

func TestItineraryService_AddComment(t *testing.T) {
	f := newItineraryFixture(t)
	ctx := context.Background()
	a := seedActivity(t, f.db, db_models.Activity{Title: "A"})

	_, err := f.svc.AddComment(ctx, a.ID, "Sam", "first")
	require.NoError(t, err)
	_, err = f.svc.AddComment(ctx, a.ID, "Lee", "second")
	require.NoError(t, err)

	details, err := f.svc.ActivityDetails(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, details.Comments, 2)
	assert.Equal(t, "second", details.Comments[0].Text)

	_, err = f.svc.AddComment(ctx, uuid.New(), "Sam", "lost")
	assert.ErrorIs(t, err, utils.ErrActivityNotFound)

	_, err = f.svc.AddComment(ctx, a.ID, "", "anon")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestItineraryService_RegenerateItinerary(t *testing.T) {
	f := newItineraryFixture(t)
	ctx := context.Background()
	old := seedActivity(t, f.db, db_models.Activity{Title: "Old"})
	seedVotes(t, f.db, old, 1, 1)

	n, err := f.svc.RegenerateItinerary(ctx, []request_models.GeneratedActivity{
		{Day: 1, TimeSlot: "evening", Title: "Long Street"},
		{Day: 1, TimeSlot: "Morning", Title: "Table Mountain"},
		{Day: 1, TimeSlot: "MORNING", Title: "Lion's Head"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	day1, err := f.svc.ActivitiesForDay(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Table Mountain", "Lion's Head", "Long Street"}, titles(day1))
	for _, a := range day1 {
		assert.Equal(t, db_models.ActivitySourceAI, a.Source)
		assert.Zero(t, a.Score)
	}

	var votes int64
	require.NoError(t, f.db.Model(&db_models.Vote{}).Count(&votes).Error)
	assert.Zero(t, votes)
}

func TestItineraryService_RegenerateItinerary_RejectsWholeBatch(t *testing.T) {
	f := newItineraryFixture(t)
	ctx := context.Background()
	seedActivity(t, f.db, db_models.Activity{Title: "Survivor"})

	_, err := f.svc.RegenerateItinerary(ctx, []request_models.GeneratedActivity{
		{Day: 1, TimeSlot: "Morning", Title: "ok"},
		{Day: 40, TimeSlot: "Morning", Title: "too late"},
	})
	assert.ErrorIs(t, err, utils.ErrInvalidDay)

	_, err = f.svc.RegenerateItinerary(ctx, nil)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	all, err := f.svc.AssembleItinerary(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Survivor"}, titles(all[1]))
}

func TestItineraryService_ClearItinerary(t *testing.T) {
	f := newItineraryFixture(t)
	ctx := context.Background()
	a := seedActivity(t, f.db, db_models.Activity{Title: "A"})
	seedActivity(t, f.db, db_models.Activity{Title: "B"})
	seedVotes(t, f.db, a, 1, -1, 1)
	_, err := f.svc.AddComment(ctx, a.ID, "Sam", "hi")
	require.NoError(t, err)

	res, err := f.svc.ClearItinerary(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, res.DeletedActivities)
	assert.EqualValues(t, 3, res.DeletedVotes)
	assert.EqualValues(t, 1, res.DeletedComments)

	all, err := f.svc.AssembleItinerary(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestItineraryService_TodaySchedule(t *testing.T) {
	f := newItineraryFixture(t)
	ctx := context.Background()
	seedActivity(t, f.db, db_models.Activity{Day: 1, Title: "Arrive"})
	seedActivity(t, f.db, db_models.Activity{Day: 3, Title: "Cape Point"})

	sast := time.FixedZone("SAST", 2*60*60)
	tests := []struct {
		name   string
		now    time.Time
		status string
		day    int
		titles []string
	}{
		{"before the trip previews day one", time.Date(2026, 2, 20, 9, 0, 0, 0, sast), utils.TripPhasePre, 1, []string{"Arrive"}},
		{"third day", time.Date(2026, 3, 1, 12, 0, 0, 0, sast), utils.TripPhaseDuring, 3, []string{"Cape Point"}},
		{"after the trip", time.Date(2026, 3, 9, 12, 0, 0, 0, sast), utils.TripPhasePost, 0, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched, err := f.svc.TodaySchedule(ctx, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.status, sched.Trip.Status)
			assert.Equal(t, tt.day, sched.Day)
			assert.Equal(t, tt.titles, titles(sched.Activities))
		})
	}
}

func TestItineraryService_FeaturedEvent(t *testing.T) {
	f := newItineraryFixture(t)
	ctx := context.Background()

	none, err := f.svc.FeaturedEvent(ctx)
	require.NoError(t, err)
	assert.Nil(t, none)

	ev := seedActivity(t, f.db, db_models.Activity{Day: 5, TimeSlot: db_models.TimeSlotEvening, Title: "myx! coming down south"})
	seedVotes(t, f.db, ev, 1, 1, 1)

	got, err := f.svc.FeaturedEvent(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, ev.ID, got.ID)
	assert.Equal(t, 3, got.Score)
}
