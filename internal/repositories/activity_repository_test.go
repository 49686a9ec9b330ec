package repositories

import (
	"context"
	"testing"

	"boystrip/internal/infra/dbtest"
	"boystrip/internal/models/db_models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRepository_GetByID_Missing(t *testing.T) {
	repo := NewActivityRepository(dbtest.New(t))

	got, err := repo.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestActivityRepository_ListByDay(t *testing.T) {
	db := dbtest.New(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	seedActivity(t, db, 1, db_models.TimeSlotMorning, "Hike")
	seedActivity(t, db, 2, db_models.TimeSlotEvening, "Dinner")
	seedActivity(t, db, 2, db_models.TimeSlotMorning, "Surf")

	day2, err := repo.ListByDay(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, day2, 2)

	day5, err := repo.ListByDay(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, day5)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestActivityRepository_Update(t *testing.T) {
	db := dbtest.New(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()
	a := seedActivity(t, db, 1, db_models.TimeSlotMorning, "Hike")

	got, err := repo.Update(ctx, a.ID, map[string]interface{}{"title": "Lion's Head hike", "last_edited_by": "Sam"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Lion's Head hike", got.Title)
	assert.Equal(t, "Sam", got.LastEditedBy)

	missing, err := repo.Update(ctx, uuid.New(), map[string]interface{}{"title": "x"})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestActivityRepository_DeleteCascade(t *testing.T) {
	db := dbtest.New(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	target := seedActivity(t, db, 3, db_models.TimeSlotEvening, "Long Street")
	other := seedActivity(t, db, 3, db_models.TimeSlotMorning, "Cape Point")

	for i, voter := range []string{"u1", "u2", "u3", "u4"} {
		dir := db_models.VoteUp
		if i%2 == 1 {
			dir = db_models.VoteDown
		}
		require.NoError(t, db.Create(&db_models.Vote{ActivityID: target.ID, VoterID: voter, VoteType: dir}).Error)
	}
	require.NoError(t, db.Create(&db_models.Vote{ActivityID: other.ID, VoterID: "u1", VoteType: 1}).Error)
	for _, text := range []string{"yes", "no"} {
		require.NoError(t, db.Create(&db_models.Comment{ActivityID: target.ID, UserName: "Sam", Text: text}).Error)
	}

	res, err := repo.DeleteCascade(ctx, target.ID)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.EqualValues(t, 4, res.Votes)
	assert.EqualValues(t, 2, res.Comments)
	assert.EqualValues(t, 1, res.Activities)

	var votes, comments int64
	db.Model(&db_models.Vote{}).Where("activity_id = ?", target.ID).Count(&votes)
	db.Model(&db_models.Comment{}).Where("activity_id = ?", target.ID).Count(&comments)
	assert.Zero(t, votes)
	assert.Zero(t, comments)

	gone, err := repo.GetByID(ctx, target.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	// the other activity's ballot survives
	var otherVotes int64
	db.Model(&db_models.Vote{}).Where("activity_id = ?", other.ID).Count(&otherVotes)
	assert.EqualValues(t, 1, otherVotes)
}

func TestActivityRepository_DeleteCascade_Missing(t *testing.T) {
	res, err := NewActivityRepository(dbtest.New(t)).DeleteCascade(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestActivityRepository_ReplaceAll(t *testing.T) {
	db := dbtest.New(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	old := seedActivity(t, db, 1, db_models.TimeSlotMorning, "Old")
	require.NoError(t, db.Create(&db_models.Vote{ActivityID: old.ID, VoterID: "u1", VoteType: 1}).Error)
	require.NoError(t, db.Create(&db_models.Comment{ActivityID: old.ID, UserName: "Sam", Text: "hm"}).Error)

	res, err := repo.ReplaceAll(ctx, []db_models.Activity{
		{Day: 1, TimeSlot: db_models.TimeSlotMorning, Title: "New A", Source: db_models.ActivitySourceAI},
		{Day: 2, TimeSlot: db_models.TimeSlotEvening, Title: "New B", Source: db_models.ActivitySourceAI},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Activities)
	assert.EqualValues(t, 1, res.Votes)
	assert.EqualValues(t, 1, res.Comments)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	titles := []string{all[0].Title, all[1].Title}
	assert.ElementsMatch(t, []string{"New A", "New B"}, titles)

	var votes int64
	db.Model(&db_models.Vote{}).Count(&votes)
	assert.Zero(t, votes)
}

func TestActivityRepository_FindByTitle(t *testing.T) {
	db := dbtest.New(t)
	repo := NewActivityRepository(db)
	seedActivity(t, db, 4, db_models.TimeSlotEvening, "myx! coming down south")

	got, err := repo.FindByTitle(context.Background(), "myx! coming down south")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 4, got.Day)

	none, err := repo.FindByTitle(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, none)
}
