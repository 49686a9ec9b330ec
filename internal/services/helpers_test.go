package services

import (
	"sync"
	"testing"
	"time"

	"boystrip/internal/infra/dbtest"
	"boystrip/internal/models/db_models"
	"boystrip/internal/repositories"
	"boystrip/pkg/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingNotifier struct {
	mu     sync.Mutex
	topics []string
}

func (r *recordingNotifier) Notify(topic string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.topics = append(r.topics, topic)
}

func (r *recordingNotifier) Topics() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.topics...)
}

// testTrip runs 2026-02-27 through 2026-03-07, nine days.
func testTrip() TripSettings {
	loc, _ := time.LoadLocation("Africa/Johannesburg")
	if loc == nil {
		loc = time.UTC
	}
	return TripSettings{
		Calendar: utils.NewTripCalendar(
			time.Date(2026, 2, 27, 0, 0, 0, 0, loc),
			time.Date(2026, 3, 7, 0, 0, 0, 0, loc),
			loc,
		),
		Destination:   "Cape Town",
		FeaturedTitle: "myx! coming down south",
	}
}

type itineraryFixture struct {
	db       *gorm.DB
	svc      ItineraryServiceInterface
	notifier *recordingNotifier
}

func newItineraryFixture(t *testing.T) *itineraryFixture {
	t.Helper()
	db := dbtest.New(t)
	n := &recordingNotifier{}
	svc := NewItineraryService(
		repositories.NewActivityRepository(db),
		repositories.NewVoteRepository(db),
		repositories.NewCommentRepository(db),
		repositories.NewProfileRepository(db),
		testTrip(),
		n,
	)
	return &itineraryFixture{db: db, svc: svc, notifier: n}
}

func seedActivity(t *testing.T, db *gorm.DB, a db_models.Activity) *db_models.Activity {
	t.Helper()
	if a.Source == "" {
		a.Source = db_models.ActivitySourceAI
	}
	if a.Day == 0 {
		a.Day = 1
	}
	if a.TimeSlot == "" {
		a.TimeSlot = db_models.TimeSlotMorning
	}
	require.NoError(t, db.Create(&a).Error)
	return &a
}

func seedProfile(t *testing.T, db *gorm.DB, name string, manager bool) *db_models.Profile {
	t.Helper()
	p := &db_models.Profile{Name: name, IsItineraryManager: manager}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedVotes(t *testing.T, db *gorm.DB, a *db_models.Activity, directions ...int) {
	t.Helper()
	for i, d := range directions {
		v := &db_models.Vote{ActivityID: a.ID, VoterID: "voter-" + string(rune('a'+i)), VoteType: d}
		require.NoError(t, db.Create(v).Error)
	}
}
