package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"boystrip/internal/models/db_models"
	"boystrip/internal/models/request_models"
	"boystrip/internal/models/response_models"
	"boystrip/internal/repositories"
	"boystrip/pkg/logger"
	"boystrip/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TripSettings is the fixed shape of the trip the itinerary belongs to.
type TripSettings struct {
	Calendar      utils.TripCalendar
	Destination   string
	FeaturedTitle string
}

type ItineraryServiceInterface interface {
	Score(ctx context.Context, activityID uuid.UUID) (response_models.VoteTally, error)
	CastVote(ctx context.Context, activityID uuid.UUID, voterID string, direction int) (db_models.VoteAction, error)
	UserVote(ctx context.Context, activityID uuid.UUID, voterID string) (*int, error)

	AssembleItinerary(ctx context.Context) (response_models.Itinerary, error)
	ActivitiesForDay(ctx context.Context, day int) ([]response_models.ActivityWithScore, error)
	ActivityDetails(ctx context.Context, activityID uuid.UUID) (*response_models.ActivityDetails, error)
	TodaySchedule(ctx context.Context, now time.Time) (*response_models.TodaySchedule, error)
	FeaturedEvent(ctx context.Context) (*response_models.ActivityWithScore, error)

	SuggestActivity(ctx context.Context, req request_models.SuggestActivityRequest) (*db_models.Activity, error)
	UpdateActivity(ctx context.Context, activityID, editorID uuid.UUID, patch request_models.ActivityPatch) (*db_models.Activity, error)
	DeleteActivity(ctx context.Context, activityID, actorID uuid.UUID) (*response_models.DeleteActivityResponse, error)
	AddComment(ctx context.Context, activityID uuid.UUID, userName, text string) (*db_models.Comment, error)

	ClearItinerary(ctx context.Context) (*response_models.ClearItineraryResponse, error)
	RegenerateItinerary(ctx context.Context, generated []request_models.GeneratedActivity) (int, error)
}

type ItineraryService struct {
	activityRepo repositories.ActivityRepository
	voteRepo     repositories.VoteRepository
	commentRepo  repositories.CommentRepository
	profileRepo  repositories.ProfileRepository
	trip         TripSettings
	notifier     ChangeNotifier
	ballots      keyedMutex
}

func NewItineraryService(
	activityRepo repositories.ActivityRepository,
	voteRepo repositories.VoteRepository,
	commentRepo repositories.CommentRepository,
	profileRepo repositories.ProfileRepository,
	trip TripSettings,
	notifier ChangeNotifier,
) ItineraryServiceInterface {
	if notifier == nil {
		notifier = NopNotifier
	}
	return &ItineraryService{
		activityRepo: activityRepo,
		voteRepo:     voteRepo,
		commentRepo:  commentRepo,
		profileRepo:  profileRepo,
		trip:         trip,
		notifier:     notifier,
	}
}

// Score of a missing activity is the zero tally.
func (s *ItineraryService) Score(ctx context.Context, activityID uuid.UUID) (response_models.VoteTally, error) {
	votes, err := s.voteRepo.ListByActivity(ctx, activityID)
	if err != nil {
		return response_models.VoteTally{}, dbErr(err)
	}
	return tallyOne(votes), nil
}

func (s *ItineraryService) CastVote(ctx context.Context, activityID uuid.UUID, voterID string, direction int) (db_models.VoteAction, error) {
	voterID = strings.TrimSpace(voterID)
	if voterID == "" {
		return "", invalid(utils.ErrInvalidInput, "voterId is required")
	}
	if direction != db_models.VoteUp && direction != db_models.VoteDown {
		return "", invalid(utils.ErrInvalidVoteType, "got %d", direction)
	}

	unlock := s.ballots.Lock(voterID + "|" + activityID.String())
	defer unlock()

	action, err := s.voteRepo.Toggle(ctx, activityID, voterID, direction)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// another replica inserted the same ballot first; re-read and toggle
		action, err = s.voteRepo.Toggle(ctx, activityID, voterID, direction)
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return "", utils.ErrActivityNotFound
	case err != nil:
		return "", dbErr(err)
	}

	logger.FromContext(ctx).Info().
		Str("activity_id", activityID.String()).
		Int("direction", direction).
		Str("action", string(action)).
		Msg("vote cast")
	s.notifier.Notify(TopicItinerary)
	return action, nil
}

func (s *ItineraryService) UserVote(ctx context.Context, activityID uuid.UUID, voterID string) (*int, error) {
	if strings.TrimSpace(voterID) == "" {
		return nil, nil
	}
	vote, err := s.voteRepo.GetByVoter(ctx, activityID, voterID)
	if err != nil {
		return nil, dbErr(err)
	}
	if vote == nil {
		return nil, nil
	}
	direction := vote.VoteType
	return &direction, nil
}

func (s *ItineraryService) AssembleItinerary(ctx context.Context) (response_models.Itinerary, error) {
	activities, err := s.activityRepo.List(ctx)
	if err != nil {
		return nil, dbErr(err)
	}
	votes, err := s.voteRepo.ListAll(ctx)
	if err != nil {
		return nil, dbErr(err)
	}
	return AssembleItinerary(activities, votes), nil
}

func (s *ItineraryService) ActivitiesForDay(ctx context.Context, day int) ([]response_models.ActivityWithScore, error) {
	activities, err := s.activityRepo.ListByDay(ctx, day)
	if err != nil {
		return nil, dbErr(err)
	}
	if len(activities) == 0 {
		return []response_models.ActivityWithScore{}, nil
	}
	votes, err := s.voteRepo.ListAll(ctx)
	if err != nil {
		return nil, dbErr(err)
	}
	items := withScores(activities, TallyVotes(votes))
	SortSchedule(items)
	return items, nil
}

func (s *ItineraryService) ActivityDetails(ctx context.Context, activityID uuid.UUID) (*response_models.ActivityDetails, error) {
	activity, err := s.getActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}
	votes, err := s.voteRepo.ListByActivity(ctx, activityID)
	if err != nil {
		return nil, dbErr(err)
	}
	comments, err := s.commentRepo.ListByActivity(ctx, activityID)
	if err != nil {
		return nil, dbErr(err)
	}
	return &response_models.ActivityDetails{
		ActivityWithScore: response_models.ActivityWithScore{Activity: *activity, VoteTally: tallyOne(votes)},
		Comments:          comments,
	}, nil
}

func (s *ItineraryService) TodaySchedule(ctx context.Context, now time.Time) (*response_models.TodaySchedule, error) {
	out := &response_models.TodaySchedule{
		Trip:       s.trip.Calendar.Status(now),
		Day:        s.trip.Calendar.ScheduleDay(now),
		Activities: []response_models.ActivityWithScore{},
	}
	if out.Day == 0 {
		return out, nil
	}
	items, err := s.ActivitiesForDay(ctx, out.Day)
	if err != nil {
		return nil, err
	}
	out.Activities = items
	return out, nil
}

// FeaturedEvent returns nil when no activity carries the featured title.
func (s *ItineraryService) FeaturedEvent(ctx context.Context) (*response_models.ActivityWithScore, error) {
	if s.trip.FeaturedTitle == "" {
		return nil, nil
	}
	activity, err := s.activityRepo.FindByTitle(ctx, s.trip.FeaturedTitle)
	if err != nil {
		return nil, dbErr(err)
	}
	if activity == nil {
		return nil, nil
	}
	tally, err := s.Score(ctx, activity.ID)
	if err != nil {
		return nil, err
	}
	return &response_models.ActivityWithScore{Activity: *activity, VoteTally: tally}, nil
}

func (s *ItineraryService) SuggestActivity(ctx context.Context, req request_models.SuggestActivityRequest) (*db_models.Activity, error) {
	slot, err := s.validateSlot(req.Day, req.TimeSlot)
	if err != nil {
		return nil, err
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, invalid(utils.ErrInvalidInput, "title is required")
	}

	if req.CreatorProfileID != nil {
		if _, err := s.getProfile(ctx, *req.CreatorProfileID); err != nil {
			return nil, err
		}
	}

	activity := &db_models.Activity{
		Day:              req.Day,
		TimeSlot:         slot,
		Title:            title,
		Description:      req.Description,
		Location:         req.Location,
		Cost:             req.Cost,
		Source:           db_models.ActivitySourceUser,
		ImageURL:         req.ImageURL,
		ExternalLink:     req.ExternalLink,
		CreatorProfileID: req.CreatorProfileID,
	}
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, dbErr(err)
	}

	logger.FromContext(ctx).Info().Str("activity_id", activity.ID.String()).Int("day", activity.Day).Msg("activity suggested")
	s.notifier.Notify(TopicItinerary)
	return activity, nil
}

func (s *ItineraryService) UpdateActivity(ctx context.Context, activityID, editorID uuid.UUID, patch request_models.ActivityPatch) (*db_models.Activity, error) {
	activity, err := s.getActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}
	editor, err := s.resolveActor(ctx, editorID)
	if err != nil {
		return nil, err
	}
	if err := CanEditActivity(editor, activity); err != nil {
		return nil, err
	}

	updates, err := s.activityUpdates(activity, patch)
	if err != nil {
		return nil, err
	}
	updates["last_edited_by"] = editor.Name
	updates["last_edited_at"] = utils.NowUnixMillis()

	updated, err := s.activityRepo.Update(ctx, activityID, updates)
	if err != nil {
		return nil, dbErr(err)
	}
	if updated == nil {
		// deleted between the read and the write
		return nil, utils.ErrActivityNotFound
	}

	logger.FromContext(ctx).Info().
		Str("activity_id", activityID.String()).
		Str("editor_id", editorID.String()).
		Int("fields", len(updates)-2).
		Msg("activity edited")
	s.notifier.Notify(TopicItinerary)
	return updated, nil
}

func (s *ItineraryService) DeleteActivity(ctx context.Context, activityID, actorID uuid.UUID) (*response_models.DeleteActivityResponse, error) {
	activity, err := s.getActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}
	actor, err := s.resolveActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if err := CanDeleteActivity(actor, activity); err != nil {
		return nil, err
	}

	result, err := s.activityRepo.DeleteCascade(ctx, activityID)
	if err != nil {
		return nil, dbErr(err)
	}
	if result == nil {
		return nil, utils.ErrActivityNotFound
	}

	logger.FromContext(ctx).Info().
		Str("activity_id", activityID.String()).
		Int64("votes", result.Votes).
		Int64("comments", result.Comments).
		Msg("activity deleted")
	s.notifier.Notify(TopicItinerary)
	return &response_models.DeleteActivityResponse{
		Success:              true,
		DeletedActivityID:    activityID,
		DeletedVotesCount:    result.Votes,
		DeletedCommentsCount: result.Comments,
	}, nil
}

func (s *ItineraryService) AddComment(ctx context.Context, activityID uuid.UUID, userName, text string) (*db_models.Comment, error) {
	userName, text = strings.TrimSpace(userName), strings.TrimSpace(text)
	if userName == "" || text == "" {
		return nil, invalid(utils.ErrInvalidInput, "userName and text are required")
	}

	comment := &db_models.Comment{ActivityID: activityID, UserName: userName, Text: text}
	err := s.commentRepo.Create(ctx, comment)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, utils.ErrActivityNotFound
	case err != nil:
		return nil, dbErr(err)
	}

	s.notifier.Notify(TopicItinerary)
	return comment, nil
}

func (s *ItineraryService) ClearItinerary(ctx context.Context) (*response_models.ClearItineraryResponse, error) {
	result, err := s.activityRepo.ReplaceAll(ctx, nil)
	if err != nil {
		return nil, dbErr(err)
	}

	logger.FromContext(ctx).Info().
		Int64("activities", result.Activities).
		Int64("votes", result.Votes).
		Int64("comments", result.Comments).
		Msg("itinerary cleared")
	s.notifier.Notify(TopicItinerary)
	return &response_models.ClearItineraryResponse{
		DeletedActivities: result.Activities,
		DeletedVotes:      result.Votes,
		DeletedComments:   result.Comments,
	}, nil
}

// RegenerateItinerary swaps the whole itinerary for generated entries. The
// batch is validated up front and rejected as a whole, so a bad model answer
// never leaves a half-replaced itinerary behind.
func (s *ItineraryService) RegenerateItinerary(ctx context.Context, generated []request_models.GeneratedActivity) (int, error) {
	if len(generated) == 0 {
		return 0, invalid(utils.ErrInvalidInput, "generated itinerary is empty")
	}

	base := utils.NowUnixMillis()
	activities := make([]db_models.Activity, 0, len(generated))
	for i, g := range generated {
		slot, err := s.validateSlot(g.Day, normalizeSlot(g.TimeSlot))
		if err != nil {
			return 0, invalid(err, "entry %d", i)
		}
		title := strings.TrimSpace(g.Title)
		if title == "" {
			return 0, invalid(utils.ErrInvalidInput, "entry %d has no title", i)
		}

		a := db_models.Activity{
			Day:          g.Day,
			TimeSlot:     slot,
			Title:        title,
			Description:  g.Description,
			Location:     g.Location,
			Cost:         g.Cost,
			Source:       db_models.ActivitySourceAI,
			ImageURL:     g.ImageURL,
			ExternalLink: g.ExternalLink,
		}
		// keep the generator's order as the tiebreak
		a.CreatedAt = base + int64(i)
		activities = append(activities, a)
	}

	result, err := s.activityRepo.ReplaceAll(ctx, activities)
	if err != nil {
		return 0, dbErr(err)
	}

	logger.FromContext(ctx).Info().
		Int("inserted", len(activities)).
		Int64("replaced", result.Activities).
		Msg("itinerary regenerated")
	s.notifier.Notify(TopicItinerary)
	return len(activities), nil
}

func (s *ItineraryService) getActivity(ctx context.Context, id uuid.UUID) (*db_models.Activity, error) {
	activity, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, dbErr(err)
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}
	return activity, nil
}

func (s *ItineraryService) getProfile(ctx context.Context, id uuid.UUID) (*db_models.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, dbErr(err)
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}
	return profile, nil
}

// resolveActor maps uuid.Nil to the anonymous actor (nil) and any other id to
// its profile.
func (s *ItineraryService) resolveActor(ctx context.Context, id uuid.UUID) (*db_models.Profile, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	return s.getProfile(ctx, id)
}

func (s *ItineraryService) validateSlot(day int, slot string) (db_models.TimeSlot, error) {
	if !s.trip.Calendar.ValidDay(day) {
		return "", invalid(utils.ErrInvalidDay, "day %d is outside 1..%d", day, s.trip.Calendar.TotalDays())
	}
	ts := db_models.TimeSlot(slot)
	if !ts.Valid() {
		return "", invalid(utils.ErrInvalidTimeSlot, "%q", slot)
	}
	return ts, nil
}

func (s *ItineraryService) activityUpdates(current *db_models.Activity, patch request_models.ActivityPatch) (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, invalid(utils.ErrInvalidInput, "title cannot be empty")
		}
		updates["title"] = title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Location != nil {
		updates["location"] = *patch.Location
	}
	if patch.Cost != nil {
		updates["cost"] = *patch.Cost
	}
	if patch.ImageURL != nil {
		updates["image_url"] = *patch.ImageURL
	}
	if patch.ExternalLink != nil {
		updates["external_link"] = *patch.ExternalLink
	}
	if patch.Day != nil || patch.TimeSlot != nil {
		day, slot := current.Day, string(current.TimeSlot)
		if patch.Day != nil {
			day = *patch.Day
		}
		if patch.TimeSlot != nil {
			slot = *patch.TimeSlot
		}
		ts, err := s.validateSlot(day, slot)
		if err != nil {
			return nil, err
		}
		updates["day"] = day
		updates["time_slot"] = ts
	}
	return updates, nil
}

// normalizeSlot accepts "morning", " EVENING " and friends from the model.
func normalizeSlot(slot string) string {
	slot = strings.ToLower(strings.TrimSpace(slot))
	if slot == "" {
		return slot
	}
	return strings.ToUpper(slot[:1]) + slot[1:]
}
