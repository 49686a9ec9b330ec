package services

import (
	"context"
	"errors"

	"boystrip/internal/models/db_models"
	"boystrip/internal/models/response_models"
	"boystrip/internal/repositories"
	"boystrip/pkg/logger"
	"boystrip/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccommodationServiceInterface interface {
	Get(ctx context.Context) (*db_models.Accommodation, error)
	Rooms(ctx context.Context) ([]response_models.RoomWithAssignee, error)
	UnassignedProfiles(ctx context.Context) ([]response_models.ProfileSummary, error)
	Stats(ctx context.Context) (*response_models.RoomStats, error)
	AssignRoom(ctx context.Context, roomID, profileID uuid.UUID) error
	UnassignRoom(ctx context.Context, roomID uuid.UUID) error
	Seed(ctx context.Context) (*response_models.SeedResponse, error)
}

type AccommodationService struct {
	accommodationRepo repositories.AccommodationRepository
	profileRepo       repositories.ProfileRepository
	notifier          ChangeNotifier
}

func NewAccommodationService(
	accommodationRepo repositories.AccommodationRepository,
	profileRepo repositories.ProfileRepository,
	notifier ChangeNotifier,
) AccommodationServiceInterface {
	if notifier == nil {
		notifier = NopNotifier
	}
	return &AccommodationService{
		accommodationRepo: accommodationRepo,
		profileRepo:       profileRepo,
		notifier:          notifier,
	}
}

// Get returns nil before the seed has run.
func (s *AccommodationService) Get(ctx context.Context) (*db_models.Accommodation, error) {
	acc, err := s.accommodationRepo.GetAccommodation(ctx)
	if err != nil {
		return nil, dbErr(err)
	}
	return acc, nil
}

func (s *AccommodationService) Rooms(ctx context.Context) ([]response_models.RoomWithAssignee, error) {
	out := []response_models.RoomWithAssignee{}
	acc, err := s.Get(ctx)
	if err != nil || acc == nil {
		return out, err
	}

	rooms, err := s.accommodationRepo.ListRooms(ctx, acc.ID)
	if err != nil {
		return nil, dbErr(err)
	}
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, dbErr(err)
	}
	byID := make(map[uuid.UUID]*db_models.Profile, len(profiles))
	for i := range profiles {
		byID[profiles[i].ID] = &profiles[i]
	}

	for _, room := range rooms {
		item := response_models.RoomWithAssignee{Room: room}
		if room.AssignedProfileID != nil {
			// a dangling reference shows as unassigned
			if p, ok := byID[*room.AssignedProfileID]; ok {
				summary := summarize(p)
				item.AssignedProfile = &summary
			}
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *AccommodationService) UnassignedProfiles(ctx context.Context) ([]response_models.ProfileSummary, error) {
	out := []response_models.ProfileSummary{}
	acc, err := s.Get(ctx)
	if err != nil || acc == nil {
		return out, err
	}

	profiles, err := s.accommodationRepo.ListUnassignedProfiles(ctx, acc.ID)
	if err != nil {
		return nil, dbErr(err)
	}
	for i := range profiles {
		out = append(out, summarize(&profiles[i]))
	}
	return out, nil
}

// Stats is nil before the seed has run.
func (s *AccommodationService) Stats(ctx context.Context) (*response_models.RoomStats, error) {
	acc, err := s.Get(ctx)
	if err != nil || acc == nil {
		return nil, err
	}
	rooms, err := s.accommodationRepo.ListRooms(ctx, acc.ID)
	if err != nil {
		return nil, dbErr(err)
	}

	stats := &response_models.RoomStats{TotalRooms: len(rooms)}
	for _, r := range rooms {
		if r.AssignedProfileID != nil {
			stats.AssignedRooms++
		}
		stats.TotalCapacity += r.Capacity
	}
	stats.AvailableRooms = stats.TotalRooms - stats.AssignedRooms
	return stats, nil
}

// AssignRoom moves the profile into the room, vacating whatever room of the
// same accommodation held it before.
func (s *AccommodationService) AssignRoom(ctx context.Context, roomID, profileID uuid.UUID) error {
	acc, err := s.Get(ctx)
	if err != nil {
		return err
	}
	if acc == nil {
		return utils.ErrAccommodationNotFound
	}

	outcome, err := s.accommodationRepo.Assign(ctx, roomID, profileID)
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return utils.ErrRoomConflict
	case err != nil:
		return dbErr(err)
	case outcome == repositories.AssignRoomMissing:
		return utils.ErrRoomNotFound
	case outcome == repositories.AssignProfileMissing:
		return utils.ErrProfileNotFound
	}

	logger.FromContext(ctx).Info().
		Str("room_id", roomID.String()).
		Str("profile_id", profileID.String()).
		Msg("room assigned")
	s.notifier.Notify(TopicRooms)
	return nil
}

func (s *AccommodationService) UnassignRoom(ctx context.Context, roomID uuid.UUID) error {
	found, err := s.accommodationRepo.Unassign(ctx, roomID)
	if err != nil {
		return dbErr(err)
	}
	if !found {
		return utils.ErrRoomNotFound
	}

	logger.FromContext(ctx).Info().Str("room_id", roomID.String()).Msg("room unassigned")
	s.notifier.Notify(TopicRooms)
	return nil
}

func (s *AccommodationService) Seed(ctx context.Context) (*response_models.SeedResponse, error) {
	villa := seedVilla()
	created, err := s.accommodationRepo.Seed(ctx, villa, seedRooms())
	if err != nil {
		return nil, dbErr(err)
	}
	if !created {
		return &response_models.SeedResponse{Message: "Accommodation already seeded"}, nil
	}

	logger.FromContext(ctx).Info().Str("accommodation_id", villa.ID.String()).Msg("accommodation seeded")
	s.notifier.Notify(TopicRooms)
	return &response_models.SeedResponse{
		Message:         "Accommodation seeded successfully",
		AccommodationID: villa.ID.String(),
	}, nil
}

func summarize(p *db_models.Profile) response_models.ProfileSummary {
	return response_models.ProfileSummary{
		ID:             p.ID,
		Name:           p.Name,
		PhotoStorageID: p.PhotoStorageID,
		PhotoURL:       p.PhotoURL,
	}
}
