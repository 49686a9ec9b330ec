package services

import (
	"context"
	"errors"
	"strings"

	"boystrip/internal/models/db_models"
	"boystrip/internal/models/request_models"
	"boystrip/internal/models/response_models"
	"boystrip/internal/repositories"
	"boystrip/pkg/logger"
	"boystrip/pkg/utils"

	"github.com/google/uuid"
)

type ProfileServiceInterface interface {
	List(ctx context.Context) ([]db_models.Profile, error)
	Get(ctx context.Context, id uuid.UUID) (*db_models.Profile, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, req request_models.CreateProfileRequest) (*db_models.Profile, error)
	Update(ctx context.Context, id uuid.UUID, password string, patch request_models.ProfilePatch) (*db_models.Profile, error)
	HasPassword(ctx context.Context, id uuid.UUID) (bool, error)
	VerifyPassword(ctx context.Context, id uuid.UUID, password string) (*response_models.VerifyPasswordResponse, error)
	SetManager(ctx context.Context, id uuid.UUID, isManager bool) error
	CountManagers(ctx context.Context) (int64, error)
	PhotoURL(ctx context.Context, id uuid.UUID) (*string, error)
}

type ProfileService struct {
	profileRepo repositories.ProfileRepository
	photos      PhotoServiceInterface
	notifier    ChangeNotifier
}

func NewProfileService(profileRepo repositories.ProfileRepository, photos PhotoServiceInterface, notifier ChangeNotifier) ProfileServiceInterface {
	if notifier == nil {
		notifier = NopNotifier
	}
	return &ProfileService{profileRepo: profileRepo, photos: photos, notifier: notifier}
}

func (s *ProfileService) List(ctx context.Context) ([]db_models.Profile, error) {
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, dbErr(err)
	}
	return profiles, nil
}

func (s *ProfileService) Get(ctx context.Context, id uuid.UUID) (*db_models.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, dbErr(err)
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}
	return profile, nil
}

func (s *ProfileService) Count(ctx context.Context) (int64, error) {
	n, err := s.profileRepo.Count(ctx)
	if err != nil {
		return 0, dbErr(err)
	}
	return n, nil
}

func (s *ProfileService) Create(ctx context.Context, req request_models.CreateProfileRequest) (*db_models.Profile, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalid(utils.ErrInvalidInput, "name is required")
	}

	profile := &db_models.Profile{
		Name:          name,
		Location:      req.Location,
		Family:        req.Family,
		Background:    req.Background,
		Passions:      req.Passions,
		ShortTermGoal: req.ShortTermGoal,
		LongTermGoal:  req.LongTermGoal,
		FunFact1:      req.FunFact1,
		FunFact2:      req.FunFact2,
		FunFact3:      req.FunFact3,
		FavoriteQuote: req.FavoriteQuote,
		PhotoURL:      req.PhotoURL,
	}

	if strings.TrimSpace(req.Password) != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, invalid(utils.ErrInvalidInput, "password: %v", err)
		}
		profile.PasswordHash = hash
	}

	if req.PhotoStorageID != "" {
		if err := s.photos.ClaimUpload(req.PhotoStorageID); err != nil {
			return nil, err
		}
		profile.PhotoStorageID = req.PhotoStorageID
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, dbErr(err)
	}

	logger.FromContext(ctx).Info().
		Str("profile_id", profile.ID.String()).
		Bool("password", profile.HasPassword()).
		Msg("profile created")
	s.notifier.Notify(TopicProfiles)
	return profile, nil
}

// Update is gated by the profile's password when it has one.
func (s *ProfileService) Update(ctx context.Context, id uuid.UUID, password string, patch request_models.ProfilePatch) (*db_models.Profile, error) {
	profile, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkProfilePassword(profile, password); err != nil {
		return nil, err
	}

	updates, err := profileUpdates(patch)
	if err != nil {
		return nil, err
	}
	if patch.PhotoStorageID != nil && *patch.PhotoStorageID != "" && *patch.PhotoStorageID != profile.PhotoStorageID {
		if err := s.photos.ClaimUpload(*patch.PhotoStorageID); err != nil {
			return nil, err
		}
	}
	if len(updates) == 0 {
		return profile, nil
	}

	updated, err := s.profileRepo.Update(ctx, id, updates)
	if err != nil {
		return nil, dbErr(err)
	}
	if updated == nil {
		return nil, utils.ErrProfileNotFound
	}

	logger.FromContext(ctx).Info().Str("profile_id", id.String()).Int("fields", len(updates)).Msg("profile updated")
	s.notifier.Notify(TopicProfiles)
	return updated, nil
}

func (s *ProfileService) HasPassword(ctx context.Context, id uuid.UUID) (bool, error) {
	profile, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return profile.HasPassword(), nil
}

func (s *ProfileService) VerifyPassword(ctx context.Context, id uuid.UUID, password string) (*response_models.VerifyPasswordResponse, error) {
	profile, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !profile.HasPassword() {
		return &response_models.VerifyPasswordResponse{Success: true, HasPassword: false}, nil
	}
	if err := checkProfilePassword(profile, password); err != nil {
		return nil, err
	}
	return &response_models.VerifyPasswordResponse{Success: true, HasPassword: true}, nil
}

func (s *ProfileService) SetManager(ctx context.Context, id uuid.UUID, isManager bool) error {
	found, err := s.profileRepo.SetManager(ctx, id, isManager, func(profiles []db_models.Profile) error {
		return CheckManagerCap(profiles, id, isManager)
	})
	switch {
	case errors.Is(err, utils.ErrManagerCapReached):
		return err
	case err != nil:
		return dbErr(err)
	case !found:
		return utils.ErrProfileNotFound
	}

	logger.FromContext(ctx).Info().Str("profile_id", id.String()).Bool("manager", isManager).Msg("manager flag set")
	s.notifier.Notify(TopicProfiles)
	return nil
}

func (s *ProfileService) CountManagers(ctx context.Context) (int64, error) {
	n, err := s.profileRepo.CountManagers(ctx)
	if err != nil {
		return 0, dbErr(err)
	}
	return n, nil
}

// PhotoURL prefers an uploaded photo over an external link. A profile with
// neither yields nil.
func (s *ProfileService) PhotoURL(ctx context.Context, id uuid.UUID) (*string, error) {
	profile, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile.PhotoStorageID != "" {
		url, err := s.photos.PhotoURL(ctx, profile.PhotoStorageID)
		if err != nil {
			return nil, err
		}
		return &url, nil
	}
	if profile.PhotoURL != "" {
		url := profile.PhotoURL
		return &url, nil
	}
	return nil, nil
}

func checkProfilePassword(profile *db_models.Profile, password string) error {
	if !profile.HasPassword() {
		return nil
	}
	if password == "" {
		return utils.ErrPasswordRequired
	}
	ok, err := utils.PasswordMatches(profile.PasswordHash, password)
	if err != nil {
		return err
	}
	if !ok {
		return utils.ErrIncorrectPassword
	}
	return nil
}

func profileUpdates(p request_models.ProfilePatch) (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return nil, invalid(utils.ErrInvalidInput, "name cannot be empty")
		}
		updates["name"] = name
	}
	set := func(col string, v *string) {
		if v != nil {
			updates[col] = *v
		}
	}
	set("location", p.Location)
	set("family", p.Family)
	set("background", p.Background)
	set("passions", p.Passions)
	set("short_term_goal", p.ShortTermGoal)
	set("long_term_goal", p.LongTermGoal)
	set("fun_fact1", p.FunFact1)
	set("fun_fact2", p.FunFact2)
	set("fun_fact3", p.FunFact3)
	set("favorite_quote", p.FavoriteQuote)
	set("photo_url", p.PhotoURL)
	set("photo_storage_id", p.PhotoStorageID)
	return updates, nil
}
