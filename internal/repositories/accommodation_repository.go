package repositories

import (
	"context"
	"errors"

	"boystrip/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignOutcome reports which side of an assignment failed to resolve.
type AssignOutcome int

const (
	Assigned AssignOutcome = iota
	AssignRoomMissing
	AssignProfileMissing
)

type AccommodationRepository interface {
	// GetAccommodation returns the first accommodation, the only one a
	// deployment has.
	GetAccommodation(ctx context.Context) (*db_models.Accommodation, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*db_models.Room, error)
	ListRooms(ctx context.Context, accommodationID uuid.UUID) ([]db_models.Room, error)
	ListUnassignedProfiles(ctx context.Context, accommodationID uuid.UUID) ([]db_models.Profile, error)
	Assign(ctx context.Context, roomID, profileID uuid.UUID) (AssignOutcome, error)
	// Unassign clears the room's assignee. A missing room yields (false, nil).
	Unassign(ctx context.Context, roomID uuid.UUID) (bool, error)
	// Seed inserts the accommodation and its rooms unless one already
	// exists, and reports whether it did.
	Seed(ctx context.Context, accommodation *db_models.Accommodation, rooms []db_models.Room) (bool, error)
}

type accommodationRepository struct {
	db *gorm.DB
}

func NewAccommodationRepository(db *gorm.DB) AccommodationRepository {
	return &accommodationRepository{db: db}
}

func (r *accommodationRepository) GetAccommodation(ctx context.Context) (*db_models.Accommodation, error) {
	var acc db_models.Accommodation
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&acc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &acc, nil
}

func (r *accommodationRepository) GetRoom(ctx context.Context, id uuid.UUID) (*db_models.Room, error) {
	var room db_models.Room
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (r *accommodationRepository) ListRooms(ctx context.Context, accommodationID uuid.UUID) ([]db_models.Room, error) {
	var rooms []db_models.Room
	err := r.db.WithContext(ctx).
		Where("accommodation_id = ?", accommodationID).
		Order("display_order ASC").
		Find(&rooms).Error
	return rooms, err
}

func (r *accommodationRepository) ListUnassignedProfiles(ctx context.Context, accommodationID uuid.UUID) ([]db_models.Profile, error) {
	assigned := r.db.Model(&db_models.Room{}).
		Select("assigned_profile_id").
		Where("accommodation_id = ? AND assigned_profile_id IS NOT NULL", accommodationID)

	var profiles []db_models.Profile
	err := r.db.WithContext(ctx).
		Where("id NOT IN (?)", assigned).
		Order("created_at ASC").
		Find(&profiles).Error
	return profiles, err
}

// Assign clears every room of the target's accommodation that points at the
// profile, then points the target room at it.
func (r *accommodationRepository) Assign(ctx context.Context, roomID, profileID uuid.UUID) (AssignOutcome, error) {
	outcome := Assigned
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room db_models.Room
		if err := tx.Where("id = ?", roomID).First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				outcome = AssignRoomMissing
				return nil
			}
			return err
		}

		var n int64
		if err := tx.Model(&db_models.Profile{}).Where("id = ?", profileID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			outcome = AssignProfileMissing
			return nil
		}

		err := tx.Model(&db_models.Room{}).
			Where("accommodation_id = ? AND assigned_profile_id = ? AND id <> ?", room.AccommodationID, profileID, roomID).
			Update("assigned_profile_id", nil).Error
		if err != nil {
			return err
		}

		return tx.Model(&db_models.Room{}).
			Where("id = ?", roomID).
			Update("assigned_profile_id", profileID).Error
	})
	return outcome, err
}

func (r *accommodationRepository) Unassign(ctx context.Context, roomID uuid.UUID) (bool, error) {
	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&db_models.Room{}).Where("id = ?", roomID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		found = true
		return tx.Model(&db_models.Room{}).
			Where("id = ?", roomID).
			Update("assigned_profile_id", nil).Error
	})
	return found, err
}

func (r *accommodationRepository) Seed(ctx context.Context, accommodation *db_models.Accommodation, rooms []db_models.Room) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&db_models.Accommodation{}).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		if err := tx.Create(accommodation).Error; err != nil {
			return err
		}
		for i := range rooms {
			rooms[i].AccommodationID = accommodation.ID
		}
		if err := tx.Create(&rooms).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}
