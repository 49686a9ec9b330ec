package repositories

import (
	"context"
	"errors"

	"boystrip/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ManagerCheck decides, from the full current profile set, whether the flag
// change may go ahead.
type ManagerCheck func(profiles []db_models.Profile) error

type ProfileRepository interface {
	Create(ctx context.Context, profile *db_models.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Profile, error)
	List(ctx context.Context) ([]db_models.Profile, error)
	Count(ctx context.Context) (int64, error)
	CountManagers(ctx context.Context) (int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*db_models.Profile, error)
	// SetManager re-reads every profile, runs check, and writes the flag in
	// one transaction. A missing profile yields (false, nil).
	SetManager(ctx context.Context, id uuid.UUID, isManager bool, check ManagerCheck) (bool, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *db_models.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// List returns newest first. Creation stamps are unique within a process, the
// id only breaks ties between replicas.
func (r *profileRepository) List(ctx context.Context) ([]db_models.Profile, error) {
	var profiles []db_models.Profile
	err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&profiles).Error
	return profiles, err
}

func (r *profileRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Profile{}).Count(&n).Error
	return n, err
}

func (r *profileRepository) CountManagers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Profile{}).
		Where("is_itinerary_manager = ?", true).
		Count(&n).Error
	return n, err
}

func (r *profileRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*db_models.Profile, error) {
	var updated *db_models.Profile
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&db_models.Profile{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		var profile db_models.Profile
		if err := tx.Where("id = ?", id).First(&profile).Error; err != nil {
			return err
		}
		updated = &profile
		return nil
	})
	return updated, err
}

func (r *profileRepository) SetManager(ctx context.Context, id uuid.UUID, isManager bool, check ManagerCheck) (bool, error) {
	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// row locks serialise concurrent flag changes, so two promotions cannot
		// both pass the cap against the same snapshot
		var profiles []db_models.Profile
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Find(&profiles).Error; err != nil {
			return err
		}
		for _, p := range profiles {
			if p.ID == id {
				found = true
				break
			}
		}
		if !found {
			return nil
		}

		if check != nil {
			if err := check(profiles); err != nil {
				return err
			}
		}

		return tx.Model(&db_models.Profile{}).
			Where("id = ?", id).
			Update("is_itinerary_manager", isManager).Error
	})
	return found, err
}
