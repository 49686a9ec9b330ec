package repositories

import (
	"context"
	"errors"

	"boystrip/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CascadeResult counts what a cascading delete removed.
type CascadeResult struct {
	Activities int64
	Votes      int64
	Comments   int64
}

type ActivityRepository interface {
	Create(ctx context.Context, activity *db_models.Activity) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Activity, error)
	FindByTitle(ctx context.Context, title string) (*db_models.Activity, error)
	List(ctx context.Context) ([]db_models.Activity, error)
	ListByDay(ctx context.Context, day int) ([]db_models.Activity, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*db_models.Activity, error)
	DeleteCascade(ctx context.Context, id uuid.UUID) (*CascadeResult, error)
	ReplaceAll(ctx context.Context, activities []db_models.Activity) (*CascadeResult, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *db_models.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Activity, error) {
	var activity db_models.Activity
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) FindByTitle(ctx context.Context, title string) (*db_models.Activity, error) {
	var activity db_models.Activity
	err := r.db.WithContext(ctx).
		Where("title = ?", title).
		Order("created_at ASC").
		First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

// List returns every activity in insertion order, which the itinerary sort
// uses as its last tiebreak.
func (r *activityRepository) List(ctx context.Context) ([]db_models.Activity, error) {
	var activities []db_models.Activity
	err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&activities).Error
	return activities, err
}

func (r *activityRepository) ListByDay(ctx context.Context, day int) ([]db_models.Activity, error) {
	var activities []db_models.Activity
	err := r.db.WithContext(ctx).
		Where("day = ?", day).
		Order("created_at ASC, id ASC").
		Find(&activities).Error
	return activities, err
}

func (r *activityRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Activity{}).Count(&n).Error
	return n, err
}

// Update applies a column map and returns the fresh row, or nil when the
// activity does not exist.
func (r *activityRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*db_models.Activity, error) {
	var updated *db_models.Activity
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&db_models.Activity{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		var activity db_models.Activity
		if err := tx.Where("id = ?", id).First(&activity).Error; err != nil {
			return err
		}
		updated = &activity
		return nil
	})
	return updated, err
}

// DeleteCascade removes the activity's votes, then its comments, then the
// activity, in one transaction. A missing activity yields (nil, nil).
func (r *activityRepository) DeleteCascade(ctx context.Context, id uuid.UUID) (*CascadeResult, error) {
	var result *CascadeResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&db_models.Activity{}).Where("id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return nil
		}

		votes := tx.Where("activity_id = ?", id).Delete(&db_models.Vote{})
		if votes.Error != nil {
			return votes.Error
		}
		comments := tx.Where("activity_id = ?", id).Delete(&db_models.Comment{})
		if comments.Error != nil {
			return comments.Error
		}
		activity := tx.Where("id = ?", id).Delete(&db_models.Activity{})
		if activity.Error != nil {
			return activity.Error
		}

		result = &CascadeResult{
			Activities: activity.RowsAffected,
			Votes:      votes.RowsAffected,
			Comments:   comments.RowsAffected,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ReplaceAll clears every activity with its votes and comments and inserts
// the given ones, atomically. An empty slice just clears.
func (r *activityRepository) ReplaceAll(ctx context.Context, activities []db_models.Activity) (*CascadeResult, error) {
	result := &CascadeResult{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Session allows the unconditioned deletes
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})

		votes := all.Delete(&db_models.Vote{})
		if votes.Error != nil {
			return votes.Error
		}
		comments := all.Delete(&db_models.Comment{})
		if comments.Error != nil {
			return comments.Error
		}
		acts := all.Delete(&db_models.Activity{})
		if acts.Error != nil {
			return acts.Error
		}
		result.Votes, result.Comments, result.Activities = votes.RowsAffected, comments.RowsAffected, acts.RowsAffected

		if len(activities) == 0 {
			return nil
		}
		return tx.CreateInBatches(&activities, 100).Error
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
