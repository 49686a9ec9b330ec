package repositories

import (
	"context"

	"boystrip/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepository interface {
	// Create fails with gorm.ErrRecordNotFound when the activity is gone.
	Create(ctx context.Context, comment *db_models.Comment) error
	ListByActivity(ctx context.Context, activityID uuid.UUID) ([]db_models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *db_models.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&db_models.Activity{}).Where("id = ?", comment.ActivityID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(comment).Error
	})
}

// ListByActivity returns newest first.
func (r *commentRepository) ListByActivity(ctx context.Context, activityID uuid.UUID) ([]db_models.Comment, error) {
	var comments []db_models.Comment
	err := r.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	return comments, err
}
