package repositories

import (
	"context"
	"errors"
	"time"

	"boystrip/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VoteRepository interface {
	// Toggle applies the three-state ballot rule for (voter, activity) in one
	// transaction. It fails with gorm.ErrRecordNotFound when the activity
	// does not exist.
	Toggle(ctx context.Context, activityID uuid.UUID, voterID string, direction int) (db_models.VoteAction, error)
	GetByVoter(ctx context.Context, activityID uuid.UUID, voterID string) (*db_models.Vote, error)
	ListByActivity(ctx context.Context, activityID uuid.UUID) ([]db_models.Vote, error)
	ListAll(ctx context.Context) ([]db_models.Vote, error)
}

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) Toggle(ctx context.Context, activityID uuid.UUID, voterID string, direction int) (db_models.VoteAction, error) {
	var action db_models.VoteAction
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&db_models.Activity{}).Where("id = ?", activityID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return gorm.ErrRecordNotFound
		}

		var existing db_models.Vote
		err := tx.Where("voter_id = ? AND activity_id = ?", voterID, activityID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			vote := db_models.Vote{ActivityID: activityID, VoterID: voterID, VoteType: direction}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
			action = db_models.VoteCreated
			return nil
		case err != nil:
			return err
		}

		if existing.VoteType == direction {
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			action = db_models.VoteRemoved
			return nil
		}

		// flipping a ballot also refreshes its timestamp
		err = tx.Model(&existing).Updates(map[string]interface{}{
			"vote_type":  direction,
			"created_at": time.Now().UnixMilli(),
		}).Error
		if err != nil {
			return err
		}
		action = db_models.VoteUpdated
		return nil
	})
	return action, err
}

func (r *voteRepository) GetByVoter(ctx context.Context, activityID uuid.UUID, voterID string) (*db_models.Vote, error) {
	var vote db_models.Vote
	err := r.db.WithContext(ctx).
		Where("voter_id = ? AND activity_id = ?", voterID, activityID).
		First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vote, nil
}

func (r *voteRepository) ListByActivity(ctx context.Context, activityID uuid.UUID) ([]db_models.Vote, error) {
	var votes []db_models.Vote
	err := r.db.WithContext(ctx).Where("activity_id = ?", activityID).Find(&votes).Error
	return votes, err
}

// ListAll is the single pass over the votes table behind itinerary assembly.
func (r *voteRepository) ListAll(ctx context.Context) ([]db_models.Vote, error) {
	var votes []db_models.Vote
	err := r.db.WithContext(ctx).Find(&votes).Error
	return votes, err
}
