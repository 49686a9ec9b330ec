package repositories

import (
	"context"

	"boystrip/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AIPaymentRepository interface {
	Create(ctx context.Context, payment *db_models.AIPayment) error
	// List returns newest first, optionally filtered by status.
	List(ctx context.Context, status *db_models.AIPaymentStatus) ([]db_models.AIPayment, error)
	// UpdateStatus reports false when the payment does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.AIPaymentStatus) (bool, error)
	CountByStatus(ctx context.Context, status db_models.AIPaymentStatus) (int64, error)
}

type aiPaymentRepository struct {
	db *gorm.DB
}

func NewAIPaymentRepository(db *gorm.DB) AIPaymentRepository {
	return &aiPaymentRepository{db: db}
}

func (r *aiPaymentRepository) Create(ctx context.Context, payment *db_models.AIPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *aiPaymentRepository) List(ctx context.Context, status *db_models.AIPaymentStatus) ([]db_models.AIPayment, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var payments []db_models.AIPayment
	err := q.Find(&payments).Error
	return payments, err
}

func (r *aiPaymentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.AIPaymentStatus) (bool, error) {
	res := r.db.WithContext(ctx).Model(&db_models.AIPayment{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *aiPaymentRepository) CountByStatus(ctx context.Context, status db_models.AIPaymentStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.AIPayment{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}
