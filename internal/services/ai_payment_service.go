package services

import (
	"context"
	"strings"

	"boystrip/internal/models/db_models"
	"boystrip/internal/models/request_models"
	"boystrip/internal/repositories"
	"boystrip/pkg/logger"
	"boystrip/pkg/utils"

	"github.com/google/uuid"
)

type AIPaymentServiceInterface interface {
	RecordPayment(ctx context.Context, req request_models.RecordPaymentRequest) (*db_models.AIPayment, error)
	// ListPayments filters by status unless it is empty.
	ListPayments(ctx context.Context, status string) ([]db_models.AIPayment, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) error
	CountPending(ctx context.Context) (int64, error)
}

type AIPaymentService struct {
	paymentRepo repositories.AIPaymentRepository
	notifier    ChangeNotifier
}

func NewAIPaymentService(paymentRepo repositories.AIPaymentRepository, notifier ChangeNotifier) AIPaymentServiceInterface {
	if notifier == nil {
		notifier = NopNotifier
	}
	return &AIPaymentService{paymentRepo: paymentRepo, notifier: notifier}
}

func (s *AIPaymentService) RecordPayment(ctx context.Context, req request_models.RecordPaymentRequest) (*db_models.AIPayment, error) {
	userName := strings.TrimSpace(req.UserName)
	if userName == "" {
		return nil, invalid(utils.ErrInvalidInput, "userName is required")
	}
	if req.Amount <= 0 {
		return nil, invalid(utils.ErrInvalidInput, "amount must be positive")
	}

	payment := &db_models.AIPayment{
		ProfileID: req.ProfileID,
		UserName:  userName,
		Email:     strings.TrimSpace(req.Email),
		Amount:    req.Amount,
		FieldUsed: req.FieldUsed,
		Status:    db_models.AIPaymentPending,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, dbErr(err)
	}

	logger.FromContext(ctx).Info().
		Str("payment_id", payment.ID.String()).
		Float64("amount", payment.Amount).
		Str("field", payment.FieldUsed).
		Msg("ai payment recorded")
	s.notifier.Notify(TopicPayments)
	return payment, nil
}

func (s *AIPaymentService) ListPayments(ctx context.Context, status string) ([]db_models.AIPayment, error) {
	var filter *db_models.AIPaymentStatus
	if status != "" {
		st := db_models.AIPaymentStatus(status)
		if !st.Valid() {
			return nil, invalid(utils.ErrInvalidPaymentStatus, "%q", status)
		}
		filter = &st
	}

	payments, err := s.paymentRepo.List(ctx, filter)
	if err != nil {
		return nil, dbErr(err)
	}
	return payments, nil
}

func (s *AIPaymentService) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) error {
	st := db_models.AIPaymentStatus(status)
	if !st.Valid() {
		return invalid(utils.ErrInvalidPaymentStatus, "%q", status)
	}

	found, err := s.paymentRepo.UpdateStatus(ctx, id, st)
	if err != nil {
		return dbErr(err)
	}
	if !found {
		return utils.ErrPaymentNotFound
	}

	logger.FromContext(ctx).Info().Str("payment_id", id.String()).Str("status", status).Msg("ai payment status updated")
	s.notifier.Notify(TopicPayments)
	return nil
}

func (s *AIPaymentService) CountPending(ctx context.Context) (int64, error) {
	n, err := s.paymentRepo.CountByStatus(ctx, db_models.AIPaymentPending)
	if err != nil {
		return 0, dbErr(err)
	}
	return n, nil
}
