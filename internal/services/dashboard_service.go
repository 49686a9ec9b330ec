package services

import (
	"context"
	"time"

	"boystrip/internal/models/response_models"
	"boystrip/internal/repositories"
)

type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context, now time.Time) (*response_models.Dashboard, error)
}

type DashboardService struct {
	profileRepo   repositories.ProfileRepository
	activityRepo  repositories.ActivityRepository
	payments      AIPaymentServiceInterface
	accommodation AccommodationServiceInterface
	trip          TripSettings
}

func NewDashboardService(
	profileRepo repositories.ProfileRepository,
	activityRepo repositories.ActivityRepository,
	payments AIPaymentServiceInterface,
	accommodation AccommodationServiceInterface,
	trip TripSettings,
) DashboardServiceInterface {
	return &DashboardService{
		profileRepo:   profileRepo,
		activityRepo:  activityRepo,
		payments:      payments,
		accommodation: accommodation,
		trip:          trip,
	}
}

func (s *DashboardService) GetDashboard(ctx context.Context, now time.Time) (*response_models.Dashboard, error) {
	out := &response_models.Dashboard{
		Destination: s.trip.Destination,
		Trip:        s.trip.Calendar.Status(now),
		TotalDays:   s.trip.Calendar.TotalDays(),
	}

	var err error
	if out.ProfileCount, err = s.profileRepo.Count(ctx); err != nil {
		return nil, dbErr(err)
	}
	if out.ManagerCount, err = s.profileRepo.CountManagers(ctx); err != nil {
		return nil, dbErr(err)
	}
	if out.ActivityCount, err = s.activityRepo.Count(ctx); err != nil {
		return nil, dbErr(err)
	}
	if out.PendingAIUsage, err = s.payments.CountPending(ctx); err != nil {
		return nil, err
	}
	if out.Rooms, err = s.accommodation.Stats(ctx); err != nil {
		return nil, err
	}
	return out, nil
}
