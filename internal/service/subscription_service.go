package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tutorlane/tutorlane-backend/internal/apperror"
	"github.com/tutorlane/tutorlane-backend/internal/model"
	"github.com/tutorlane/tutorlane-backend/internal/repository"
)

// SubscriptionService manages session packages and their consumption counter.
type SubscriptionService struct {
	tx               repository.TxManager
	subscriptionRepo repository.SubscriptionRepository
	studentRepo      repository.StudentRepository
	log              zerolog.Logger
}

// NewSubscriptionService creates a new SubscriptionService.
func NewSubscriptionService(
	tx repository.TxManager,
	subscriptionRepo repository.SubscriptionRepository,
	studentRepo repository.StudentRepository,
	log zerolog.Logger,
) *SubscriptionService {
	return &SubscriptionService{
		tx:               tx,
		subscriptionRepo: subscriptionRepo,
		studentRepo:      studentRepo,
		log:              log.With().Str("component", "subscription_service").Logger(),
	}
}

// Create inserts a new subscription for an existing student. The usage
// counter always starts at zero regardless of the request payload.
func (s *SubscriptionService) Create(ctx context.Context, sub *model.Subscription) error {
	if sub.StudentID == uuid.Nil {
		return apperror.Validation("Student ID is required")
	}

	if _, err := s.studentRepo.GetByID(ctx, sub.StudentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("Student not found")
		}
		return apperror.Storage("load student", err)
	}

	sub.UsedSessions = 0
	if err := s.subscriptionRepo.Create(ctx, sub); err != nil {
		return apperror.Storage("create subscription", err)
	}
	return nil
}

// UseSession consumes exactly one session from a subscription. The state
// is re-read under a row lock on every call, so the used counter can
// never pass the total even under concurrent calls. A subscription with
// no defined total has zero usable sessions.
func (s *SubscriptionService) UseSession(ctx context.Context, id, studentID uuid.UUID) (*model.Subscription, error) {
	var updated *model.Subscription
	err := s.tx.WithTx(ctx, func(ctx context.Context, repos repository.TxRepositories) error {
		sub, err := repos.Subscriptions.GetByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperror.NotFound("Subscription not found")
			}
			return apperror.Storage("load subscription", err)
		}

		if sub.StudentID != studentID {
			return apperror.Validation("Invalid student for this subscription")
		}
		if sub.SessionsLeft() == 0 {
			return apperror.Validation("No sessions left")
		}

		updated, err = repos.Subscriptions.IncrementUsed(ctx, id)
		if err != nil {
			return apperror.Storage("increment used sessions", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("subscription_id", id.String()).
		Int("used_sessions", updated.UsedSessions).
		Msg("Session used")

	return updated, nil
}

// GetByID retrieves a subscription.
func (s *SubscriptionService) GetByID(ctx context.Context, id uuid.UUID) (*model.Subscription, error) {
	sub, err := s.subscriptionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Subscription not found")
		}
		return nil, apperror.Storage("load subscription", err)
	}
	return sub, nil
}

// ListByStudent retrieves all subscriptions belonging to a student.
func (s *SubscriptionService) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.Subscription, error) {
	subs, err := s.subscriptionRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, apperror.Storage("list subscriptions", err)
	}
	if subs == nil {
		subs = []model.Subscription{}
	}
	return subs, nil
}
