package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tutorlane/tutorlane-backend/internal/apperror"
	"github.com/tutorlane/tutorlane-backend/internal/model"
	"github.com/tutorlane/tutorlane-backend/internal/repository"
)

// ParentService handles parent business logic.
type ParentService struct {
	parentRepo repository.ParentRepository
}

// NewParentService creates a new ParentService.
func NewParentService(parentRepo repository.ParentRepository) *ParentService {
	return &ParentService{parentRepo: parentRepo}
}

// Create inserts a new parent. Email is unique across parents.
func (s *ParentService) Create(ctx context.Context, parent *model.Parent) error {
	if parent.Name == "" || parent.Email == "" {
		return apperror.Validation("Name and email are required")
	}

	if err := s.parentRepo.Create(ctx, parent); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return apperror.Validation("Email already in use")
		}
		return apperror.Storage("create parent", err)
	}
	return nil
}

// GetByID retrieves a parent by ID.
func (s *ParentService) GetByID(ctx context.Context, id uuid.UUID) (*model.Parent, error) {
	parent, err := s.parentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Parent not found")
		}
		return nil, apperror.Storage("load parent", err)
	}
	return parent, nil
}

// List retrieves all parents.
func (s *ParentService) List(ctx context.Context) ([]model.Parent, error) {
	parents, err := s.parentRepo.List(ctx)
	if err != nil {
		return nil, apperror.Storage("list parents", err)
	}
	if parents == nil {
		parents = []model.Parent{}
	}
	return parents, nil
}
