package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tutorlane/tutorlane-backend/internal/apperror"
	"github.com/tutorlane/tutorlane-backend/internal/model"
	"github.com/tutorlane/tutorlane-backend/internal/repository"
)

// StudentService handles student business logic.
type StudentService struct {
	studentRepo repository.StudentRepository
	parentRepo  repository.ParentRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo repository.StudentRepository, parentRepo repository.ParentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo, parentRepo: parentRepo}
}

// Create inserts a new student after checking the owning parent exists.
func (s *StudentService) Create(ctx context.Context, student *model.Student) error {
	if student.Name == "" || student.ParentID == uuid.Nil {
		return apperror.Validation("Name and parent_id are required")
	}

	if _, err := s.parentRepo.GetByID(ctx, student.ParentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("Parent not found")
		}
		return apperror.Storage("load parent", err)
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return apperror.Storage("create student", err)
	}
	return nil
}

// GetByID retrieves a student by ID.
func (s *StudentService) GetByID(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Student not found")
		}
		return nil, apperror.Storage("load student", err)
	}
	return student, nil
}

// List retrieves all students.
func (s *StudentService) List(ctx context.Context) ([]model.Student, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, apperror.Storage("list students", err)
	}
	if students == nil {
		students = []model.Student{}
	}
	return students, nil
}
