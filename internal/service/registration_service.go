package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tutorlane/tutorlane-backend/internal/apperror"
	"github.com/tutorlane/tutorlane-backend/internal/model"
	"github.com/tutorlane/tutorlane-backend/internal/repository"
	"github.com/tutorlane/tutorlane-backend/internal/schedule"
)

// RegistrationService registers students into classes, enforcing the
// duplicate-registration and schedule-conflict invariants.
type RegistrationService struct {
	tx               repository.TxManager
	registrationRepo repository.RegistrationRepository
	log              zerolog.Logger
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(
	tx repository.TxManager,
	registrationRepo repository.RegistrationRepository,
	log zerolog.Logger,
) *RegistrationService {
	return &RegistrationService{
		tx:               tx,
		registrationRepo: registrationRepo,
		log:              log.With().Str("component", "registration_service").Logger(),
	}
}

// Register enrolls a student into a class. The whole check-then-write
// sequence runs in one transaction with the student row locked, so two
// concurrent registrations for the same student serialize: the second
// one sees the first one's writes before its conflict check runs. The
// registration insert and the student's class list update commit
// together or not at all.
func (s *RegistrationService) Register(ctx context.Context, classID, studentID uuid.UUID) (*model.Registration, error) {
	if studentID == uuid.Nil {
		return nil, apperror.Validation("Student ID is required")
	}

	var registration *model.Registration
	err := s.tx.WithTx(ctx, func(ctx context.Context, repos repository.TxRepositories) error {
		class, err := repos.Classes.GetByID(ctx, classID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperror.NotFound("Class not found")
			}
			return apperror.Storage("load class", err)
		}

		student, err := repos.Students.GetByIDForUpdate(ctx, studentID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperror.NotFound("Student not found")
			}
			return apperror.Storage("load student", err)
		}

		exists, err := repos.Registrations.Exists(ctx, classID, studentID)
		if err != nil {
			return apperror.Storage("check existing registration", err)
		}
		if exists {
			return apperror.Validation("Student already registered for this class")
		}

		enrolled, err := repos.Classes.GetByIDs(ctx, student.ClassIDs)
		if err != nil {
			return apperror.Storage("load enrolled classes", err)
		}
		if conflict := schedule.FindConflict(*class, enrolled); conflict != nil {
			return apperror.Validationf("Schedule conflicts with class: %s", conflict.Name)
		}

		registration = &model.Registration{ClassID: classID, StudentID: studentID}
		if err := repos.Registrations.Create(ctx, registration); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return apperror.Validation("Student already registered for this class")
			}
			return apperror.Storage("create registration", err)
		}

		student.ClassIDs = append(student.ClassIDs, class.ID)
		if err := repos.Students.UpdateClassIDs(ctx, student.ID, student.ClassIDs); err != nil {
			return apperror.Storage("update student class list", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("class_id", classID.String()).
		Str("student_id", studentID.String()).
		Msg("Student registered")

	return registration, nil
}

// ListByStudent retrieves a student's registrations. No existence check
// on the student: an unknown id simply yields an empty list.
func (s *RegistrationService) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.Registration, error) {
	regs, err := s.registrationRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, apperror.Storage("list registrations", err)
	}
	if regs == nil {
		regs = []model.Registration{}
	}
	return regs, nil
}
