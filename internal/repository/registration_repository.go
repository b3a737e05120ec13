package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/tutorlane/tutorlane-backend/internal/model"
)

type registrationRepository struct {
	db Querier
}

// NewRegistrationRepository creates a RegistrationRepository backed by db.
func NewRegistrationRepository(db Querier) RegistrationRepository {
	return &registrationRepository{db: db}
}

// Create inserts a new registration. The unique index on
// (class_id, student_id) backstops the service-level duplicate check.
func (r *registrationRepository) Create(ctx context.Context, reg *model.Registration) error {
	if reg.ID == uuid.Nil {
		reg.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO registrations (id, class_id, student_id) VALUES ($1, $2, $3)`,
		reg.ID, reg.ClassID, reg.StudentID,
	)
	return translateError(err)
}

// Exists reports whether the (class, student) pair is already registered.
func (r *registrationRepository) Exists(ctx context.Context, classID, studentID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM registrations WHERE class_id = $1 AND student_id = $2)`,
		classID, studentID,
	).Scan(&exists)
	if err != nil {
		return false, translateError(err)
	}
	return exists, nil
}

// ListByStudent retrieves all registrations for a student in creation order.
func (r *registrationRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.Registration, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, class_id, student_id FROM registrations
		 WHERE student_id = $1 ORDER BY created_at`, studentID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var regs []model.Registration
	for rows.Next() {
		var reg model.Registration
		if err := rows.Scan(&reg.ID, &reg.ClassID, &reg.StudentID); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}
