package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/tutorlane/tutorlane-backend/internal/model"
)

type studentRepository struct {
	db Querier
}

// NewStudentRepository creates a StudentRepository backed by db.
func NewStudentRepository(db Querier) StudentRepository {
	return &studentRepository{db: db}
}

const studentColumns = `id, name, dob, gender, current_grade, parent_id, class_ids`

// Create inserts a new student with an empty enrolled-class list.
func (r *studentRepository) Create(ctx context.Context, s *model.Student) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.ClassIDs == nil {
		s.ClassIDs = []uuid.UUID{}
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO students (id, name, dob, gender, current_grade, parent_id, class_ids)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.Name, s.DOB, s.Gender, s.CurrentGrade, s.ParentID, s.ClassIDs,
	)
	return translateError(err)
}

// GetByID retrieves a student by ID.
func (r *studentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate retrieves a student by ID, locking the row for the
// rest of the enclosing transaction.
func (r *studentRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	return r.get(ctx, id, true)
}

func (r *studentRepository) get(ctx context.Context, id uuid.UUID, forUpdate bool) (*model.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	s := &model.Student{}
	err := r.db.QueryRow(ctx, query, id).
		Scan(&s.ID, &s.Name, &s.DOB, &s.Gender, &s.CurrentGrade, &s.ParentID, &s.ClassIDs)
	if err != nil {
		return nil, translateError(err)
	}
	return s, nil
}

// List retrieves all students.
func (r *studentRepository) List(ctx context.Context) ([]model.Student, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+studentColumns+` FROM students ORDER BY name`)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.DOB, &s.Gender, &s.CurrentGrade, &s.ParentID, &s.ClassIDs); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// UpdateClassIDs replaces a student's enrolled-class list.
func (r *studentRepository) UpdateClassIDs(ctx context.Context, id uuid.UUID, classIDs []uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE students SET class_ids = $1 WHERE id = $2`, classIDs, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
