package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/tutorlane/tutorlane-backend/internal/model"
)

type classRepository struct {
	db Querier
}

// NewClassRepository creates a ClassRepository backed by db.
func NewClassRepository(db Querier) ClassRepository {
	return &classRepository{db: db}
}

const classColumns = `id, name, subject, day_of_week, time_start, time_end, teacher_name, max_students`

// Create inserts a new class.
func (r *classRepository) Create(ctx context.Context, c *model.Class) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO classes (id, name, subject, day_of_week, time_start, time_end, teacher_name, max_students)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.Name, c.Subject, c.DayOfWeek, c.TimeStart, c.TimeEnd, c.TeacherName, c.MaxStudents,
	)
	return translateError(err)
}

// GetByID retrieves a class by its ID.
func (r *classRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Class, error) {
	c := &model.Class{}
	err := r.db.QueryRow(ctx,
		`SELECT `+classColumns+` FROM classes WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Subject, &c.DayOfWeek, &c.TimeStart, &c.TimeEnd, &c.TeacherName, &c.MaxStudents)
	if err != nil {
		return nil, translateError(err)
	}
	return c, nil
}

// GetByIDs resolves the given class IDs, preserving input order so callers
// that iterate enrolled classes see them in registration order.
func (r *classRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Class, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+classColumns+` FROM classes WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	byID := make(map[uuid.UUID]model.Class, len(ids))
	for rows.Next() {
		var c model.Class
		if err := rows.Scan(&c.ID, &c.Name, &c.Subject, &c.DayOfWeek, &c.TimeStart, &c.TimeEnd, &c.TeacherName, &c.MaxStudents); err != nil {
			return nil, err
		}
		byID[c.ID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	classes := make([]model.Class, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			classes = append(classes, c)
		}
	}
	return classes, nil
}

// List retrieves all classes, optionally filtered by day of week.
func (r *classRepository) List(ctx context.Context, day *model.DayOfWeek) ([]model.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes ORDER BY name`
	args := []any{}
	if day != nil {
		query = `SELECT ` + classColumns + ` FROM classes WHERE day_of_week = $1 ORDER BY name`
		args = append(args, *day)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var classes []model.Class
	for rows.Next() {
		var c model.Class
		if err := rows.Scan(&c.ID, &c.Name, &c.Subject, &c.DayOfWeek, &c.TimeStart, &c.TimeEnd, &c.TeacherName, &c.MaxStudents); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}
