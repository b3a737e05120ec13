package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/tutorlane/tutorlane-backend/internal/model"
)

type parentRepository struct {
	db Querier
}

// NewParentRepository creates a ParentRepository backed by db.
func NewParentRepository(db Querier) ParentRepository {
	return &parentRepository{db: db}
}

// Create inserts a new parent. A duplicate email yields ErrDuplicate.
func (r *parentRepository) Create(ctx context.Context, p *model.Parent) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO parents (id, name, email, phone) VALUES ($1, $2, $3, $4)`,
		p.ID, p.Name, p.Email, p.Phone,
	)
	return translateError(err)
}

// GetByID retrieves a parent by ID.
func (r *parentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Parent, error) {
	p := &model.Parent{}
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, phone FROM parents WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Email, &p.Phone)
	if err != nil {
		return nil, translateError(err)
	}
	return p, nil
}

// List retrieves all parents.
func (r *parentRepository) List(ctx context.Context) ([]model.Parent, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, phone FROM parents ORDER BY name`)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var parents []model.Parent
	for rows.Next() {
		var p model.Parent
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Phone); err != nil {
			return nil, err
		}
		parents = append(parents, p)
	}
	return parents, rows.Err()
}
