// Package repository is the entity store: per-entity access interfaces,
// their PostgreSQL implementations, and a transaction manager that scopes
// a set of repositories to a single transaction.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tutorlane/tutorlane-backend/internal/model"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a uniqueness constraint.
var ErrDuplicate = errors.New("duplicate record")

// Querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx, so the
// same repository implementations serve pooled reads and transactional writes.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ClassRepository handles class data access.
type ClassRepository interface {
	Create(ctx context.Context, c *model.Class) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Class, error)
	// GetByIDs resolves classes preserving the order of ids.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Class, error)
	List(ctx context.Context, day *model.DayOfWeek) ([]model.Class, error)
}

// StudentRepository handles student data access.
type StudentRepository interface {
	Create(ctx context.Context, s *model.Student) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Student, error)
	// GetByIDForUpdate locks the student row for the rest of the
	// enclosing transaction. Only meaningful on a transaction-scoped
	// repository.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Student, error)
	List(ctx context.Context) ([]model.Student, error)
	UpdateClassIDs(ctx context.Context, id uuid.UUID, classIDs []uuid.UUID) error
}

// ParentRepository handles parent data access.
type ParentRepository interface {
	Create(ctx context.Context, p *model.Parent) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Parent, error)
	List(ctx context.Context) ([]model.Parent, error)
}

// RegistrationRepository handles class-registration data access.
type RegistrationRepository interface {
	Create(ctx context.Context, r *model.Registration) error
	Exists(ctx context.Context, classID, studentID uuid.UUID) (bool, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.Registration, error)
}

// SubscriptionRepository handles subscription data access.
type SubscriptionRepository interface {
	Create(ctx context.Context, s *model.Subscription) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Subscription, error)
	// GetByIDForUpdate locks the subscription row for the rest of the
	// enclosing transaction.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Subscription, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.Subscription, error)
	// IncrementUsed adds one to used_sessions and returns the updated record.
	IncrementUsed(ctx context.Context, id uuid.UUID) (*model.Subscription, error)
}

// translateError maps low-level pgx failures onto repository sentinels.
func translateError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	return err
}
