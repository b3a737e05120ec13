package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/tutorlane/tutorlane-backend/internal/model"
)

type subscriptionRepository struct {
	db Querier
}

// NewSubscriptionRepository creates a SubscriptionRepository backed by db.
func NewSubscriptionRepository(db Querier) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

const subscriptionColumns = `id, student_id, package_name, start_date, end_date, total_sessions, used_sessions`

// Create inserts a new subscription.
func (r *subscriptionRepository) Create(ctx context.Context, s *model.Subscription) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO subscriptions (id, student_id, package_name, start_date, end_date, total_sessions, used_sessions)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.StudentID, s.PackageName, s.StartDate, s.EndDate, s.TotalSessions, s.UsedSessions,
	)
	return translateError(err)
}

// GetByID retrieves a subscription by ID.
func (r *subscriptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Subscription, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate retrieves a subscription by ID, locking the row for
// the rest of the enclosing transaction.
func (r *subscriptionRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Subscription, error) {
	return r.get(ctx, id, true)
}

func (r *subscriptionRepository) get(ctx context.Context, id uuid.UUID, forUpdate bool) (*model.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	s := &model.Subscription{}
	err := r.db.QueryRow(ctx, query, id).
		Scan(&s.ID, &s.StudentID, &s.PackageName, &s.StartDate, &s.EndDate, &s.TotalSessions, &s.UsedSessions)
	if err != nil {
		return nil, translateError(err)
	}
	return s, nil
}

// ListByStudent retrieves all subscriptions for a student.
func (r *subscriptionRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.Subscription, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+subscriptionColumns+` FROM subscriptions
		 WHERE student_id = $1 ORDER BY created_at`, studentID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var subs []model.Subscription
	for rows.Next() {
		var s model.Subscription
		if err := rows.Scan(&s.ID, &s.StudentID, &s.PackageName, &s.StartDate, &s.EndDate, &s.TotalSessions, &s.UsedSessions); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

// IncrementUsed adds one to used_sessions and returns the updated record.
// The guard against exceeding total_sessions lives in the service, which
// holds the row lock when it calls this.
func (r *subscriptionRepository) IncrementUsed(ctx context.Context, id uuid.UUID) (*model.Subscription, error) {
	s := &model.Subscription{}
	err := r.db.QueryRow(ctx,
		`UPDATE subscriptions SET used_sessions = used_sessions + 1
		 WHERE id = $1
		 RETURNING `+subscriptionColumns, id,
	).Scan(&s.ID, &s.StudentID, &s.PackageName, &s.StartDate, &s.EndDate, &s.TotalSessions, &s.UsedSessions)
	if err != nil {
		return nil, translateError(err)
	}
	return s, nil
}
