package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/tutorlane/tutorlane-backend/internal/model"
	"github.com/tutorlane/tutorlane-backend/internal/repository"
)

// memStore is the shared in-memory entity store behind the fake
// repositories. Setting err makes every repository call fail with it,
// for exercising the storage-failure paths.
type memStore struct {
	err           error
	classes       map[uuid.UUID]model.Class
	students      map[uuid.UUID]model.Student
	parents       map[uuid.UUID]model.Parent
	registrations []model.Registration
	subscriptions map[uuid.UUID]model.Subscription
}

func newMemStore() *memStore {
	return &memStore{
		classes:       make(map[uuid.UUID]model.Class),
		students:      make(map[uuid.UUID]model.Student),
		parents:       make(map[uuid.UUID]model.Parent),
		subscriptions: make(map[uuid.UUID]model.Subscription),
	}
}

func (s *memStore) addClass(c model.Class) model.Class {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	s.classes[c.ID] = c
	return c
}

func (s *memStore) addStudent(st model.Student) model.Student {
	if st.ID == uuid.Nil {
		st.ID = uuid.New()
	}
	if st.ClassIDs == nil {
		st.ClassIDs = []uuid.UUID{}
	}
	s.students[st.ID] = st
	return st
}

func (s *memStore) addParent(p model.Parent) model.Parent {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	s.parents[p.ID] = p
	return p
}

func (s *memStore) addSubscription(sub model.Subscription) model.Subscription {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	s.subscriptions[sub.ID] = sub
	return sub
}

// ─── ClassRepository ────────────────────────────────────────────────────

type fakeClassRepo struct{ s *memStore }

func (r *fakeClassRepo) Create(_ context.Context, c *model.Class) error {
	if r.s.err != nil {
		return r.s.err
	}
	*c = r.s.addClass(*c)
	return nil
}

func (r *fakeClassRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Class, error) {
	if r.s.err != nil {
		return nil, r.s.err
	}
	c, ok := r.s.classes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r *fakeClassRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]model.Class, error) {
	if r.s.err != nil {
		return nil, r.s.err
	}
	var classes []model.Class
	for _, id := range ids {
		if c, ok := r.s.classes[id]; ok {
			classes = append(classes, c)
		}
	}
	return classes, nil
}

func (r *fakeClassRepo) List(_ context.Context, day *model.DayOfWeek) ([]model.Class, error) {
	if r.s.err != nil {
		return nil, r.s.err
	}
	var classes []model.Class
	for _, c := range r.s.classes {
		if day != nil && (c.DayOfWeek == nil || *c.DayOfWeek != *day) {
			continue
		}
		classes = append(classes, c)
	}
	return classes, nil
}

// ─── StudentRepository ──────────────────────────────────────────────────

type fakeStudentRepo struct{ s *memStore }

func (r *fakeStudentRepo) Create(_ context.Context, st *model.Student) error {
	if r.s.err != nil {
		return r.s.err
	}
	*st = r.s.addStudent(*st)
	return nil
}

func (r *fakeStudentRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Student, error) {
	if r.s.err != nil {
		return nil, r.s.err
	}
	st, ok := r.s.students[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := st
	cp.ClassIDs = append([]uuid.UUID{}, st.ClassIDs...)
	return &cp, nil
}

func (r *fakeStudentRepo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeStudentRepo) List(_ context.Context) ([]model.Student, error) {
	if r.s.err != nil {
		return nil, r.s.err
	}
	var students []model.Student
	for _, st := range r.s.students {
		students = append(students, st)
	}
	return students, nil
}

func (r *fakeStudentRepo) UpdateClassIDs(_ context.Context, id uuid.UUID, classIDs []uuid.UUID) error {
	if r.s.err != nil {
		return r.s.err
	}
	st, ok := r.s.students[id]
	if !ok {
		return repository.ErrNotFound
	}
	st.ClassIDs = append([]uuid.UUID{}, classIDs...)
	r.s.students[id] = st
	return nil
}

// ─── ParentRepository ───────────────────────────────────────────────────

type fakeParentRepo struct{ s *memStore }

func (r *fakeParentRepo) Create(_ context.Context, p *model.Parent) error {
	if r.s.err != nil {
		return r.s.err
	}
	for _, existing := range r.s.parents {
		if existing.Email == p.Email {
			return repository.ErrDuplicate
		}
	}
	*p = r.s.addParent(*p)
	return nil
}

func (r *fakeParentRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Parent, error) {
	if r.s.err != nil {
		return nil, r.s.err
	}
	p, ok := r.s.parents[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *fakeParentRepo) List(_ context.Context) ([]model.Parent, error) {
	if r.s.err != nil {
		return nil, r.s.err
	}
	var parents []model.Parent
	for _, p := range r.s.parents {
		parents = append(parents, p)
	}
	return parents, nil
}

// ─── RegistrationRepository ─────────────────────────────────────────────

type fakeRegistrationRepo struct{ s *memStore }

func (r *fakeRegistrationRepo) Create(_ context.Context, reg *model.Registration) error {
	if r.s.err != nil {
		return r.s.err
	}
	for _, existing := range r.s.registrations {
		if existing.ClassID == reg.ClassID && existing.StudentID == reg.StudentID {
			return repository.ErrDuplicate
		}
	}
	if reg.ID == uuid.Nil {
		reg.ID = uuid.New()
	}
	r.s.registrations = append(r.s.registrations, *reg)
	return nil
}

func (r *fakeRegistrationRepo) Exists(_ context.Context, classID, studentID uuid.UUID) (bool, error) {
	if r.s.err != nil {
		return false, r.s.err
	}
	for _, existing := range r.s.registrations {
		if existing.ClassID == classID && existing.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRegistrationRepo) ListByStudent(_ context.Context, studentID uuid.UUID) ([]model.Registration, error) {
	if r.s.err != nil {
		return nil, r.s.err
	}
	var regs []model.Registration
	for _, existing := range r.s.registrations {
		if existing.StudentID == studentID {
			regs = append(regs, existing)
		}
	}
	return regs, nil
}

// ─── SubscriptionRepository ─────────────────────────────────────────────

type fakeSubscriptionRepo struct{ s *memStore }

func (r *fakeSubscriptionRepo) Create(_ context.Context, sub *model.Subscription) error {
	if r.s.err != nil {
		return r.s.err
	}
	*sub = r.s.addSubscription(*sub)
	return nil
}

func (r *fakeSubscriptionRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Subscription, error) {
	if r.s.err != nil {
		return nil, r.s.err
	}
	sub, ok := r.s.subscriptions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &sub, nil
}

func (r *fakeSubscriptionRepo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Subscription, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeSubscriptionRepo) ListByStudent(_ context.Context, studentID uuid.UUID) ([]model.Subscription, error) {
	if r.s.err != nil {
		return nil, r.s.err
	}
	var subs []model.Subscription
	for _, sub := range r.s.subscriptions {
		if sub.StudentID == studentID {
			subs = append(subs, sub)
		}
	}
	return subs, nil
}

func (r *fakeSubscriptionRepo) IncrementUsed(_ context.Context, id uuid.UUID) (*model.Subscription, error) {
	if r.s.err != nil {
		return nil, r.s.err
	}
	sub, ok := r.s.subscriptions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	sub.UsedSessions++
	r.s.subscriptions[id] = sub
	return &sub, nil
}

// ─── TxManager ──────────────────────────────────────────────────────────

// fakeTxManager hands the fakes straight to fn. Rollback semantics are
// not simulated; tests that assert "unchanged on failure" rely on the
// services failing before any write.
type fakeTxManager struct{ s *memStore }

func (m *fakeTxManager) WithTx(ctx context.Context, fn func(ctx context.Context, repos repository.TxRepositories) error) error {
	return fn(ctx, repository.TxRepositories{
		Classes:       &fakeClassRepo{s: m.s},
		Students:      &fakeStudentRepo{s: m.s},
		Registrations: &fakeRegistrationRepo{s: m.s},
		Subscriptions: &fakeSubscriptionRepo{s: m.s},
	})
}
