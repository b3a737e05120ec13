package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/tutorlane/tutorlane-backend/internal/apperror"
	"github.com/tutorlane/tutorlane-backend/internal/model"
)

func TestStudentCreateParentMustExist(t *testing.T) {
	store := newMemStore()
	svc := NewStudentService(&fakeStudentRepo{s: store}, &fakeParentRepo{s: store})

	err := svc.Create(context.Background(), &model.Student{Name: "S", ParentID: uuid.New()})
	requireKind(t, err, apperror.KindNotFound)
	if len(store.students) != 0 {
		t.Errorf("student count = %d, want 0", len(store.students))
	}
}

func TestStudentCreateSuccess(t *testing.T) {
	store := newMemStore()
	parent := store.addParent(model.Parent{Name: "P", Email: "p@example.com"})
	svc := NewStudentService(&fakeStudentRepo{s: store}, &fakeParentRepo{s: store})

	student := &model.Student{Name: "S", ParentID: parent.ID}
	if err := svc.Create(context.Background(), student); err != nil {
		t.Fatalf("create: %v", err)
	}
	if student.ID == uuid.Nil {
		t.Error("student ID not assigned")
	}
	if student.ClassIDs == nil || len(student.ClassIDs) != 0 {
		t.Errorf("class_ids = %v, want empty", student.ClassIDs)
	}
}

func TestStudentCreateMissingFields(t *testing.T) {
	svc := NewStudentService(&fakeStudentRepo{s: newMemStore()}, &fakeParentRepo{s: newMemStore()})

	err := svc.Create(context.Background(), &model.Student{Name: "S"})
	requireKind(t, err, apperror.KindValidation)
}

func TestParentCreateDuplicateEmail(t *testing.T) {
	store := newMemStore()
	store.addParent(model.Parent{Name: "P", Email: "p@example.com"})
	svc := NewParentService(&fakeParentRepo{s: store})

	err := svc.Create(context.Background(), &model.Parent{Name: "Q", Email: "p@example.com"})
	appErr := requireKind(t, err, apperror.KindValidation)
	if appErr.Message != "Email already in use" {
		t.Errorf("message = %q", appErr.Message)
	}
}

func TestParentGetByIDNotFound(t *testing.T) {
	svc := NewParentService(&fakeParentRepo{s: newMemStore()})

	_, err := svc.GetByID(context.Background(), uuid.New())
	requireKind(t, err, apperror.KindNotFound)
}
