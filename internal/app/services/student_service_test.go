package services

import (
	"context"
	"errors"
	"testing"

	"github.com/umutk/registrar/internal/app/models"
	"github.com/umutk/registrar/internal/app/models/dto"
	"github.com/umutk/registrar/internal/pkg/apperrors"
	"github.com/umutk/registrar/internal/pkg/auth"
)

type fakeStudentStore struct {
	created []*models.Student
	updated []*models.Student
	byID    map[int64]*models.Student
	deleted []int64
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	student.ID = int64(len(f.created) + 1)
	copied := *student
	f.created = append(f.created, &copied)
	return nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

func (f *fakeStudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	var all []*models.Student
	for _, s := range f.byID {
		copied := *s
		all = append(all, &copied)
	}
	return all, nil
}

func (f *fakeStudentStore) Search(_ context.Context, _ string) ([]*models.Student, error) {
	return nil, nil
}

func (f *fakeStudentStore) Update(_ context.Context, student *models.Student) error {
	copied := *student
	f.updated = append(f.updated, &copied)
	return nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func TestCreateStudentHashesPassword(t *testing.T) {
	store := &fakeStudentStore{}
	svc := NewStudentService(store)

	student, err := svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		Name:     "Jane Doe",
		Username: "jdoe",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}

	if len(store.created) != 1 {
		t.Fatalf("created %d students, want 1", len(store.created))
	}
	stored := store.created[0].Password
	if stored == "secret123" {
		t.Error("password stored as plaintext")
	}
	if !auth.IsHashed(stored) {
		t.Errorf("stored password %q is not a bcrypt hash", stored)
	}
	if student.Password != "" {
		t.Error("returned student carries a password")
	}
}

func TestCreateStudentValidation(t *testing.T) {
	tests := []struct {
		name string
		req  dto.CreateStudentRequest
	}{
		{"missing name", dto.CreateStudentRequest{Username: "jdoe", Password: "secret123"}},
		{"missing username", dto.CreateStudentRequest{Name: "Jane Doe", Password: "secret123"}},
		{"short password", dto.CreateStudentRequest{Name: "Jane Doe", Username: "jdoe", Password: "abc"}},
		{"username with space", dto.CreateStudentRequest{Name: "Jane Doe", Username: "j doe", Password: "secret123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStudentStore{}
			svc := NewStudentService(store)

			_, err := svc.CreateStudent(context.Background(), &tt.req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("error = %v, want ErrValidationFailed", err)
			}
			if len(store.created) != 0 {
				t.Error("invalid student reached the store")
			}
		})
	}
}

func TestUpdateStudentBlankPasswordKeepsStored(t *testing.T) {
	store := &fakeStudentStore{}
	svc := NewStudentService(store)

	_, err := svc.UpdateStudent(context.Background(), 3, &dto.UpdateStudentRequest{
		Name:     "Jane Doe",
		Username: "jdoe",
	})
	if err != nil {
		t.Fatalf("UpdateStudent: %v", err)
	}

	if len(store.updated) != 1 {
		t.Fatalf("updated %d students, want 1", len(store.updated))
	}
	if store.updated[0].Password != "" {
		t.Errorf("blank request password became %q, want empty so the store keeps the old value", store.updated[0].Password)
	}
}

func TestUpdateStudentNewPasswordIsHashed(t *testing.T) {
	store := &fakeStudentStore{}
	svc := NewStudentService(store)

	_, err := svc.UpdateStudent(context.Background(), 3, &dto.UpdateStudentRequest{
		Name:     "Jane Doe",
		Username: "jdoe",
		Password: "newsecret1",
	})
	if err != nil {
		t.Fatalf("UpdateStudent: %v", err)
	}

	stored := store.updated[0].Password
	if !auth.IsHashed(stored) {
		t.Errorf("stored password %q is not a bcrypt hash", stored)
	}
	if !auth.CheckPassword(stored, "newsecret1") {
		t.Error("stored hash does not verify against the new password")
	}
}

func TestGetStudentStripsPassword(t *testing.T) {
	store := &fakeStudentStore{byID: map[int64]*models.Student{
		7: {ID: 7, Name: "Jane Doe", Username: "jdoe", Password: "$2a$12$hash"},
	}}
	svc := NewStudentService(store)

	student, err := svc.GetStudent(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetStudent: %v", err)
	}
	if student.Password != "" {
		t.Error("stored password leaked from GetStudent")
	}
}
