package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/umutk/registrar/internal/app/models"
	"github.com/umutk/registrar/internal/pkg/auth"
)

type fakeAdminStore struct {
	hasAdmin  bool
	existsErr error
	created   []*models.Admin
}

func (f *fakeAdminStore) Exists(_ context.Context) (bool, error) {
	return f.hasAdmin, f.existsErr
}

func (f *fakeAdminStore) Create(_ context.Context, admin *models.Admin) error {
	copied := *admin
	f.created = append(f.created, &copied)
	return nil
}

func TestSeedCreatesHashedDefaultAdmin(t *testing.T) {
	store := &fakeAdminStore{}

	if err := createDefaultAdmin(context.Background(), store, zerolog.Nop()); err != nil {
		t.Fatalf("createDefaultAdmin: %v", err)
	}

	if len(store.created) != 1 {
		t.Fatalf("created %d admins, want 1", len(store.created))
	}
	admin := store.created[0]
	if admin.Username != DefaultAdminUsername {
		t.Errorf("Username = %q, want %q", admin.Username, DefaultAdminUsername)
	}
	if !auth.IsHashed(admin.Password) {
		t.Error("seeded password stored in plaintext")
	}
	if !auth.CheckPassword(admin.Password, DefaultAdminPassword) {
		t.Error("seeded hash does not verify against the default password")
	}
}

func TestSeedSkipsWhenAnyAdminExists(t *testing.T) {
	// An admin under a different username still counts as seeded.
	store := &fakeAdminStore{hasAdmin: true}

	if err := createDefaultAdmin(context.Background(), store, zerolog.Nop()); err != nil {
		t.Fatalf("createDefaultAdmin: %v", err)
	}

	if len(store.created) != 0 {
		t.Errorf("seed created %d admins alongside an existing one, want 0", len(store.created))
	}
}

func TestSeedPropagatesStoreError(t *testing.T) {
	wantErr := errors.New("connection refused")
	store := &fakeAdminStore{existsErr: wantErr}

	if err := createDefaultAdmin(context.Background(), store, zerolog.Nop()); !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want the store error", err)
	}
	if len(store.created) != 0 {
		t.Error("seed created an admin despite the store error")
	}
}
