package internaldb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lunehq/lune/internal/common"
	"github.com/lunehq/lune/internal/interfaces"
	"github.com/lunehq/lune/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(common.NewSilentLogger(), t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestUserRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := &models.InternalUser{
		UserID:   "alice",
		Email:    "alice@example.com",
		Role:     "user",
		Provider: "local",
	}
	if err := store.SaveUser(ctx, user); err != nil {
		t.Fatalf("SaveUser: %v", err)
	}

	got, err := store.GetUser(ctx, "alice")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Email != "alice@example.com" {
		t.Errorf("Email = %q", got.Email)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not set on save")
	}

	byEmail, err := store.GetUserByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if byEmail.UserID != "alice" {
		t.Errorf("UserID = %q", byEmail.UserID)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetUser(context.Background(), "ghost")
	if !errors.Is(err, interfaces.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSaveUser_ReservedID(t *testing.T) {
	store := newTestStore(t)

	err := store.SaveUser(context.Background(), &models.InternalUser{UserID: systemUserID})
	if err == nil {
		t.Error("saving the reserved system user ID should fail")
	}
}

func TestSaveUser_PreservesCreatedAt(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := store.SaveUser(ctx, &models.InternalUser{UserID: "bob", CreatedAt: created}); err != nil {
		t.Fatalf("SaveUser: %v", err)
	}
	if err := store.SaveUser(ctx, &models.InternalUser{UserID: "bob", Email: "bob@example.com"}); err != nil {
		t.Fatalf("SaveUser update: %v", err)
	}

	got, err := store.GetUser(ctx, "bob")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want original %v", got.CreatedAt, created)
	}
	if got.Email != "bob@example.com" {
		t.Errorf("Email = %q, want updated value", got.Email)
	}
}

func TestBirthProfileRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.GetBirthProfile(ctx, "alice")
	if !errors.Is(err, interfaces.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound before save", err)
	}

	profile := &models.BirthProfile{
		UserID:         "alice",
		BirthDate:      "1990-06-15",
		BirthTime:      "14:30",
		TimeConfidence: models.TimeConfidenceExact,
		Latitude:       17.385,
		Longitude:      78.4867,
		Timezone:       "Asia/Kolkata",
		Locked:         true,
	}
	if err := store.SaveBirthProfile(ctx, profile); err != nil {
		t.Fatalf("SaveBirthProfile: %v", err)
	}

	got, err := store.GetBirthProfile(ctx, "alice")
	if err != nil {
		t.Fatalf("GetBirthProfile: %v", err)
	}
	if got.BirthDate != "1990-06-15" || !got.Locked {
		t.Errorf("profile = %+v", got)
	}
	if !got.HasNormalizedLocation() {
		t.Error("profile with coordinates and timezone should report normalized location")
	}
}

func TestDeleteUser_CascadesProfileAndKV(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.SaveUser(ctx, &models.InternalUser{UserID: "carol"}); err != nil {
		t.Fatalf("SaveUser: %v", err)
	}
	if err := store.SaveBirthProfile(ctx, &models.BirthProfile{UserID: "carol", BirthDate: "1970-01-01"}); err != nil {
		t.Fatalf("SaveBirthProfile: %v", err)
	}
	if err := store.SetUserKV(ctx, "carol", "theme", "dark"); err != nil {
		t.Fatalf("SetUserKV: %v", err)
	}

	if err := store.DeleteUser(ctx, "carol"); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	if _, err := store.GetUser(ctx, "carol"); !errors.Is(err, interfaces.ErrNotFound) {
		t.Errorf("user err = %v, want ErrNotFound", err)
	}
	if _, err := store.GetBirthProfile(ctx, "carol"); !errors.Is(err, interfaces.ErrNotFound) {
		t.Errorf("profile err = %v, want ErrNotFound", err)
	}
	if kvs, err := store.ListUserKV(ctx, "carol"); err != nil || len(kvs) != 0 {
		t.Errorf("kvs = %v, err = %v, want empty", kvs, err)
	}
}

func TestSystemKV(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.GetSystemKV(ctx, "gemini_api_key"); err != nil {
		t.Errorf("missing system KV should return empty without error, got %v", err)
	}

	if err := store.SetSystemKV(ctx, "gemini_api_key", "abc123"); err != nil {
		t.Fatalf("SetSystemKV: %v", err)
	}
	value, err := store.GetSystemKV(ctx, "gemini_api_key")
	if err != nil {
		t.Fatalf("GetSystemKV: %v", err)
	}
	if value != "abc123" {
		t.Errorf("value = %q", value)
	}
}
