package announcementstore_test

import (
	"errors"
	"testing"
	"time"

	announcementstore "github.com/dalemusser/schoolhub/internal/app/store/announcements"
	"github.com/dalemusser/schoolhub/internal/domain/models"
	"github.com/dalemusser/schoolhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

func newAnnouncement(message, endDate string) models.Announcement {
	now := time.Now().UTC().Format(time.RFC3339)
	return models.Announcement{
		ID:        models.NewAnnouncementID(),
		Message:   message,
		EndDate:   endDate,
		Level:     models.LevelInfo,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestStore_InsertAndGetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := announcementstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a := newAnnouncement("Spirit week starts Monday", "2099-06-01")
	if err := store.Insert(ctx, a); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	found, err := store.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.Message != a.Message {
		t.Errorf("Message: got %q, want %q", found.Message, a.Message)
	}
	if found.StartDate != nil {
		t.Errorf("StartDate: got %v, want nil", *found.StartDate)
	}
	if found.EndDate != a.EndDate {
		t.Errorf("EndDate: got %q, want %q", found.EndDate, a.EndDate)
	}
}

func TestStore_Insert_DuplicateID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := announcementstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a := newAnnouncement("First", "2099-06-01")
	if err := store.Insert(ctx, a); err != nil {
		t.Fatalf("first Insert failed: %v", err)
	}

	dup := newAnnouncement("Second", "2099-06-02")
	dup.ID = a.ID
	if err := store.Insert(ctx, dup); !errors.Is(err, announcementstore.ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := announcementstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, "no-such-id")
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestStore_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := announcementstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, msg := range []string{"one", "two", "three"} {
		if err := store.Insert(ctx, newAnnouncement(msg, "2099-06-01")); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 announcements, got %d", len(all))
	}
}

func TestStore_Update_PartialFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := announcementstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a := newAnnouncement("Original message", "2099-06-01")
	start := "2099-05-01"
	a.StartDate = &start
	if err := store.Insert(ctx, a); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	message := "Updated message"
	err := store.Update(ctx, a.ID, announcementstore.Changes{
		Message:   &message,
		UpdatedAt: "2099-01-02T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	found, err := store.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.Message != "Updated message" {
		t.Errorf("Message: got %q, want %q", found.Message, "Updated message")
	}
	if found.UpdatedAt != "2099-01-02T00:00:00Z" {
		t.Errorf("UpdatedAt: got %q", found.UpdatedAt)
	}
	// Untouched fields survive.
	if found.StartDate == nil || *found.StartDate != start {
		t.Errorf("StartDate changed: got %v", found.StartDate)
	}
	if found.EndDate != a.EndDate {
		t.Errorf("EndDate changed: got %q", found.EndDate)
	}
}

func TestStore_Update_ClearStartDate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := announcementstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a := newAnnouncement("Windowed", "2099-06-01")
	start := "2099-05-01"
	a.StartDate = &start
	if err := store.Insert(ctx, a); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	clear := ""
	err := store.Update(ctx, a.ID, announcementstore.Changes{
		StartDate: &clear,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	found, err := store.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.StartDate != nil {
		t.Errorf("StartDate: got %q, want cleared", *found.StartDate)
	}
	if found.EndDate != a.EndDate {
		t.Errorf("EndDate changed: got %q", found.EndDate)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := announcementstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a := newAnnouncement("Short lived", "2099-06-01")
	if err := store.Insert(ctx, a); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	count, err := store.Delete(ctx, a.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 deleted, got %d", count)
	}

	// Second delete finds nothing.
	count, err = store.Delete(ctx, a.ID)
	if err != nil {
		t.Fatalf("second Delete should not error: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 deleted on second call, got %d", count)
	}
}
