package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateTeacher inserts a teacher directory entry with the given
// username and returns it.
func (f *Fixtures) CreateTeacher(ctx context.Context, username, displayName string) models.Teacher {
	f.t.Helper()

	teacher := models.Teacher{
		Username:    username,
		DisplayName: displayName,
		Role:        "teacher",
	}
	if _, err := f.db.Collection("teachers").InsertOne(ctx, teacher); err != nil {
		f.t.Fatalf("failed to create test teacher: %v", err)
	}
	return teacher
}

// CreateAnnouncement inserts an announcement with the given message and
// window. Pass startDate="" for an open-ended window start.
func (f *Fixtures) CreateAnnouncement(ctx context.Context, message, startDate, endDate string) models.Announcement {
	f.t.Helper()

	now := time.Now().UTC().Format(time.RFC3339)
	a := models.Announcement{
		ID:        models.NewAnnouncementID(),
		Message:   message,
		EndDate:   endDate,
		Level:     models.LevelInfo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if startDate != "" {
		a.StartDate = &startDate
	}
	if _, err := f.db.Collection("announcements").InsertOne(ctx, a); err != nil {
		f.t.Fatalf("failed to create test announcement: %v", err)
	}
	return a
}
