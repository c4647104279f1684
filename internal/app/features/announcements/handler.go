// internal/app/features/announcements/handler.go
package announcements

import (
	"context"
	"time"

	announcementstore "github.com/dalemusser/schoolhub/internal/app/store/announcements"
	teacherstore "github.com/dalemusser/schoolhub/internal/app/store/teachers"
	"github.com/dalemusser/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AnnouncementStore is what the handlers need from the persistence
// layer. *announcementstore.Store implements it; tests substitute an
// in-memory fake.
type AnnouncementStore interface {
	List(ctx context.Context) ([]models.Announcement, error)
	GetByID(ctx context.Context, id string) (models.Announcement, error)
	Insert(ctx context.Context, a models.Announcement) error
	Update(ctx context.Context, id string, ch announcementstore.Changes) error
	Delete(ctx context.Context, id string) (int64, error)
}

// TeacherDirectory is the credential check: does this username belong
// to a known teacher.
type TeacherDirectory interface {
	Exists(ctx context.Context, username string) (bool, error)
}

// Handler owns all announcement handlers.
type Handler struct {
	Store     AnnouncementStore
	Directory TeacherDirectory
	Log       *zap.Logger

	// Now supplies the current instant for timestamps and the active
	// predicate. Tests pin it; production uses time.Now.
	Now func() time.Time
}

// NewHandler constructs an announcements Handler backed by the given
// database.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store:     announcementstore.New(db),
		Directory: teacherstore.New(db),
		Log:       logger,
		Now:       time.Now,
	}
}
