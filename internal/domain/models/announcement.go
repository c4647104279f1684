// internal/domain/models/announcement.go
package models

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// Announcement levels shown to students. Anything outside this set is
// normalized to LevelInfo before storage.
const (
	LevelInfo    = "info"
	LevelSuccess = "success"
	LevelWarning = "warning"
)

// MessageMaxLen is the maximum length of an announcement message after
// trimming.
const MessageMaxLen = 280

// Announcement is a time-bounded banner message for the school site.
//
// NOTE:
//   - ID is a uuid hex string, not an ObjectID; records are created by
//     this service and shared with other consumers of the collection.
//   - StartDate/EndDate are the "YYYY-MM-DD" strings the teacher
//     submitted. They are validated on the way in and compared as
//     parsed dates; the stored form sorts chronologically as-is.
//   - StartDate is a pointer so a missing window start is stored (and
//     serialized) as null rather than an empty string.
type Announcement struct {
	ID        string  `bson:"_id" json:"id"`
	Message   string  `bson:"message" json:"message"`
	StartDate *string `bson:"start_date" json:"start_date"`
	EndDate   string  `bson:"end_date" json:"end_date"`
	Level     string  `bson:"level" json:"level"`

	// RFC 3339 UTC strings. Kept as strings so list-all can sort on the
	// stored value without a parse round trip.
	CreatedAt string `bson:"created_at" json:"created_at"`
	UpdatedAt string `bson:"updated_at" json:"updated_at"`
}

// NewAnnouncementID returns a fresh opaque announcement id: a random
// uuid as 32 hex characters, matching the ids already in the
// collection.
func NewAnnouncementID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

// NormalizeLevel lowercases the given level and returns LevelInfo for
// anything that is not a recognized level (including the empty string).
func NormalizeLevel(level string) string {
	switch l := strings.ToLower(level); l {
	case LevelInfo, LevelSuccess, LevelWarning:
		return l
	}
	return LevelInfo
}
