// internal/app/store/announcements/announcementstore.go
package announcementstore

import (
	"context"
	"errors"

	"github.com/dalemusser/schoolhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store persists announcements in the "announcements" collection,
// keyed by the uuid hex string in _id.
type Store struct {
	c *mongo.Collection
}

var ErrDuplicateID = errors.New("an announcement with this id already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("announcements")}
}

// List returns every announcement in the collection. Filtering and
// ordering are the caller's concern; the whole collection is small.
func (s *Store) List(ctx context.Context) ([]models.Announcement, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Announcement
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns the announcement with the given id, or
// mongo.ErrNoDocuments if there is none.
func (s *Store) GetByID(ctx context.Context, id string) (models.Announcement, error) {
	var a models.Announcement
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return models.Announcement{}, err
	}
	return a, nil
}

// Insert stores a fully-populated announcement. The caller is
// responsible for validation, id generation, and timestamps.
func (s *Store) Insert(ctx context.Context, a models.Announcement) error {
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateID
		}
		return err
	}
	return nil
}

// Changes describes a partial update. A nil field is left untouched.
// A StartDate pointing at the empty string clears the stored start
// date (the document keeps the field, set to null). UpdatedAt is
// written unconditionally.
type Changes struct {
	Message   *string
	StartDate *string
	EndDate   *string
	Level     *string
	UpdatedAt string
}

// Update applies the given changes to the announcement with the given
// id. Updating a nonexistent id is not an error here; callers that
// need existence check it with GetByID first.
func (s *Store) Update(ctx context.Context, id string, ch Changes) error {
	set := bson.M{"updated_at": ch.UpdatedAt}

	if ch.Message != nil {
		set["message"] = *ch.Message
	}
	if ch.StartDate != nil {
		if *ch.StartDate == "" {
			set["start_date"] = nil
		} else {
			set["start_date"] = *ch.StartDate
		}
	}
	if ch.EndDate != nil {
		set["end_date"] = *ch.EndDate
	}
	if ch.Level != nil {
		set["level"] = *ch.Level
	}

	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// Delete removes an announcement by id. Returns the number of
// documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
