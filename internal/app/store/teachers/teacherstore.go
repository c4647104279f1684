// internal/app/store/teachers/teacherstore.go
package teacherstore

import (
	"context"
	"errors"

	"github.com/dalemusser/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store reads the teacher directory in the "teachers" collection.
// Usernames are the document _id. This service never writes the
// directory; account management lives elsewhere.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("teachers")}
}

// GetByUsername returns the teacher with the given username, or
// mongo.ErrNoDocuments if the directory has no such entry.
func (s *Store) GetByUsername(ctx context.Context, username string) (models.Teacher, error) {
	var t models.Teacher
	if err := s.c.FindOne(ctx, bson.M{"_id": username}).Decode(&t); err != nil {
		return models.Teacher{}, err
	}
	return t, nil
}

// Exists reports whether the directory contains the given username.
func (s *Store) Exists(ctx context.Context, username string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"_id": username}).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, err
}

// List returns the whole directory, used by setup tooling and tests.
func (s *Store) List(ctx context.Context) ([]models.Teacher, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Teacher
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
