package testutil

import (
	"context"
	"errors"
	"sort"
	"sync"

	announcementstore "github.com/dalemusser/schoolhub/internal/app/store/announcements"
	"github.com/dalemusser/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// FakeAnnouncementStore is an in-memory announcement store for handler
// tests. It mirrors the Mongo store's semantics, including
// mongo.ErrNoDocuments for missing ids and DeletedCount-style returns.
type FakeAnnouncementStore struct {
	mu   sync.Mutex
	byID map[string]models.Announcement

	// FailNext makes the next mutating call return an error, for
	// exercising the InternalError paths.
	FailNext error
}

// NewFakeAnnouncementStore returns an empty in-memory store.
func NewFakeAnnouncementStore() *FakeAnnouncementStore {
	return &FakeAnnouncementStore{byID: make(map[string]models.Announcement)}
}

func (f *FakeAnnouncementStore) takeFailure() error {
	err := f.FailNext
	f.FailNext = nil
	return err
}

func (f *FakeAnnouncementStore) List(ctx context.Context) ([]models.Announcement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.Announcement, 0, len(f.byID))
	for _, a := range f.byID {
		out = append(out, a)
	}
	// Map order is random; return a stable order so tests that sort on
	// top of this see their own ordering, not the map's.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *FakeAnnouncementStore) GetByID(ctx context.Context, id string) (models.Announcement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.byID[id]
	if !ok {
		return models.Announcement{}, mongo.ErrNoDocuments
	}
	return a, nil
}

func (f *FakeAnnouncementStore) Insert(ctx context.Context, a models.Announcement) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.takeFailure(); err != nil {
		return err
	}
	if _, exists := f.byID[a.ID]; exists {
		return announcementstore.ErrDuplicateID
	}
	f.byID[a.ID] = a
	return nil
}

func (f *FakeAnnouncementStore) Update(ctx context.Context, id string, ch announcementstore.Changes) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.takeFailure(); err != nil {
		return err
	}
	a, ok := f.byID[id]
	if !ok {
		// Matches Mongo: updating a missing document is not an error.
		return nil
	}
	a.UpdatedAt = ch.UpdatedAt
	if ch.Message != nil {
		a.Message = *ch.Message
	}
	if ch.StartDate != nil {
		if *ch.StartDate == "" {
			a.StartDate = nil
		} else {
			v := *ch.StartDate
			a.StartDate = &v
		}
	}
	if ch.EndDate != nil {
		a.EndDate = *ch.EndDate
	}
	if ch.Level != nil {
		a.Level = *ch.Level
	}
	f.byID[id] = a
	return nil
}

func (f *FakeAnnouncementStore) Delete(ctx context.Context, id string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.takeFailure(); err != nil {
		return 0, err
	}
	if _, ok := f.byID[id]; !ok {
		return 0, nil
	}
	delete(f.byID, id)
	return 1, nil
}

// Put stores a record directly, bypassing validation. For test setup.
func (f *FakeAnnouncementStore) Put(a models.Announcement) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[a.ID] = a
}

// Len returns the number of stored records.
func (f *FakeAnnouncementStore) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID)
}

// FakeTeacherDirectory is an in-memory teacher directory.
type FakeTeacherDirectory struct {
	mu        sync.Mutex
	usernames map[string]bool

	// FailNext makes the next lookup return an error.
	FailNext error
}

// NewFakeTeacherDirectory returns a directory containing the given
// usernames.
func NewFakeTeacherDirectory(usernames ...string) *FakeTeacherDirectory {
	d := &FakeTeacherDirectory{usernames: make(map[string]bool)}
	for _, u := range usernames {
		d.usernames[u] = true
	}
	return d
}

func (d *FakeTeacherDirectory) Exists(ctx context.Context, username string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.FailNext; err != nil {
		d.FailNext = nil
		return false, err
	}
	return d.usernames[username], nil
}

// ErrStoreDown is a generic failure for FailNext hooks.
var ErrStoreDown = errors.New("store unavailable")
