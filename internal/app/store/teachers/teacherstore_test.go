package teacherstore_test

import (
	"errors"
	"testing"

	teacherstore "github.com/dalemusser/schoolhub/internal/app/store/teachers"
	"github.com/dalemusser/schoolhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_GetByUsername(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teacherstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateTeacher(ctx, "mrodriguez", "Ms. Rodriguez")

	teacher, err := store.GetByUsername(ctx, "mrodriguez")
	if err != nil {
		t.Fatalf("GetByUsername failed: %v", err)
	}
	if teacher.Username != "mrodriguez" {
		t.Errorf("Username: got %q, want %q", teacher.Username, "mrodriguez")
	}
	if teacher.DisplayName != "Ms. Rodriguez" {
		t.Errorf("DisplayName: got %q, want %q", teacher.DisplayName, "Ms. Rodriguez")
	}
}

func TestStore_GetByUsername_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teacherstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByUsername(ctx, "ghost")
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestStore_Exists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teacherstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateTeacher(ctx, "mchen", "Mr. Chen")

	ok, err := store.Exists(ctx, "mchen")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !ok {
		t.Error("expected mchen to exist")
	}

	ok, err = store.Exists(ctx, "nobody")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if ok {
		t.Error("expected nobody to be absent")
	}
}

func TestStore_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teacherstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateTeacher(ctx, "mrodriguez", "Ms. Rodriguez")
	fixtures.CreateTeacher(ctx, "mchen", "Mr. Chen")

	teachers, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(teachers) != 2 {
		t.Errorf("expected 2 teachers, got %d", len(teachers))
	}
}
