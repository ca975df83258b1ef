package db_test

import (
	"context"
	"testing"

	"github.com/actionflow/actionflow/auth"
	"github.com/actionflow/actionflow/db"
	"github.com/actionflow/actionflow/store"
	"github.com/actionflow/actionflow/testutil"
)

func TestSeedIdempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	if err := db.Seed(conn); err != nil {
		t.Fatalf("First seed failed: %v", err)
	}
	if err := db.Seed(conn); err != nil {
		t.Fatalf("Second seed failed: %v", err)
	}

	counts := map[string]int{
		"users":            1,
		"resource_actions": 7,
		"activity_actions": 5,
	}
	for table, want := range counts {
		var got int
		if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&got); err != nil {
			t.Fatalf("Failed to count %s: %v", table, err)
		}
		if got != want {
			t.Errorf("Expected %d rows in %s after double seed, got %d", want, table, got)
		}
	}
}

func TestSeedDemoUserCanLogIn(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	if err := db.Seed(conn); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	st := store.New(conn)
	user, err := st.GetUserByEmail(context.Background(), db.DemoEmail)
	if err != nil {
		t.Fatalf("Failed to look up demo user: %v", err)
	}

	if user.ID != db.DemoUserID {
		t.Errorf("Expected demo user id %q, got %q", db.DemoUserID, user.ID)
	}
	if !auth.VerifyPassword(user.Password, db.DemoPassword) {
		t.Error("Demo password must verify against the stored hash")
	}
	if user.Password == db.DemoPassword {
		t.Error("Demo password must not be stored in plaintext")
	}
}

func TestSeedSkipsNonEmptyUserStore(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := store.New(conn)

	testutil.CreateTestUser(t, st, "existing@example.com", "secret123", "Existing")

	if err := db.Seed(conn); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	var resourceCount int
	if err := conn.QueryRow("SELECT COUNT(*) FROM resource_actions").Scan(&resourceCount); err != nil {
		t.Fatalf("Failed to count resource actions: %v", err)
	}
	if resourceCount != 0 {
		t.Errorf("Expected no seeded actions when users exist, got %d", resourceCount)
	}

	if _, err := st.GetUserByEmail(context.Background(), db.DemoEmail); err == nil {
		t.Error("Demo user must not be created when the user store is non-empty")
	}
}
