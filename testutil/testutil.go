package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/actionflow/actionflow/auth"
	"github.com/actionflow/actionflow/db"
	"github.com/actionflow/actionflow/models"
	"github.com/actionflow/actionflow/store"
)

// SetupTestDB opens a fresh in-memory SQLite database with the full schema.
// The single-connection pool keeps the in-memory database alive for the
// whole test.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore opens a test database and wraps it in a store.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(SetupTestDB(t))
}

// CreateTestUser inserts a user with a bcrypt-hashed password and returns it.
func CreateTestUser(t *testing.T, st *store.Store, email, password, name string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := &models.User{
		ID:       auth.NewID(),
		Email:    email,
		Password: hash,
		Name:     name,
	}
	if err := st.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// CreateTestAction inserts an action item with sensible defaults and returns
// it. createdAt controls list ordering, which sorts most recent first.
func CreateTestAction(t *testing.T, st *store.Store, kind store.Kind, userID, title string, createdAt time.Time) *models.Action {
	t.Helper()

	description := "Test description"
	action := &models.Action{
		ID:          auth.NewID(),
		Title:       title,
		Description: &description,
		Section:     "DAP",
		DueDate:     createdAt.UTC().Format("2006-01-02"),
		Status:      models.StatusPending,
		CreatedAt:   createdAt.UTC().Format(time.RFC3339),
		UserID:      userID,
	}
	if kind.HasAssignee {
		assignee := "Test Assignee"
		action.Assignee = &assignee
	}

	if err := st.InsertAction(context.Background(), kind, action); err != nil {
		t.Fatalf("Failed to create test action: %v", err)
	}

	return action
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
