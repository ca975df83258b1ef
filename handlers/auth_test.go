package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/actionflow/actionflow/models"
	"github.com/actionflow/actionflow/testutil"
)

func TestRegister(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewAuthHandler(st)

	testutil.CreateTestUser(t, st, "taken@example.com", "password1", "Taken")

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.AuthResponse)
	}{
		{
			name: "successful registration",
			requestBody: models.RegisterRequest{
				Email:    "ana@example.com",
				Password: "secret123",
				Name:     "Ana",
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.AuthResponse) {
				if !resp.Success {
					t.Error("Expected success to be true")
				}
				if resp.User == nil || resp.User.ID == "" {
					t.Fatal("Expected a user with a non-empty id")
				}
				if resp.User.Email != "ana@example.com" {
					t.Errorf("Expected email 'ana@example.com', got '%s'", resp.User.Email)
				}
			},
		},
		{
			name: "duplicate email",
			requestBody: models.RegisterRequest{
				Email:    "taken@example.com",
				Password: "another",
				Name:     "Other",
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp *models.AuthResponse) {
				if resp.Success {
					t.Error("Expected success to be false")
				}
				if resp.Error != "User already exists" {
					t.Errorf("Expected error 'User already exists', got '%s'", resp.Error)
				}
			},
		},
		{
			name:           "missing email",
			requestBody:    models.RegisterRequest{Password: "secret123", Name: "Ana"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid email",
			requestBody:    models.RegisterRequest{Email: "not-an-email", Password: "secret123", Name: "Ana"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing password",
			requestBody:    models.RegisterRequest{Email: "bob@example.com", Name: "Bob"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing name",
			requestBody:    models.RegisterRequest{Email: "bob@example.com", Password: "secret123"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/auth/register", tt.requestBody, nil)
			w := httptest.NewRecorder()

			handler.Register(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.checkResponse != nil {
				var resp models.AuthResponse
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestRegisterKeepsSingleRecord(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewAuthHandler(st)

	body := models.RegisterRequest{Email: "once@example.com", Password: "secret123", Name: "Once"}

	w := httptest.NewRecorder()
	handler.Register(w, testutil.MakeRequest("POST", "/auth/register", body, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = httptest.NewRecorder()
	handler.Register(w, testutil.MakeRequest("POST", "/auth/register", body, nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	count, err := st.CountUsers(t.Context())
	if err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected exactly 1 user, got %d", count)
	}
}

func TestLogin(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewAuthHandler(st)

	user := testutil.CreateTestUser(t, st, "ana@example.com", "secret123", "Ana")

	tests := []struct {
		name           string
		requestBody    models.LoginRequest
		expectedStatus int
	}{
		{
			name:           "correct credentials",
			requestBody:    models.LoginRequest{Email: "ana@example.com", Password: "secret123"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong password",
			requestBody:    models.LoginRequest{Email: "ana@example.com", Password: "wrong"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown email",
			requestBody:    models.LoginRequest{Email: "nobody@example.com", Password: "secret123"},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	bodies := map[string]string{}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/auth/login", tt.requestBody, nil)
			w := httptest.NewRecorder()

			handler.Login(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			bodies[tt.name] = w.Body.String()

			if tt.expectedStatus == http.StatusOK {
				var resp models.AuthResponse
				if err := json.Unmarshal([]byte(bodies[tt.name]), &resp); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if resp.User == nil || resp.User.ID != user.ID {
					t.Error("Expected the stored user's id in the response")
				}
			}
		})
	}

	// Wrong password and unknown email must be indistinguishable.
	if bodies["wrong password"] != bodies["unknown email"] {
		t.Errorf("Expected identical 401 bodies, got %q and %q",
			bodies["wrong password"], bodies["unknown email"])
	}
}

func TestAuthNeverExposesPassword(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewAuthHandler(st)

	w := httptest.NewRecorder()
	handler.Register(w, testutil.MakeRequest("POST", "/auth/register", models.RegisterRequest{
		Email:    "ana@example.com",
		Password: "secret123",
		Name:     "Ana",
	}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	assertNoPasswordField(t, w)

	w = httptest.NewRecorder()
	handler.Login(w, testutil.MakeRequest("POST", "/auth/login", models.LoginRequest{
		Email:    "ana@example.com",
		Password: "secret123",
	}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	assertNoPasswordField(t, w)
}

func assertNoPasswordField(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()

	var raw map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	user, ok := raw["user"].(map[string]any)
	if !ok {
		t.Fatalf("Expected a user object in response: %s", w.Body.String())
	}
	if _, found := user["password"]; found {
		t.Error("Response body must not contain a password field")
	}
}
