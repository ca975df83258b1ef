package models

// Action status constants
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
)

// Request types

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type CreateActionRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Section     string  `json:"section"`
	DueDate     string  `json:"dueDate"`
	Status      string  `json:"status"`
	Assignee    string  `json:"assignee"`
	UserID      string  `json:"userId"`
}

// Response types

type AuthResponse struct {
	Success bool   `json:"success"`
	User    *User  `json:"user,omitempty"`
	Error   string `json:"error,omitempty"`
}

type DeleteResponse struct {
	Success bool `json:"success"`
}

// Domain types

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"` // Never expose in JSON
	Name     string `json:"name"`
}

// Action is a dated task item owned by a user. Resource actions carry an
// assignee; activity actions do not, so Assignee stays nil and is omitted
// from their JSON form.
type Action struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Section     string  `json:"section"`
	DueDate     string  `json:"dueDate"`
	Status      string  `json:"status"`
	Assignee    *string `json:"assignee,omitempty"`
	CompletedAt *string `json:"completedAt"`
	CreatedAt   string  `json:"createdAt"`
	UserID      string  `json:"userId"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
