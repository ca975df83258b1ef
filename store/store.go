package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/actionflow/actionflow/models"
)

// Store is the storage adapter for users and action items. All persistence
// goes through it; handlers never touch SQL directly.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// CountUsers returns the number of stored users.
func (s *Store) CountUsers(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// GetUserByEmail returns the user with the given email, or ErrNotFound.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, password, name
		FROM users
		WHERE email = ?
	`, email).Scan(&user.ID, &user.Email, &user.Password, &user.Name)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

// CreateUser inserts a user. A duplicate email yields ErrDuplicateEmail.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, email, password, name)
		VALUES (?, ?, ?, ?)
	`, user.ID, user.Email, user.Password, user.Name)

	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetAction returns the action with the given id, or ErrNotFound.
func (s *Store) GetAction(ctx context.Context, kind Kind, id string) (*models.Action, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = ?`, actionColumns(kind), kind.Table)

	action, err := scanAction(kind, s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", kind.Table, err)
	}
	return action, nil
}

// ListActionsByUser returns all actions owned by userID, most recently
// created first.
func (s *Store) ListActionsByUser(ctx context.Context, kind Kind, userID string) ([]models.Action, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE userId = ?
		ORDER BY createdAt DESC
	`, actionColumns(kind), kind.Table)

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", kind.Table, err)
	}
	defer rows.Close()

	actions := []models.Action{}
	for rows.Next() {
		action, err := scanAction(kind, rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", kind.Table, err)
		}
		actions = append(actions, *action)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", kind.Table, err)
	}
	return actions, nil
}

// InsertAction stores a new action item.
func (s *Store) InsertAction(ctx context.Context, kind Kind, action *models.Action) error {
	var query string
	var args []any

	if kind.HasAssignee {
		query = fmt.Sprintf(`
			INSERT INTO %s (id, title, description, section, dueDate, status, assignee, completedAt, createdAt, userId)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, kind.Table)
		args = []any{
			action.ID, action.Title, action.Description, action.Section, action.DueDate,
			action.Status, action.Assignee, action.CompletedAt, action.CreatedAt, action.UserID,
		}
	} else {
		query = fmt.Sprintf(`
			INSERT INTO %s (id, title, description, section, dueDate, status, completedAt, createdAt, userId)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, kind.Table)
		args = []any{
			action.ID, action.Title, action.Description, action.Section, action.DueDate,
			action.Status, action.CompletedAt, action.CreatedAt, action.UserID,
		}
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", kind.Table, err)
	}
	return nil
}

// UpdateAction applies the allow-listed keys present in fields onto the
// stored record and returns the full updated record. Keys absent from fields
// leave the stored value untouched; keys outside the allow-list are ignored.
// Returns ErrNotFound when no record with the id exists.
func (s *Store) UpdateAction(ctx context.Context, kind Kind, id string, fields map[string]any) (*models.Action, error) {
	sets := make([]string, 0, len(updatableColumns))
	args := make([]any, 0, len(updatableColumns)+1)

	for _, col := range updatableColumns {
		if col == "assignee" && !kind.HasAssignee {
			continue
		}
		value, ok := fields[col]
		if !ok {
			continue
		}
		sets = append(sets, col+" = ?")
		args = append(args, value)
	}

	// Nothing updatable in the payload: the record itself is the answer.
	if len(sets) == 0 {
		return s.GetAction(ctx, kind, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = ?`, kind.Table, strings.Join(sets, ", "))

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", kind.Table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return s.GetAction(ctx, kind, id)
}

// DeleteAction removes the action with the given id, or returns ErrNotFound.
func (s *Store) DeleteAction(ctx context.Context, kind Kind, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, kind.Table)

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", kind.Table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func actionColumns(kind Kind) string {
	if kind.HasAssignee {
		return "id, title, description, section, dueDate, status, assignee, completedAt, createdAt, userId"
	}
	return "id, title, description, section, dueDate, status, completedAt, createdAt, userId"
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAction(kind Kind, row rowScanner) (*models.Action, error) {
	var action models.Action
	var err error

	if kind.HasAssignee {
		err = row.Scan(
			&action.ID, &action.Title, &action.Description, &action.Section, &action.DueDate,
			&action.Status, &action.Assignee, &action.CompletedAt, &action.CreatedAt, &action.UserID,
		)
	} else {
		err = row.Scan(
			&action.ID, &action.Title, &action.Description, &action.Section, &action.DueDate,
			&action.Status, &action.CompletedAt, &action.CreatedAt, &action.UserID,
		)
	}
	if err != nil {
		return nil, err
	}
	return &action, nil
}
