package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/actionflow/actionflow/auth"
	"github.com/actionflow/actionflow/models"
)

// Demo account created on first run so a fresh install is usable immediately.
const (
	DemoUserID   = "user1"
	DemoEmail    = "demo@actionflow.com"
	DemoPassword = "demo123"
	DemoName     = "Demo User"
)

type seedAction struct {
	title     string
	section   string
	dueDate   string
	assignee  string
	completed bool
}

// Seed inserts the demo user and example action items when the user store is
// empty. A non-empty user store makes this a no-op, so it is safe to call on
// every startup.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(DemoPassword)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (id, email, password, name)
		VALUES (?, ?, ?, ?)
	`, DemoUserID, DemoEmail, hash, DemoName)
	if err != nil {
		return fmt.Errorf("failed to insert demo user: %w", err)
	}

	now := time.Now().UTC()
	today := now.Format("2006-01-02")
	tomorrow := now.Add(24 * time.Hour).Format("2006-01-02")
	yesterday := now.Add(-24 * time.Hour).Format("2006-01-02")
	createdAt := now.Format(time.RFC3339)

	resourceActions := []seedAction{
		{title: "Review data pipeline architecture", section: "DAP", dueDate: today, assignee: "Rohit Hota"},
		{title: "Optimize ETL workflows", section: "DAP", dueDate: today, assignee: "Bittu"},
		{title: "Train ML model for predictions", section: "AI/ML", dueDate: today, assignee: "Aditya"},
		{title: "Interview senior engineer", section: "Hiring", dueDate: tomorrow, assignee: "Asif"},
		{title: "Prepare Q1 sales strategy", section: "GTM", dueDate: today, assignee: "Gokul", completed: true},
		{title: "Review candidate profiles", section: "Hiring", dueDate: yesterday, assignee: "Rohit Hota"},
		{title: "Deploy microservices to production", section: "Delivery", dueDate: tomorrow, assignee: "Bittu"},
	}

	activityActions := []seedAction{
		{title: "Set up CI/CD pipeline", section: "DAP", dueDate: today},
		{title: "Deploy new features", section: "DAP", dueDate: tomorrow},
		{title: "Fine-tune recommendation algorithm", section: "AI/ML", dueDate: today, completed: true},
		{title: "Schedule interviews for next week", section: "Hiring", dueDate: tomorrow},
		{title: "Launch marketing campaign", section: "GTM", dueDate: today},
	}

	for _, a := range resourceActions {
		status, completedAt := seedStatus(a, createdAt)
		_, err := db.Exec(`
			INSERT INTO resource_actions (id, title, section, dueDate, status, assignee, completedAt, createdAt, userId)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, auth.NewID(), a.title, a.section, a.dueDate, status, a.assignee, completedAt, createdAt, DemoUserID)
		if err != nil {
			return fmt.Errorf("failed to seed resource action: %w", err)
		}
	}

	for _, a := range activityActions {
		status, completedAt := seedStatus(a, createdAt)
		_, err := db.Exec(`
			INSERT INTO activity_actions (id, title, description, section, dueDate, status, completedAt, createdAt, userId)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, auth.NewID(), a.title, "", a.section, a.dueDate, status, completedAt, createdAt, DemoUserID)
		if err != nil {
			return fmt.Errorf("failed to seed activity action: %w", err)
		}
	}

	return nil
}

func seedStatus(a seedAction, completedAt string) (string, *string) {
	if a.completed {
		return models.StatusCompleted, &completedAt
	}
	return models.StatusPending, nil
}
