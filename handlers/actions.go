package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/actionflow/actionflow/auth"
	"github.com/actionflow/actionflow/middleware"
	"github.com/actionflow/actionflow/models"
	"github.com/actionflow/actionflow/store"
)

// ActionHandler serves the CRUD surface for one action-item kind. The router
// constructs it twice: once for resource actions, once for activity actions.
type ActionHandler struct {
	store *store.Store
	kind  store.Kind
}

func NewActionHandler(st *store.Store, kind store.Kind) *ActionHandler {
	return &ActionHandler{store: st, kind: kind}
}

// List handles GET /{kind}/{userId}
func (h *ActionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	actions, err := h.store.ListActionsByUser(r.Context(), h.kind, userID)
	if err != nil {
		slog.Error("failed to list actions", "table", h.kind.Table, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, actions)
}

// Create handles POST /{kind}
// The server assigns id and createdAt; status defaults to Pending and
// completedAt starts null.
func (h *ActionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateActionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Section == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "section is required")
		return
	}
	if req.DueDate == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "dueDate is required")
		return
	}
	if req.UserID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "userId is required")
		return
	}
	if h.kind.HasAssignee && req.Assignee == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "assignee is required")
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusPending
	}

	description := req.Description
	if !h.kind.HasAssignee && description == nil {
		empty := ""
		description = &empty
	}

	action := &models.Action{
		ID:          auth.NewID(),
		Title:       req.Title,
		Description: description,
		Section:     req.Section,
		DueDate:     req.DueDate,
		Status:      status,
		CompletedAt: nil,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		UserID:      req.UserID,
	}
	if h.kind.HasAssignee {
		action.Assignee = &req.Assignee
	}

	if err := h.store.InsertAction(r.Context(), h.kind, action); err != nil {
		slog.Error("failed to insert action", "table", h.kind.Table, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("action created", "table", h.kind.Table, "id", action.ID, "user_id", action.UserID)

	middleware.JSONResponse(w, http.StatusOK, action)
}

// Update handles PUT /{kind}/{id}
// Only fields present in the body change; absence means leave unchanged.
func (h *ActionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var fields map[string]any
	if err := middleware.ParseJSONBody(r, &fields); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	action, err := h.store.UpdateAction(r.Context(), h.kind, id, fields)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, h.kind.Label+" not found")
		return
	}
	if err != nil {
		slog.Error("failed to update action", "table", h.kind.Table, "id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("action updated", "table", h.kind.Table, "id", id)

	middleware.JSONResponse(w, http.StatusOK, action)
}

// Delete handles DELETE /{kind}/{id}
func (h *ActionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.store.DeleteAction(r.Context(), h.kind, id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, h.kind.Label+" not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete action", "table", h.kind.Table, "id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("action deleted", "table", h.kind.Table, "id", id)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteResponse{Success: true})
}
