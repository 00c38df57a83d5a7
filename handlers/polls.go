// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/metrics"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/store"
)

type PollHandler struct {
	polls *store.PollStore
	cfg   cliparse.Config
}

func NewPollHandler(db *sql.DB, cfg cliparse.Config) *PollHandler {
	return &PollHandler{polls: store.NewPollStore(db), cfg: cfg}
}

// CreatePoll handles POST /api/polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindValidation, "Invalid JSON")
		return
	}

	// Validate input
	req, err := models.ValidateCreatePoll(req)
	if err != nil {
		middleware.WriteError(w, err, "Failed to create poll")
		return
	}

	poll := &models.Poll{
		Title:       req.Title,
		Description: req.Description,
		Options:     make([]models.Option, 0, len(req.Options)),
	}
	for _, opt := range req.Options {
		poll.Options = append(poll.Options, models.Option{
			Title:       opt.Title,
			Description: opt.Description,
		})
	}

	created, err := h.polls.Create(r.Context(), poll)
	if err != nil {
		middleware.WriteError(w, err, "Failed to create poll")
		return
	}

	metrics.PollsCreated.Inc()
	slog.Info("poll created", "poll_id", created.ID, "options", len(created.Options))

	middleware.JSONResponse(w, http.StatusCreated, created)
}

// ListPolls handles GET /api/polls
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.polls.List(r.Context())
	if err != nil {
		middleware.WriteError(w, err, "Failed to fetch polls")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, polls)
}

// GetPoll handles GET /api/polls/{id}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindValidation, "poll_id is required")
		return
	}

	poll, err := h.polls.Get(r.Context(), pollID)
	if err != nil {
		middleware.WriteError(w, err, "Failed to fetch poll")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, poll)
}

// DeletePoll handles DELETE /api/polls/{id}
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindValidation, "poll_id is required")
		return
	}

	if err := h.polls.Delete(r.Context(), pollID); err != nil {
		middleware.WriteError(w, err, "Failed to delete poll")
		return
	}

	metrics.PollsDeleted.Inc()
	slog.Info("poll deleted", "poll_id", pollID)

	middleware.JSONResponse(w, http.StatusOK, models.DeletePollResponse{
		Message: "Poll deleted successfully",
	})
}
