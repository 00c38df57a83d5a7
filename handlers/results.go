// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/results"
	"github.com/danielhkuo/quickly-vote/store"
)

type ResultsHandler struct {
	polls *store.PollStore
	votes *store.VoteStore
	cfg   cliparse.Config
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{
		polls: store.NewPollStore(db),
		votes: store.NewVoteStore(db),
		cfg:   cfg,
	}
}

// GetResults handles GET /api/polls/{id}/results
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindValidation, "poll_id is required")
		return
	}

	poll, err := h.polls.Get(r.Context(), pollID)
	if err != nil {
		middleware.WriteError(w, err, "Failed to fetch results")
		return
	}

	counts, err := h.votes.CountsByOption(r.Context(), pollID)
	if err != nil {
		middleware.WriteError(w, err, "Failed to fetch results")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results.Compute(poll, counts))
}
