// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/metrics"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/store"
)

type VotingHandler struct {
	votes *store.VoteStore
	cfg   cliparse.Config
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{votes: store.NewVoteStore(db), cfg: cfg}
}

// CastVote handles POST /api/votes
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		metrics.VotesRejected.WithLabelValues(string(models.KindValidation)).Inc()
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindValidation, "Invalid JSON")
		return
	}

	if err := models.ValidateCastVote(req); err != nil {
		metrics.VotesRejected.WithLabelValues(string(models.KindValidation)).Inc()
		middleware.WriteError(w, err, "Failed to cast vote")
		return
	}

	// Voter identity is the requester's network address
	voter := auth.VoterIdentity(r, h.cfg.TrustProxy)
	if voter == "" {
		voter = "unknown"
	}

	pollID := strings.TrimSpace(req.PollID)
	optionID := strings.TrimSpace(req.OptionID)

	vote, err := h.votes.Cast(r.Context(), pollID, optionID, voter)
	if err != nil {
		metrics.VotesRejected.WithLabelValues(string(models.KindOf(err))).Inc()
		middleware.WriteError(w, err, "Failed to cast vote")
		return
	}

	metrics.VotesCast.Inc()
	slog.Info("vote cast", "poll_id", pollID, "option_id", optionID, "vote_id", vote.ID)

	middleware.JSONResponse(w, http.StatusOK, models.CastVoteResponse{
		Message: "Vote cast successfully",
		VoteID:  vote.ID,
	})
}
