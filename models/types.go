package models

import "time"

// Input limits shared by the API and the create view
const (
	MinOptions           = 2
	MaxOptions           = 10
	MaxTitleLen          = 200
	MaxDescriptionLen    = 500
	MaxOptionTitleLen    = 100
	MaxOptionDescription = 200
)

// Request types

type OptionInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CreatePollRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Options     []OptionInput `json:"options"`
}

type CastVoteRequest struct {
	PollID   string `json:"poll_id"`
	OptionID string `json:"option_id"`
}

// Response types

type CastVoteResponse struct {
	Message string `json:"message"`
	VoteID  string `json:"vote_id"`
}

type DeletePollResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

type RootResponse struct {
	Message string `json:"message"`
	Health  string `json:"health"`
	Metrics string `json:"metrics"`
}

// Domain types

type Option struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Votes       int    `json:"votes"` // derived from vote rows
}

type Poll struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Options     []Option  `json:"options"`
	CreatedAt   time.Time `json:"created_at"`
	Active      bool      `json:"active"`
}

// HasOption reports whether optionID belongs to the poll
func (p *Poll) HasOption(optionID string) bool {
	for _, opt := range p.Options {
		if opt.ID == optionID {
			return true
		}
	}
	return false
}

type Vote struct {
	ID        string    `json:"id"`
	PollID    string    `json:"poll_id"`
	OptionID  string    `json:"option_id"`
	VoterIP   string    `json:"-"` // Never expose in JSON
	Timestamp time.Time `json:"timestamp"`
}

// Results types

type OptionResult struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Votes       int     `json:"votes"`
	Percentage  float64 `json:"percentage"`
}

type Results struct {
	PollID          string         `json:"poll_id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	TotalVotes      int            `json:"total_votes"`
	Options         []OptionResult `json:"options"`
	LeadingOptionID string         `json:"leading_option_id,omitempty"`
}

// Error response

type ErrorResponse struct {
	Detail string    `json:"detail"`
	Kind   ErrorKind `json:"kind,omitempty"`
}
