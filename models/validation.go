package models

import (
	"strings"
	"unicode/utf8"
)

// NormalizeCreatePoll trims every field and drops options with a blank title
func NormalizeCreatePoll(req CreatePollRequest) CreatePollRequest {
	out := CreatePollRequest{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Options:     make([]OptionInput, 0, len(req.Options)),
	}
	for _, opt := range req.Options {
		title := strings.TrimSpace(opt.Title)
		if title == "" {
			continue
		}
		out.Options = append(out.Options, OptionInput{
			Title:       title,
			Description: strings.TrimSpace(opt.Description),
		})
	}
	return out
}

// ValidateCreatePoll normalizes req and checks it against the input limits.
// The returned error is always a *Error of kind KindValidation.
func ValidateCreatePoll(req CreatePollRequest) (CreatePollRequest, error) {
	req = NormalizeCreatePoll(req)

	if req.Title == "" {
		return req, NewError(KindValidation, "Poll title is required")
	}
	if req.Description == "" {
		return req, NewError(KindValidation, "Poll description is required")
	}
	if len(req.Options) < MinOptions {
		return req, NewError(KindValidation, "At least %d options are required", MinOptions)
	}
	if len(req.Options) > MaxOptions {
		return req, NewError(KindValidation, "At most %d options are allowed", MaxOptions)
	}
	if utf8.RuneCountInString(req.Title) > MaxTitleLen {
		return req, NewError(KindValidation, "Poll title must be at most %d characters", MaxTitleLen)
	}
	if utf8.RuneCountInString(req.Description) > MaxDescriptionLen {
		return req, NewError(KindValidation, "Poll description must be at most %d characters", MaxDescriptionLen)
	}
	for i, opt := range req.Options {
		if utf8.RuneCountInString(opt.Title) > MaxOptionTitleLen {
			return req, NewError(KindValidation, "Option %d title must be at most %d characters", i+1, MaxOptionTitleLen)
		}
		if utf8.RuneCountInString(opt.Description) > MaxOptionDescription {
			return req, NewError(KindValidation, "Option %d description must be at most %d characters", i+1, MaxOptionDescription)
		}
	}

	return req, nil
}

// ValidateCastVote checks that both identifiers are present
func ValidateCastVote(req CastVoteRequest) error {
	if strings.TrimSpace(req.PollID) == "" {
		return NewError(KindValidation, "poll_id is required")
	}
	if strings.TrimSpace(req.OptionID) == "" {
		return NewError(KindValidation, "option_id is required")
	}
	return nil
}
