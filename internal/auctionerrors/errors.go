package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound      = errors.New("auction not found")
	ErrPlayerNotFound       = errors.New("player not found")
	ErrTeamNotFound         = errors.New("team not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNoBids               = errors.New("no bids placed for player")
	ErrPlayerSold           = errors.New("player already sold")
)

// business logic errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrAuctionNotLive     = errors.New("auction not live")
	ErrBudgetExceeded     = errors.New("budget exceeded")
	ErrBidTooLow          = errors.New("bid amount too low")
	ErrRosterFull         = errors.New("team roster full")
	ErrWinningTeamMissing = errors.New("winning team missing")
	ErrInvalidStatus      = errors.New("invalid auction status")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

// access errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)
