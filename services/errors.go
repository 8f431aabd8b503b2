package services

import "errors"

// Общие ошибки сервисного слоя; маппятся в HTTP-статусы в handlers.
var (
	ErrNotFound           = errors.New("requested resource not found")
	ErrValidationFailed   = errors.New("validation failed")
	ErrForbiddenOperation = errors.New("operation not allowed for the current user")

	ErrTournamentNotFound = errors.New("tournament not found")

	ErrTemplateNotFound              = errors.New("placement system template not found")
	ErrPlacementNotConfigured        = errors.New("placement system is not configured for this tournament")
	ErrPlacementDisabled             = errors.New("placement system is disabled for this tournament")
	ErrInvalidPlacementConfiguration = errors.New("invalid placement system configuration")
	ErrNoGroupStandings              = errors.New("tournament has no group standings")

	ErrPlacementMatchNotFound         = errors.New("placement match not found")
	ErrPlacementMatchNotReady         = errors.New("placement match participants are not resolved yet")
	ErrPlacementMatchAlreadyCompleted = errors.New("placement match result is already recorded")
	ErrInvalidWinner                  = errors.New("winner must be one of the match participants")
)
