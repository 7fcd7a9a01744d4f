package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrStartupNotFound     = errors.New("startup not found")
	ErrInvalidFundingRange = errors.New("invalid funding range")

	ErrInterestNotFound  = errors.New("interest not found")
	ErrInterestExists    = errors.New("interest already exists")
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrEventNotFound        = errors.New("event not found")
	ErrFeedbackNotFound     = errors.New("ai feedback not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrForbidden = errors.New("access forbidden")
)
