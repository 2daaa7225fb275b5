package domain

import "errors"

var (
	ErrBotUserNotFound         = errors.New("bot user not found")
	ErrInvalidVerificationCode = errors.New("invalid verification code")
	ErrCategoryNotFound        = errors.New("category not found")
	ErrEmptyGoalTitle          = errors.New("goal title cannot be empty")
	ErrGoalTitleTooLong        = errors.New("goal title is too long")
)
