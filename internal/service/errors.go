package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrValidationNoUserID        = errors.New("no user ID for skill was given")
	ErrValidationEmptySkillName  = errors.New("skill name must not be empty")
	ErrValidationNoLastPractice  = errors.New("last practice date must be set")
	ErrValidationDecayRateBounds = errors.New("decay rate must be between 0.01 and 0.1")
)
