package domain

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUsernameConflict  = errors.New("username conflict")
	ErrSavedMazeNotFound = errors.New("saved maze not found")
)
