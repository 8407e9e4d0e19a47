package apperror

import "errors"

var (
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrInvalidInput     = errors.New("invalid input")
	ErrSessionNotFound  = errors.New("session not found")
	ErrUnknownStoreType = errors.New("unknown session store type")
	ErrCorruptSession   = errors.New("corrupt session snapshot")
)
