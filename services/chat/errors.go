package chat

import (
	"errors"

	chatRepo "drdhobi/database/repository/chat"
)

var (
	// ErrAccessDenied is returned when a caller touches a conversation that
	// is not theirs and they are not an admin.
	ErrAccessDenied = errors.New("access denied")
	// ErrInvalidStatus is returned for an unknown conversation status.
	ErrInvalidStatus = errors.New("invalid conversation status")
	// ErrNotFound is returned when the conversation does not exist.
	ErrNotFound = chatRepo.ErrNotFound
)
