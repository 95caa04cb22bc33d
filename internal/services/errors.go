package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
	// ErrConflict is the base of every state conflict; handlers map it to 409.
	ErrConflict = errors.New("conflict")

	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrAccountNotActivated    = errors.New("account not activated")
	ErrAccountPendingApproval = errors.New("account pending approval")
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrTokenRevoked           = errors.New("token has been revoked")

	ErrShareExpired = errors.New("share link expired or inactive")

	ErrActiveCustody   = fmt.Errorf("%w: officer already has an active custody", ErrConflict)
	ErrAlreadyReturned = fmt.Errorf("%w: custody already returned", ErrConflict)
	ErrItemReturned    = fmt.Errorf("%w: item already returned", ErrConflict)
	ErrItemNotReturned = fmt.Errorf("%w: item has not been returned", ErrConflict)
	ErrNoPendingItems  = fmt.Errorf("%w: no pending items to return", ErrConflict)
	ErrNotPending      = fmt.Errorf("%w: acceptance is not pending", ErrConflict)
	ErrOperationClosed = fmt.Errorf("%w: operation is not active", ErrConflict)
	ErrAlreadyMember   = fmt.Errorf("%w: user already belongs to a team in this operation", ErrConflict)
)
