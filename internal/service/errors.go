package service

import "errors"

// Business-rule errors map to 400s, the not-found pair to 404s. Messages
// are client-facing.
var (
	ErrWalletRequired      = errors.New("wallet address is required")
	ErrPropertyNotFound    = errors.New("property not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrAlreadyOwned        = errors.New("property already owned")
	ErrInsufficientBalance = errors.New("insufficient $BRIKS balance")
	ErrNotOwner            = errors.New("you don't own this property")
)
