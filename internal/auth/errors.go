package auth

import "errors"

var (
	ErrAccountLocked = errors.New("account is locked")
	ErrNotSignedIn   = errors.New("no user signed in")
)
