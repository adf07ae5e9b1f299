package sdk

import "errors"

// Ledger-level failures. Program packages wrap these with call detail and
// tests match them with errors.Is.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountExists     = errors.New("account already exists")
	ErrAccountFrozen     = errors.New("account is frozen")
	ErrUnauthorized      = errors.New("authority did not sign and no valid derivation proof supplied")
	ErrNonZeroBalance    = errors.New("account still holds a balance")
)
