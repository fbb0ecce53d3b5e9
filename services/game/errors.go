package game

import "errors"

// Command rejections. Every operation that returns one of these leaves the
// run state exactly as it was.
var (
	ErrInvalidSelection  = errors.New("invalid selection")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInventoryFull     = errors.New("inventory full")
	ErrNotFound          = errors.New("not found")
	ErrIllegalTransition = errors.New("illegal transition")
)

// ErrorCode maps a command rejection to the identifier sent to clients.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidSelection):
		return "invalid_selection"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrInventoryFull):
		return "inventory_full"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrIllegalTransition):
		return "illegal_transition"
	default:
		return "internal_error"
	}
}
