package auctionerrors

import (
	"errors"
	"fmt"
)

// Store-level errors
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrAuctionNotFound  = errors.New("auction not found or inactive")
	ErrBidNotFound      = errors.New("no active bid found")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// business logic errors
var (
	ErrValidation        = errors.New("invalid request")
	ErrInsufficientFunds = errors.New("insufficient appraiCENTS balance")
	ErrBidTooLow         = errors.New("bid amount too low")
)

// BidTooLowError carries the minimum acceptable bid for the auction. It
// matches ErrBidTooLow under errors.Is.
type BidTooLowError struct {
	Minimum int64
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid must be at least %d aC", e.Minimum)
}

func (e *BidTooLowError) Unwrap() error { return ErrBidTooLow }
