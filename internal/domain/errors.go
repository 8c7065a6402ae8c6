package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Wager errors
	ErrMsgInvalidWager      = "invalid wager"
	ErrMsgInsufficientFunds = "insufficient funds"

	// Lifecycle errors
	ErrMsgSpinInProgress = "a spin is already in progress"

	// Transport errors
	ErrMsgTransport = "outcome request failed"

	// Animation errors
	ErrMsgAnimationFault = "reel is not mounted"

	// Catalog errors
	ErrMsgInvalidCatalog = "invalid catalog"

	// Randomness errors
	ErrMsgRandomSourceExhausted = "random source exhausted"
)

var (
	// ErrInvalidWager is returned when a wager is not a positive finite number.
	// No draw is performed when this error is returned.
	ErrInvalidWager = errors.New(ErrMsgInvalidWager)

	// ErrInsufficientFunds is returned when the account balance is below the wager
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// ErrSpinInProgress is returned for a spin request while another spin is active
	ErrSpinInProgress = errors.New(ErrMsgSpinInProgress)

	// ErrTransport wraps every failure of the outcome request (network, status, payload)
	ErrTransport = errors.New(ErrMsgTransport)

	// ErrAnimationFault marks a reel that was absent when its animation started
	ErrAnimationFault = errors.New(ErrMsgAnimationFault)

	// ErrInvalidCatalog is returned when a symbol catalog fails validation
	ErrInvalidCatalog = errors.New(ErrMsgInvalidCatalog)

	// ErrRandomSourceExhausted is returned when rejection sampling runs out of attempts
	ErrRandomSourceExhausted = errors.New(ErrMsgRandomSourceExhausted)
)
