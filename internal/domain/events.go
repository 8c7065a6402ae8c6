package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "spin.resolved")
const (
	// EventTypeSpinResolved is published by the outcome engine after a draw
	EventTypeSpinResolved = "spin.resolved"

	// EventTypeSpinSettled is published by the spin controller once the payout is applied
	EventTypeSpinSettled = "spin.settled"

	// EventTypeSpinFailed is published by the spin controller when the outcome request fails
	EventTypeSpinFailed = "spin.failed"
)
