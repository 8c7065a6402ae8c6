package spin

import (
	"fmt"
	"time"
)

// Client defaults, matching the browser client's initial state
const (
	DefaultBaseDuration = 2000 * time.Millisecond
	DefaultStagger      = 500 * time.Millisecond
	DefaultBalance      = 1000
	DefaultBet          = 10
	MinBet              = 1
)

// Phase is the controller's lifecycle state
type Phase string

// Lifecycle phases
const (
	PhaseIdle      Phase = "idle"
	PhaseSpinning  Phase = "spinning"
	PhaseResolving Phase = "resolving"
	PhaseSettled   Phase = "settled"
)

// Lifecycle events
const (
	eventSpin    = "spin"
	eventResolve = "resolve"
	eventSettle  = "settle"
	eventReset   = "reset"
	eventFail    = "fail"
)

// RefundPolicy decides what happens to the debited wager when the outcome request fails
type RefundPolicy string

// Refund policies
const (
	RefundOnTransportError RefundPolicy = "refund"
	NoRefund               RefundPolicy = "none"
)

// ParseRefundPolicy converts a config value to a RefundPolicy
func ParseRefundPolicy(s string) (RefundPolicy, error) {
	switch RefundPolicy(s) {
	case RefundOnTransportError, "":
		return RefundOnTransportError, nil
	case NoRefund:
		return NoRefund, nil
	default:
		return "", fmt.Errorf(ErrMsgUnknownRefundPolicy, s)
	}
}

// User-visible messages
const (
	MsgSpinning       = "Spinning..."
	MsgWinFormat      = "You won %s!"
	MsgNoWin          = "No win this time."
	MsgTransportError = "An error occurred. Please try again."
)

// API client
const (
	SpinPath           = "/api/spin"
	DefaultHTTPTimeout = 10 * time.Second
	HeaderAPIKey       = "X-API-Key"
	HeaderContentType  = "Content-Type"
	ContentTypeJSON    = "application/json"
	maxErrorBodyBytes  = 1024
)

// Error messages
const (
	ErrMsgUnknownRefundPolicy = "unknown refund policy %q"
	ErrMsgMarshalRequest      = "failed to marshal spin request: %w"
	ErrMsgCreateRequest       = "failed to create spin request: %w"
	ErrMsgSendRequest         = "%w: request failed: %v"
	ErrMsgUnexpectedStatus    = "%w: unexpected status %d: %s"
	ErrMsgDecodeResponse      = "%w: failed to decode response: %v"
	ErrMsgMalformedPositions  = "%w: expected %d positions, got %d"
	ErrMsgPositionOutOfRange  = "%w: reel %d: %w"
	ErrMsgInvalidWinAmount    = "%w: invalid win amount %v"
	ErrMsgTransition          = "lifecycle event %s: %w"
	ErrMsgNonPositiveAmount   = "amount must be positive: %s"
)

// Log messages
const (
	LogMsgSpinStarted          = "Spin started"
	LogMsgSpinRejected         = "Spin rejected"
	LogMsgOutcomeReceived      = "Outcome received"
	LogMsgSpinSettled          = "Spin settled"
	LogMsgSpinFailed           = "Spin failed"
	LogMsgWagerRefunded        = "Wager refunded after failed spin"
	LogMsgRefundFailed         = "Failed to refund wager"
	LogMsgCreditFailed         = "Failed to credit payout"
	LogMsgTransitionError      = "Lifecycle transition failed"
	LogMsgPublishFailed        = "Failed to publish spin event"
	LogMsgPublishAfterShutdown = "Dropping spin event after shutdown"
	LogMsgPhaseChanged         = "Spin phase changed"
	LogMsgCatalogMismatch      = "Declared payout disagrees with local catalog"
)
