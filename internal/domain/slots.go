package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ReelCount is the number of reels on the payline
const ReelCount = 3

// MaxWager bounds a single bet. With catalog multipliers capped at
// MaxMultiplier every payout stays a finite float64 on the wire.
const MaxWager = 1_000_000_000

// MaxMultiplier bounds a catalog symbol's payout multiplier
const MaxMultiplier = 1_000_000

// Draw holds one catalog index per reel
type Draw [ReelCount]int

// Outcome is the authoritative result of a spin
type Outcome struct {
	Draw   Draw
	Wager  decimal.Decimal
	Payout decimal.Decimal
}

// IsWin reports whether the outcome pays anything
func (o Outcome) IsWin() bool {
	return o.Payout.IsPositive()
}

// ToResponse converts the outcome to its wire representation
func (o Outcome) ToResponse() SpinResponse {
	return SpinResponse{
		Positions: o.Draw[:],
		WinAmount: o.Payout.InexactFloat64(),
	}
}

// SpinRequest is the body of POST /api/spin
type SpinRequest struct {
	Bet *float64 `json:"bet" validate:"required,wager"`
}

// SpinResponse is the success body of POST /api/spin
type SpinResponse struct {
	Positions []int   `json:"positions"`
	WinAmount float64 `json:"winAmount"`
}

// ParseWager validates a raw wager and converts it to a decimal amount.
// Zero, negative, NaN, infinite and above-MaxWager values are rejected with ErrInvalidWager.
func ParseWager(raw float64) (decimal.Decimal, error) {
	if math.IsNaN(raw) || math.IsInf(raw, 0) || raw <= 0 || raw > MaxWager {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidWager, raw)
	}
	return decimal.NewFromFloat(raw), nil
}

// SpinResolvedPayload is the event payload for spin.resolved events
type SpinResolvedPayload struct {
	Positions []int   `json:"positions"`
	Wager     float64 `json:"wager"`
	Payout    float64 `json:"payout"`
	IsWin     bool    `json:"is_win"`
	Timestamp int64   `json:"timestamp"`
}

// SpinSettledPayload is the event payload for spin.settled events
type SpinSettledPayload struct {
	Positions  []int   `json:"positions"`
	Wager      float64 `json:"wager"`
	Payout     float64 `json:"payout"`
	Balance    float64 `json:"balance"`
	IsWin      bool    `json:"is_win"`
	DurationMs int64   `json:"duration_ms"`
	Timestamp  int64   `json:"timestamp"`
}

// SpinFailedPayload is the event payload for spin.failed events
type SpinFailedPayload struct {
	Wager     float64 `json:"wager"`
	Refunded  bool    `json:"refunded"`
	Reason    string  `json:"reason"`
	Timestamp int64   `json:"timestamp"`
}
