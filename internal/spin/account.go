package spin

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/osse101/SlotReveal_Go/internal/domain"
)

// Account is the externally owned balance the controller debits and credits
type Account interface {
	Balance() decimal.Decimal
	Debit(amount decimal.Decimal) error
	Credit(amount decimal.Decimal) error
}

// MemoryAccount is an in-process Account
type MemoryAccount struct {
	mu      sync.Mutex
	balance decimal.Decimal
}

// NewMemoryAccount creates an account holding the initial balance
func NewMemoryAccount(initial decimal.Decimal) *MemoryAccount {
	return &MemoryAccount{balance: initial}
}

// Balance returns the current balance
func (a *MemoryAccount) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Debit removes amount, refusing to overdraw
func (a *MemoryAccount) Debit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf(ErrMsgNonPositiveAmount, amount)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.balance.LessThan(amount) {
		return domain.ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// Credit adds amount. Zero is accepted so a losing payout can be applied uniformly.
func (a *MemoryAccount) Credit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf(ErrMsgNonPositiveAmount, amount)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance = a.balance.Add(amount)
	return nil
}
