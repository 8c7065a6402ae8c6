package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/SlotReveal_Go/internal/domain"
)

// Symbol is one immutable catalog entry
type Symbol struct {
	ID         int             `json:"id"`
	Glyph      string          `json:"glyph"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

var maxMultiplier = decimal.NewFromInt(domain.MaxMultiplier)

// Catalog is a fixed, ordered sequence of symbols.
// The zero value is an empty catalog; use New or Default.
type Catalog struct {
	symbols []Symbol
}

// New validates the symbols and returns a catalog holding its own copy of them
func New(symbols ...Symbol) (Catalog, error) {
	if len(symbols) == 0 {
		return Catalog{}, fmt.Errorf(ErrMsgEmptyCatalog, domain.ErrInvalidCatalog)
	}

	seen := make(map[int]struct{}, len(symbols))
	for _, s := range symbols {
		if _, dup := seen[s.ID]; dup {
			return Catalog{}, fmt.Errorf(ErrMsgDuplicateSymbolID, domain.ErrInvalidCatalog, s.ID)
		}
		seen[s.ID] = struct{}{}

		if !s.Multiplier.IsPositive() {
			return Catalog{}, fmt.Errorf(ErrMsgNonPositiveMult, domain.ErrInvalidCatalog, s.ID, s.Multiplier)
		}
		if s.Multiplier.GreaterThan(maxMultiplier) {
			return Catalog{}, fmt.Errorf(ErrMsgMultiplierTooLarge, domain.ErrInvalidCatalog, s.ID, s.Multiplier, domain.MaxMultiplier)
		}
		if s.Glyph == "" {
			return Catalog{}, fmt.Errorf(ErrMsgMissingGlyph, domain.ErrInvalidCatalog, s.ID)
		}
	}

	owned := make([]Symbol, len(symbols))
	copy(owned, symbols)
	return Catalog{symbols: owned}, nil
}

// MustNew is like New but panics on an invalid catalog
func MustNew(symbols ...Symbol) Catalog {
	c, err := New(symbols...)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the standard six-symbol catalog
func Default() Catalog {
	return MustNew(
		Symbol{ID: SymbolIDCherry, Glyph: GlyphCherry, Multiplier: decimal.NewFromInt(MultiplierCherry)},
		Symbol{ID: SymbolIDLemon, Glyph: GlyphLemon, Multiplier: decimal.NewFromInt(MultiplierLemon)},
		Symbol{ID: SymbolIDOrange, Glyph: GlyphOrange, Multiplier: decimal.NewFromInt(MultiplierOrange)},
		Symbol{ID: SymbolIDGrape, Glyph: GlyphGrape, Multiplier: decimal.NewFromInt(MultiplierGrape)},
		Symbol{ID: SymbolIDBell, Glyph: GlyphBell, Multiplier: decimal.NewFromInt(MultiplierBell)},
		Symbol{ID: SymbolIDDiamond, Glyph: GlyphDiamond, Multiplier: decimal.NewFromInt(MultiplierDiamond)},
	)
}

// Len returns the number of symbols
func (c Catalog) Len() int {
	return len(c.symbols)
}

// At returns the symbol at index i. It panics when i is out of range,
// like a slice index would; use Lookup for untrusted indices.
func (c Catalog) At(i int) Symbol {
	return c.symbols[i]
}

// Lookup returns the symbol at index i or an error when i is out of range
func (c Catalog) Lookup(i int) (Symbol, error) {
	if i < 0 || i >= len(c.symbols) {
		return Symbol{}, fmt.Errorf(ErrMsgIndexOutOfRange, domain.ErrInvalidCatalog, i, len(c.symbols))
	}
	return c.symbols[i], nil
}

// Symbols returns a copy of the ordered symbols
func (c Catalog) Symbols() []Symbol {
	out := make([]Symbol, len(c.symbols))
	copy(out, c.symbols)
	return out
}

// Equal reports whether two catalogs hold the same symbols in the same order
func (c Catalog) Equal(other Catalog) bool {
	if len(c.symbols) != len(other.symbols) {
		return false
	}
	for i, s := range c.symbols {
		o := other.symbols[i]
		if s.ID != o.ID || s.Glyph != o.Glyph || !s.Multiplier.Equal(o.Multiplier) {
			return false
		}
	}
	return true
}

// Payout pays wager x multiplier only when every reel shows the same symbol ID.
// Indices must be in range.
func (c Catalog) Payout(draw domain.Draw, wager decimal.Decimal) decimal.Decimal {
	first := c.symbols[draw[0]]
	for _, idx := range draw[1:] {
		if c.symbols[idx].ID != first.ID {
			return decimal.Zero
		}
	}
	return wager.Mul(first.Multiplier)
}
