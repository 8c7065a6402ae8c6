package animation

import (
	"sync"

	"github.com/osse101/SlotReveal_Go/internal/catalog"
	"github.com/osse101/SlotReveal_Go/internal/utils"
)

// Reel is one vertical strip of symbols and its current scroll offset in pixels.
// An offset of 0 shows rows 0..VisibleRows-1; StartOffset shows the bottom of the strip.
// Reads are safe while the scheduler loop writes the offset.
type Reel struct {
	mu     sync.RWMutex
	strip  []catalog.Symbol
	offset float64
}

// NewReel creates a reel with a strip randomized from the catalog
func NewReel(cat catalog.Catalog) *Reel {
	r := &Reel{strip: make([]catalog.Symbol, ReelLength)}
	r.Randomize(cat)
	return r
}

// Randomize refills every row from the catalog with cosmetic randomness
func (r *Reel) Randomize(cat catalog.Catalog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.strip {
		r.strip[i] = randomSymbol(cat)
	}
}

// Strip returns a copy of the full strip
func (r *Reel) Strip() []catalog.Symbol {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]catalog.Symbol, len(r.strip))
	copy(out, r.strip)
	return out
}

// Row returns the symbol at strip row i
func (r *Reel) Row(i int) catalog.Symbol {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.strip[i]
}

// Visible returns the rows shown when the reel is at rest
func (r *Reel) Visible() [VisibleRows]catalog.Symbol {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out [VisibleRows]catalog.Symbol
	copy(out[:], r.strip[:VisibleRows])
	return out
}

// Offset returns the current scroll offset in pixels
func (r *Reel) Offset() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.offset
}

func (r *Reel) setOffset(v float64) {
	r.mu.Lock()
	r.offset = v
	r.mu.Unlock()
}

func randomSymbol(cat catalog.Catalog) catalog.Symbol {
	return cat.At(utils.RandomInt(0, cat.Len()-1))
}

// Reveal writes the authoritative symbol into the payline row and
// re-randomizes the filler rows around it
func (r *Reel) Reveal(payline catalog.Symbol, cat catalog.Catalog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for row := 0; row < VisibleRows; row++ {
		if row == PaylineRow {
			r.strip[row] = payline
			continue
		}
		r.strip[row] = randomSymbol(cat)
	}
}

// Reset parks the reel at the bottom of its strip, ready to scroll
func (r *Reel) Reset() {
	r.setOffset(StartOffset)
}
