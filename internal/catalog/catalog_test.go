package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SlotReveal_Go/internal/domain"
)

func sym(id int, glyph string, mult int64) Symbol {
	return Symbol{ID: id, Glyph: glyph, Multiplier: decimal.NewFromInt(mult)}
}

func TestDefault(t *testing.T) {
	c := Default()

	require.Equal(t, 6, c.Len())

	expected := []struct {
		id    int
		glyph string
		mult  int64
	}{
		{1, "🍒", 10},
		{2, "🍋", 20},
		{3, "🍊", 30},
		{4, "🍇", 40},
		{5, "🔔", 50},
		{6, "💎", 100},
	}
	for i, e := range expected {
		s := c.At(i)
		assert.Equal(t, e.id, s.ID, "index %d", i)
		assert.Equal(t, e.glyph, s.Glyph, "index %d", i)
		assert.True(t, decimal.NewFromInt(e.mult).Equal(s.Multiplier), "index %d", i)
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		symbols []Symbol
		wantErr bool
	}{
		{"empty", nil, true},
		{"duplicate id", []Symbol{sym(1, "A", 2), sym(1, "B", 3)}, true},
		{"zero multiplier", []Symbol{sym(1, "A", 0)}, true},
		{"negative multiplier", []Symbol{sym(1, "A", -4)}, true},
		{"missing glyph", []Symbol{sym(1, "", 4)}, true},
		{"multiplier above maximum", []Symbol{sym(1, "A", domain.MaxMultiplier+1)}, true},
		{"multiplier at maximum", []Symbol{sym(1, "A", domain.MaxMultiplier)}, false},
		{"single symbol", []Symbol{sym(9, "X", 7)}, false},
		{"two symbols", []Symbol{sym(1, "A", 2), sym(2, "B", 3)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.symbols...)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidCatalog))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.symbols), c.Len())
		})
	}
}

func TestCatalog_Immutable(t *testing.T) {
	input := []Symbol{sym(1, "A", 2), sym(2, "B", 3)}
	c, err := New(input...)
	require.NoError(t, err)

	input[0].Glyph = "mutated"
	assert.Equal(t, "A", c.At(0).Glyph, "catalog must not alias its input")

	out := c.Symbols()
	out[1].Glyph = "mutated"
	assert.Equal(t, "B", c.At(1).Glyph, "catalog must not alias its output")
}

func TestCatalog_Lookup(t *testing.T) {
	c := Default()

	s, err := c.Lookup(5)
	require.NoError(t, err)
	assert.Equal(t, SymbolIDDiamond, s.ID)

	_, err = c.Lookup(-1)
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)

	_, err = c.Lookup(6)
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
}

func TestCatalog_Equal(t *testing.T) {
	assert.True(t, Default().Equal(Default()))

	small := MustNew(sym(1, "A", 2))
	assert.False(t, Default().Equal(small))

	reordered := MustNew(sym(2, "B", 3), sym(1, "A", 2))
	ordered := MustNew(sym(1, "A", 2), sym(2, "B", 3))
	assert.False(t, ordered.Equal(reordered), "ordering is part of the catalog")
}

func TestLoadFile(t *testing.T) {
	t.Run("loads shipped config", func(t *testing.T) {
		c, err := LoadFile(filepath.Join("..", "..", "configs", "catalog.json"))
		require.NoError(t, err)
		assert.True(t, c.Equal(Default()))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile("/nonexistent/catalog.json")
		assert.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

		_, err := LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("invalid catalog", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dup.json")
		content := `{"symbols":[{"id":1,"glyph":"A","multiplier":2},{"id":1,"glyph":"B","multiplier":3}]}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		_, err := LoadFile(path)
		assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
	})
}

func TestPayout(t *testing.T) {
	cat := Default()
	ten := decimal.NewFromInt(10)

	tests := []struct {
		name string
		draw domain.Draw
		want decimal.Decimal
	}{
		{"triple diamond", domain.Draw{5, 5, 5}, decimal.NewFromInt(1000)},
		{"triple cherry", domain.Draw{0, 0, 0}, decimal.NewFromInt(100)},
		{"mismatch", domain.Draw{0, 1, 0}, decimal.Zero},
		{"two of a kind", domain.Draw{4, 4, 3}, decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(cat.Payout(tt.draw, ten)), "got %s", cat.Payout(tt.draw, ten))
		})
	}
}
