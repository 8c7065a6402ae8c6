package catalog

// Default symbol identifiers
const (
	SymbolIDCherry  = 1
	SymbolIDLemon   = 2
	SymbolIDOrange  = 3
	SymbolIDGrape   = 4
	SymbolIDBell    = 5
	SymbolIDDiamond = 6
)

// Default symbol glyphs
const (
	GlyphCherry  = "🍒"
	GlyphLemon   = "🍋"
	GlyphOrange  = "🍊"
	GlyphGrape   = "🍇"
	GlyphBell    = "🔔"
	GlyphDiamond = "💎"
)

// Default payout multipliers for three of a kind
const (
	MultiplierCherry  = 10
	MultiplierLemon   = 20
	MultiplierOrange  = 30
	MultiplierGrape   = 40
	MultiplierBell    = 50
	MultiplierDiamond = 100
)

// Error message templates
const (
	ErrMsgEmptyCatalog       = "%w: catalog has no symbols"
	ErrMsgDuplicateSymbolID  = "%w: duplicate symbol id %d"
	ErrMsgNonPositiveMult    = "%w: symbol %d has non-positive multiplier %s"
	ErrMsgMissingGlyph       = "%w: symbol %d has no glyph"
	ErrMsgMultiplierTooLarge = "%w: symbol %d multiplier %s exceeds %d"
	ErrMsgLoadCatalogFailed  = "failed to load catalog from %s: %w"
	ErrMsgIndexOutOfRange    = "%w: index %d outside catalog of %d symbols"
)
