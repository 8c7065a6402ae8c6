package slots

// DrawMode selects how a 32-bit random sample is reduced to a catalog index
type DrawMode string

const (
	// DrawModeModulo reduces with a plain modulo; bias is at most catalogSize/2^32
	DrawModeModulo DrawMode = "modulo"
	// DrawModeRejection discards samples above the largest multiple of catalogSize
	DrawModeRejection DrawMode = "rejection"
)

// Rejection sampling bounds
const (
	// MaxRejectionAttempts caps resampling for a single reel
	MaxRejectionAttempts = 64

	// sourceRange is the number of distinct values NextUint32 can return
	sourceRange = uint64(1) << 32
)

// Log messages
const (
	LogMsgWagerRejected   = "Wager rejected"
	LogMsgSpinResolved    = "Spin resolved"
	LogMsgDrawFailed      = "Draw failed"
	LogMsgPublishFailed   = "Failed to publish spin event"
	LogMsgShutdownStarted = "Slots service shutting down"
)

// Error message templates
const (
	ErrMsgReadRandomFailed = "failed to read random source: %w"
	ErrMsgDrawReelFailed   = "failed to draw reel %d: %w"
	ErrMsgUnknownDrawMode  = "unknown draw mode %q"
	ErrMsgShuttingDown     = "outcome engine is shutting down"
)
