package animation

import "time"

// Reel geometry
const (
	ReelLength    = 100 // symbols per strip
	VisibleRows   = 3
	PaylineRow    = 1
	SymbolHeight  = 100 // pixels
	StartOffset   = float64((ReelLength - VisibleRows) * SymbolHeight)
	FrameInterval = 16 * time.Millisecond
)

// Log messages
const (
	LogMsgAnimationFault   = "Reel missing at animation start, treating as complete"
	LogMsgSchedulerStarted = "Animation scheduler started"
	LogMsgSchedulerStopped = "Animation scheduler stopped"
	LogMsgFlushingPending  = "Completing pending animations on shutdown"
)
