package event

// SchemaVersion is stamped on every spin event; bump it when a payload field changes meaning
const SchemaVersion = "1.0"

// ErrMsgHandlersFailed is returned by Publish when one or more subscribers fail
const ErrMsgHandlersFailed = "%d subscriber(s) failed handling %s: %w"
