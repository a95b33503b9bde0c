package tui

import "time"

// MsgPlan announces how many sources a bulk import will process.
type MsgPlan struct {
	Locators []string
}

// MsgJobStart is sent when an import job begins.
type MsgJobStart struct {
	SpanID    string
	Name      string
	StartTime time.Time
}

// MsgJobComplete is sent when an import job finishes.
type MsgJobComplete struct {
	SpanID  string
	EndTime time.Time
	Err     error
}
