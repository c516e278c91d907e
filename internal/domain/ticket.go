package domain

import "time"

// Ticket represents one event admission token.
type Ticket struct {
	ID        int64
	EventName string
	Location  string
	Time      time.Time
	IsUsed    bool
}

// TicketFilter narrows listing to tickets matching a usage status.
// A nil IsUsed means no filtering.
type TicketFilter struct {
	IsUsed *bool
}
