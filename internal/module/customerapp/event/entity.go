package event

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPublished string = "PUBLISHED"
	StatusDraft     string = "DRAFT"
	StatusArchived  string = "ARCHIVED"
)

// Event is a tenant's published happening that visitors reserve tables for.
type Event struct {
	ID          string
	TenantID    string
	Name        string
	Description string
	Venue       string
	StartsAt    time.Time
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Table is the reservable unit of an event. The label shown for it comes
// from the tenant's item taxonomy, not from here.
type Table struct {
	ID        string
	EventID   string
	Name      string
	UnitPrice decimal.Decimal
	SeatCount int64
	Location  string
	Available bool
}
