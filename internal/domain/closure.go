package domain

import "time"

// ClosurePeriod is an administrator-declared unavailability record for a date.
// At most one record exists per date (date is the key).
type ClosurePeriod struct {
	Date            time.Time
	MorningClosed   bool
	AfternoonClosed bool
	FullDayClosed   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Normalize enforces the write-time invariant:
// FullDayClosed implies both halves closed.
func (c *ClosurePeriod) Normalize() {
	if c.FullDayClosed {
		c.MorningClosed = true
		c.AfternoonClosed = true
	}
}

// HasAnyClosure returns true if at least one period of the day is closed
func (c *ClosurePeriod) HasAnyClosure() bool {
	return c.MorningClosed || c.AfternoonClosed || c.FullDayClosed
}

// IsPartial returns true for half-day closures
func (c *ClosurePeriod) IsPartial() bool {
	return !c.FullDayClosed && (c.MorningClosed || c.AfternoonClosed)
}
