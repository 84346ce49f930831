package domain

import (
	"math"
	"time"
)

// SearchCriteria describes one flight search. Origin, Destination and the
// date range are mandatory; everything else narrows the result set further.
type SearchCriteria struct {
	Origin       string
	Destination  string
	StartDate    time.Time
	EndDate      time.Time
	FlightNumber string
	Airline      string
	// StartTime/EndTime narrow departures inside the date range.
	// Both must be set for the filter to apply.
	StartTime *time.Time
	EndTime   *time.Time
	// SeatClass switches on the cost filter for that class.
	SeatClass SeatClass
	MinCost   *int64
	MaxCost   *int64
}

// DepartureWindow expands the date range to full-day bounds.
func (c SearchCriteria) DepartureWindow() (time.Time, time.Time) {
	y, m, d := c.StartDate.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, c.StartDate.Location())
	y, m, d = c.EndDate.Date()
	end := time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), c.EndDate.Location())
	return start, end
}

// CostBounds returns the effective cost range: min defaults to 0,
// max defaults to unbounded.
func (c SearchCriteria) CostBounds() (int64, int64) {
	min := int64(0)
	max := int64(math.MaxInt64)
	if c.MinCost != nil {
		min = *c.MinCost
	}
	if c.MaxCost != nil {
		max = *c.MaxCost
	}
	return min, max
}

// SearchResult is one page of matching flights. An empty page with a
// Message is a normal outcome, never an error.
type SearchResult struct {
	Flights      []Flight
	QueryResults int
	Page         int
	TotalPages   int
	TotalCount   int
	Message      string
}
