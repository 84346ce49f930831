package domain

import (
	"errors"
	"fmt"
)

var (
	ErrFlightNotFound   = errors.New("flight not found")
	ErrInvalidSeatClass = errors.New("unknown seat class")
)

// InsufficientSeatsError reports a legitimate shortage in one seat class.
// It is distinct from ErrInvalidSeatClass: a booking for an unrecognized
// class is rejected before availability is ever checked.
type InsufficientSeatsError struct {
	Class SeatClass
}

func (e *InsufficientSeatsError) Error() string {
	return fmt.Sprintf("Not enough %s seats available.", e.Class)
}

// BookingConfirmation is the success payload of a booking attempt.
type BookingConfirmation struct {
	Reference string
	Message   string
	SeatClass SeatClass
	Seats     int
	TotalCost int64
	Flight    *Flight
}
