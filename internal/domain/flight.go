package domain

import "time"

// SeatClass identifies one of the three independent seat inventories on a flight.
type SeatClass string

const (
	SeatClassEconomy    SeatClass = "economy"
	SeatClassBusiness   SeatClass = "business"
	SeatClassFirstClass SeatClass = "first_class"
)

// ParseSeatClass returns ErrInvalidSeatClass for anything outside the three known classes.
func ParseSeatClass(s string) (SeatClass, error) {
	switch SeatClass(s) {
	case SeatClassEconomy, SeatClassBusiness, SeatClassFirstClass:
		return SeatClass(s), nil
	}
	return "", ErrInvalidSeatClass
}

type Flight struct {
	ID                  int64
	FlightNumber        string
	Airline             string
	Origin              string
	Destination         string
	FlightDate          time.Time
	DepartureTime       time.Time
	ArrivalTime         time.Time
	OpenSeatsEconomy    int
	OpenSeatsBusiness   int
	OpenSeatsFirstClass int
	EconomySeatCost     int64
	BusinessSeatCost    int64
	FirstClassCost      int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// OpenSeats returns the counter for the given class, 0 for an unknown class.
func (f *Flight) OpenSeats(class SeatClass) int {
	switch class {
	case SeatClassEconomy:
		return f.OpenSeatsEconomy
	case SeatClassBusiness:
		return f.OpenSeatsBusiness
	case SeatClassFirstClass:
		return f.OpenSeatsFirstClass
	}
	return 0
}

// SeatCost returns the per-seat cost for the given class, 0 for an unknown class.
func (f *Flight) SeatCost(class SeatClass) int64 {
	switch class {
	case SeatClassEconomy:
		return f.EconomySeatCost
	case SeatClassBusiness:
		return f.BusinessSeatCost
	case SeatClassFirstClass:
		return f.FirstClassCost
	}
	return 0
}
