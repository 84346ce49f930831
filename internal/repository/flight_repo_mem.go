package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Domenick1991/flightinventory/internal/domain"
)

// MemoryFlightRepository is a mutex-guarded FlightRepository for tests and
// local runs without Postgres. BookSeats holds the lock across the
// check-then-decrement, giving the same no-oversell guarantee as the
// conditional UPDATE in the pg implementation.
type MemoryFlightRepository struct {
	mu      sync.Mutex
	nextID  int64
	flights map[int64]*domain.Flight
}

func NewMemoryFlightRepository() *MemoryFlightRepository {
	return &MemoryFlightRepository{flights: make(map[int64]*domain.Flight)}
}

func (r *MemoryFlightRepository) Create(_ context.Context, f *domain.Flight) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	f.ID = r.nextID
	now := time.Now()
	f.CreatedAt = now
	f.UpdatedAt = now
	stored := *f
	r.flights[f.ID] = &stored
	return nil
}

func (r *MemoryFlightRepository) GetByID(_ context.Context, id int64) (*domain.Flight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.flights[id]
	if !ok {
		return nil, domain.ErrFlightNotFound
	}
	copied := *f
	return &copied, nil
}

func (r *MemoryFlightRepository) Count(_ context.Context, criteria domain.SearchCriteria) (int, error) {
	if err := validateCriteria(criteria); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for _, f := range r.flights {
		if matches(f, criteria) {
			total++
		}
	}
	return total, nil
}

func (r *MemoryFlightRepository) Search(_ context.Context, criteria domain.SearchCriteria, offset, limit int) ([]domain.Flight, error) {
	if err := validateCriteria(criteria); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]domain.Flight, 0)
	for _, f := range r.flights {
		if matches(f, criteria) {
			matched = append(matched, *f)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	if offset >= len(matched) {
		return []domain.Flight{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (r *MemoryFlightRepository) BookSeats(_ context.Context, flightID int64, class domain.SeatClass, seats int) (*domain.Flight, error) {
	if _, err := domain.ParseSeatClass(string(class)); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.flights[flightID]
	if !ok {
		return nil, domain.ErrFlightNotFound
	}
	if f.OpenSeats(class) < seats {
		return nil, &domain.InsufficientSeatsError{Class: class}
	}

	switch class {
	case domain.SeatClassEconomy:
		f.OpenSeatsEconomy -= seats
	case domain.SeatClassBusiness:
		f.OpenSeatsBusiness -= seats
	case domain.SeatClassFirstClass:
		f.OpenSeatsFirstClass -= seats
	}
	f.UpdatedAt = time.Now()
	copied := *f
	return &copied, nil
}

func validateCriteria(c domain.SearchCriteria) error {
	if c.SeatClass == "" {
		return nil
	}
	_, err := domain.ParseSeatClass(string(c.SeatClass))
	return err
}

func matches(f *domain.Flight, c domain.SearchCriteria) bool {
	start, end := c.DepartureWindow()
	if f.DepartureTime.Before(start) || f.DepartureTime.After(end) {
		return false
	}
	if f.Origin != c.Origin || f.Destination != c.Destination {
		return false
	}
	if c.FlightNumber != "" && f.FlightNumber != c.FlightNumber {
		return false
	}
	if c.Airline != "" && f.Airline != c.Airline {
		return false
	}
	if c.StartTime != nil && c.EndTime != nil {
		if f.DepartureTime.Before(*c.StartTime) || f.DepartureTime.After(*c.EndTime) {
			return false
		}
	}
	if c.SeatClass != "" {
		minCost, maxCost := c.CostBounds()
		cost := f.SeatCost(c.SeatClass)
		if cost < minCost || cost > maxCost {
			return false
		}
	}
	return true
}

var _ FlightRepository = (*MemoryFlightRepository)(nil)
