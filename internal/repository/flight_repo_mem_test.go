package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/flightinventory/internal/domain"
	"github.com/stretchr/testify/assert"
)

func ptrInt64(v int64) *int64 { return &v }

func ptrTime(v time.Time) *time.Time { return &v }

func seedMemFlights(t *testing.T, repo *MemoryFlightRepository) {
	t.Helper()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	flights := []domain.Flight{
		{FlightNumber: "AA100", Airline: "Phantom", Origin: "JFK", Destination: "LAX",
			FlightDate: date, DepartureTime: date.Add(8 * time.Hour), ArrivalTime: date.Add(13 * time.Hour),
			OpenSeatsEconomy: 10, EconomySeatCost: 100, BusinessSeatCost: 800, FirstClassCost: 1600},
		{FlightNumber: "BB200", Airline: "VirtualJet", Origin: "JFK", Destination: "LAX",
			FlightDate: date, DepartureTime: date.Add(18 * time.Hour), ArrivalTime: date.Add(20 * time.Hour),
			OpenSeatsEconomy: 0, EconomySeatCost: 400, BusinessSeatCost: 1200, FirstClassCost: 2500},
		{FlightNumber: "CC300", Airline: "Phantom", Origin: "JFK", Destination: "SFO",
			FlightDate: date, DepartureTime: date.Add(9 * time.Hour), ArrivalTime: date.Add(15 * time.Hour),
			OpenSeatsEconomy: 5, EconomySeatCost: 250, BusinessSeatCost: 900, FirstClassCost: 1800},
		{FlightNumber: "DD400", Airline: "AeroFiction", Origin: "JFK", Destination: "LAX",
			FlightDate: date.AddDate(0, 0, 5), DepartureTime: date.AddDate(0, 0, 5).Add(10 * time.Hour),
			ArrivalTime: date.AddDate(0, 0, 5).Add(12 * time.Hour),
			OpenSeatsEconomy: 7, EconomySeatCost: 300, BusinessSeatCost: 1000, FirstClassCost: 2000},
	}
	for i := range flights {
		assert.NoError(t, repo.Create(ctx, &flights[i]))
	}
}

func jfkLax(start, end time.Time) domain.SearchCriteria {
	return domain.SearchCriteria{Origin: "JFK", Destination: "LAX", StartDate: start, EndDate: end}
}

func TestMemoryFlightRepository_Search_BaseFilters(t *testing.T) {
	repo := NewMemoryFlightRepository()
	seedMemFlights(t, repo)
	ctx := context.Background()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// Date range + route: only the two 2024-06-01 JFK-LAX flights,
	// availability never filters (BB200 has 0 economy seats and still shows).
	criteria := jfkLax(date, date)
	total, err := repo.Count(ctx, criteria)
	assert.NoError(t, err)
	assert.Equal(t, 2, total)

	matched, err := repo.Search(ctx, criteria, 0, 10)
	assert.NoError(t, err)
	assert.Len(t, matched, 2)
	assert.Equal(t, "AA100", matched[0].FlightNumber)
	assert.Equal(t, "BB200", matched[1].FlightNumber)

	// Widening the date range pulls in the later flight too.
	total, err = repo.Count(ctx, jfkLax(date, date.AddDate(0, 0, 7)))
	assert.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestMemoryFlightRepository_Search_OptionalFilters(t *testing.T) {
	repo := NewMemoryFlightRepository()
	seedMemFlights(t, repo)
	ctx := context.Background()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	criteria := jfkLax(date, date)
	criteria.Airline = "Phantom"
	matched, err := repo.Search(ctx, criteria, 0, 10)
	assert.NoError(t, err)
	assert.Len(t, matched, 1)
	assert.Equal(t, "AA100", matched[0].FlightNumber)

	criteria = jfkLax(date, date)
	criteria.FlightNumber = "BB200"
	matched, err = repo.Search(ctx, criteria, 0, 10)
	assert.NoError(t, err)
	assert.Len(t, matched, 1)
	assert.Equal(t, "BB200", matched[0].FlightNumber)

	// Departure sub-range applies on top of the date range.
	criteria = jfkLax(date, date)
	criteria.StartTime = ptrTime(date.Add(16 * time.Hour))
	criteria.EndTime = ptrTime(date.Add(23 * time.Hour))
	matched, err = repo.Search(ctx, criteria, 0, 10)
	assert.NoError(t, err)
	assert.Len(t, matched, 1)
	assert.Equal(t, "BB200", matched[0].FlightNumber)

	// A lone bound is ignored: both must be present.
	criteria = jfkLax(date, date)
	criteria.StartTime = ptrTime(date.Add(16 * time.Hour))
	total, err := repo.Count(ctx, criteria)
	assert.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestMemoryFlightRepository_Search_CostFilter(t *testing.T) {
	repo := NewMemoryFlightRepository()
	seedMemFlights(t, repo)
	ctx := context.Background()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	criteria := jfkLax(date, date)
	criteria.SeatClass = domain.SeatClassEconomy
	criteria.MinCost = ptrInt64(50)
	criteria.MaxCost = ptrInt64(150)
	matched, err := repo.Search(ctx, criteria, 0, 10)
	assert.NoError(t, err)
	assert.Len(t, matched, 1)
	assert.Equal(t, "AA100", matched[0].FlightNumber)

	// Bounds default to [0, unbounded) when omitted.
	criteria.MinCost = nil
	criteria.MaxCost = nil
	total, err := repo.Count(ctx, criteria)
	assert.NoError(t, err)
	assert.Equal(t, 2, total)

	criteria.SeatClass = "premium_economy"
	_, err = repo.Count(ctx, criteria)
	assert.ErrorIs(t, err, domain.ErrInvalidSeatClass)
}

func TestMemoryFlightRepository_Search_OffsetPastEnd(t *testing.T) {
	repo := NewMemoryFlightRepository()
	seedMemFlights(t, repo)
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	matched, err := repo.Search(context.Background(), jfkLax(date, date), 10, 10)
	assert.NoError(t, err)
	assert.Empty(t, matched)
}

func TestMemoryFlightRepository_BookSeats(t *testing.T) {
	repo := NewMemoryFlightRepository()
	seedMemFlights(t, repo)
	ctx := context.Background()

	updated, err := repo.BookSeats(ctx, 1, domain.SeatClassEconomy, 4)
	assert.NoError(t, err)
	assert.Equal(t, 6, updated.OpenSeatsEconomy)

	_, err = repo.BookSeats(ctx, 1, domain.SeatClassEconomy, 7)
	var insufficient *domain.InsufficientSeatsError
	assert.ErrorAs(t, err, &insufficient)
	assert.Equal(t, domain.SeatClassEconomy, insufficient.Class)

	// A failed booking leaves the counter untouched.
	stored, err := repo.GetByID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 6, stored.OpenSeatsEconomy)

	_, err = repo.BookSeats(ctx, 42, domain.SeatClassEconomy, 1)
	assert.ErrorIs(t, err, domain.ErrFlightNotFound)

	_, err = repo.BookSeats(ctx, 1, "premium_economy", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidSeatClass)
}
