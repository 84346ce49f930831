package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseSeatClass(t *testing.T) {
	for _, valid := range []string{"economy", "business", "first_class"} {
		class, err := ParseSeatClass(valid)
		assert.NoError(t, err)
		assert.Equal(t, SeatClass(valid), class)
	}

	for _, invalid := range []string{"", "premium_economy", "Economy", "first"} {
		_, err := ParseSeatClass(invalid)
		assert.ErrorIs(t, err, ErrInvalidSeatClass)
	}
}

func TestFlight_SeatAccessors(t *testing.T) {
	f := &Flight{
		OpenSeatsEconomy:    100,
		OpenSeatsBusiness:   20,
		OpenSeatsFirstClass: 5,
		EconomySeatCost:     200,
		BusinessSeatCost:    900,
		FirstClassCost:      2000,
	}

	assert.Equal(t, 100, f.OpenSeats(SeatClassEconomy))
	assert.Equal(t, 20, f.OpenSeats(SeatClassBusiness))
	assert.Equal(t, 5, f.OpenSeats(SeatClassFirstClass))
	assert.Equal(t, 0, f.OpenSeats("premium_economy"))

	assert.Equal(t, int64(200), f.SeatCost(SeatClassEconomy))
	assert.Equal(t, int64(900), f.SeatCost(SeatClassBusiness))
	assert.Equal(t, int64(2000), f.SeatCost(SeatClassFirstClass))
	assert.Equal(t, int64(0), f.SeatCost("premium_economy"))
}

func TestSearchCriteria_DepartureWindow(t *testing.T) {
	c := SearchCriteria{
		StartDate: time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 3, 4, 0, 0, 0, time.UTC),
	}

	start, end := c.DepartureWindow()
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), start)
	assert.True(t, end.After(time.Date(2024, 6, 3, 23, 59, 59, 0, time.UTC).Add(-time.Second)))
	assert.True(t, end.Before(time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)))
}

func TestSearchCriteria_CostBounds(t *testing.T) {
	minCost, maxCost := SearchCriteria{}.CostBounds()
	assert.Equal(t, int64(0), minCost)
	assert.Equal(t, int64(math.MaxInt64), maxCost)

	low := int64(100)
	high := int64(400)
	minCost, maxCost = SearchCriteria{MinCost: &low, MaxCost: &high}.CostBounds()
	assert.Equal(t, low, minCost)
	assert.Equal(t, high, maxCost)
}

func TestInsufficientSeatsError_Message(t *testing.T) {
	err := &InsufficientSeatsError{Class: SeatClassEconomy}
	assert.Equal(t, "Not enough economy seats available.", err.Error())
}
