package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Domenick1991/flightinventory/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight) error
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Count(ctx context.Context, criteria domain.SearchCriteria) (int, error)
	Search(ctx context.Context, criteria domain.SearchCriteria, offset, limit int) ([]domain.Flight, error)
	// BookSeats atomically decrements the counter for the given class if at
	// least seats are open, returning the mutated flight. Fails with
	// domain.ErrFlightNotFound or *domain.InsufficientSeatsError.
	BookSeats(ctx context.Context, flightID int64, class domain.SeatClass, seats int) (*domain.Flight, error)
}

const flightColumns = `id, flight_number, airline, origin, destination, flight_date, departure_time, arrival_time,
	open_seats_economy, open_seats_business, open_seats_first_class,
	economy_seat_cost, business_seat_cost, first_class_cost, created_at, updated_at`

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

func (r *PGFlightRepository) Create(ctx context.Context, f *domain.Flight) error {
	row := r.db.QueryRow(ctx, `INSERT INTO flights (flight_number, airline, origin, destination, flight_date, departure_time, arrival_time,
		open_seats_economy, open_seats_business, open_seats_first_class,
		economy_seat_cost, business_seat_cost, first_class_cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at`,
		f.FlightNumber, f.Airline, f.Origin, f.Destination, f.FlightDate, f.DepartureTime, f.ArrivalTime,
		f.OpenSeatsEconomy, f.OpenSeatsBusiness, f.OpenSeatsFirstClass,
		f.EconomySeatCost, f.BusinessSeatCost, f.FirstClassCost)
	if err := row.Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return fmt.Errorf("insert flight: %w", err)
	}
	return nil
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id)
	f, err := scanFlight(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, err
	}
	return f, nil
}

func (r *PGFlightRepository) Count(ctx context.Context, criteria domain.SearchCriteria) (int, error) {
	where, args, err := buildFilters(criteria)
	if err != nil {
		return 0, err
	}
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM flights WHERE `+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count flights: %w", err)
	}
	return total, nil
}

func (r *PGFlightRepository) Search(ctx context.Context, criteria domain.SearchCriteria, offset, limit int) ([]domain.Flight, error) {
	where, args, err := buildFilters(criteria)
	if err != nil {
		return nil, err
	}
	args = append(args, offset, limit)
	// ORDER BY id keeps pagination stable while bookings mutate rows.
	query := fmt.Sprintf(`SELECT %s FROM flights WHERE %s ORDER BY id OFFSET $%d LIMIT $%d`,
		flightColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search flights: %w", err)
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) BookSeats(ctx context.Context, flightID int64, class domain.SeatClass, seats int) (*domain.Flight, error) {
	seatCol, _, err := seatColumns(class)
	if err != nil {
		return nil, err
	}

	// Single conditional UPDATE: the availability check and the decrement
	// happen in one statement, so concurrent bookings on the same row
	// serialize inside the database and the counter can never go negative.
	query := fmt.Sprintf(`UPDATE flights SET %s = %s - $2, updated_at = now() WHERE id=$1 AND %s >= $2 RETURNING %s`,
		seatCol, seatCol, seatCol, flightColumns)
	row := r.db.QueryRow(ctx, query, flightID, seats)
	f, err := scanFlight(row)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	// Nothing updated: distinguish a missing flight from a shortage.
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM flights WHERE id=$1)`, flightID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check flight: %w", err)
	}
	if !exists {
		return nil, domain.ErrFlightNotFound
	}
	return nil, &domain.InsufficientSeatsError{Class: class}
}

func seatColumns(class domain.SeatClass) (seatCol, costCol string, err error) {
	switch class {
	case domain.SeatClassEconomy:
		return "open_seats_economy", "economy_seat_cost", nil
	case domain.SeatClassBusiness:
		return "open_seats_business", "business_seat_cost", nil
	case domain.SeatClassFirstClass:
		return "open_seats_first_class", "first_class_cost", nil
	}
	return "", "", domain.ErrInvalidSeatClass
}

// buildFilters renders the criteria conjunction shared by Count and Search.
func buildFilters(c domain.SearchCriteria) (string, []any, error) {
	start, end := c.DepartureWindow()
	clauses := []string{"departure_time >= $1", "departure_time <= $2", "origin = $3", "destination = $4"}
	args := []any{start, end, c.Origin, c.Destination}
	add := func(format string, v any) {
		args = append(args, v)
		clauses = append(clauses, fmt.Sprintf(format, len(args)))
	}

	if c.FlightNumber != "" {
		add("flight_number = $%d", c.FlightNumber)
	}
	if c.Airline != "" {
		add("airline = $%d", c.Airline)
	}
	if c.StartTime != nil && c.EndTime != nil {
		add("departure_time >= $%d", *c.StartTime)
		add("departure_time <= $%d", *c.EndTime)
	}
	if c.SeatClass != "" {
		_, costCol, err := seatColumns(c.SeatClass)
		if err != nil {
			return "", nil, err
		}
		minCost, maxCost := c.CostBounds()
		add(costCol+" >= $%d", minCost)
		add(costCol+" <= $%d", maxCost)
	}
	return strings.Join(clauses, " AND "), args, nil
}

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.FlightNumber, &f.Airline, &f.Origin, &f.Destination, &f.FlightDate,
		&f.DepartureTime, &f.ArrivalTime,
		&f.OpenSeatsEconomy, &f.OpenSeatsBusiness, &f.OpenSeatsFirstClass,
		&f.EconomySeatCost, &f.BusinessSeatCost, &f.FirstClassCost, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
