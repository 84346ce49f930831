package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/flightinventory/internal/domain"
	"github.com/Domenick1991/flightinventory/internal/kafka"
	"github.com/Domenick1991/flightinventory/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingUseCase interface {
	BookFlight(ctx context.Context, input BookFlightInput) (*domain.BookingConfirmation, error)
}

// Cache is the flight read cache shared with the flights service. The
// booking path only invalidates: seat counters are re-read from the store
// on every attempt, never trusted from cache.
type Cache interface {
	GetFlight(ctx context.Context, id int64) (*domain.Flight, error)
	SetFlight(ctx context.Context, flight *domain.Flight) error
	InvalidateFlight(ctx context.Context, id int64) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookFlightInput struct {
	FlightID  int64
	SeatClass string
	// Seats defaults to 1 when zero.
	Seats int
}

type BookingService struct {
	flights            repository.FlightRepository
	cache              Cache
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	log                *zap.Logger
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	flights repository.FlightRepository,
	cache Cache,
	producer Producer,
	bookingTopic string,
	log *zap.Logger,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		flights:      flights,
		cache:        cache,
		producer:     producer,
		bookingTopic: bookingTopic,
		log:          log,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// BookFlight reserves seats of one class on one flight. Business failures
// come back as typed errors the caller can branch on: domain.ErrFlightNotFound,
// domain.ErrInvalidSeatClass and *domain.InsufficientSeatsError. Anything
// else is a store failure.
func (s *BookingService) BookFlight(ctx context.Context, input BookFlightInput) (*domain.BookingConfirmation, error) {
	seats := input.Seats
	if seats == 0 {
		seats = 1
	}
	if seats < 0 {
		return nil, errors.New("number of seats must be positive")
	}
	class, err := domain.ParseSeatClass(input.SeatClass)
	if err != nil {
		return nil, err
	}

	flight, err := s.flights.BookSeats(ctx, input.FlightID, class, seats)
	if err != nil {
		return nil, err
	}

	totalCost := flight.SeatCost(class) * int64(seats)
	confirmation := &domain.BookingConfirmation{
		Reference: uuid.NewString(),
		SeatClass: class,
		Seats:     seats,
		TotalCost: totalCost,
		Flight:    flight,
		Message: fmt.Sprintf("Successfully booked %d %s seat(s) on %s flight on %s from %s to %s. Total cost: $%d.",
			seats, class, flight.Airline, flight.FlightDate.Format("2006-01-02"), flight.Origin, flight.Destination, totalCost),
	}

	if s.cache != nil {
		if err := s.cache.InvalidateFlight(ctx, flight.ID); err != nil {
			s.log.Warn("invalidate flight cache", zap.Int64("flight_id", flight.ID), zap.Error(err))
		}
	}
	if err := s.publish(ctx, "booking_confirmed", confirmation); err != nil {
		s.log.Warn("publish booking event", zap.String("reference", confirmation.Reference), zap.Error(err))
	}

	s.log.Info("booked seats",
		zap.Int64("flight_id", flight.ID),
		zap.String("seat_class", string(class)),
		zap.Int("seats", seats),
		zap.Int64("total_cost", totalCost))
	return confirmation, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, c *domain.BookingConfirmation) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:         eventType,
		Reference:    c.Reference,
		FlightID:     c.Flight.ID,
		FlightNumber: c.Flight.FlightNumber,
		Airline:      c.Flight.Airline,
		Origin:       c.Flight.Origin,
		Destination:  c.Flight.Destination,
		SeatClass:    string(c.SeatClass),
		Seats:        c.Seats,
		TotalCost:    c.TotalCost,
		BookedAt:     time.Now(),
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, c.Reference, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, c.Reference, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
