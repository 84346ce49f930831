package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/Domenick1991/flightinventory/internal/domain"
	"github.com/Domenick1991/flightinventory/internal/repository"
	"go.uber.org/zap"
)

type GeneratorUseCase interface {
	GenerateFlights(ctx context.Context, input GenerateInput) ([]domain.Flight, error)
}

type GenerateInput struct {
	Origin      string
	Destination string
	Date        time.Time
	Count       int
}

var airlines = []string{"Phantom", "DreamSky Airlines", "VirtualJet", "Enchanted Air", "AeroFiction"}

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

type GeneratorService struct {
	repo repository.FlightRepository
	log  *zap.Logger

	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

func NewGeneratorService(repo repository.FlightRepository, log *zap.Logger) *GeneratorService {
	return &GeneratorService{
		repo: repo,
		log:  log,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GenerateFlights produces Count synthetic flights for the route and date,
// persisting each one as it is built. Flight numbers carry no uniqueness
// guarantee; collisions across calls are accepted.
func (s *GeneratorService) GenerateFlights(ctx context.Context, input GenerateInput) ([]domain.Flight, error) {
	if input.Origin == "" || input.Destination == "" {
		return nil, errors.New("origin and destination are required")
	}
	if input.Count <= 0 {
		return nil, errors.New("count must be positive")
	}

	created := make([]domain.Flight, 0, input.Count)
	for i := 0; i < input.Count; i++ {
		flight := s.randomFlight(input)
		if err := s.repo.Create(ctx, &flight); err != nil {
			return nil, fmt.Errorf("create flight: %w", err)
		}
		s.log.Info("generated flight",
			zap.Int64("id", flight.ID),
			zap.String("flight_number", flight.FlightNumber),
			zap.String("airline", flight.Airline))
		created = append(created, flight)
	}
	return created, nil
}

func (s *GeneratorService) randomFlight(input GenerateInput) domain.Flight {
	s.mu.Lock()
	defer s.mu.Unlock()

	departure, arrival := s.randomTimes(input.Date)
	y, m, d := input.Date.Date()

	return domain.Flight{
		FlightNumber:        s.randomFlightNumber(),
		Airline:             airlines[s.rng.Intn(len(airlines))],
		Origin:              input.Origin,
		Destination:         input.Destination,
		FlightDate:          time.Date(y, m, d, 0, 0, 0, 0, input.Date.Location()),
		DepartureTime:       departure,
		ArrivalTime:         arrival,
		OpenSeatsEconomy:    s.rng.Intn(201),
		OpenSeatsBusiness:   s.rng.Intn(51),
		OpenSeatsFirstClass: s.rng.Intn(21),
		EconomySeatCost:     50 + int64(s.rng.Intn(451)),
		BusinessSeatCost:    500 + int64(s.rng.Intn(1001)),
		FirstClassCost:      1500 + int64(s.rng.Intn(1501)),
	}
}

// Example: AA342.
func (s *GeneratorService) randomFlightNumber() string {
	return fmt.Sprintf("%c%c%d", letters[s.rng.Intn(len(letters))], letters[s.rng.Intn(len(letters))], 100+s.rng.Intn(900))
}

// randomTimes places departure at a random minute of the flight date and
// adds a 30..600 minute duration, so arrival is always after departure.
func (s *GeneratorService) randomTimes(date time.Time) (time.Time, time.Time) {
	y, m, d := date.Date()
	departure := time.Date(y, m, d, s.rng.Intn(24), s.rng.Intn(60), 0, 0, date.Location())
	duration := time.Duration(30+s.rng.Intn(571)) * time.Minute
	return departure, departure.Add(duration)
}

var _ GeneratorUseCase = (*GeneratorService)(nil)
