package flights

import (
	"context"
	"errors"

	"github.com/Domenick1991/flightinventory/internal/domain"
	"github.com/Domenick1991/flightinventory/internal/repository"
	"github.com/Domenick1991/flightinventory/internal/service/booking"
	"go.uber.org/zap"
)

type FlightUseCase interface {
	SearchFlights(ctx context.Context, criteria domain.SearchCriteria, page, pageSize int) (*domain.SearchResult, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

const (
	msgNoFlights    = "There were no flights found for the search criteria."
	msgPageExceeded = "The requested page exceeds the total number of available pages."
)

var (
	ErrInvalidPage     = errors.New("page must be 1 or greater")
	ErrInvalidPageSize = errors.New("page size must be 1 or greater")
)

type FlightService struct {
	repo  repository.FlightRepository
	cache booking.Cache
	log   *zap.Logger
}

func NewFlightService(repo repository.FlightRepository, cache booking.Cache, log *zap.Logger) *FlightService {
	return &FlightService{repo: repo, cache: cache, log: log}
}

// SearchFlights applies the criteria conjunction and slices the matches into
// 1-indexed pages ordered by flight id. "No matches" and "page past the end"
// are normal results carrying a message, not errors.
func (s *FlightService) SearchFlights(ctx context.Context, criteria domain.SearchCriteria, page, pageSize int) (*domain.SearchResult, error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}
	if pageSize < 1 {
		return nil, ErrInvalidPageSize
	}

	total, err := s.repo.Count(ctx, criteria)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return &domain.SearchResult{
			Flights:    []domain.Flight{},
			Page:       page,
			TotalPages: 0,
			Message:    msgNoFlights,
		}, nil
	}

	totalPages := (total + pageSize - 1) / pageSize
	if page > totalPages {
		return &domain.SearchResult{
			Flights:    []domain.Flight{},
			Page:       page,
			TotalPages: totalPages,
			TotalCount: total,
			Message:    msgPageExceeded,
		}, nil
	}

	matched, err := s.repo.Search(ctx, criteria, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	s.log.Debug("search flights",
		zap.String("origin", criteria.Origin),
		zap.String("destination", criteria.Destination),
		zap.Int("page", page),
		zap.Int("total", total))

	return &domain.SearchResult{
		Flights:      matched,
		QueryResults: len(matched),
		Page:         page,
		TotalPages:   totalPages,
		TotalCount:   total,
	}, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlight(ctx, id); err == nil && cached != nil {
			return cached, nil
		}
	}

	flight, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlight(ctx, flight)
	}
	return flight, nil
}

var _ FlightUseCase = (*FlightService)(nil)
