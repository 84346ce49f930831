package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Domenick1991/flightinventory/config"
	"github.com/Domenick1991/flightinventory/internal/domain"
	"github.com/Domenick1991/flightinventory/internal/service/flights"
	"github.com/Domenick1991/flightinventory/internal/service/generator"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type FlightHandler struct {
	generator generator.GeneratorUseCase
	flights   flights.FlightUseCase
	searchCfg config.SearchConfig
	genCfg    config.GeneratorConfig
}

func NewFlightHandler(gen generator.GeneratorUseCase, svc flights.FlightUseCase, searchCfg config.SearchConfig, genCfg config.GeneratorConfig) *FlightHandler {
	return &FlightHandler{generator: gen, flights: svc, searchCfg: searchCfg, genCfg: genCfg}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.POST("/generate", h.generate)
	router.POST("/search", h.search)
	router.GET("/:id", h.get)
}

type generateRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Count       int    `json:"count"`
}

type searchRequest struct {
	Origin       string  `json:"origin"`
	Destination  string  `json:"destination"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	FlightNumber string  `json:"flight_number"`
	Airline      string  `json:"airline"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	SeatType     string  `json:"seat_type"`
	MinCost      *int64  `json:"min_cost"`
	MaxCost      *int64  `json:"max_cost"`
	Page         int     `json:"page"`
	PageSize     int     `json:"page_size"`
}

type flightResponse struct {
	FlightID            int64  `json:"flight_id"`
	FlightNumber        string `json:"flight_number"`
	Airline             string `json:"airline"`
	Origin              string `json:"origin"`
	Destination         string `json:"destination"`
	Date                string `json:"date"`
	DepartureTime       string `json:"departure_time"`
	ArrivalTime         string `json:"arrival_time"`
	OpenSeatsEconomy    int    `json:"open_seats_economy"`
	OpenSeatsBusiness   int    `json:"open_seats_business"`
	OpenSeatsFirstClass int    `json:"open_seats_first_class"`
	EconomySeatCost     int64  `json:"economy_seat_cost"`
	BusinessSeatCost    int64  `json:"business_seat_cost"`
	FirstClassCost      int64  `json:"first_class_cost"`
}

type searchResponse struct {
	QueryResults int              `json:"query_results"`
	Flights      []flightResponse `json:"flights"`
	Page         int              `json:"page"`
	TotalPages   int              `json:"total_pages"`
	Message      string           `json:"message,omitempty"`
}

func (h *FlightHandler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}
	if req.Count > h.genCfg.MaxFlightsPerRequest {
		c.JSON(http.StatusBadRequest, gin.H{"error": "count exceeds the per-request limit"})
		return
	}

	created, err := h.generator.GenerateFlights(c.Request.Context(), generator.GenerateInput{
		Origin:      req.Origin,
		Destination: req.Destination,
		Date:        date,
		Count:       req.Count,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := make([]flightResponse, 0, len(created))
	for _, f := range created {
		resp = append(resp, toFlightResponse(f))
	}
	c.JSON(http.StatusCreated, gin.H{"generated": len(resp), "flights": resp})
}

func (h *FlightHandler) search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	criteria, err := req.toCriteria()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page := req.Page
	if page == 0 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize == 0 {
		pageSize = h.searchCfg.DefaultPageSize
	}
	if pageSize > h.searchCfg.MaxPageSize {
		pageSize = h.searchCfg.MaxPageSize
	}

	result, err := h.flights.SearchFlights(c.Request.Context(), criteria, page, pageSize)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, flights.ErrInvalidPage) || errors.Is(err, flights.ErrInvalidPageSize) || errors.Is(err, domain.ErrInvalidSeatClass) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	resp := searchResponse{
		QueryResults: result.QueryResults,
		Flights:      make([]flightResponse, 0, len(result.Flights)),
		Page:         result.Page,
		TotalPages:   result.TotalPages,
		Message:      result.Message,
	}
	for _, f := range result.Flights {
		resp.Flights = append(resp.Flights, toFlightResponse(f))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	flight, err := h.flights.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrFlightNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Flight not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(*flight))
}

func (r searchRequest) toCriteria() (domain.SearchCriteria, error) {
	startDate, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return domain.SearchCriteria{}, err
	}
	endDate, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return domain.SearchCriteria{}, err
	}

	criteria := domain.SearchCriteria{
		Origin:       r.Origin,
		Destination:  r.Destination,
		StartDate:    startDate,
		EndDate:      endDate,
		FlightNumber: r.FlightNumber,
		Airline:      r.Airline,
		MinCost:      r.MinCost,
		MaxCost:      r.MaxCost,
	}
	if r.StartTime != nil && r.EndTime != nil {
		start, err := time.Parse(time.RFC3339, *r.StartTime)
		if err != nil {
			return domain.SearchCriteria{}, err
		}
		end, err := time.Parse(time.RFC3339, *r.EndTime)
		if err != nil {
			return domain.SearchCriteria{}, err
		}
		criteria.StartTime = &start
		criteria.EndTime = &end
	}
	if r.SeatType != "" {
		class, err := domain.ParseSeatClass(r.SeatType)
		if err != nil {
			return domain.SearchCriteria{}, err
		}
		criteria.SeatClass = class
	}
	return criteria, nil
}

func toFlightResponse(f domain.Flight) flightResponse {
	return flightResponse{
		FlightID:            f.ID,
		FlightNumber:        f.FlightNumber,
		Airline:             f.Airline,
		Origin:              f.Origin,
		Destination:         f.Destination,
		Date:                f.FlightDate.Format(dateLayout),
		DepartureTime:       f.DepartureTime.Format(time.RFC3339),
		ArrivalTime:         f.ArrivalTime.Format(time.RFC3339),
		OpenSeatsEconomy:    f.OpenSeatsEconomy,
		OpenSeatsBusiness:   f.OpenSeatsBusiness,
		OpenSeatsFirstClass: f.OpenSeatsFirstClass,
		EconomySeatCost:     f.EconomySeatCost,
		BusinessSeatCost:    f.BusinessSeatCost,
		FirstClassCost:      f.FirstClassCost,
	}
}
