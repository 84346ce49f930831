package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/flightinventory/internal/domain"
	"github.com/Domenick1991/flightinventory/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	FlightID int64  `json:"flight_id"`
	SeatType string `json:"seat_type"`
	NumSeats int    `json:"num_seats"`
}

type bookingResponse struct {
	Reference  string         `json:"reference"`
	Message    string         `json:"message"`
	SeatType   string         `json:"seat_type"`
	NumSeats   int            `json:"num_seats"`
	TotalCost  int64          `json:"total_cost"`
	FlightInfo flightResponse `json:"flight_info"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	confirmation, err := h.service.BookFlight(c.Request.Context(), booking.BookFlightInput{
		FlightID:  req.FlightID,
		SeatClass: req.SeatType,
		Seats:     req.NumSeats,
	})
	if err != nil {
		h.renderBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bookingResponse{
		Reference:  confirmation.Reference,
		Message:    confirmation.Message,
		SeatType:   string(confirmation.SeatClass),
		NumSeats:   confirmation.Seats,
		TotalCost:  confirmation.TotalCost,
		FlightInfo: toFlightResponse(*confirmation.Flight),
	})
}

// Business outcomes map to distinct statuses so callers can branch without
// parsing messages; anything unrecognized is a store failure.
func (h *BookingHandler) renderBookingError(c *gin.Context, err error) {
	var insufficient *domain.InsufficientSeatsError
	switch {
	case errors.Is(err, domain.ErrFlightNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Flight not found."})
	case errors.As(err, &insufficient):
		c.JSON(http.StatusConflict, gin.H{"error": insufficient.Error()})
	case errors.Is(err, domain.ErrInvalidSeatClass):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
