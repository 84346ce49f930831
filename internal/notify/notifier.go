package notify

import (
	"context"

	"github.com/Domenick1991/flightinventory/internal/kafka"
	"go.uber.org/zap"
)

// Notifier renders booking events consumed from the notifications topic.
type Notifier struct {
	log *zap.Logger
}

func NewNotifier(log *zap.Logger) *Notifier {
	return &Notifier{log: log}
}

func (n *Notifier) Notify(_ context.Context, event kafka.BookingEvent) error {
	n.log.Info("booking notification",
		zap.String("type", event.Type),
		zap.String("reference", event.Reference),
		zap.String("flight_number", event.FlightNumber),
		zap.String("route", event.Origin+"-"+event.Destination),
		zap.String("seat_class", event.SeatClass),
		zap.Int("seats", event.Seats),
		zap.Int64("total_cost", event.TotalCost),
	)
	return nil
}
