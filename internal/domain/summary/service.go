// internal/domain/summary/service.go
package summary

import (
	"github.com/your-org/rsvp-backend/internal/config"
	"github.com/your-org/rsvp-backend/internal/domain/reservation"
)

// Service handles the organizer-facing summary
type Service struct {
	rsv    *reservation.Service
	config *config.Config
}

// NewService creates a new summary service
func NewService(rsv *reservation.Service, cfg *config.Config) *Service {
	return &Service{
		rsv:    rsv,
		config: cfg,
	}
}

// Totals represents the aggregated view over all submitted reservations
type Totals struct {
	TotalPax   int   `json:"total_pax"`
	TotalPrice int64 `json:"total_price"`
	TotalOrder int   `json:"total_order"`
}

// Summary bundles the totals with the per-order detail
type Summary struct {
	Totals Totals                    `json:"totals"`
	Orders []reservation.Reservation `json:"orders"`
}

// Aggregate folds a collection of reservations into total headcount, total
// revenue and order count. Pax and price are plain ints, so an order that
// never set them contributes zero rather than poisoning the sum.
func Aggregate(orders []reservation.Reservation) Totals {
	totals := Totals{TotalOrder: len(orders)}
	for _, order := range orders {
		totals.TotalPax += order.Pax
		totals.TotalPrice += order.PriceTotal
	}
	return totals
}

// Get fetches all reservations once and aggregates them
func (s *Service) Get() (*Summary, error) {
	orders, err := s.rsv.List()
	if err != nil {
		return nil, err
	}
	return &Summary{
		Totals: Aggregate(orders),
		Orders: orders,
	}, nil
}
