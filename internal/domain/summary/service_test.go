package summary

import (
	"testing"

	"github.com/your-org/rsvp-backend/internal/domain/reservation"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name   string
		orders []reservation.Reservation
		want   Totals
	}{
		{
			name:   "no orders",
			orders: nil,
			want:   Totals{TotalPax: 0, TotalPrice: 0, TotalOrder: 0},
		},
		{
			name: "two orders",
			orders: []reservation.Reservation{
				{Pax: 2, PriceTotal: 30000},
				{Pax: 3, PriceTotal: 50000},
			},
			want: Totals{TotalPax: 5, TotalPrice: 80000, TotalOrder: 2},
		},
		{
			name: "order without pax counts as zero",
			orders: []reservation.Reservation{
				{Pax: 4, PriceTotal: 10000},
				{PriceTotal: 25000},
			},
			want: Totals{TotalPax: 4, TotalPrice: 35000, TotalOrder: 2},
		},
		{
			name: "order with neither pax nor total still counts",
			orders: []reservation.Reservation{
				{Phone: "628", Name: "Budi"},
			},
			want: Totals{TotalPax: 0, TotalPrice: 0, TotalOrder: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.orders)
			if got != tt.want {
				t.Errorf("Aggregate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
