// internal/domain/cart/reducer.go
package cart

import (
	"github.com/your-org/rsvp-backend/internal/domain/catalog"
	"github.com/your-org/rsvp-backend/internal/domain/reservation"
)

// Reconcile expands a sparse persisted item list into a dense, catalog-ordered
// list with one entry per product. Quantities and line totals of matched items
// are carried over verbatim; products without a match are zero-filled. When
// the persisted list contains duplicate ids the first match wins. Pure.
func Reconcile(products []catalog.Product, persisted reservation.OrderItems) reservation.OrderItems {
	items := make(reservation.OrderItems, len(products))
	for i, p := range products {
		items[i] = reservation.OrderItem{
			ID:         p.ID,
			Name:       p.Name,
			CategoryID: p.CategoryID,
			Price:      p.Price,
		}
		for _, stored := range persisted {
			if stored.ID == p.ID {
				items[i].Qty = stored.Qty
				items[i].TotalPrice = stored.TotalPrice
				break
			}
		}
	}
	return items
}

// UpdateQty applies a signed quantity delta to the item for product and
// returns the new item list with the recomputed grand total. The item's line
// total is recomputed from its unit price. If the product is missing from the
// list (it never is after Reconcile) a new line is appended. A clamp pass
// over the whole list then forces every qty <= 0 line to exactly (0, 0), so
// repeated negative deltas are no-ops once a line is clamped. Total over its
// inputs; delta 0 is a valid no-op.
func UpdateQty(items reservation.OrderItems, product catalog.Product, delta int) (reservation.OrderItems, int64) {
	next := make(reservation.OrderItems, len(items), len(items)+1)
	copy(next, items)

	found := false
	for i := range next {
		if next[i].ID == product.ID {
			next[i].Qty += delta
			next[i].TotalPrice = int64(next[i].Qty) * product.Price
			found = true
			break
		}
	}
	if !found {
		next = append(next, reservation.OrderItem{
			ID:         product.ID,
			Name:       product.Name,
			CategoryID: product.CategoryID,
			Price:      product.Price,
			Qty:        delta,
			TotalPrice: int64(delta) * product.Price,
		})
	}

	var total int64
	for i := range next {
		if next[i].Qty <= 0 {
			next[i].Qty = 0
			next[i].TotalPrice = 0
		}
		total += next[i].TotalPrice
	}

	return next, total
}

// ForSubmission projects the dense cart down to the lines actually ordered,
// preserving catalog order. Idempotent; never returns a qty <= 0 line.
func ForSubmission(items reservation.OrderItems) reservation.OrderItems {
	selected := make(reservation.OrderItems, 0, len(items))
	for _, item := range items {
		if item.Qty > 0 {
			selected = append(selected, item)
		}
	}
	return selected
}
