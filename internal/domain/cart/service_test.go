package cart

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/rsvp-backend/internal/config"
	"github.com/your-org/rsvp-backend/internal/domain/catalog"
	"github.com/your-org/rsvp-backend/internal/domain/reservation"
)

func newTestService(t *testing.T) (*Service, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cfg := &config.Config{}
	cfg.Session.CartTTL = time.Hour

	cat := catalog.NewService()

	// The reservation service is only reached on a Redis miss; these tests
	// seed Redis first, so no database is needed.
	return NewService(nil, client, cat, nil, cfg), mr
}

func seedCart(t *testing.T, mr *miniredis.Miniredis, c *Cart) {
	t.Helper()
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("failed to encode cart: %v", err)
	}
	if err := mr.Set("cart:phone:"+c.Phone, string(data)); err != nil {
		t.Fatalf("failed to seed cart: %v", err)
	}
}

func TestGetCartFromRedis(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	want := &Cart{
		Phone:      "628123456789",
		Items:      Reconcile(catalog.Products, nil),
		PriceTotal: 0,
		UpdatedAt:  time.Now().UTC(),
	}
	seedCart(t, mr, want)

	got, err := svc.GetCart(ctx, "628123456789")
	if err != nil {
		t.Fatalf("GetCart failed: %v", err)
	}
	if got.Phone != want.Phone {
		t.Errorf("phone = %q, want %q", got.Phone, want.Phone)
	}
	if len(got.Items) != len(catalog.Products) {
		t.Errorf("items length = %d, want %d", len(got.Items), len(catalog.Products))
	}
}

func TestUpdateItemThroughStore(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	seedCart(t, mr, &Cart{
		Phone: "628123456789",
		Items: Reconcile(catalog.Products, nil),
	})

	first := catalog.Products[0]

	c, err := svc.UpdateItem(ctx, "628123456789", first.ID, 2)
	if err != nil {
		t.Fatalf("UpdateItem failed: %v", err)
	}
	if c.PriceTotal != 2*first.Price {
		t.Errorf("priceTotal = %d, want %d", c.PriceTotal, 2*first.Price)
	}

	// The stored copy reflects the update
	c2, err := svc.GetCart(ctx, "628123456789")
	if err != nil {
		t.Fatalf("GetCart failed: %v", err)
	}
	if c2.PriceTotal != c.PriceTotal {
		t.Errorf("stored priceTotal = %d, want %d", c2.PriceTotal, c.PriceTotal)
	}

	// Over-decrement clamps through the store as well
	c3, err := svc.UpdateItem(ctx, "628123456789", first.ID, -99)
	if err != nil {
		t.Fatalf("UpdateItem failed: %v", err)
	}
	if c3.PriceTotal != 0 {
		t.Errorf("priceTotal after clamp = %d, want 0", c3.PriceTotal)
	}
}

func TestUpdateItemUnknownProduct(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	seedCart(t, mr, &Cart{
		Phone: "628123456789",
		Items: Reconcile(catalog.Products, nil),
	})

	if _, err := svc.UpdateItem(ctx, "628123456789", "not-a-product", 1); err == nil {
		t.Fatal("expected error for unknown product id")
	}
}

func TestClearDropsStoredCart(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	seedCart(t, mr, &Cart{
		Phone: "628123456789",
		Items: Reconcile(catalog.Products, nil),
	})

	if err := svc.Clear(ctx, "628123456789"); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if mr.Exists("cart:phone:628123456789") {
		t.Error("cart key still present after Clear")
	}
}

func TestCartJSONRoundTrip(t *testing.T) {
	items := Reconcile(catalog.Products, reservation.OrderItems{
		{ID: catalog.Products[1].ID, Qty: 2, TotalPrice: 2 * catalog.Products[1].Price},
	})
	c := Cart{Phone: "628", Items: items, PriceTotal: 2 * catalog.Products[1].Price}

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var back Cart
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back.PriceTotal != c.PriceTotal || len(back.Items) != len(c.Items) {
		t.Errorf("round trip mismatch: %+v", back)
	}
}
