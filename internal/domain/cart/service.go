// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/rsvp-backend/internal/config"
	"github.com/your-org/rsvp-backend/internal/domain/catalog"
	"github.com/your-org/rsvp-backend/internal/domain/reservation"
	"gorm.io/gorm"
)

// Cart is the signed-in guest's working state: the dense reconciled item list
// and its running total. It lives in Redis between requests and is mutated
// only through the reducer.
type Cart struct {
	Phone      string                 `json:"phone"`
	Items      reservation.OrderItems `json:"items"`
	PriceTotal int64                  `json:"price_total"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// Service handles cart business logic
type Service struct {
	db          *gorm.DB
	redisClient *redis.Client
	catalog     *catalog.Service
	rsv         *reservation.Service
	config      *config.Config
}

// NewService creates a new cart service
func NewService(db *gorm.DB, redisClient *redis.Client, cat *catalog.Service, rsv *reservation.Service, cfg *config.Config) *Service {
	return &Service{
		db:          db,
		redisClient: redisClient,
		catalog:     cat,
		rsv:         rsv,
		config:      cfg,
	}
}

// UpdateItemRequest carries a signed quantity delta for one product
type UpdateItemRequest struct {
	Delta int `json:"delta"`
}

// GetCart returns the guest's cart, rebuilding it from the persisted
// reservation when Redis has no copy (first load, expired TTL, sign-out).
func (s *Service) GetCart(ctx context.Context, phone string) (*Cart, error) {
	stored, err := s.loadCart(ctx, phone)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		return stored, nil
	}

	row, err := s.rsv.GetByPhone(phone)
	if err != nil {
		return nil, err
	}

	c := &Cart{
		Phone:      phone,
		Items:      Reconcile(s.catalog.Products(), row.Items),
		PriceTotal: row.PriceTotal,
		UpdatedAt:  time.Now().UTC(),
	}
	if err := s.saveCart(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateItem applies a quantity delta through the reducer and stores the
// result. The mutation is local to the cart; nothing is persisted until
// submission.
func (s *Service) UpdateItem(ctx context.Context, phone, productID string, delta int) (*Cart, error) {
	product, ok := s.catalog.Get(productID)
	if !ok {
		return nil, fmt.Errorf("unknown product %q", productID)
	}

	c, err := s.GetCart(ctx, phone)
	if err != nil {
		return nil, err
	}

	c.Items, c.PriceTotal = UpdateQty(c.Items, product, delta)
	c.UpdatedAt = time.Now().UTC()

	if err := s.saveCart(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Submit projects the cart to its qty > 0 lines and replaces the stored
// reservation wholesale. The cart itself is left as-is so a failed write can
// simply be resubmitted.
func (s *Service) Submit(ctx context.Context, phone string) (*reservation.Reservation, error) {
	c, err := s.GetCart(ctx, phone)
	if err != nil {
		return nil, err
	}

	row, err := s.rsv.Submit(phone, ForSubmission(c.Items), c.PriceTotal)
	if err != nil {
		return nil, err
	}

	c.UpdatedAt = time.Now().UTC()
	if err := s.saveCart(ctx, c); err != nil {
		return nil, err
	}
	return row, nil
}

// Clear drops the Redis copy. The next GetCart reconciles from Postgres
// again, so sign-out resets the working state without touching the row.
func (s *Service) Clear(ctx context.Context, phone string) error {
	return s.redisClient.Del(ctx, s.cartKey(phone)).Err()
}

func (s *Service) cartKey(phone string) string {
	return fmt.Sprintf("cart:phone:%s", phone)
}

func (s *Service) loadCart(ctx context.Context, phone string) (*Cart, error) {
	data, err := s.redisClient.Get(ctx, s.cartKey(phone)).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var c Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return &c, nil
}

func (s *Service) saveCart(ctx context.Context, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	ttl := s.config.Session.CartTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if err := s.redisClient.Set(ctx, s.cartKey(c.Phone), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}
