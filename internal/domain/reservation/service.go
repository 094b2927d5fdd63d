// internal/domain/reservation/service.go
package reservation

import (
	"errors"
	"fmt"

	"github.com/your-org/rsvp-backend/internal/config"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when no reservation exists for a phone number
var ErrNotFound = errors.New("reservation not found")

// Service handles reservation persistence
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new reservation service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// SignInRequest represents the sign-in payload
type SignInRequest struct {
	Phone string `json:"phone" binding:"required,min=10"`
	Name  string `json:"name" binding:"required,min=2"`
	Pax   int    `json:"pax" binding:"omitempty,min=0"`
}

// SignIn upserts a reservation keyed by phone. An existing row keeps its
// items and totals; only name (and pax, when provided) are refreshed.
func (s *Service) SignIn(req *SignInRequest) (*Reservation, error) {
	row := Reservation{
		Phone: req.Phone,
		Name:  req.Name,
		Pax:   req.Pax,
	}

	columns := []string{"name"}
	if req.Pax > 0 {
		columns = append(columns, "pax")
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "phone"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert reservation: %w", err)
	}

	return s.GetByPhone(req.Phone)
}

// GetByPhone does a point lookup by the phone key
func (s *Service) GetByPhone(phone string) (*Reservation, error) {
	var row Reservation
	err := s.db.Where("phone = ?", phone).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reservation: %w", err)
	}
	return &row, nil
}

// Submit replaces the stored items and price total wholesale for the given
// phone. Last writer wins; there is no merge and no concurrency check.
func (s *Service) Submit(phone string, items OrderItems, priceTotal int64) (*Reservation, error) {
	if err := ValidateItems(items); err != nil {
		return nil, err
	}

	result := s.db.Model(&Reservation{}).
		Where("phone = ?", phone).
		Updates(map[string]interface{}{
			"items":       items,
			"price_total": priceTotal,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to submit order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return s.GetByPhone(phone)
}

// List returns all reservations, oldest first. The summary view folds over
// this snapshot; it is not live-subscribed.
func (s *Service) List() ([]Reservation, error) {
	var rows []Reservation
	if err := s.db.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return rows, nil
}

// ValidateItems rejects item lists that would be invalid to persist:
// duplicate product ids or non-positive quantities. Reads of pre-existing bad
// data still go through the reconciler's first-match-wins rule.
func ValidateItems(items OrderItems) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.Qty <= 0 {
			return fmt.Errorf("item %q has non-positive quantity %d", item.ID, item.Qty)
		}
		if _, dup := seen[item.ID]; dup {
			return fmt.Errorf("duplicate item id %q", item.ID)
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}
