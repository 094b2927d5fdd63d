// internal/domain/catalog/service.go
package catalog

import "strings"

// Service provides read access to the fixed catalog
type Service struct {
	products   []Product
	categories []Category
	index      map[string]int // product id -> position in products
}

// NewService creates a catalog service over the build-time catalog
func NewService() *Service {
	return newService(Products, Categories)
}

func newService(products []Product, categories []Category) *Service {
	index := make(map[string]int, len(products))
	for i, p := range products {
		index[p.ID] = i
	}
	return &Service{
		products:   products,
		categories: categories,
		index:      index,
	}
}

// Products returns the full catalog in display order
func (s *Service) Products() []Product {
	return s.products
}

// Categories returns all categories including the "all" sentinel
func (s *Service) Categories() []Category {
	return s.categories
}

// Get returns the product for the given id
func (s *Service) Get(id string) (Product, bool) {
	i, ok := s.index[id]
	if !ok {
		return Product{}, false
	}
	return s.products[i], true
}

// IndexOf returns the catalog position of a product id, or -1
func (s *Service) IndexOf(id string) int {
	if i, ok := s.index[id]; ok {
		return i
	}
	return -1
}

// Filter returns products matching the category and a case-insensitive name
// substring. CategoryAll and an empty search match everything.
func (s *Service) Filter(categoryID, search string) []Product {
	filtered := make([]Product, 0, len(s.products))
	search = strings.ToLower(search)
	for _, p := range s.products {
		if categoryID != "" && categoryID != CategoryAll && p.CategoryID != categoryID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}
