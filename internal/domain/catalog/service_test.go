package catalog

import "testing"

func TestGetAndIndexOf(t *testing.T) {
	svc := NewService()

	for i, p := range Products {
		got, ok := svc.Get(p.ID)
		if !ok {
			t.Fatalf("Get(%q) not found", p.ID)
		}
		if got != p {
			t.Errorf("Get(%q) = %+v, want %+v", p.ID, got, p)
		}
		if idx := svc.IndexOf(p.ID); idx != i {
			t.Errorf("IndexOf(%q) = %d, want %d", p.ID, idx, i)
		}
	}

	if _, ok := svc.Get("nope"); ok {
		t.Error("Get of unknown id reported found")
	}
	if idx := svc.IndexOf("nope"); idx != -1 {
		t.Errorf("IndexOf of unknown id = %d, want -1", idx)
	}
}

func TestFilter(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name       string
		categoryID string
		search     string
		check      func(t *testing.T, got []Product)
	}{
		{
			name:       "all sentinel matches everything",
			categoryID: CategoryAll,
			check: func(t *testing.T, got []Product) {
				if len(got) != len(Products) {
					t.Errorf("got %d products, want %d", len(got), len(Products))
				}
			},
		},
		{
			name:       "empty category behaves like all",
			categoryID: "",
			check: func(t *testing.T, got []Product) {
				if len(got) != len(Products) {
					t.Errorf("got %d products, want %d", len(got), len(Products))
				}
			},
		},
		{
			name:       "category filter",
			categoryID: "minuman",
			check: func(t *testing.T, got []Product) {
				if len(got) == 0 {
					t.Fatal("no minuman products")
				}
				for _, p := range got {
					if p.CategoryID != "minuman" {
						t.Errorf("product %q has category %q", p.ID, p.CategoryID)
					}
				}
			},
		},
		{
			name:       "search is case-insensitive",
			categoryID: CategoryAll,
			search:     "GORENG",
			check: func(t *testing.T, got []Product) {
				if len(got) == 0 {
					t.Fatal("search matched nothing")
				}
			},
		},
		{
			name:       "search respects category",
			categoryID: "minuman",
			search:     "goreng",
			check: func(t *testing.T, got []Product) {
				if len(got) != 0 {
					t.Errorf("expected no matches, got %d", len(got))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, svc.Filter(tt.categoryID, tt.search))
		})
	}
}

func TestFilterPreservesCatalogOrder(t *testing.T) {
	svc := NewService()
	got := svc.Filter(CategoryAll, "")
	for i, p := range got {
		if p.ID != Products[i].ID {
			t.Fatalf("position %d: %q, want %q", i, p.ID, Products[i].ID)
		}
	}
}
