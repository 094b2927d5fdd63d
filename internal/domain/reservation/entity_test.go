package reservation

import "testing"

func TestValidateItems(t *testing.T) {
	tests := []struct {
		name    string
		items   OrderItems
		wantErr bool
	}{
		{
			name:    "empty list is valid",
			items:   OrderItems{},
			wantErr: false,
		},
		{
			name: "distinct positive items are valid",
			items: OrderItems{
				{ID: "p1", Qty: 1, TotalPrice: 10000},
				{ID: "p2", Qty: 3, TotalPrice: 60000},
			},
			wantErr: false,
		},
		{
			name: "duplicate id rejected",
			items: OrderItems{
				{ID: "p1", Qty: 1, TotalPrice: 10000},
				{ID: "p1", Qty: 2, TotalPrice: 20000},
			},
			wantErr: true,
		},
		{
			name: "zero quantity rejected",
			items: OrderItems{
				{ID: "p1", Qty: 0, TotalPrice: 0},
			},
			wantErr: true,
		},
		{
			name: "negative quantity rejected",
			items: OrderItems{
				{ID: "p1", Qty: -2, TotalPrice: -20000},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItems(tt.items)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateItems() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	r := Reservation{Name: "Budi", NameAlias: ""}
	if got := r.DisplayName(); got != "Budi" {
		t.Errorf("DisplayName() = %q, want %q", got, "Budi")
	}

	r.NameAlias = "Budi Kantor"
	if got := r.DisplayName(); got != "Budi Kantor" {
		t.Errorf("DisplayName() = %q, want %q", got, "Budi Kantor")
	}
}

func TestOrderItemsScan(t *testing.T) {
	raw := []byte(`[{"id":"p1","name":"Produk","category_id":"makanan","price":10000,"qty":2,"total_price":20000}]`)

	var items OrderItems
	if err := items.Scan(raw); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(items) != 1 || items[0].ID != "p1" || items[0].TotalPrice != 20000 {
		t.Errorf("Scan produced %+v", items)
	}

	var empty OrderItems
	if err := empty.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Scan(nil) produced %+v", empty)
	}
}
