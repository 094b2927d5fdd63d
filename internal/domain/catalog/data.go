// internal/domain/catalog/data.go
package catalog

// Categories is the fixed category list. The "all" entry is a display
// sentinel and never appears on a product.
var Categories = []Category{
	{ID: CategoryAll, Name: "Semua"},
	{ID: "makanan", Name: "Makanan"},
	{ID: "minuman", Name: "Minuman"},
	{ID: "snack", Name: "Snack"},
}

// Products is the fixed, ordered catalog. Order here is display order and is
// the canonical order for reconciled cart items.
var Products = []Product{
	{ID: "nasi-goreng", Name: "Nasi Goreng Spesial", CategoryID: "makanan", Price: 25000},
	{ID: "ayam-bakar", Name: "Ayam Bakar Madu", CategoryID: "makanan", Price: 30000},
	{ID: "sate-ayam", Name: "Sate Ayam (10 tusuk)", CategoryID: "makanan", Price: 28000},
	{ID: "mie-goreng", Name: "Mie Goreng Jawa", CategoryID: "makanan", Price: 22000},
	{ID: "gado-gado", Name: "Gado-Gado", CategoryID: "makanan", Price: 18000},
	{ID: "es-teh", Name: "Es Teh Manis", CategoryID: "minuman", Price: 5000},
	{ID: "es-jeruk", Name: "Es Jeruk Peras", CategoryID: "minuman", Price: 8000},
	{ID: "kopi-susu", Name: "Kopi Susu Gula Aren", CategoryID: "minuman", Price: 15000},
	{ID: "air-mineral", Name: "Air Mineral", CategoryID: "minuman", Price: 4000},
	{ID: "pisang-goreng", Name: "Pisang Goreng Keju", CategoryID: "snack", Price: 12000},
	{ID: "tahu-crispy", Name: "Tahu Crispy", CategoryID: "snack", Price: 10000},
	{ID: "kerupuk", Name: "Kerupuk Udang", CategoryID: "snack", Price: 3000},
}
