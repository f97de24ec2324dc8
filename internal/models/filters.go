package models

// Clés de tri du catalogue
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// Filters est l'état courant des filtres catalogue d'une session.
type Filters struct {
	Category    string   `json:"category"`
	PriceMin    float64  `json:"priceMin"`
	PriceMax    float64  `json:"priceMax"`
	Rating      float64  `json:"rating"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
	SortBy      string   `json:"sortBy"`
	SearchQuery string   `json:"searchQuery"`
}

// DefaultFilters : tout le catalogue, tri "featured".
func DefaultFilters() Filters {
	return Filters{
		Category: "all",
		PriceMin: 0,
		PriceMax: 100000,
		Rating:   0,
		SortBy:   SortFeatured,
	}
}

// FilterPatch est un patch partiel : seuls les champs non nil sont appliqués.
type FilterPatch struct {
	Category    *string   `json:"category"`
	PriceMin    *float64  `json:"priceMin"`
	PriceMax    *float64  `json:"priceMax"`
	Rating      *float64  `json:"rating"`
	Colors      *[]string `json:"colors"`
	Sizes       *[]string `json:"sizes"`
	SortBy      *string   `json:"sortBy"`
	SearchQuery *string   `json:"searchQuery"`
}
