package store

import (
	"sajhnaa_back_end/internal/catalog"
	"sajhnaa_back_end/internal/models"
)

// SetFilters fusionne un patch partiel : seuls les champs fournis changent.
func (s *Store) SetFilters(patch models.FilterPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.Category != nil {
		s.filters.Category = *patch.Category
	}
	if patch.PriceMin != nil {
		s.filters.PriceMin = *patch.PriceMin
	}
	if patch.PriceMax != nil {
		s.filters.PriceMax = *patch.PriceMax
	}
	if patch.Rating != nil {
		s.filters.Rating = *patch.Rating
	}
	if patch.Colors != nil {
		s.filters.Colors = append([]string(nil), (*patch.Colors)...)
	}
	if patch.Sizes != nil {
		s.filters.Sizes = append([]string(nil), (*patch.Sizes)...)
	}
	if patch.SortBy != nil {
		s.filters.SortBy = *patch.SortBy
	}
	if patch.SearchQuery != nil {
		s.filters.SearchQuery = *patch.SearchQuery
	}
}

// ResetFilters restaure les valeurs par défaut documentées.
func (s *Store) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = models.DefaultFilters()
}

// Filters retourne l'état courant des filtres.
func (s *Store) Filters() models.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.filters
	f.Colors = append([]string(nil), s.filters.Colors...)
	f.Sizes = append([]string(nil), s.filters.Sizes...)
	return f
}

// FilteredProducts applique les filtres courants à la liste des produits.
func (s *Store) FilteredProducts() []models.Product {
	s.mu.Lock()
	list := make([]models.Product, len(s.products))
	copy(list, s.products)
	f := s.filters
	s.mu.Unlock()

	return catalog.Apply(list, f)
}
