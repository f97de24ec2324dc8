package catalog

import (
	"sort"
	"strings"

	"sajhnaa_back_end/internal/models"
)

// Apply filtre puis trie une liste de produits selon l'état des filtres.
// Un ensemble de couleurs/tailles vide n'exclut rien.
func Apply(list []models.Product, f models.Filters) []models.Product {
	out := make([]models.Product, 0, len(list))
	for _, p := range list {
		if !matches(p, f) {
			continue
		}
		out = append(out, p)
	}
	sortProducts(out, f.SortBy)
	return out
}

func matches(p models.Product, f models.Filters) bool {
	if f.Category != "" && f.Category != "all" && p.Category != f.Category {
		return false
	}
	if p.Price < f.PriceMin || p.Price > f.PriceMax {
		return false
	}
	if p.Rating < f.Rating {
		return false
	}
	if len(f.Colors) > 0 && !intersects(p.ColorNames, f.Colors) {
		return false
	}
	if len(f.Sizes) > 0 && !intersects(p.Sizes, f.Sizes) {
		return false
	}
	if q := strings.TrimSpace(f.SearchQuery); q != "" {
		q = strings.ToLower(q)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) &&
			!strings.Contains(strings.ToLower(p.Material), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) {
			return false
		}
	}
	return true
}

func intersects(values, accepted []string) bool {
	for _, v := range values {
		for _, a := range accepted {
			if strings.EqualFold(v, a) {
				return true
			}
		}
	}
	return false
}

func sortProducts(list []models.Product, sortBy string) {
	switch sortBy {
	case models.SortPriceLow:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price < list[j].Price })
	case models.SortPriceHigh:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price > list[j].Price })
	case models.SortRating:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Rating > list[j].Rating })
	case models.SortNewest:
		// les ids croissent avec l'ancienneté d'ajout au catalogue
		sort.SliceStable(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	default:
		// "featured" : ordre éditorial du catalogue
	}
}
