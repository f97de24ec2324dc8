package catalog

import (
	"testing"

	"sajhnaa_back_end/internal/models"
)

func TestApplyDefaultsKeepEverything(t *testing.T) {
	got := Apply(Products(), models.DefaultFilters())
	if len(got) != 12 {
		t.Fatalf("filtres par défaut: tout le catalogue attendu, obtenu %d", len(got))
	}
}

func TestApplyCategory(t *testing.T) {
	f := models.DefaultFilters()
	f.Category = "earrings"
	got := Apply(Products(), f)
	if len(got) == 0 {
		t.Fatal("earrings: au moins un produit attendu")
	}
	for _, p := range got {
		if p.Category != "earrings" {
			t.Fatalf("produit hors catégorie: %+v", p)
		}
	}
}

func TestApplyPriceRange(t *testing.T) {
	f := models.DefaultFilters()
	f.PriceMin = 20000
	f.PriceMax = 50000
	for _, p := range Apply(Products(), f) {
		if p.Price < 20000 || p.Price > 50000 {
			t.Fatalf("prix hors plage: %v", p.Price)
		}
	}
}

func TestApplyColorCaseInsensitive(t *testing.T) {
	f := models.DefaultFilters()
	f.Colors = []string{"gold"}
	got := Apply(Products(), f)
	if len(got) == 0 {
		t.Fatal("couleur 'gold' (minuscule): des produits Gold attendus")
	}
}

func TestApplySearchQuery(t *testing.T) {
	f := models.DefaultFilters()
	f.SearchQuery = "  Solitaire "
	got := Apply(Products(), f)
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("recherche 'Solitaire': produit 1 attendu, obtenu %+v", got)
	}
}

func TestApplySortPriceLow(t *testing.T) {
	f := models.DefaultFilters()
	f.SortBy = models.SortPriceLow
	got := Apply(Products(), f)
	for i := 1; i < len(got); i++ {
		if got[i-1].Price > got[i].Price {
			t.Fatalf("tri prix croissant violé à l'index %d", i)
		}
	}
}

func TestApplySortNewest(t *testing.T) {
	f := models.DefaultFilters()
	f.SortBy = models.SortNewest
	got := Apply(Products(), f)
	if got[0].ID != 12 {
		t.Fatalf("tri newest: id 12 attendu en premier, obtenu %d", got[0].ID)
	}
}

func TestApplyFeaturedKeepsCatalogOrder(t *testing.T) {
	got := Apply(Products(), models.DefaultFilters())
	for i := 1; i < len(got); i++ {
		if got[i-1].ID > got[i].ID {
			t.Fatalf("ordre éditorial violé à l'index %d", i)
		}
	}
}
