package catalog

import "sajhnaa_back_end/internal/models"

// Fonctions pures, sans effet de bord : le catalogue statique est copié à
// chaque lecture pour que personne ne puisse muter la source.

// Products retourne le catalogue complet, dans l'ordre éditorial.
func Products() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// Categories retourne les descripteurs de catégories.
func Categories() []models.Category {
	out := make([]models.Category, len(categories))
	copy(out, categories)
	return out
}

// ProductByID cherche un produit ; le booléen vaut false si l'id est inconnu.
func ProductByID(id int64) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Recommendations retourne jusqu'à count produits : d'abord la même catégorie
// que la cible, puis les autres, toujours dans l'ordre du catalogue, cible
// exclue. Id inconnu ⇒ les count premiers produits du catalogue.
func Recommendations(productID int64, count int) []models.Product {
	if count <= 0 {
		return nil
	}

	current, ok := ProductByID(productID)
	if !ok {
		all := Products()
		if len(all) > count {
			all = all[:count]
		}
		return all
	}

	var sameCategory, otherCategory []models.Product
	for _, p := range products {
		if p.ID == productID {
			continue
		}
		if p.Category == current.Category {
			sameCategory = append(sameCategory, p)
		} else {
			otherCategory = append(otherCategory, p)
		}
	}

	out := append(sameCategory, otherCategory...)
	if len(out) > count {
		out = out[:count]
	}
	return out
}

// FrequentlyBoughtWith retourne les compagnons figés d'un produit, en
// filtrant les ids absents du catalogue. Id non mappé ⇒ liste vide.
func FrequentlyBoughtWith(productID int64) []models.Product {
	var out []models.Product
	for _, id := range frequentlyBoughtTogether[productID] {
		if p, ok := ProductByID(id); ok {
			out = append(out, p)
		}
	}
	return out
}
