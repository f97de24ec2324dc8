package models

// CartLine est une ligne de panier : un instantané produit + la variante choisie.
// Identité d'une ligne = (id produit, taille, couleur) — même produit avec une
// autre variante ⇒ ligne distincte. Taille/couleur vides = variante non choisie.
type CartLine struct {
	Product
	Quantity      int    `json:"quantity"`
	SelectedSize  string `json:"selectedSize,omitempty"`
	SelectedColor string `json:"selectedColor,omitempty"`
}

// SameLine compare la clé d'identité complète d'une ligne.
func (l CartLine) SameLine(productID int64, size, color string) bool {
	return l.ID == productID && l.SelectedSize == size && l.SelectedColor == color
}
