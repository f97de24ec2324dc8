package models

// Product est un instantané complet d'un bijou du catalogue.
// Invariant : colors et colorNames ont la même longueur (index = même variante),
// sizes n'est jamais vide.
type Product struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Image         string   `json:"image"`
	Colors        []string `json:"colors"`
	ColorNames    []string `json:"colorNames"`
	Sizes         []string `json:"sizes"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
	Material      string   `json:"material"`
	Badge         string   `json:"badge,omitempty"`
	ModelPath     string   `json:"modelPath,omitempty"`
}
