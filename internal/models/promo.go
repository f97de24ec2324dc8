package models

// Promo est un code de réduction. Discount est une fraction du sous-total
// (0.2 = -20%) ; FreeShipping force la livraison offerte.
type Promo struct {
	Code         string  `json:"code"`
	Discount     float64 `json:"discount"`
	Label        string  `json:"label"`
	FreeShipping bool    `json:"freeShipping,omitempty"`
}

// CheckoutQuote est le récapitulatif monétaire du panier, arrondi au paisa.
type CheckoutQuote struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}
