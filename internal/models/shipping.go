package models

// ShippingQuote : livraison offerte au-dessus du seuil, sinon tarif fixe.
type ShippingQuote struct {
	CartTotal     float64 `json:"cart_total"`
	FreeThreshold float64 `json:"free_threshold"`
	Price         float64 `json:"price"`
	IsFree        bool    `json:"is_free"`
}
