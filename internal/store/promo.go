package store

import (
	"strings"

	"sajhnaa_back_end/internal/models"
)

// Table statique des codes promo, clés insensibles à la casse.
var promoTable = map[string]models.Promo{
	"SAJHNAA20": {Code: "SAJHNAA20", Discount: 0.2, Label: "20% OFF"},
	"FIRST10":   {Code: "FIRST10", Discount: 0.1, Label: "10% OFF"},
	"FREESHIP":  {Code: "FREESHIP", Discount: 0, Label: "Free Shipping", FreeShipping: true},
}

// ApplyPromo remplace la promo courante si le code est connu ; sinon l'état
// reste inchangé et une notification d'erreur est émise.
func (s *Store) ApplyPromo(code string) bool {
	promo, ok := promoTable[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		s.AddNotification("Invalid Code", "This promo code is not valid.", models.NotifyError)
		return false
	}

	s.mu.Lock()
	s.appliedPromo = &promo
	s.mu.Unlock()

	s.AddNotification("Promo Applied!", promo.Label+" has been applied.", models.NotifySuccess)
	return true
}

// RemovePromo revient à "aucune promo".
func (s *Store) RemovePromo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appliedPromo = nil
}

// AppliedPromo retourne la promo courante (nil si aucune).
func (s *Store) AppliedPromo() *models.Promo {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.appliedPromo == nil {
		return nil
	}
	p := *s.appliedPromo
	return &p
}

// Quote calcule le récapitulatif du checkout : livraison offerte au-dessus de
// 5000 ₹ ou avec FREESHIP, sinon 99 ₹ ; tout est arrondi au paisa.
func (s *Store) Quote() models.CheckoutQuote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quoteLocked()
}

// ShippingQuote détaille la ligne livraison du panier courant, seuil compris,
// pour l'affichage "plus que X ₹ pour la livraison offerte".
func (s *Store) ShippingQuote() models.ShippingQuote {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.quoteLocked()
	return models.ShippingQuote{
		CartTotal:     q.Subtotal,
		FreeThreshold: freeShippingThreshold,
		Price:         q.Shipping,
		IsFree:        q.Shipping == 0,
	}
}

func (s *Store) quoteLocked() models.CheckoutQuote {
	subtotal := s.cartTotalLocked()
	discount := 0.0
	freeShipping := false
	if s.appliedPromo != nil {
		discount = s.appliedPromo.Discount * subtotal
		freeShipping = s.appliedPromo.FreeShipping
	}

	shipping := flatShippingFee
	if subtotal > freeShippingThreshold || freeShipping || subtotal == 0 {
		shipping = 0
	}

	return models.CheckoutQuote{
		Subtotal: round2(subtotal),
		Discount: round2(discount),
		Shipping: shipping,
		Total:    round2(subtotal - discount + shipping),
	}
}
