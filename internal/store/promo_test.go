package store

import (
	"testing"

	"sajhnaa_back_end/internal/models"
)

func TestApplyPromoCaseInsensitive(t *testing.T) {
	s, _ := newTestStore(t)

	if !s.ApplyPromo("sajhnaa20") {
		t.Fatal("le code devrait être accepté quelle que soit la casse")
	}
	promo := s.AppliedPromo()
	if promo == nil || promo.Code != "SAJHNAA20" {
		t.Fatalf("promo attendue SAJHNAA20, obtenu %+v", promo)
	}
}

func TestApplyPromoUnknownCodeLeavesState(t *testing.T) {
	s, _ := newTestStore(t)

	s.ApplyPromo("FIRST10")
	if s.ApplyPromo("BOGUS") {
		t.Fatal("un code inconnu doit être rejeté")
	}
	promo := s.AppliedPromo()
	if promo == nil || promo.Code != "FIRST10" {
		t.Fatalf("la promo précédente doit rester appliquée, obtenu %+v", promo)
	}
}

func TestApplyPromoReplacesPrevious(t *testing.T) {
	s, _ := newTestStore(t)

	s.ApplyPromo("SAJHNAA20")
	s.ApplyPromo("FIRST10")
	promo := s.AppliedPromo()
	if promo == nil || promo.Code != "FIRST10" {
		t.Fatalf("une seule promo à la fois, attendu FIRST10, obtenu %+v", promo)
	}

	s.RemovePromo()
	if s.AppliedPromo() != nil {
		t.Fatal("RemovePromo doit revenir à aucune promo")
	}
}

func TestQuoteRounding(t *testing.T) {
	s, _ := newTestStore(t)
	p := mustProduct(t, 1) // 45999

	s.AddToCart(p, 1, "", "")
	s.ApplyPromo("FIRST10")

	q := s.Quote()
	if q.Subtotal != 45999 {
		t.Fatalf("sous-total attendu 45999, obtenu %v", q.Subtotal)
	}
	if q.Discount != 4599.90 {
		t.Fatalf("remise attendue 4599.90, obtenu %v", q.Discount)
	}
	if q.Shipping != 0 {
		t.Fatalf("livraison offerte au-dessus de 5000, obtenu %v", q.Shipping)
	}
	if q.Total != 41399.10 {
		t.Fatalf("total attendu 41399.10, obtenu %v", q.Total)
	}
}

func TestQuoteFlatShippingUnderThreshold(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddToCart(models.Product{ID: 9001, Name: "Petit charm", Price: 1500}, 1, "", "")

	q := s.Quote()
	if q.Shipping != 99 {
		t.Fatalf("livraison forfaitaire 99 sous le seuil, obtenu %v", q.Shipping)
	}
	if q.Total != 1599 {
		t.Fatalf("total attendu 1599, obtenu %v", q.Total)
	}
}

func TestQuoteFreeShipPromo(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddToCart(models.Product{ID: 9001, Name: "Petit charm", Price: 1500}, 1, "", "")
	s.ApplyPromo("FREESHIP")

	q := s.Quote()
	if q.Discount != 0 {
		t.Fatalf("FREESHIP: pas de remise, obtenu %v", q.Discount)
	}
	if q.Shipping != 0 {
		t.Fatalf("FREESHIP: livraison offerte, obtenu %v", q.Shipping)
	}
	if q.Total != 1500 {
		t.Fatalf("total attendu 1500, obtenu %v", q.Total)
	}
}

func TestQuoteEmptyCart(t *testing.T) {
	s, _ := newTestStore(t)

	q := s.Quote()
	if q.Subtotal != 0 || q.Shipping != 0 || q.Total != 0 {
		t.Fatalf("panier vide: tout à zéro, obtenu %+v", q)
	}
}
