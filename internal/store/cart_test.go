package store

import (
	"testing"
)

func TestAddToCartMergesSameLine(t *testing.T) {
	s, _ := newTestStore(t)
	p := mustProduct(t, 1)

	s.AddToCart(p, 1, "7", "Gold")
	s.AddToCart(p, 2, "7", "Gold")

	cart := s.Cart()
	if len(cart) != 1 {
		t.Fatalf("même variante: attendu 1 ligne, obtenu %d", len(cart))
	}
	if cart[0].Quantity != 3 {
		t.Fatalf("quantité fusionnée: attendu 3, obtenu %d", cart[0].Quantity)
	}
}

func TestAddToCartDistinctVariants(t *testing.T) {
	s, _ := newTestStore(t)
	p := mustProduct(t, 1)

	s.AddToCart(p, 1, "6", "Gold")
	s.AddToCart(p, 1, "7", "Gold")
	s.AddToCart(p, 1, "7", "Silver")

	if got := len(s.Cart()); got != 3 {
		t.Fatalf("variantes distinctes: attendu 3 lignes, obtenu %d", got)
	}
	if got := s.CartCount(); got != 3 {
		t.Fatalf("CartCount: attendu 3, obtenu %d", got)
	}
}

func TestAddToCartClampsQuantity(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddToCart(mustProduct(t, 1), 0, "", "")
	if got := s.Cart()[0].Quantity; got != 1 {
		t.Fatalf("quantité 0 ramenée à 1, obtenu %d", got)
	}
}

func TestUpdateCartQuantityZeroRemoves(t *testing.T) {
	s, _ := newTestStore(t)
	p := mustProduct(t, 1)

	s.AddToCart(p, 2, "7", "Gold")
	s.UpdateCartQuantity(p.ID, "7", "Gold", 0)
	if len(s.Cart()) != 0 {
		t.Fatal("quantité 0 doit supprimer la ligne")
	}

	s.AddToCart(p, 2, "7", "Gold")
	s.UpdateCartQuantity(p.ID, "7", "Gold", 5)
	if got := s.Cart()[0].Quantity; got != 5 {
		t.Fatalf("quantité fixée à 5, obtenu %d", got)
	}
}

func TestRemoveFromCartMatchesFullKey(t *testing.T) {
	s, _ := newTestStore(t)
	p := mustProduct(t, 1)

	s.AddToCart(p, 1, "6", "Gold")
	s.AddToCart(p, 1, "7", "Gold")

	s.RemoveFromCart(p.ID, "6", "Gold")
	cart := s.Cart()
	if len(cart) != 1 || cart[0].SelectedSize != "7" {
		t.Fatalf("seule la variante taille 6 devait partir, reste %+v", cart)
	}

	// Clé inconnue: aucune erreur, état inchangé.
	s.RemoveFromCart(p.ID, "9", "Rose Gold")
	if len(s.Cart()) != 1 {
		t.Fatal("retrait d'une clé inconnue ne doit rien changer")
	}
}

func TestCartTotalRecomputed(t *testing.T) {
	s, _ := newTestStore(t)
	p1 := mustProduct(t, 1) // 45999
	p2 := mustProduct(t, 4) // 15999

	s.AddToCart(p1, 2, "", "")
	s.AddToCart(p2, 1, "", "")

	want := p1.Price*2 + p2.Price
	if got := s.CartTotal(); got != want {
		t.Fatalf("CartTotal: attendu %v, obtenu %v", want, got)
	}

	s.ClearCart()
	if s.CartTotal() != 0 {
		t.Fatal("panier vidé: total attendu 0")
	}
}

func TestSaveForLaterRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	p := mustProduct(t, 2)

	s.AddToCart(p, 2, "7", "Gold")
	line := s.Cart()[0]
	s.SaveForLater(line)

	if len(s.Cart()) != 0 {
		t.Fatal("la ligne mise de côté doit quitter le panier")
	}
	saved := s.SavedForLater()
	if len(saved) != 1 || saved[0].ID != p.ID {
		t.Fatalf("mis de côté: attendu le produit %d, obtenu %+v", p.ID, saved)
	}

	s.MoveToCart(p)
	if len(s.SavedForLater()) != 0 {
		t.Fatal("MoveToCart doit vider l'entrée mise de côté")
	}
	cart := s.Cart()
	if len(cart) != 1 || cart[0].Quantity != 1 {
		t.Fatalf("retour panier: attendu quantité 1, obtenu %+v", cart)
	}
	if cart[0].SelectedSize != "" || cart[0].SelectedColor != "" {
		t.Fatal("retour panier: pas de variante présélectionnée")
	}
}

func TestSaveForLaterDedupes(t *testing.T) {
	s, _ := newTestStore(t)
	p := mustProduct(t, 2)

	s.AddToCart(p, 1, "6", "Gold")
	s.AddToCart(p, 1, "7", "Gold")

	lines := s.Cart()
	s.SaveForLater(lines[0])
	s.SaveForLater(lines[1])

	if got := len(s.SavedForLater()); got != 1 {
		t.Fatalf("mis de côté dédoublonné par id: attendu 1, obtenu %d", got)
	}
	// La seconde ligne, même id, reste au panier.
	if got := len(s.Cart()); got != 1 {
		t.Fatalf("la seconde variante doit rester au panier, obtenu %d lignes", got)
	}
}
