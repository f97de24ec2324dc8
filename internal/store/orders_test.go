package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"sajhnaa_back_end/internal/models"
)

var orderIDPattern = regexp.MustCompile(`^SJ-[A-Z0-9]{8}$`)

func testAddress() models.ShippingAddress {
	return models.ShippingAddress{
		FirstName: "Priya",
		LastName:  "Sharma",
		Email:     "priya@example.com",
		Address:   "12 MG Road",
		City:      "Mumbai",
		State:     "MH",
		Zip:       "400001",
		Country:   "India",
	}
}

func TestPlaceOrderHappyPath(t *testing.T) {
	s, sync := newTestStore(t)
	p := mustProduct(t, 1)

	s.AddToCart(p, 2, "7", "Gold")
	s.ApplyPromo("FIRST10")

	order, err := s.PlaceOrder(context.Background(), testAddress(), models.PaymentMethod{Method: "card", Details: "Visa ****4242"})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if !orderIDPattern.MatchString(order.ID) {
		t.Fatalf("format d'identifiant invalide: %q", order.ID)
	}
	if order.Date != "2026-03-15" {
		t.Fatalf("date attendue 2026-03-15, obtenu %q", order.Date)
	}
	if order.CustomerName != "Priya Sharma" {
		t.Fatalf("nom client attendu 'Priya Sharma', obtenu %q", order.CustomerName)
	}
	if order.Status != models.OrderStatusProcessing {
		t.Fatalf("statut initial attendu processing, obtenu %q", order.Status)
	}

	// Total = (45999*2) * 0.9, arrondi.
	want := round2(45999*2 - 45999*2*0.1)
	if order.Total != want {
		t.Fatalf("total attendu %v, obtenu %v", want, order.Total)
	}

	steps := order.TrackingSteps
	if len(steps) != 5 {
		t.Fatalf("attendu 5 étapes de suivi, obtenu %d", len(steps))
	}
	if !steps[0].Completed || !steps[1].Completed {
		t.Fatal("les deux premières étapes doivent être complétées")
	}
	if steps[2].Completed || steps[3].Completed || steps[4].Completed {
		t.Fatal("les étapes restantes doivent être en attente")
	}

	// Effets locaux après succès distant.
	if s.CartCount() != 0 {
		t.Fatal("le panier doit être vidé après la commande")
	}
	if promo := s.AppliedPromo(); promo == nil || promo.Code != "FIRST10" {
		t.Fatalf("la promo reste appliquée pour le prochain panier, obtenu %+v", promo)
	}
	orders := s.Orders()
	if len(orders) != 1 || orders[0].ID != order.ID {
		t.Fatalf("la commande doit être en tête de liste, obtenu %+v", orders)
	}
	if len(sync.submitted) != 1 {
		t.Fatalf("une seule soumission distante attendue, obtenu %d", len(sync.submitted))
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	s, sync := newTestStore(t)

	if _, err := s.PlaceOrder(context.Background(), testAddress(), models.PaymentMethod{Method: "cod"}); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("attendu ErrEmptyCart, obtenu %v", err)
	}
	if len(sync.submitted) != 0 {
		t.Fatal("aucune soumission distante sur panier vide")
	}
}

func TestPlaceOrderRemoteFailureKeepsCart(t *testing.T) {
	s, sync := newTestStore(t)
	sync.failNext = errBoom

	s.AddToCart(mustProduct(t, 1), 1, "", "")
	if _, err := s.PlaceOrder(context.Background(), testAddress(), models.PaymentMethod{Method: "card"}); !errors.Is(err, errBoom) {
		t.Fatalf("l'erreur distante doit remonter, obtenu %v", err)
	}

	if s.CartCount() != 1 {
		t.Fatal("le panier doit rester intact après un échec distant")
	}
	if len(s.Orders()) != 0 {
		t.Fatal("aucune commande locale après un échec distant")
	}
}

func TestOrderIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := generateOrderID()
		if !orderIDPattern.MatchString(id) {
			t.Fatalf("format invalide: %q", id)
		}
		if seen[id] {
			t.Fatalf("collision inattendue sur %q", id)
		}
		seen[id] = true
	}
}

func placeTestOrder(t *testing.T, s *Store) models.Order {
	t.Helper()
	s.AddToCart(mustProduct(t, 1), 1, "", "")
	order, err := s.PlaceOrder(context.Background(), testAddress(), models.PaymentMethod{Method: "card"})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	return order
}

func TestUpdateOrderStatusShippedThenDelivered(t *testing.T) {
	s, sync := newTestStore(t)
	order := placeTestOrder(t, s)

	if err := s.UpdateOrderStatus(context.Background(), order.ID, models.OrderStatusShipped); err != nil {
		t.Fatalf("passage shipped: %v", err)
	}
	got, _ := s.OrderByID(order.ID)
	if got.Status != models.OrderStatusShipped {
		t.Fatalf("statut attendu shipped, obtenu %q", got.Status)
	}
	if !got.TrackingSteps[2].Completed || got.TrackingSteps[2].Date != "2026-03-15" {
		t.Fatalf("étape Shipped attendue complétée au 2026-03-15, obtenu %+v", got.TrackingSteps[2])
	}
	if got.TrackingSteps[3].Completed {
		t.Fatal("Out for Delivery ne doit pas encore être complétée")
	}

	if err := s.UpdateOrderStatus(context.Background(), order.ID, models.OrderStatusDelivered); err != nil {
		t.Fatalf("passage delivered: %v", err)
	}
	got, _ = s.OrderByID(order.ID)
	for i, st := range got.TrackingSteps {
		if !st.Completed {
			t.Fatalf("étape %d (%s) devrait être complétée", i, st.Label)
		}
	}
	// La date de Shipped posée au premier passage est conservée.
	if got.TrackingSteps[2].Date != "2026-03-15" {
		t.Fatalf("la date de Shipped doit être conservée, obtenu %q", got.TrackingSteps[2].Date)
	}

	if len(sync.patched) != 2 {
		t.Fatalf("deux propagations distantes attendues, obtenu %v", sync.patched)
	}
	if !hasNotification(s, models.NotifySuccess, "Order Updated") {
		t.Fatal("un changement de statut réussi doit émettre un toast de succès")
	}
}

func TestUpdateOrderStatusDeliveredDirect(t *testing.T) {
	s, _ := newTestStore(t)
	order := placeTestOrder(t, s)

	// delivered sans passer par shipped: la date de Shipped est celle du jour.
	if err := s.UpdateOrderStatus(context.Background(), order.ID, models.OrderStatusDelivered); err != nil {
		t.Fatalf("passage delivered: %v", err)
	}
	got, _ := s.OrderByID(order.ID)
	for _, st := range got.TrackingSteps {
		if !st.Completed {
			t.Fatalf("étape %s devrait être complétée", st.Label)
		}
		if st.Date != "2026-03-15" {
			t.Fatalf("étape %s datée du jour, obtenu %q", st.Label, st.Date)
		}
	}
}

func TestUpdateOrderStatusCancelledLeavesSteps(t *testing.T) {
	s, _ := newTestStore(t)
	order := placeTestOrder(t, s)

	if err := s.UpdateOrderStatus(context.Background(), order.ID, models.OrderStatusCancelled); err != nil {
		t.Fatalf("passage cancelled: %v", err)
	}
	got, _ := s.OrderByID(order.ID)
	if got.Status != models.OrderStatusCancelled {
		t.Fatalf("statut attendu cancelled, obtenu %q", got.Status)
	}
	if got.TrackingSteps[2].Completed || got.TrackingSteps[3].Completed || got.TrackingSteps[4].Completed {
		t.Fatal("l'annulation ne touche pas au suivi")
	}
}

// hasNotification cherche un toast actif par type et titre.
func hasNotification(s *Store, typ, title string) bool {
	for _, n := range s.Notifications() {
		if n.Type == typ && n.Title == title {
			return true
		}
	}
	return false
}

func TestUpdateOrderStatusRemoteFailure(t *testing.T) {
	s, sync := newTestStore(t)
	order := placeTestOrder(t, s)
	sync.failNext = errBoom

	if err := s.UpdateOrderStatus(context.Background(), order.ID, models.OrderStatusShipped); !errors.Is(err, errBoom) {
		t.Fatalf("l'erreur distante doit remonter, obtenu %v", err)
	}
	got, _ := s.OrderByID(order.ID)
	if got.Status != models.OrderStatusProcessing {
		t.Fatal("l'état local ne bouge pas quand la propagation échoue")
	}
	if !hasNotification(s, models.NotifyError, "Update Failed") {
		t.Fatal("l'échec distant doit émettre une notification d'erreur")
	}
}

func TestUpdateOrderStatusUnknownOrder(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.UpdateOrderStatus(context.Background(), "SJ-ZZZZZZZZ", models.OrderStatusShipped); err == nil {
		t.Fatal("commande inconnue: une erreur est attendue")
	}
}

func TestReplaceOrders(t *testing.T) {
	s, _ := newTestStore(t)
	placeTestOrder(t, s)

	incoming := []models.Order{
		{ID: "SJ-AAAA1111", Status: models.OrderStatusShipped},
		{ID: "SJ-BBBB2222", Status: models.OrderStatusProcessing},
	}
	s.ReplaceOrders(incoming)

	orders := s.Orders()
	if len(orders) != 2 || orders[0].ID != "SJ-AAAA1111" {
		t.Fatalf("ReplaceOrders doit remplacer la liste en bloc, obtenu %+v", orders)
	}
}
