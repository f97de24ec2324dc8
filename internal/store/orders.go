package store

import (
	"context"
	"crypto/rand"
	"errors"
	"log"

	"sajhnaa_back_end/internal/models"
)

// ErrEmptyCart : impossible de passer commande avec un panier vide.
var ErrEmptyCart = errors.New("cart is empty")

const orderIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateOrderID produit un identifiant SJ-XXXXXXXX aléatoire. Pas de
// vérification d'unicité : 36^8 combinaisons, la collision est acceptée
// comme négligeable. Les octets ≥ 252 sont rejetés pour garder le tirage
// uniforme sur l'alphabet (252 = 7×36).
func generateOrderID() string {
	id := make([]byte, 0, 8)
	buf := make([]byte, 16)
	for len(id) < 8 {
		if _, err := rand.Read(buf); err != nil {
			panic(err)
		}
		for _, b := range buf {
			if b >= 252 {
				continue
			}
			id = append(id, orderIDAlphabet[int(b)%len(orderIDAlphabet)])
			if len(id) == 8 {
				break
			}
		}
	}
	return "SJ-" + string(id)
}

// PlaceOrder construit la commande depuis le panier courant, la soumet à la
// base distante, puis — seulement en cas de succès — vide le panier et ajoute
// la commande en tête de liste. La promo appliquée reste en place pour le
// prochain panier. En cas d'échec l'état local reste intact et une
// notification d'erreur est émise.
func (s *Store) PlaceOrder(ctx context.Context, address models.ShippingAddress, payment models.PaymentMethod) (models.Order, error) {
	s.mu.Lock()
	if len(s.cart) == 0 {
		s.mu.Unlock()
		return models.Order{}, ErrEmptyCart
	}

	quote := s.quoteLocked()
	items := make([]models.OrderItem, 0, len(s.cart))
	for _, line := range s.cart {
		items = append(items, models.OrderItem{
			ID:            line.ID,
			Name:          line.Name,
			Price:         line.Price,
			Quantity:      line.Quantity,
			Image:         line.Image,
			SelectedSize:  line.SelectedSize,
			SelectedColor: line.SelectedColor,
		})
	}
	date := s.today()
	order := models.Order{
		ID:              generateOrderID(),
		Date:            date,
		CustomerName:    address.FullName(),
		CustomerEmail:   address.Email,
		Status:          models.OrderStatusProcessing,
		Items:           items,
		Total:           quote.Total,
		ShippingAddress: address,
		PaymentMethod:   payment,
		TrackingSteps:   models.NewTrackingSteps(date),
		CreatedAt:       s.cfg.Now(),
	}
	s.mu.Unlock()

	if err := s.cfg.Orders.SubmitOrder(ctx, order); err != nil {
		log.Printf("❌ Échec de soumission de la commande %s: %v", order.ID, err)
		s.AddNotification("Order Failed", "We could not place your order. Please try again.", models.NotifyError)
		return models.Order{}, err
	}

	s.mu.Lock()
	s.cart = nil
	s.orders = append([]models.Order{order}, s.orders...)
	s.save()
	s.mu.Unlock()

	s.AddNotification("Order Placed!", "Your order "+order.ID+" has been placed.", models.NotifySuccess)
	return order, nil
}

// UpdateOrderStatus propage le nouveau statut côté distant puis applique la
// même transition localement. L'écriture distante d'abord : si elle échoue,
// l'état local ne bouge pas.
func (s *Store) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	s.mu.Lock()
	var current []models.TrackingStep
	found := false
	for _, o := range s.orders {
		if o.ID == orderID {
			current = o.TrackingSteps
			found = true
			break
		}
	}
	today := s.today()
	s.mu.Unlock()

	if !found {
		return errors.New("order not found: " + orderID)
	}

	steps := models.AdvanceTrackingSteps(current, status, today)
	if err := s.cfg.Orders.PatchOrderStatus(ctx, orderID, status, steps); err != nil {
		log.Printf("❌ Échec de mise à jour du statut %s → %s: %v", orderID, status, err)
		s.AddNotification("Update Failed", "Order "+orderID+" could not be updated. Please try again.", models.NotifyError)
		return err
	}

	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			s.orders[i].TrackingSteps = steps
			break
		}
	}
	s.mu.Unlock()

	s.AddNotification("Order Updated", "Order "+orderID+" marked as "+status+". Customer tracking updated.", models.NotifySuccess)
	return nil
}

// ReplaceOrders remplace la liste entière — c'est le réducteur appelé par le
// flux temps réel de la base distante.
func (s *Store) ReplaceOrders(orders []models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = make([]models.Order, len(orders))
	copy(s.orders, orders)
}

// Orders retourne une copie, plus récent en premier.
func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) OrderByID(id string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}
