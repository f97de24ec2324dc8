package store

import "sajhnaa_back_end/internal/models"

// AddToCart incrémente la ligne (id, taille, couleur) si elle existe déjà,
// sinon ajoute une nouvelle ligne. Émet toujours une notification de succès.
func (s *Store) AddToCart(product models.Product, quantity int, size, color string) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	found := false
	for i := range s.cart {
		if s.cart[i].SameLine(product.ID, size, color) {
			s.cart[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		s.cart = append(s.cart, models.CartLine{
			Product:       product,
			Quantity:      quantity,
			SelectedSize:  size,
			SelectedColor: color,
		})
	}
	s.save()
	s.mu.Unlock()

	s.AddNotification("Added to cart", product.Name+" has been added to your cart.", models.NotifySuccess)
}

// RemoveFromCart retire la ligne correspondant à la clé complète ; aucune
// erreur si elle n'existe pas.
func (s *Store) RemoveFromCart(productID int64, size, color string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLineLocked(productID, size, color)
	s.save()
}

func (s *Store) removeLineLocked(productID int64, size, color string) {
	kept := s.cart[:0]
	for _, line := range s.cart {
		if !line.SameLine(productID, size, color) {
			kept = append(kept, line)
		}
	}
	s.cart = kept
}

// UpdateCartQuantity fixe la quantité d'une ligne ; quantité ≤ 0 ⇔ suppression.
func (s *Store) UpdateCartQuantity(productID int64, size, color string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLineLocked(productID, size, color)
		s.save()
		return
	}
	for i := range s.cart {
		if s.cart[i].SameLine(productID, size, color) {
			s.cart[i].Quantity = quantity
			break
		}
	}
	s.save()
}

// ClearCart vide entièrement le panier.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
	s.save()
}

// Cart retourne une copie des lignes courantes.
func (s *Store) Cart() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartLine, len(s.cart))
	copy(out, s.cart)
	return out
}

// CartTotal recalcule le sous-total à la demande, jamais mis en cache.
func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartTotalLocked()
}

func (s *Store) cartTotalLocked() float64 {
	total := 0.0
	for _, line := range s.cart {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// CartCount retourne la somme des quantités.
func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, line := range s.cart {
		count += line.Quantity
	}
	return count
}

// SaveForLater déplace une ligne du panier vers "mis de côté" (dédoublonné
// par id produit).
func (s *Store) SaveForLater(line models.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.savedForLater {
		if p.ID == line.ID {
			return
		}
	}
	s.savedForLater = append(s.savedForLater, line.Product)
	s.removeLineLocked(line.ID, line.SelectedSize, line.SelectedColor)
	s.save()
}

// MoveToCart remet un article mis de côté dans le panier (quantité 1, sans
// variante présélectionnée).
func (s *Store) MoveToCart(product models.Product) {
	s.mu.Lock()
	kept := s.savedForLater[:0]
	for _, p := range s.savedForLater {
		if p.ID != product.ID {
			kept = append(kept, p)
		}
	}
	s.savedForLater = kept
	s.save()
	s.mu.Unlock()

	s.AddToCart(product, 1, "", "")
}

// SavedForLater retourne une copie des articles mis de côté.
func (s *Store) SavedForLater() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.savedForLater))
	copy(out, s.savedForLater)
	return out
}
