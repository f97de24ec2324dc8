package store

import "sajhnaa_back_end/internal/models"

// AddToWishlist : sémantique d'ensemble par id produit, sans doublon ni
// seconde notification si l'article y est déjà.
func (s *Store) AddToWishlist(product models.Product) {
	s.mu.Lock()
	for _, p := range s.wishlist {
		if p.ID == product.ID {
			s.mu.Unlock()
			return
		}
	}
	s.wishlist = append(s.wishlist, product)
	s.save()
	s.mu.Unlock()

	s.AddNotification("Added to wishlist", product.Name+" saved to your wishlist.", models.NotifyInfo)
}

func (s *Store) RemoveFromWishlist(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.wishlist[:0]
	for _, p := range s.wishlist {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	s.wishlist = kept
	s.save()
}

func (s *Store) IsInWishlist(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.wishlist {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Wishlist retourne une copie de la wishlist.
func (s *Store) Wishlist() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.wishlist))
	copy(out, s.wishlist)
	return out
}

// AddToRecentlyViewed pousse le produit en tête, dédoublonne par id et
// tronque aux 10 plus récents.
func (s *Store) AddToRecentlyViewed(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recent := make([]models.Product, 0, len(s.recentlyViewed)+1)
	recent = append(recent, product)
	for _, p := range s.recentlyViewed {
		if p.ID != product.ID {
			recent = append(recent, p)
		}
	}
	if len(recent) > recentlyViewedMax {
		recent = recent[:recentlyViewedMax]
	}
	s.recentlyViewed = recent
	s.save()
}

// RecentlyViewed retourne une copie, du plus récent au plus ancien.
func (s *Store) RecentlyViewed() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.recentlyViewed))
	copy(out, s.recentlyViewed)
	return out
}
