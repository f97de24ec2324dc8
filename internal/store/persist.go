package store

import (
	"log"

	"sajhnaa_back_end/internal/models"
)

// Persister est le stockage de l'instantané de session (Redis en production,
// une fake en test). Un Persister nil désactive la persistance.
type Persister interface {
	Save(sessionID string, snap Snapshot) error
	Load(sessionID string) (Snapshot, bool, error)
}

// Snapshot est le sous-ensemble de l'état qui survit au redémarrage. Les
// commandes n'en font pas partie : elles reviennent de la base distante via
// le flux ReplaceOrders. Les notifications et filtres non plus, éphémères
// par nature.
type Snapshot struct {
	Version            int                `json:"version"`
	DarkMode           bool               `json:"darkMode"`
	AdminAuthenticated bool               `json:"adminAuthenticated"`
	Session            models.Session     `json:"session"`
	Cart               []models.CartLine  `json:"cart"`
	Wishlist           []models.Product   `json:"wishlist"`
	RecentlyViewed     []models.Product   `json:"recentlyViewed"`
	SavedForLater      []models.Product   `json:"savedForLater"`
}

const snapshotVersion = 1

// save écrit l'instantané courant ; best-effort, une erreur de persistance ne
// fait jamais échouer la mutation. Appelé verrou tenu.
func (s *Store) save() {
	if s.cfg.Persist == nil {
		return
	}
	snap := Snapshot{
		Version:            snapshotVersion,
		DarkMode:           s.darkMode,
		AdminAuthenticated: s.adminAuthenticated,
		Session:            s.session,
		Cart:               s.cart,
		Wishlist:           s.wishlist,
		RecentlyViewed:     s.recentlyViewed,
		SavedForLater:      s.savedForLater,
	}
	if err := s.cfg.Persist.Save(s.cfg.SessionID, snap); err != nil {
		log.Printf("⚠️ Persistance de la session %s impossible: %v", s.cfg.SessionID, err)
	}
}

// restore recharge l'instantané au démarrage ; un instantané absent, corrompu
// ou d'une autre version est ignoré et l'état reste aux valeurs par défaut.
func (s *Store) restore() {
	if s.cfg.Persist == nil {
		return
	}
	snap, ok, err := s.cfg.Persist.Load(s.cfg.SessionID)
	if err != nil {
		log.Printf("⚠️ Restauration de la session %s impossible: %v", s.cfg.SessionID, err)
		return
	}
	if !ok || snap.Version != snapshotVersion {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.darkMode = snap.DarkMode
	s.adminAuthenticated = snap.AdminAuthenticated
	s.session = snap.Session
	s.cart = snap.Cart
	s.wishlist = snap.Wishlist
	s.recentlyViewed = snap.RecentlyViewed
	s.savedForLater = snap.SavedForLater
}
