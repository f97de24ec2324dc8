package store

import (
	"time"

	"github.com/google/uuid"

	"sajhnaa_back_end/internal/models"
)

// AddNotification ajoute un toast et programme sa propre suppression après le
// délai configuré ; chaque notification a son minuteur, indépendant des autres.
func (s *Store) AddNotification(title, message, typ string) string {
	if typ == "" {
		typ = models.NotifyInfo
	}
	n := models.Notification{
		ID:      uuid.NewString(),
		Title:   title,
		Message: message,
		Type:    typ,
	}

	s.mu.Lock()
	s.notifications = append(s.notifications, n)
	s.mu.Unlock()

	time.AfterFunc(s.cfg.NotifyTTL, func() { s.RemoveNotification(n.ID) })
	return n.ID
}

// RemoveNotification retire un toast ; sans erreur si le minuteur est déjà
// passé ou si l'utilisateur l'a fermé avant.
func (s *Store) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	s.notifications = kept
}

// Notifications retourne une copie des toasts actifs.
func (s *Store) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}
