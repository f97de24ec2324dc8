package store

import "sajhnaa_back_end/internal/models"

// SetSessionLoading : état initial, tant que la restauration n'a pas tranché.
func (s *Store) SetSessionLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = models.Session{State: models.SessionLoading}
}

// SetSessionAuthenticated attache l'utilisateur courant à la session.
func (s *Store) SetSessionAuthenticated(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := user
	s.session = models.Session{State: models.SessionAuthenticated, User: &u}
	s.save()
}

// SetSessionAnonymous : déconnecté ou jamais connecté. Le panier et la
// wishlist survivent à la déconnexion, seule la session change.
func (s *Store) SetSessionAnonymous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = models.Session{State: models.SessionAnonymous}
	s.save()
}

// Session retourne l'état courant (l'utilisateur est copié).
func (s *Store) Session() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session
	if s.session.User != nil {
		u := *s.session.User
		sess.User = &u
	}
	return sess
}

// CurrentUser retourne l'utilisateur connecté, ou faux sinon.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.session.IsAuthenticated() || s.session.User == nil {
		return models.User{}, false
	}
	return *s.session.User, true
}
