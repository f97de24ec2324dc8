package store

import "sajhnaa_back_end/internal/models"

// AdminLogin compare le mot de passe fourni à celui de la configuration.
// Le succès persiste dans l'instantané de session ; aucun verrouillage ni
// temporisation ici, la limitation de débit vit au niveau HTTP.
func (s *Store) AdminLogin(password string) bool {
	if s.cfg.AdminPassword == "" || password != s.cfg.AdminPassword {
		s.AddNotification("Access Denied", "Incorrect admin password.", models.NotifyError)
		return false
	}

	s.mu.Lock()
	s.adminAuthenticated = true
	s.save()
	s.mu.Unlock()

	s.AddNotification("Welcome Admin", "You are now logged in to the dashboard.", models.NotifySuccess)
	return true
}

func (s *Store) AdminLogout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adminAuthenticated = false
	s.save()
}

func (s *Store) IsAdminAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adminAuthenticated
}

// ToggleDarkMode inverse le thème et retourne le nouvel état.
func (s *Store) ToggleDarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.darkMode = !s.darkMode
	s.save()
	return s.darkMode
}

func (s *Store) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.darkMode
}

// AddProduct ajoute un produit au catalogue de la session ; l'identifiant est
// dérivé de l'horloge (millisecondes epoch), comme un id auto-incrémenté côté
// client.
func (s *Store) AddProduct(p models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.cfg.Now().UnixMilli()
	s.products = append(s.products, p)
	return p
}

// UpdateProduct remplace le produit portant le même id ; faux si introuvable.
func (s *Store) UpdateProduct(p models.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return true
		}
	}
	return false
}

// DeleteProduct retire un produit du catalogue de la session.
func (s *Store) DeleteProduct(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true
		}
	}
	return false
}

// Products retourne une copie du catalogue courant de la session (statique +
// ajouts admin).
func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) ProductByID(id int64) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
