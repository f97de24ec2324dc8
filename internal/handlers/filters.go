package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sajhnaa_back_end/internal/models"
)

// GetFilters retourne l'état courant des filtres.
func (m *StoreManager) GetFilters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"filters": m.Store(c).Filters()})
}

// SetFilters applique un patch partiel sur les filtres.
func (m *StoreManager) SetFilters(c *gin.Context) {
	var patch models.FilterPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Données invalides")
		return
	}

	s := m.Store(c)
	s.SetFilters(patch)
	c.JSON(http.StatusOK, gin.H{
		"filters":  s.Filters(),
		"products": s.FilteredProducts(),
	})
}

// ResetFilters restaure les filtres par défaut.
func (m *StoreManager) ResetFilters(c *gin.Context) {
	s := m.Store(c)
	s.ResetFilters()
	c.JSON(http.StatusOK, gin.H{
		"filters":  s.Filters(),
		"products": s.FilteredProducts(),
	})
}

// ApplyPromo applique un code promo au panier.
func (m *StoreManager) ApplyPromo(c *gin.Context) {
	var input struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Code == "" {
		badRequest(c, "Code requis")
		return
	}

	s := m.Store(c)
	if !s.ApplyPromo(input.Code) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Code promo invalide"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"promo": s.AppliedPromo(),
		"quote": s.Quote(),
	})
}

// RemovePromo retire la promo courante.
func (m *StoreManager) RemovePromo(c *gin.Context) {
	s := m.Store(c)
	s.RemovePromo()
	c.JSON(http.StatusOK, gin.H{"quote": s.Quote()})
}

// GetNotifications retourne les toasts actifs.
func (m *StoreManager) GetNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": m.Store(c).Notifications()})
}

// DismissNotification ferme un toast avant son expiration.
func (m *StoreManager) DismissNotification(c *gin.Context) {
	m.Store(c).RemoveNotification(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// ToggleDarkMode inverse le thème de la session.
func (m *StoreManager) ToggleDarkMode(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"darkMode": m.Store(c).ToggleDarkMode()})
}
