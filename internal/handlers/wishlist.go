package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetWishlist retourne la wishlist de la session.
func (m *StoreManager) GetWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": m.Store(c).Wishlist()})
}

// AddToWishlist ajoute un produit à la wishlist (sans doublon).
func (m *StoreManager) AddToWishlist(c *gin.Context) {
	var input struct {
		ProductID int64 `json:"productId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Données invalides")
		return
	}

	s := m.Store(c)
	product, ok := s.ProductByID(input.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	s.AddToWishlist(product)
	c.JSON(http.StatusOK, gin.H{"products": s.Wishlist()})
}

// RemoveFromWishlist retire un produit de la wishlist.
func (m *StoreManager) RemoveFromWishlist(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "Identifiant produit invalide")
		return
	}

	s := m.Store(c)
	s.RemoveFromWishlist(id)
	c.JSON(http.StatusOK, gin.H{"products": s.Wishlist()})
}
