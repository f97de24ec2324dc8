package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sajhnaa_back_end/internal/store"
)

type cartLineInput struct {
	ProductID     int64  `json:"productId"`
	Quantity      int    `json:"quantity"`
	SelectedSize  string `json:"selectedSize"`
	SelectedColor string `json:"selectedColor"`
}

func (m *StoreManager) cartState(s *store.Store) gin.H {
	return gin.H{
		"items":         s.Cart(),
		"total":         s.CartTotal(),
		"count":         s.CartCount(),
		"savedForLater": s.SavedForLater(),
	}
}

// GetCart retourne le panier courant avec totaux.
func (m *StoreManager) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, m.cartState(m.Store(c)))
}

// AddToCart ajoute un produit (variante comprise) au panier.
func (m *StoreManager) AddToCart(c *gin.Context) {
	var input cartLineInput
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

	s.AddToCart(product, input.Quantity, input.SelectedSize, input.SelectedColor)
	c.JSON(http.StatusOK, m.cartState(s))
}

// UpdateCartQuantity fixe la quantité d'une ligne (0 = suppression).
func (m *StoreManager) UpdateCartQuantity(c *gin.Context) {
	var input cartLineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Données invalides")
		return
	}

	s := m.Store(c)
	s.UpdateCartQuantity(input.ProductID, input.SelectedSize, input.SelectedColor, input.Quantity)
	c.JSON(http.StatusOK, m.cartState(s))
}

// RemoveFromCart retire une ligne du panier.
func (m *StoreManager) RemoveFromCart(c *gin.Context) {
	var input cartLineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Données invalides")
		return
	}

	s := m.Store(c)
	s.RemoveFromCart(input.ProductID, input.SelectedSize, input.SelectedColor)
	c.JSON(http.StatusOK, m.cartState(s))
}

// ClearCart vide le panier.
func (m *StoreManager) ClearCart(c *gin.Context) {
	s := m.Store(c)
	s.ClearCart()
	c.JSON(http.StatusOK, m.cartState(s))
}

// SaveForLater déplace une ligne du panier vers "mis de côté".
func (m *StoreManager) SaveForLater(c *gin.Context) {
	var input cartLineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Données invalides")
		return
	}

	s := m.Store(c)
	for _, line := range s.Cart() {
		if line.SameLine(input.ProductID, input.SelectedSize, input.SelectedColor) {
			s.SaveForLater(line)
			c.JSON(http.StatusOK, m.cartState(s))
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Ligne de panier introuvable"})
}

// MoveToCart remet un article mis de côté dans le panier.
func (m *StoreManager) MoveToCart(c *gin.Context) {
	var input cartLineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Données invalides")
		return
	}

	s := m.Store(c)
	for _, p := range s.SavedForLater() {
		if p.ID == input.ProductID {
			s.MoveToCart(p)
			c.JSON(http.StatusOK, m.cartState(s))
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Article mis de côté introuvable"})
}
