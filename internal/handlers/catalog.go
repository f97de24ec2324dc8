package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"sajhnaa_back_end/internal/catalog"
	"sajhnaa_back_end/internal/models"
	services "sajhnaa_back_end/internal/service"
	uploads "sajhnaa_back_end/internal/services"
)

// resolveImage signe les images stockées comme clés d'objet MinIO (ajoutées
// par l'admin) ; les URL http du catalogue statique passent telles quelles.
func resolveImage(p models.Product) models.Product {
	if p.Image == "" || strings.HasPrefix(p.Image, "http") || strings.HasPrefix(p.Image, "/") {
		return p
	}
	if signed, err := uploads.PresignedImageURL(p.Image, 24*time.Hour); err == nil {
		p.Image = signed
	}
	return p
}

// GetProducts retourne le catalogue de la session, filtres courants appliqués.
func (m *StoreManager) GetProducts(c *gin.Context) {
	s := m.Store(c)
	products := s.FilteredProducts()
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
		"filters":  s.Filters(),
	})
}

// GetProduct retourne la fiche produit et l'enregistre dans les vus récemment.
func (m *StoreManager) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "Identifiant produit invalide")
		return
	}

	s := m.Store(c)
	product, ok := s.ProductByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	s.AddToRecentlyViewed(product)

	c.JSON(http.StatusOK, gin.H{
		"product":              resolveImage(product),
		"recommendations":      catalog.Recommendations(id, 4),
		"frequentlyBoughtWith": catalog.FrequentlyBoughtWith(id),
		"isInWishlist":         s.IsInWishlist(id),
	})
}

// GetCategories retourne les six catégories du catalogue.
func (m *StoreManager) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": catalog.Categories()})
}

// GetRecentlyViewed retourne les produits vus récemment, plus récent d'abord.
func (m *StoreManager) GetRecentlyViewed(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": m.Store(c).RecentlyViewed()})
}

// SearchProducts interroge Elasticsearch (repli local si indisponible).
func (m *StoreManager) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		badRequest(c, "Paramètre q requis")
		return
	}

	results, err := services.SearchProducts(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Recherche indisponible"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": results, "count": len(results)})
}
