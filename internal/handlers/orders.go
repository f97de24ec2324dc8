package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sajhnaa_back_end/internal/models"
	"sajhnaa_back_end/internal/utils"
)

// GetOrders retourne les commandes de la session, plus récente d'abord.
func (m *StoreManager) GetOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": m.Store(c).Orders()})
}

// findOrder cherche d'abord dans la session, puis dans la base : le suivi par
// identifiant doit fonctionner même quand la commande n'est plus en mémoire
// (session anonyme restaurée, lien de suivi partagé).
func (m *StoreManager) findOrder(c *gin.Context, orderID string) (models.Order, bool) {
	if order, ok := m.Store(c).OrderByID(orderID); ok {
		return order, true
	}
	order, err := m.Orders.OrderByID(c.Request.Context(), orderID)
	if err != nil {
		return models.Order{}, false
	}
	return order, true
}

// GetOrder retourne une commande et son suivi.
func (m *StoreManager) GetOrder(c *gin.Context) {
	order, ok := m.findOrder(c, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// GetOrderTrackingQR retourne le QR de suivi en PNG.
func (m *StoreManager) GetOrderTrackingQR(c *gin.Context) {
	orderID := c.Param("id")
	if _, ok := m.findOrder(c, orderID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	png, err := utils.GenerateTrackingQR(orderID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Génération QR impossible"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// GetOrderInvoice génère et retourne la facture PDF de la commande.
func (m *StoreManager) GetOrderInvoice(c *gin.Context) {
	order, ok := m.findOrder(c, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	pdf, err := utils.GenerateInvoicePDF(order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Génération de la facture impossible"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="facture_`+order.ID+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
