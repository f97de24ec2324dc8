package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"sajhnaa_back_end/internal/models"
	services "sajhnaa_back_end/internal/service"
	uploads "sajhnaa_back_end/internal/services"
	"sajhnaa_back_end/internal/utils"
)

// AdminLogin ouvre la porte admin de la session si le mot de passe est bon.
func (m *StoreManager) AdminLogin(c *gin.Context) {
	var input struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Données invalides")
		return
	}

	s := m.Store(c)
	if !s.AdminLogin(input.Password) {
		utils.LogFailedAction(c, "admin.login", "admin", "", "mot de passe incorrect")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Mot de passe incorrect"})
		return
	}

	utils.LogAction(c, "admin.login", "admin", "", nil, nil)
	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}

// AdminLogout referme la porte admin.
func (m *StoreManager) AdminLogout(c *gin.Context) {
	m.Store(c).AdminLogout()
	c.JSON(http.StatusOK, gin.H{"authenticated": false})
}

// AdminDashboard retourne les chiffres du tableau de bord.
func (m *StoreManager) AdminDashboard(c *gin.Context) {
	orders, err := m.Orders.AllOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lecture des commandes impossible"})
		return
	}

	var revenue float64
	byStatus := map[string]int{}
	customers := map[string]struct{}{}
	for _, o := range orders {
		if o.Status != models.OrderStatusCancelled {
			revenue += o.Total
		}
		byStatus[o.Status]++
		if o.CustomerEmail != "" {
			customers[o.CustomerEmail] = struct{}{}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":    len(orders),
		"revenue":   revenue,
		"byStatus":  byStatus,
		"customers": len(customers),
		"products":  len(m.Store(c).Products()),
	})
}

// AdminListOrders retourne toutes les commandes, tous clients confondus.
func (m *StoreManager) AdminListOrders(c *gin.Context) {
	orders, err := m.Orders.AllOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lecture des commandes impossible"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}

// AdminUpdateOrderStatus fait avancer une commande dans le pipeline.
func (m *StoreManager) AdminUpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Données invalides")
		return
	}

	switch input.Status {
	case models.OrderStatusProcessing, models.OrderStatusShipped,
		models.OrderStatusDelivered, models.OrderStatusCancelled:
	default:
		badRequest(c, "Statut inconnu")
		return
	}

	// Les commandes admin viennent du flux global, pas du magasin de session:
	// on passe par l'adaptateur directement.
	current, err := m.Orders.OrderByID(c.Request.Context(), orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	today := time.Now().Format("2006-01-02")
	steps := models.AdvanceTrackingSteps(current.TrackingSteps, input.Status, today)
	if err := m.Orders.PatchOrderStatus(c.Request.Context(), orderID, input.Status, steps); err != nil {
		utils.LogFailedAction(c, "order.status", "order", orderID, err.Error())
		c.JSON(http.StatusBadGateway, gin.H{"error": "Mise à jour du statut impossible"})
		return
	}

	utils.LogAction(c, "order.status", "order", orderID, current.Status, input.Status)

	updated := current
	updated.Status = input.Status
	updated.TrackingSteps = steps
	go func(order models.Order) {
		if err := utils.SendOrderStatusEmail(order); err != nil {
			log.Printf("⚠️ Email de statut de %s non envoyé: %v", order.ID, err)
		}
	}(updated)

	c.JSON(http.StatusOK, gin.H{"order": updated})
}

// ===================== CATALOGUE ADMIN =====================

// AdminAddProduct ajoute un produit au catalogue de la session et l'indexe.
func (m *StoreManager) AdminAddProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		badRequest(c, "Données invalides")
		return
	}
	if product.Name == "" || product.Price <= 0 {
		badRequest(c, "Nom et prix requis")
		return
	}

	added := m.Store(c).AddProduct(product)
	services.IndexProduct(added)
	utils.LogAction(c, "product.create", "product", strconv.FormatInt(added.ID, 10), nil, added)

	c.JSON(http.StatusCreated, gin.H{"product": added})
}

// AdminUpdateProduct modifie un produit existant.
func (m *StoreManager) AdminUpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "Identifiant produit invalide")
		return
	}

	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		badRequest(c, "Données invalides")
		return
	}
	product.ID = id

	s := m.Store(c)
	old, _ := s.ProductByID(id)
	if !s.UpdateProduct(product) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	services.IndexProduct(product)
	utils.LogAction(c, "product.update", "product", c.Param("id"), old, product)
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// AdminDeleteProduct retire un produit du catalogue.
func (m *StoreManager) AdminDeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "Identifiant produit invalide")
		return
	}

	if !m.Store(c).DeleteProduct(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	utils.LogAction(c, "product.delete", "product", c.Param("id"), nil, nil)
	c.Status(http.StatusNoContent)
}

// AdminUploadImage stocke une image produit dans MinIO et retourne son URL.
func (m *StoreManager) AdminUploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		badRequest(c, "Fichier image requis")
		return
	}

	url, err := uploads.UploadProductImage(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload impossible"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// ===================== FLUX TEMPS RÉEL =====================

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

// AdminOrdersWebSocket pousse la liste complète des commandes à chaque
// mutation publiée sur le canal Redis.
func (m *StoreManager) AdminOrdersWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	conn.WriteJSON(map[string]interface{}{
		"type":    "connected",
		"message": "Flux commandes activé",
	})

	done := make(chan struct{})
	var closeOnce sync.Once
	finish := func() { closeOnce.Do(func() { close(done) }) }

	var writeMu sync.Mutex
	unsub := m.Orders.Subscribe(context.Background(), "", func(orders []models.Order) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(map[string]interface{}{
			"type":   "orders_updated",
			"orders": orders,
			"count":  len(orders),
		}); err != nil {
			log.Printf("❌ Erreur envoi WebSocket: %v", err)
			finish()
		}
	})
	defer unsub()

	// La connexion reste ouverte jusqu'à la fermeture côté client.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				finish()
				return
			}
		}
	}()

	<-done
}
