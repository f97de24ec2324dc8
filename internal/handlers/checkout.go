package handlers

import (
	"errors"
	"log"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"

	"sajhnaa_back_end/internal/models"
	"sajhnaa_back_end/internal/store"
	"sajhnaa_back_end/internal/utils"
)

// amountInPaise convertit un montant en roupies vers l'unité Stripe. La
// conversion arrondit au paisa : une troncature directe mangerait un paisa sur
// les totaux remisés (18.90 ₹ donne 1889 en float64).
func amountInPaise(total float64) int64 {
	return int64(math.Round(total * 100))
}

// GetQuote retourne le récapitulatif du checkout (sous-total, remise,
// livraison, total).
func (m *StoreManager) GetQuote(c *gin.Context) {
	s := m.Store(c)
	c.JSON(http.StatusOK, gin.H{
		"quote":    s.Quote(),
		"shipping": s.ShippingQuote(),
		"promo":    s.AppliedPromo(),
	})
}

// CreatePaymentIntent crée un PaymentIntent Stripe sur le total du panier
// courant. Le montant est calculé côté serveur, jamais pris du client.
func (m *StoreManager) CreatePaymentIntent(c *gin.Context) {
	s := m.Store(c)
	quote := s.Quote()
	if quote.Total <= 0 {
		badRequest(c, "Panier vide")
		return
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountInPaise(quote.Total)),
		Currency: stripe.String("inr"),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clientSecret": intent.ClientSecret,
	})
}

// PlaceOrder finalise la commande : soumission distante, panier vidé,
// confirmation par email en tâche de fond.
func (m *StoreManager) PlaceOrder(c *gin.Context) {
	var input struct {
		ShippingAddress models.ShippingAddress `json:"shippingAddress"`
		PaymentMethod   models.PaymentMethod   `json:"paymentMethod"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Données invalides")
		return
	}
	if input.ShippingAddress.FirstName == "" || input.ShippingAddress.Address == "" {
		badRequest(c, "Adresse de livraison incomplète")
		return
	}

	s := m.Store(c)
	order, err := s.PlaceOrder(c.Request.Context(), input.ShippingAddress, input.PaymentMethod)
	if err != nil {
		if errors.Is(err, store.ErrEmptyCart) {
			badRequest(c, "Panier vide")
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Commande non enregistrée, réessayez"})
		return
	}

	go func(order models.Order) {
		if err := utils.SendOrderConfirmationEmail(order); err != nil {
			log.Printf("⚠️ Email de confirmation de %s non envoyé: %v", order.ID, err)
		}
	}(order)

	c.JSON(http.StatusCreated, gin.H{"order": order})
}
