package ordersync

import (
	"encoding/json"
	"fmt"
	"time"

	"sajhnaa_back_end/internal/models"
)

// Les colonnes composées (lignes, suivi, adresse, paiement) sont stockées en
// JSON dans des colonnes text : le schéma Scylla reste plat et le format suit
// les tags json des modèles.
type orderRow struct {
	ID            string
	Date          string
	CustomerName  string
	CustomerEmail string
	Status        string
	Total         float64
	ItemsJSON     string
	StepsJSON     string
	AddressJSON   string
	PaymentJSON   string
	CreatedAt     time.Time
}

func encodeOrder(order models.Order) (orderRow, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return orderRow{}, fmt.Errorf("encodage items: %w", err)
	}
	steps, err := json.Marshal(order.TrackingSteps)
	if err != nil {
		return orderRow{}, fmt.Errorf("encodage tracking: %w", err)
	}
	address, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return orderRow{}, fmt.Errorf("encodage adresse: %w", err)
	}
	payment, err := json.Marshal(order.PaymentMethod)
	if err != nil {
		return orderRow{}, fmt.Errorf("encodage paiement: %w", err)
	}

	return orderRow{
		ID:            order.ID,
		Date:          order.Date,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		Status:        order.Status,
		Total:         order.Total,
		ItemsJSON:     string(items),
		StepsJSON:     string(steps),
		AddressJSON:   string(address),
		PaymentJSON:   string(payment),
		CreatedAt:     order.CreatedAt,
	}, nil
}

func decodeOrder(row orderRow) (models.Order, error) {
	order := models.Order{
		ID:            row.ID,
		Date:          row.Date,
		CustomerName:  row.CustomerName,
		CustomerEmail: row.CustomerEmail,
		Status:        row.Status,
		Total:         row.Total,
		CreatedAt:     row.CreatedAt,
	}
	if row.ItemsJSON != "" {
		if err := json.Unmarshal([]byte(row.ItemsJSON), &order.Items); err != nil {
			return models.Order{}, fmt.Errorf("décodage items de %s: %w", row.ID, err)
		}
	}
	if row.StepsJSON != "" {
		if err := json.Unmarshal([]byte(row.StepsJSON), &order.TrackingSteps); err != nil {
			return models.Order{}, fmt.Errorf("décodage tracking de %s: %w", row.ID, err)
		}
	}
	if row.AddressJSON != "" {
		if err := json.Unmarshal([]byte(row.AddressJSON), &order.ShippingAddress); err != nil {
			return models.Order{}, fmt.Errorf("décodage adresse de %s: %w", row.ID, err)
		}
	}
	if row.PaymentJSON != "" {
		if err := json.Unmarshal([]byte(row.PaymentJSON), &order.PaymentMethod); err != nil {
			return models.Order{}, fmt.Errorf("décodage paiement de %s: %w", row.ID, err)
		}
	}
	return order, nil
}
