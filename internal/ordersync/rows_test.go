package ordersync

import (
	"strings"
	"testing"
	"time"

	"sajhnaa_back_end/internal/models"
)

func sampleOrder() models.Order {
	return models.Order{
		ID:            "SJ-AB12CD34",
		Date:          "2026-03-15",
		CustomerName:  "Priya Sharma",
		CustomerEmail: "priya@example.com",
		Status:        models.OrderStatusProcessing,
		Items: []models.OrderItem{
			{ID: 1, Name: "Eternal Solitaire Ring", Price: 45999, Quantity: 2, SelectedSize: "7", SelectedColor: "Gold"},
		},
		Total: 91998,
		ShippingAddress: models.ShippingAddress{
			FirstName: "Priya", LastName: "Sharma", Address: "12 MG Road",
			City: "Mumbai", State: "MH", Zip: "400001", Country: "India",
		},
		PaymentMethod: models.PaymentMethod{Method: "card", Details: "Visa ****4242"},
		TrackingSteps: models.NewTrackingSteps("2026-03-15"),
		CreatedAt:     time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestEncodeDecodeOrder(t *testing.T) {
	order := sampleOrder()

	row, err := encodeOrder(order)
	if err != nil {
		t.Fatalf("encodeOrder: %v", err)
	}
	if row.ID != order.ID || row.CustomerEmail != order.CustomerEmail {
		t.Fatalf("colonnes plates incorrectes: %+v", row)
	}
	if !strings.Contains(row.ItemsJSON, `"selectedSize":"7"`) {
		t.Fatalf("les items doivent suivre les tags json: %s", row.ItemsJSON)
	}
	if !strings.Contains(row.StepsJSON, models.StepOutForDelivery) {
		t.Fatalf("le suivi doit contenir toutes les étapes: %s", row.StepsJSON)
	}

	back, err := decodeOrder(row)
	if err != nil {
		t.Fatalf("decodeOrder: %v", err)
	}
	if back.ID != order.ID || back.Total != order.Total || back.Status != order.Status {
		t.Fatalf("aller-retour incorrect: %+v", back)
	}
	if len(back.Items) != 1 || back.Items[0].Quantity != 2 {
		t.Fatalf("items mal restitués: %+v", back.Items)
	}
	if len(back.TrackingSteps) != 5 || !back.TrackingSteps[1].Completed {
		t.Fatalf("suivi mal restitué: %+v", back.TrackingSteps)
	}
	if back.ShippingAddress.FullName() != "Priya Sharma" {
		t.Fatalf("adresse mal restituée: %+v", back.ShippingAddress)
	}
}

func TestDecodeOrderEmptyColumns(t *testing.T) {
	// Colonnes JSON vides (ligne partielle): la commande reste lisible.
	order, err := decodeOrder(orderRow{ID: "SJ-XXXXXXXX", Status: models.OrderStatusProcessing})
	if err != nil {
		t.Fatalf("decodeOrder: %v", err)
	}
	if order.ID != "SJ-XXXXXXXX" || len(order.Items) != 0 {
		t.Fatalf("ligne partielle mal restituée: %+v", order)
	}
}

func TestDecodeOrderCorruptJSON(t *testing.T) {
	if _, err := decodeOrder(orderRow{ID: "SJ-BAD00000", ItemsJSON: "{not json"}); err == nil {
		t.Fatal("JSON corrompu: une erreur est attendue")
	}
}
