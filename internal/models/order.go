package models

import "time"

// Statuts de commande
const (
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Étapes de suivi, toujours dans cet ordre
const (
	StepOrderPlaced    = "Order Placed"
	StepProcessing     = "Processing"
	StepShipped        = "Shipped"
	StepOutForDelivery = "Out for Delivery"
	StepDelivered      = "Delivered"
)

// TrackingStep est une étape du pipeline de livraison.
// La complétion est monotone : une étape ne repasse jamais à false.
type TrackingStep struct {
	Label     string `json:"label"`
	Date      string `json:"date"` // AAAA-MM-JJ, vide tant que l'étape est en attente
	Completed bool   `json:"completed"`
}

// OrderItem est l'instantané d'une ligne au moment du checkout.
type OrderItem struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	Image         string  `json:"image"`
	SelectedSize  string  `json:"selectedSize,omitempty"`
	SelectedColor string  `json:"selectedColor,omitempty"`
}

// ShippingAddress reprend les champs du formulaire de checkout.
type ShippingAddress struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
}

func (a ShippingAddress) FullName() string {
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}

// PaymentMethod décrit le moyen de paiement choisi ("card", "upi", "cod").
type PaymentMethod struct {
	Method  string `json:"method"`
	Details string `json:"details,omitempty"` // ex: "Visa ****4242"
}

// Order : identifiant SJ-XXXXXXXX (8 caractères [A-Z0-9]).
type Order struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"` // AAAA-MM-JJ
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	Status          string          `json:"status"`
	Items           []OrderItem     `json:"items"`
	Total           float64         `json:"total"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	TrackingSteps   []TrackingStep  `json:"trackingSteps"`
	CreatedAt       time.Time       `json:"created_at"`
}

// NewTrackingSteps construit la séquence initiale : les deux premières étapes
// complétées à la date de commande, le reste en attente.
func NewTrackingSteps(date string) []TrackingStep {
	return []TrackingStep{
		{Label: StepOrderPlaced, Date: date, Completed: true},
		{Label: StepProcessing, Date: date, Completed: true},
		{Label: StepShipped, Date: "", Completed: false},
		{Label: StepOutForDelivery, Date: "", Completed: false},
		{Label: StepDelivered, Date: "", Completed: false},
	}
}

// AdvanceTrackingSteps fait progresser le suivi sans jamais décompléter une
// étape.
//   - shipped : complète jusqu'à "Shipped" à la date du jour
//   - delivered : complète tout ; la date de "Shipped" est reprise si déjà
//     posée, sinon celle du jour
//   - cancelled : le suivi reste tel quel, seul le statut change
func AdvanceTrackingSteps(steps []TrackingStep, status, today string) []TrackingStep {
	out := make([]TrackingStep, len(steps))
	copy(out, steps)

	complete := func(label string, date string) {
		for i := range out {
			if out[i].Label == label && !out[i].Completed {
				out[i].Completed = true
				out[i].Date = date
			}
		}
	}

	switch status {
	case OrderStatusShipped:
		complete(StepOrderPlaced, today)
		complete(StepProcessing, today)
		complete(StepShipped, today)
	case OrderStatusDelivered:
		shippedDate := today
		for _, st := range out {
			if st.Label == StepShipped && st.Date != "" {
				shippedDate = st.Date
			}
		}
		complete(StepOrderPlaced, today)
		complete(StepProcessing, today)
		complete(StepShipped, shippedDate)
		complete(StepOutForDelivery, today)
		complete(StepDelivered, today)
	}
	return out
}
