// Package store est la source de vérité de l'état d'une session boutique :
// panier, wishlist, articles mis de côté, produits vus récemment, filtres,
// notifications, commandes, promo appliquée et session utilisateur.
//
// Toutes les mutations passent par les méthodes du Store et sont sérialisées
// par un mutex : pas d'accès ambiant, pas de mutation extérieure (la seule
// exception est le flux de commandes distant qui remplace orders en bloc via
// ReplaceOrders).
package store

import (
	"context"
	"math"
	"sync"
	"time"

	"sajhnaa_back_end/internal/catalog"
	"sajhnaa_back_end/internal/models"
)

// OrderSync est la frontière vers la base documentaire distante : une
// commande n'est durable qu'une fois SubmitOrder revenu sans erreur.
type OrderSync interface {
	SubmitOrder(ctx context.Context, order models.Order) error
	PatchOrderStatus(ctx context.Context, orderID, status string, steps []models.TrackingStep) error
}

// Config est injectée par la racine de composition (pas de singleton global).
type Config struct {
	SessionID     string
	AdminPassword string
	Orders        OrderSync
	Persist       Persister
	Now           func() time.Time // horloge injectable pour les tests
	NotifyTTL     time.Duration    // durée de vie d'un toast (défaut 4s)
}

type Store struct {
	mu  sync.Mutex
	cfg Config

	products       []models.Product
	cart           []models.CartLine
	savedForLater  []models.Product
	wishlist       []models.Product
	recentlyViewed []models.Product
	orders         []models.Order
	appliedPromo   *models.Promo
	filters        models.Filters
	notifications  []models.Notification
	session        models.Session

	darkMode           bool
	adminAuthenticated bool
}

const (
	recentlyViewedMax = 10
	defaultNotifyTTL  = 4 * time.Second

	freeShippingThreshold = 5000.0
	flatShippingFee       = 99.0
)

// New construit un Store initialisé sur le catalogue statique puis restaure
// l'instantané persistant de la session s'il existe.
func New(cfg Config) *Store {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.NotifyTTL <= 0 {
		cfg.NotifyTTL = defaultNotifyTTL
	}

	s := &Store{
		cfg:      cfg,
		products: catalog.Products(),
		filters:  models.DefaultFilters(),
		darkMode: true,
		session:  models.Session{State: models.SessionLoading},
	}
	s.restore()
	return s
}

// today retourne la date du jour au format AAAA-MM-JJ.
func (s *Store) today() string {
	return s.cfg.Now().Format("2006-01-02")
}

// round2 arrondit au paisa (2 décimales, demi vers l'extérieur).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
