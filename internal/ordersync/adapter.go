// Package ordersync relie le magasin de session à la base de commandes
// distante : écritures dans ScyllaDB (keyspace orders), notifications de
// changement via Redis pub/sub pour les abonnés temps réel.
package ordersync

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/gocql/gocql"
	"github.com/redis/go-redis/v9"

	"sajhnaa_back_end/internal/models"
)

// EventsChannel est le canal Redis sur lequel chaque mutation de commande est
// annoncée. Le payload est l'id de commande concerné ("*" pour tout recharger).
const EventsChannel = "orders:events"

// Adapter implémente store.OrderSync au-dessus de Scylla + Redis.
// Deux tables dénormalisées : orders (partitionnée par client, triée du plus
// récent au plus ancien) et orders_by_id (accès direct par identifiant).
type Adapter struct {
	Session *gocql.Session
	Redis   *redis.Client
}

func New(session *gocql.Session, rdb *redis.Client) *Adapter {
	return &Adapter{Session: session, Redis: rdb}
}

const (
	insertOrderCQL = `INSERT INTO orders (customer_email, created_at, order_id, order_date, customer_name, status, total, items, tracking_steps, shipping_address, payment_method)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	insertOrderByIDCQL = `INSERT INTO orders_by_id (order_id, customer_email, created_at, order_date, customer_name, status, total, items, tracking_steps, shipping_address, payment_method)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	selectOrdersByEmailCQL = `SELECT order_id, order_date, customer_name, customer_email, status, total, items, tracking_steps, shipping_address, payment_method, created_at
		FROM orders WHERE customer_email = ?`
	selectOrderByIDCQL = `SELECT order_id, order_date, customer_name, customer_email, status, total, items, tracking_steps, shipping_address, payment_method, created_at
		FROM orders_by_id WHERE order_id = ?`
	selectAllOrdersCQL = `SELECT order_id, order_date, customer_name, customer_email, status, total, items, tracking_steps, shipping_address, payment_method, created_at
		FROM orders_by_id`
	updateStatusCQL     = `UPDATE orders SET status = ?, tracking_steps = ? WHERE customer_email = ? AND created_at = ? AND order_id = ?`
	updateStatusByIDCQL = `UPDATE orders_by_id SET status = ?, tracking_steps = ? WHERE order_id = ?`
)

// SubmitOrder écrit la commande dans les deux tables puis publie l'événement.
// L'écriture Scylla fait foi ; l'échec de publication est logué sans faire
// échouer la commande (les abonnés rattraperont au prochain événement).
func (a *Adapter) SubmitOrder(ctx context.Context, order models.Order) error {
	row, err := encodeOrder(order)
	if err != nil {
		return err
	}

	if err := a.Session.Query(insertOrderCQL,
		row.CustomerEmail, row.CreatedAt, row.ID, row.Date, row.CustomerName,
		row.Status, row.Total, row.ItemsJSON, row.StepsJSON, row.AddressJSON, row.PaymentJSON,
	).WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("insertion commande %s: %w", order.ID, err)
	}

	if err := a.Session.Query(insertOrderByIDCQL,
		row.ID, row.CustomerEmail, row.CreatedAt, row.Date, row.CustomerName,
		row.Status, row.Total, row.ItemsJSON, row.StepsJSON, row.AddressJSON, row.PaymentJSON,
	).WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("insertion commande %s (par id): %w", order.ID, err)
	}

	a.publish(ctx, order.ID)
	return nil
}

// PatchOrderStatus propage un changement de statut et son suivi recalculé.
func (a *Adapter) PatchOrderStatus(ctx context.Context, orderID, status string, steps []models.TrackingStep) error {
	stepsJSON, err := json.Marshal(steps)
	if err != nil {
		return fmt.Errorf("encodage tracking de %s: %w", orderID, err)
	}

	// La table orders est partitionnée par client: on retrouve la clé via
	// orders_by_id avant de toucher aux deux tables.
	current, err := a.OrderByID(ctx, orderID)
	if err != nil {
		return err
	}

	if err := a.Session.Query(updateStatusByIDCQL, status, string(stepsJSON), orderID).
		WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("mise à jour statut %s: %w", orderID, err)
	}
	if err := a.Session.Query(updateStatusCQL, status, string(stepsJSON),
		current.CustomerEmail, current.CreatedAt, orderID).
		WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("mise à jour statut %s (par client): %w", orderID, err)
	}

	a.publish(ctx, orderID)
	return nil
}

// OrdersForCustomer retourne les commandes d'un client, plus récent d'abord.
func (a *Adapter) OrdersForCustomer(ctx context.Context, email string) ([]models.Order, error) {
	iter := a.Session.Query(selectOrdersByEmailCQL, email).WithContext(ctx).Iter()
	return a.collect(iter)
}

// AllOrders retourne toutes les commandes (tableau de bord admin).
func (a *Adapter) AllOrders(ctx context.Context) ([]models.Order, error) {
	iter := a.Session.Query(selectAllOrdersCQL).WithContext(ctx).Iter()
	return a.collect(iter)
}

// OrderByID retourne une commande par identifiant.
func (a *Adapter) OrderByID(ctx context.Context, orderID string) (models.Order, error) {
	var row orderRow
	if err := a.Session.Query(selectOrderByIDCQL, orderID).WithContext(ctx).Scan(
		&row.ID, &row.Date, &row.CustomerName, &row.CustomerEmail, &row.Status,
		&row.Total, &row.ItemsJSON, &row.StepsJSON, &row.AddressJSON, &row.PaymentJSON, &row.CreatedAt,
	); err != nil {
		if err == gocql.ErrNotFound {
			return models.Order{}, fmt.Errorf("commande introuvable: %s", orderID)
		}
		return models.Order{}, fmt.Errorf("lecture commande %s: %w", orderID, err)
	}
	return decodeOrder(row)
}

func (a *Adapter) collect(iter *gocql.Iter) ([]models.Order, error) {
	var orders []models.Order
	var row orderRow
	for iter.Scan(&row.ID, &row.Date, &row.CustomerName, &row.CustomerEmail, &row.Status,
		&row.Total, &row.ItemsJSON, &row.StepsJSON, &row.AddressJSON, &row.PaymentJSON, &row.CreatedAt) {
		order, err := decodeOrder(row)
		if err != nil {
			log.Printf("⚠️ Commande %s illisible, ignorée: %v", row.ID, err)
			continue
		}
		orders = append(orders, order)
		row = orderRow{}
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("lecture commandes: %w", err)
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (a *Adapter) publish(ctx context.Context, orderID string) {
	if a.Redis == nil {
		return
	}
	if err := a.Redis.Publish(ctx, EventsChannel, orderID).Err(); err != nil {
		log.Printf("⚠️ Publication %s sur %s impossible: %v", orderID, EventsChannel, err)
	}
}

// eventSource est la vue minimale du pub/sub Redis dont la boucle d'écoute a
// besoin ; *redis.PubSub la satisfait telle quelle.
type eventSource interface {
	Channel(opts ...redis.ChannelOption) <-chan *redis.Message
	Close() error
}

// Subscribe recharge les commandes du client à chaque événement publié et
// appelle fn avec la liste fraîche. Le premier appel part immédiatement avec
// l'état courant. email vide = toutes les commandes (flux admin).
//
// La fonction retournée coupe l'abonnement ; elle est idempotente.
func (a *Adapter) Subscribe(ctx context.Context, email string, fn func([]models.Order)) func() {
	load := func(ctx context.Context) ([]models.Order, error) {
		if email == "" {
			return a.AllOrders(ctx)
		}
		return a.OrdersForCustomer(ctx, email)
	}
	return watch(ctx, a.Redis.Subscribe(ctx, EventsChannel), load, fn)
}

// watch pousse un instantané initial puis recharge à chaque événement, jusqu'à
// l'annulation du contexte ou la fermeture de la source.
func watch(ctx context.Context, events eventSource, load func(context.Context) ([]models.Order, error), fn func([]models.Order)) func() {
	ctx, cancel := context.WithCancel(ctx)

	reload := func() {
		orders, err := load(ctx)
		if err != nil {
			log.Printf("⚠️ Rechargement des commandes impossible: %v", err)
			return
		}
		fn(orders)
	}

	go func() {
		defer events.Close()
		reload()

		ch := events.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-ch:
				if !ok {
					return
				}
				reload()
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(cancel) }
}
