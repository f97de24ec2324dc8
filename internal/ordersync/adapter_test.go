package ordersync

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"sajhnaa_back_end/internal/models"
)

// fakeEvents simule le canal pub/sub Redis.
type fakeEvents struct {
	ch chan *redis.Message

	mu     sync.Mutex
	closed bool
}

func newFakeEvents() *fakeEvents {
	return &fakeEvents{ch: make(chan *redis.Message)}
}

func (f *fakeEvents) Channel(opts ...redis.ChannelOption) <-chan *redis.Message {
	return f.ch
}

func (f *fakeEvents) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeEvents) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func waitForOrders(t *testing.T, got chan []models.Order) []models.Order {
	t.Helper()
	select {
	case orders := <-got:
		return orders
	case <-time.After(2 * time.Second):
		t.Fatal("aucune livraison du flux de commandes dans les temps")
		return nil
	}
}

func TestWatchDeliversInitialSnapshotThenReloads(t *testing.T) {
	events := newFakeEvents()
	got := make(chan []models.Order, 4)

	var mu sync.Mutex
	current := []models.Order{{ID: "SJ-AAAA1111", Status: models.OrderStatusProcessing}}

	load := func(ctx context.Context) ([]models.Order, error) {
		mu.Lock()
		defer mu.Unlock()
		out := make([]models.Order, len(current))
		copy(out, current)
		return out, nil
	}

	unsub := watch(context.Background(), events, load, func(orders []models.Order) {
		got <- orders
	})
	defer unsub()

	// Instantané initial, sans attendre le moindre événement.
	first := waitForOrders(t, got)
	if len(first) != 1 || first[0].ID != "SJ-AAAA1111" {
		t.Fatalf("instantané initial attendu, obtenu %+v", first)
	}

	// Un événement publie → rechargement avec l'état frais.
	mu.Lock()
	current = append(current, models.Order{ID: "SJ-BBBB2222", Status: models.OrderStatusShipped})
	mu.Unlock()
	events.ch <- &redis.Message{Channel: EventsChannel, Payload: "SJ-BBBB2222"}

	second := waitForOrders(t, got)
	if len(second) != 2 || second[1].ID != "SJ-BBBB2222" {
		t.Fatalf("rechargement attendu après événement, obtenu %+v", second)
	}
}

func TestWatchUnsubscribeIsIdempotent(t *testing.T) {
	events := newFakeEvents()
	got := make(chan []models.Order, 1)

	load := func(ctx context.Context) ([]models.Order, error) {
		return nil, nil
	}

	unsub := watch(context.Background(), events, load, func(orders []models.Order) {
		select {
		case got <- orders:
		default:
		}
	})
	waitForOrders(t, got)

	unsub()
	unsub() // un second appel ne doit ni paniquer ni bloquer

	deadline := time.Now().Add(2 * time.Second)
	for !events.isClosed() {
		if time.Now().After(deadline) {
			t.Fatal("la source d'événements doit être fermée après désabonnement")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestWatchSkipsCallbackOnLoadError(t *testing.T) {
	events := newFakeEvents()
	calls := make(chan struct{}, 1)

	load := func(ctx context.Context) ([]models.Order, error) {
		return nil, errors.New("scylla indisponible")
	}

	unsub := watch(context.Background(), events, load, func([]models.Order) {
		calls <- struct{}{}
	})
	defer unsub()

	select {
	case <-calls:
		t.Fatal("fn ne doit pas être appelée quand le rechargement échoue")
	case <-time.After(100 * time.Millisecond):
	}
}
