package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"sajhnaa_back_end/internal/catalog"
	"sajhnaa_back_end/internal/models"
)

type fakeOrderSync struct {
	mu        sync.Mutex
	submitted []models.Order
	patched   []string
	failNext  error
}

func (f *fakeOrderSync) SubmitOrder(_ context.Context, order models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return err
	}
	f.submitted = append(f.submitted, order)
	return nil
}

func (f *fakeOrderSync) PatchOrderStatus(_ context.Context, orderID, status string, _ []models.TrackingStep) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return err
	}
	f.patched = append(f.patched, orderID+":"+status)
	return nil
}

type fakePersister struct {
	mu    sync.Mutex
	snaps map[string]Snapshot
}

func newFakePersister() *fakePersister {
	return &fakePersister{snaps: map[string]Snapshot{}}
}

func (f *fakePersister) Save(sessionID string, snap Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snaps[sessionID] = snap
	return nil
}

func (f *fakePersister) Load(sessionID string) (Snapshot, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	snap, ok := f.snaps[sessionID]
	return snap, ok, nil
}

func newTestStore(t *testing.T) (*Store, *fakeOrderSync) {
	t.Helper()
	sync := &fakeOrderSync{}
	s := New(Config{
		SessionID:     "test-session",
		AdminPassword: "shivani@70464",
		Orders:        sync,
		Now:           func() time.Time { return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC) },
		NotifyTTL:     50 * time.Millisecond,
	})
	return s, sync
}

func mustProduct(t *testing.T, id int64) models.Product {
	t.Helper()
	p, ok := catalog.ProductByID(id)
	if !ok {
		t.Fatalf("produit %d absent du catalogue", id)
	}
	return p
}

func TestWishlistDedupe(t *testing.T) {
	s, _ := newTestStore(t)
	p := mustProduct(t, 1)

	s.AddToWishlist(p)
	s.AddToWishlist(p)

	if got := len(s.Wishlist()); got != 1 {
		t.Fatalf("wishlist: attendu 1 élément, obtenu %d", got)
	}
	if !s.IsInWishlist(1) {
		t.Fatal("IsInWishlist(1) devrait être vrai")
	}

	s.RemoveFromWishlist(1)
	if s.IsInWishlist(1) {
		t.Fatal("IsInWishlist(1) devrait être faux après retrait")
	}
	s.RemoveFromWishlist(1) // idempotent
}

func TestRecentlyViewedCapAndOrder(t *testing.T) {
	s, _ := newTestStore(t)

	for id := int64(1); id <= 12; id++ {
		s.AddToRecentlyViewed(mustProduct(t, id))
	}

	recent := s.RecentlyViewed()
	if len(recent) != 10 {
		t.Fatalf("attendu 10 produits récents, obtenu %d", len(recent))
	}
	if recent[0].ID != 12 {
		t.Fatalf("le plus récent devrait être 12, obtenu %d", recent[0].ID)
	}
	if recent[9].ID != 3 {
		t.Fatalf("le plus ancien conservé devrait être 3, obtenu %d", recent[9].ID)
	}

	// Revoir un produit le remonte en tête sans doublon.
	s.AddToRecentlyViewed(mustProduct(t, 5))
	recent = s.RecentlyViewed()
	if recent[0].ID != 5 {
		t.Fatalf("5 devrait être en tête, obtenu %d", recent[0].ID)
	}
	if len(recent) != 10 {
		t.Fatalf("revoir un produit ne doit pas changer la taille, obtenu %d", len(recent))
	}
}

func TestNotificationSelfExpires(t *testing.T) {
	s, _ := newTestStore(t)

	id := s.AddNotification("Test", "message", models.NotifyInfo)
	if len(s.Notifications()) != 1 {
		t.Fatal("la notification devrait être visible")
	}

	deadline := time.Now().Add(2 * time.Second)
	for len(s.Notifications()) != 0 {
		if time.Now().After(deadline) {
			t.Fatal("la notification n'a pas expiré")
		}
		time.Sleep(10 * time.Millisecond)
	}

	s.RemoveNotification(id) // déjà partie, sans erreur
}

func TestAdminGate(t *testing.T) {
	s, _ := newTestStore(t)

	if s.AdminLogin("mauvais") {
		t.Fatal("un mauvais mot de passe ne doit pas ouvrir la session admin")
	}
	if s.IsAdminAuthenticated() {
		t.Fatal("admin ne doit pas être authentifié")
	}

	if !s.AdminLogin("shivani@70464") {
		t.Fatal("le bon mot de passe doit ouvrir la session admin")
	}
	if !s.IsAdminAuthenticated() {
		t.Fatal("admin devrait être authentifié")
	}

	s.AdminLogout()
	if s.IsAdminAuthenticated() {
		t.Fatal("admin devrait être déconnecté")
	}
}

func TestAdminLoginRejectedWhenPasswordUnset(t *testing.T) {
	s := New(Config{SessionID: "t", Orders: &fakeOrderSync{}})
	if s.AdminLogin("") {
		t.Fatal("mot de passe non configuré: tout accès doit être refusé")
	}
}

func TestProductCRUD(t *testing.T) {
	s, _ := newTestStore(t)
	base := len(s.Products())

	added := s.AddProduct(models.Product{Name: "Test Ring", Category: "rings", Price: 1000})
	if added.ID == 0 {
		t.Fatal("AddProduct doit attribuer un id")
	}
	if len(s.Products()) != base+1 {
		t.Fatal("le produit ajouté devrait apparaître dans le catalogue")
	}

	added.Price = 1200
	if !s.UpdateProduct(added) {
		t.Fatal("UpdateProduct devrait trouver le produit")
	}
	got, ok := s.ProductByID(added.ID)
	if !ok || got.Price != 1200 {
		t.Fatalf("prix attendu 1200, obtenu %v (ok=%v)", got.Price, ok)
	}

	if !s.DeleteProduct(added.ID) {
		t.Fatal("DeleteProduct devrait trouver le produit")
	}
	if _, ok := s.ProductByID(added.ID); ok {
		t.Fatal("le produit supprimé ne devrait plus exister")
	}
	if s.UpdateProduct(models.Product{ID: 999999}) {
		t.Fatal("UpdateProduct sur id inconnu devrait échouer")
	}
}

func TestSessionStates(t *testing.T) {
	s, _ := newTestStore(t)

	if s.Session().State != models.SessionLoading {
		t.Fatal("l'état initial devrait être loading")
	}

	s.AddToCart(mustProduct(t, 1), 1, "", "")
	s.SetSessionAuthenticated(models.User{ID: "u1", Email: "a@b.com", Name: "A"})
	if u, ok := s.CurrentUser(); !ok || u.ID != "u1" {
		t.Fatal("CurrentUser devrait retourner l'utilisateur connecté")
	}

	s.SetSessionAnonymous()
	if _, ok := s.CurrentUser(); ok {
		t.Fatal("CurrentUser devrait échouer en anonyme")
	}
	// La déconnexion ne vide pas le panier.
	if s.CartCount() != 1 {
		t.Fatal("le panier doit survivre à la déconnexion")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	persist := newFakePersister()
	sync := &fakeOrderSync{}
	cfg := Config{
		SessionID: "round-trip",
		Orders:    sync,
		Persist:   persist,
	}

	s1 := New(cfg)
	s1.AddToCart(mustProduct(t, 2), 2, "7", "Gold")
	s1.AddToWishlist(mustProduct(t, 3))
	s1.ToggleDarkMode() // true → false

	s2 := New(cfg)
	if s2.CartCount() != 2 {
		t.Fatalf("panier restauré: attendu 2, obtenu %d", s2.CartCount())
	}
	if !s2.IsInWishlist(3) {
		t.Fatal("wishlist restaurée: le produit 3 devrait y être")
	}
	if s2.DarkMode() {
		t.Fatal("darkMode restauré: attendu false")
	}
}

func TestSnapshotVersionMismatchIgnored(t *testing.T) {
	persist := newFakePersister()
	persist.snaps["old"] = Snapshot{Version: 0, Cart: []models.CartLine{{Quantity: 5}}}

	s := New(Config{SessionID: "old", Orders: &fakeOrderSync{}, Persist: persist})
	if s.CartCount() != 0 {
		t.Fatal("un instantané d'une autre version doit être ignoré")
	}
}

var errBoom = errors.New("boom")
