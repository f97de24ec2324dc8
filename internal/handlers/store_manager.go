package handlers

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sajhnaa_back_end/internal/auth"
	"sajhnaa_back_end/internal/ordersync"
	"sajhnaa_back_end/internal/store"
)

const sessionCookie = "sajhnaa_session"

// StoreManager tient un magasin par session boutique. La session est
// identifiée par cookie (ou header X-Session-ID pour les clients mobiles) et
// créée à la volée au premier passage.
type StoreManager struct {
	mu     sync.Mutex
	stores map[string]*store.Store
	unsubs map[string]func()

	AdminPassword string
	Persist       store.Persister
	Orders        *ordersync.Adapter
	Auth          *auth.Service
}

func NewStoreManager(adminPassword string, persist store.Persister, orders *ordersync.Adapter, authSvc *auth.Service) *StoreManager {
	return &StoreManager{
		stores:        make(map[string]*store.Store),
		unsubs:        make(map[string]func()),
		AdminPassword: adminPassword,
		Persist:       persist,
		Orders:        orders,
		Auth:          authSvc,
	}
}

// SessionID retourne l'identifiant de session, en le créant si besoin.
func (m *StoreManager) SessionID(c *gin.Context) string {
	if id := c.GetHeader("X-Session-ID"); id != "" {
		return id
	}
	if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
		return id
	}

	id := uuid.NewString()
	c.SetCookie(sessionCookie, id, 86400*30, "/", "", false, true)
	return id
}

// Store retourne le magasin de la session courante, en le construisant au
// premier passage : restauration de l'instantané, restauration de la session
// utilisateur, abonnement au flux de commandes.
func (m *StoreManager) Store(c *gin.Context) *store.Store {
	sessionID := m.SessionID(c)
	c.Set("session_id", sessionID)

	m.mu.Lock()
	if s, ok := m.stores[sessionID]; ok {
		m.mu.Unlock()
		return s
	}
	m.mu.Unlock()

	s := store.New(store.Config{
		SessionID:     sessionID,
		AdminPassword: m.AdminPassword,
		Orders:        m.Orders,
		Persist:       m.Persist,
	})

	// Restauration de la session utilisateur: le token éventuel tranche entre
	// authentifié et anonyme.
	token := bearerToken(c)
	if user, ok, err := m.Auth.RestoreSession(c.Request.Context(), token); err == nil && ok {
		s.SetSessionAuthenticated(user)
		m.subscribe(sessionID, user.Email, s)
	} else {
		s.SetSessionAnonymous()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.stores[sessionID]; ok {
		// Une requête concurrente a gagné la course.
		return existing
	}
	m.stores[sessionID] = s
	return s
}

// subscribe branche le magasin sur le flux de commandes du client. Le
// contexte est détaché de la requête: l'abonnement vit avec la session.
func (m *StoreManager) subscribe(sessionID, email string, s *store.Store) {
	if m.Orders == nil || m.Orders.Redis == nil || email == "" {
		return
	}
	unsub := m.Orders.Subscribe(context.Background(), email, s.ReplaceOrders)

	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.unsubs[sessionID]; ok {
		old()
	}
	m.unsubs[sessionID] = unsub
}

// AttachUser bascule la session en authentifié et branche le flux de
// commandes. Appelé après login/register/callback OAuth.
func (m *StoreManager) AttachUser(c *gin.Context, s *store.Store, email string) {
	sessionID := m.SessionID(c)
	m.subscribe(sessionID, email, s)
}

// DetachUser coupe le flux de commandes au logout. Le magasin survit, la
// session devient anonyme.
func (m *StoreManager) DetachUser(c *gin.Context) {
	sessionID := m.SessionID(c)
	m.mu.Lock()
	defer m.mu.Unlock()
	if unsub, ok := m.unsubs[sessionID]; ok {
		unsub()
		delete(m.unsubs, sessionID)
	}
}

// IsAdmin est le prédicat de la porte admin, branché sur le middleware.
func (m *StoreManager) IsAdmin(c *gin.Context) bool {
	return m.Store(c).IsAdminAuthenticated()
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(authHeader) > len(prefix) && authHeader[:len(prefix)] == prefix {
		return authHeader[len(prefix):]
	}
	return ""
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
