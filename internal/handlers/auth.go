package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"
	"golang.org/x/oauth2"

	"sajhnaa_back_end/internal/auth"
	"sajhnaa_back_end/internal/config"
	"sajhnaa_back_end/internal/models"
)

type ctxKey string

const providerKey ctxKey = "provider"

// ================== AUTH LOCALE ==================

// Register crée un compte local et connecte la session.
func (m *StoreManager) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Données invalides")
		return
	}

	user, token, err := m.Auth.Register(c.Request.Context(), input.Email, input.Password, input.Name)
	if err != nil {
		m.authError(c, err)
		return
	}

	s := m.Store(c)
	s.SetSessionAuthenticated(user)
	m.AttachUser(c, s, user.Email)

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  user,
	})
}

// Login vérifie les identifiants et connecte la session.
func (m *StoreManager) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Données invalides")
		return
	}

	user, token, err := m.Auth.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		m.authError(c, err)
		return
	}

	s := m.Store(c)
	s.SetSessionAuthenticated(user)
	m.AttachUser(c, s, user.Email)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// GetSession retourne l'état de session courant (loading n'apparaît jamais
// ici: la restauration est tranchée à la construction du magasin).
func (m *StoreManager) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"session": m.Store(c).Session()})
}

// Logout repasse la session en anonyme. Le panier et la wishlist survivent.
func (m *StoreManager) Logout(c *gin.Context) {
	s := m.Store(c)
	s.SetSessionAnonymous()
	m.DetachUser(c)
	c.JSON(http.StatusOK, gin.H{"session": s.Session()})
}

// UpdateProfile persiste le profil enrichi de l'utilisateur connecté.
func (m *StoreManager) UpdateProfile(c *gin.Context) {
	s := m.Store(c)
	current, ok := s.CurrentUser()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
		return
	}

	var input struct {
		Name        string               `json:"name"`
		Phone       string               `json:"phone"`
		Avatar      string               `json:"avatar"`
		Addresses   []models.UserAddress `json:"addresses"`
		Preferences *models.Preferences  `json:"preferences"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Données invalides")
		return
	}

	if input.Name != "" {
		current.Name = input.Name
	}
	if input.Phone != "" {
		current.Phone = input.Phone
	}
	if input.Avatar != "" {
		current.Avatar = input.Avatar
	}
	if input.Addresses != nil {
		current.Addresses = input.Addresses
	}
	if input.Preferences != nil {
		current.Preferences = *input.Preferences
	}

	if err := m.Auth.UpdateProfile(c.Request.Context(), current); err != nil {
		m.authError(c, err)
		return
	}

	s.SetSessionAuthenticated(current)
	c.JSON(http.StatusOK, gin.H{"user": current})
}

// RefreshGoogleToken échange un refresh token Google contre un access token
// neuf, pour les clients qui appellent les API Google côté front sans refaire
// tout le flow OAuth.
func (m *StoreManager) RefreshGoogleToken(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.RefreshToken == "" {
		badRequest(c, "Refresh token requis")
		return
	}

	src := config.GoogleOAuthConfig.TokenSource(c.Request.Context(), &oauth2.Token{
		RefreshToken: input.RefreshToken,
	})
	token, err := src.Token()
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Rafraîchissement du token Google échoué"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken": token.AccessToken,
		"expiry":      token.Expiry,
	})
}

func (m *StoreManager) authError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrAuthDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Authentification indisponible"})
	case errors.Is(err, auth.ErrInvalidEmail):
		badRequest(c, "Email invalide")
	case errors.Is(err, auth.ErrWeakPassword):
		badRequest(c, "Mot de passe trop court (6 caractères minimum)")
	case errors.Is(err, auth.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Un compte avec cet email existe déjà"})
	case errors.Is(err, auth.ErrUserNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur introuvable"})
	case errors.Is(err, auth.ErrWrongPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Mot de passe incorrect"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// ================== AUTH SOCIALE ==================

// BeginAuth démarre le flow OAuth du provider demandé.
func (m *StoreManager) BeginAuth(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		badRequest(c, "aucun provider spécifié")
		return
	}

	c.Request = c.Request.WithContext(
		context.WithValue(c.Request.Context(), providerKey, provider),
	)

	gothic.BeginAuthHandler(c.Writer, c.Request)
}

// CallbackAuth termine le flow OAuth et connecte la session.
func (m *StoreManager) CallbackAuth(c *gin.Context) {
	provider := c.Param("provider")
	c.Request = c.Request.WithContext(
		context.WithValue(c.Request.Context(), providerKey, provider),
	)

	gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentification " + provider + " échouée"})
		return
	}

	user, token, err := m.Auth.LoginOAuth(c.Request.Context(),
		provider, gothUser.UserID, gothUser.Email, gothUser.Name, gothUser.AvatarURL)
	if err != nil {
		m.authError(c, err)
		return
	}

	s := m.Store(c)
	s.SetSessionAuthenticated(user)
	m.AttachUser(c, s, user.Email)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}
