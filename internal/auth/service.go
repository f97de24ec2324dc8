// Package auth adapte l'identité hébergée (comptes locaux + OAuth) aux trois
// états de session du magasin : loading, authenticated, anonymous.
package auth

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"sajhnaa_back_end/internal/models"
	"sajhnaa_back_end/internal/utils"
)

// Erreurs sentinelles : les handlers les traduisent en messages utilisateur
// sans inspecter de chaînes.
var (
	ErrAuthDisabled  = errors.New("authentification non configurée")
	ErrInvalidEmail  = errors.New("email invalide")
	ErrWeakPassword  = errors.New("mot de passe trop court (6 caractères minimum)")
	ErrEmailTaken    = errors.New("un compte existe déjà avec cet email")
	ErrUserNotFound  = errors.New("utilisateur introuvable")
	ErrWrongPassword = errors.New("mot de passe incorrect")
)

// UserStore est la persistance des comptes (Scylla en production).
type UserStore interface {
	UserByEmail(ctx context.Context, email string) (models.User, error)
	UserByID(ctx context.Context, userID string) (models.User, error)
	CreateUser(ctx context.Context, user models.User) error
	UpdateProfile(ctx context.Context, user models.User) error
}

// Service expose inscription, connexion et restauration de session.
// Un Store nil signifie que l'identité n'est pas configurée : toutes les
// opérations échouent avec ErrAuthDisabled et la session reste anonyme.
type Service struct {
	Store UserStore
	Now   func() time.Time
}

func NewService(store UserStore) *Service {
	return &Service{Store: store, Now: time.Now}
}

func (s *Service) enabled() bool { return s != nil && s.Store != nil }

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}

// Register crée un compte local puis retourne l'utilisateur connecté avec son
// token. L'écriture du profil enrichi est best-effort : un échec n'annule pas
// l'inscription.
func (s *Service) Register(ctx context.Context, email, password, name string) (models.User, string, error) {
	if !s.enabled() {
		return models.User{}, "", ErrAuthDisabled
	}

	email = normalizeEmail(email)
	if !validEmail(email) {
		return models.User{}, "", ErrInvalidEmail
	}
	if len(password) < 6 {
		return models.User{}, "", ErrWeakPassword
	}

	if _, err := s.Store.UserByEmail(ctx, email); err == nil {
		return models.User{}, "", ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return models.User{}, "", err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.User{}, "", err
	}

	user := models.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: hash,
		Provider: "local",
	}
	if err := s.Store.CreateUser(ctx, user); err != nil {
		return models.User{}, "", err
	}

	if err := s.Store.UpdateProfile(ctx, user); err != nil {
		log.Printf("⚠️ Profil de %s non initialisé: %v", email, err)
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		return models.User{}, "", err
	}
	user.Password = ""
	return user, token, nil
}

// Login vérifie les identifiants et retourne l'utilisateur avec le profil
// fusionné et un token de session.
func (s *Service) Login(ctx context.Context, email, password string) (models.User, string, error) {
	if !s.enabled() {
		return models.User{}, "", ErrAuthDisabled
	}

	user, err := s.Store.UserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return models.User{}, "", err
	}

	ok, err := utils.VerifyPassword(password, user.Password)
	if err != nil {
		return models.User{}, "", err
	}
	if !ok {
		return models.User{}, "", ErrWrongPassword
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		return models.User{}, "", err
	}
	user.Password = ""
	return user, token, nil
}

// RestoreSession valide un token existant et recharge l'utilisateur. Un token
// absent ou invalide n'est pas une erreur : la session est simplement anonyme.
func (s *Service) RestoreSession(ctx context.Context, token string) (models.User, bool, error) {
	if !s.enabled() || token == "" {
		return models.User{}, false, nil
	}

	userID, _, err := utils.ParseJWT(token)
	if err != nil {
		return models.User{}, false, nil
	}

	user, err := s.Store.UserByID(ctx, userID)
	if errors.Is(err, ErrUserNotFound) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}
	user.Password = ""
	return user, true, nil
}

// UpdateProfile persiste le profil enrichi (téléphone, adresses, préférences).
func (s *Service) UpdateProfile(ctx context.Context, user models.User) error {
	if !s.enabled() {
		return ErrAuthDisabled
	}
	return s.Store.UpdateProfile(ctx, user)
}

// LoginOAuth rattache (ou crée) un compte à partir d'un profil OAuth validé
// par le provider. Pas de mot de passe : le compte est lié au provider.
func (s *Service) LoginOAuth(ctx context.Context, provider, providerID, email, name, avatar string) (models.User, string, error) {
	if !s.enabled() {
		return models.User{}, "", ErrAuthDisabled
	}

	email = normalizeEmail(email)
	if !validEmail(email) {
		return models.User{}, "", ErrInvalidEmail
	}

	user, err := s.Store.UserByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		user = models.User{
			ID:         uuid.NewString(),
			Name:       name,
			Email:      email,
			Avatar:     avatar,
			Provider:   provider,
			ProviderID: providerID,
		}
		if err := s.Store.CreateUser(ctx, user); err != nil {
			return models.User{}, "", err
		}
	} else if err != nil {
		return models.User{}, "", err
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		return models.User{}, "", err
	}
	user.Password = ""
	return user, token, nil
}
