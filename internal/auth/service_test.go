package auth

import (
	"context"
	"errors"
	"testing"

	"sajhnaa_back_end/internal/models"
)

type fakeUserStore struct {
	byEmail map[string]models.User
	byID    map[string]models.User
	updated []string
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byEmail: map[string]models.User{},
		byID:    map[string]models.User{},
	}
}

func (f *fakeUserStore) UserByEmail(_ context.Context, email string) (models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) UserByID(_ context.Context, userID string) (models.User, error) {
	u, ok := f.byID[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) CreateUser(_ context.Context, user models.User) error {
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, user models.User) error {
	f.updated = append(f.updated, user.ID)
	return nil
}

func TestRegisterThenLogin(t *testing.T) {
	svc := NewService(newFakeUserStore())
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "Priya@Example.com", "secret123", "Priya")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if token == "" {
		t.Fatal("Register doit retourner un token")
	}
	if user.Email != "priya@example.com" {
		t.Fatalf("email normalisé attendu, obtenu %q", user.Email)
	}
	if user.Password != "" {
		t.Fatal("le hash ne doit jamais sortir du service")
	}

	// Login avec la casse d'origine.
	logged, token2, err := svc.Login(ctx, "PRIYA@example.COM", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token2 == "" || logged.ID != user.ID {
		t.Fatalf("Login doit retrouver le compte créé, obtenu %+v", logged)
	}
}

func TestRegisterValidations(t *testing.T) {
	svc := NewService(newFakeUserStore())
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "pas-un-email", "secret123", "X"); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("attendu ErrInvalidEmail, obtenu %v", err)
	}
	if _, _, err := svc.Register(ctx, "a@b.com", "court", "X"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("attendu ErrWeakPassword, obtenu %v", err)
	}

	if _, _, err := svc.Register(ctx, "a@b.com", "secret123", "X"); err != nil {
		t.Fatalf("premier Register: %v", err)
	}
	if _, _, err := svc.Register(ctx, "a@b.com", "autre-secret", "Y"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("attendu ErrEmailTaken, obtenu %v", err)
	}
}

func TestLoginErrors(t *testing.T) {
	svc := NewService(newFakeUserStore())
	ctx := context.Background()

	if _, _, err := svc.Login(ctx, "absent@b.com", "secret123"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("attendu ErrUserNotFound, obtenu %v", err)
	}

	if _, _, err := svc.Register(ctx, "a@b.com", "secret123", "X"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, _, err := svc.Login(ctx, "a@b.com", "mauvais"); !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("attendu ErrWrongPassword, obtenu %v", err)
	}
}

func TestRestoreSession(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(store)
	ctx := context.Background()

	_, token, err := svc.Register(ctx, "a@b.com", "secret123", "X")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, ok, err := svc.RestoreSession(ctx, token)
	if err != nil || !ok {
		t.Fatalf("RestoreSession: ok=%v err=%v", ok, err)
	}
	if user.Email != "a@b.com" {
		t.Fatalf("utilisateur restauré incorrect: %+v", user)
	}

	// Token invalide ou vide: anonyme, pas d'erreur.
	if _, ok, err := svc.RestoreSession(ctx, "pas-un-token"); ok || err != nil {
		t.Fatalf("token invalide: attendu anonyme sans erreur, ok=%v err=%v", ok, err)
	}
	if _, ok, err := svc.RestoreSession(ctx, ""); ok || err != nil {
		t.Fatalf("token vide: attendu anonyme sans erreur, ok=%v err=%v", ok, err)
	}
}

func TestAuthDisabled(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "a@b.com", "secret123", "X"); !errors.Is(err, ErrAuthDisabled) {
		t.Fatalf("attendu ErrAuthDisabled, obtenu %v", err)
	}
	if _, _, err := svc.Login(ctx, "a@b.com", "secret123"); !errors.Is(err, ErrAuthDisabled) {
		t.Fatalf("attendu ErrAuthDisabled, obtenu %v", err)
	}
	// Restauration sans identité configurée: session anonyme, pas d'erreur.
	if _, ok, err := svc.RestoreSession(ctx, "x"); ok || err != nil {
		t.Fatalf("attendu anonyme sans erreur, ok=%v err=%v", ok, err)
	}
}

func TestLoginOAuthCreatesThenReuses(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(store)
	ctx := context.Background()

	u1, token, err := svc.LoginOAuth(ctx, "google", "g-123", "a@b.com", "Priya", "http://avatar")
	if err != nil || token == "" {
		t.Fatalf("LoginOAuth: %v", err)
	}
	if u1.Provider != "google" {
		t.Fatalf("provider attendu google, obtenu %q", u1.Provider)
	}

	u2, _, err := svc.LoginOAuth(ctx, "google", "g-123", "a@b.com", "Priya", "")
	if err != nil {
		t.Fatalf("second LoginOAuth: %v", err)
	}
	if u2.ID != u1.ID {
		t.Fatal("le même email doit rattacher le compte existant")
	}
}
