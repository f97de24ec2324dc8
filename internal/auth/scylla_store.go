package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gocql/gocql"

	"sajhnaa_back_end/internal/models"
)

// ScyllaUserStore persiste les comptes dans le keyspace users : la table users
// par user_id, l'index users_by_email pour le login. Les adresses et
// préférences vivent en JSON dans des colonnes text.
type ScyllaUserStore struct {
	Session *gocql.Session
}

func NewScyllaUserStore(session *gocql.Session) *ScyllaUserStore {
	return &ScyllaUserStore{Session: session}
}

const (
	selectUserIDByEmailCQL = `SELECT user_id FROM users_by_email WHERE email = ?`
	selectUserByIDCQL      = `SELECT email, password, name, phone, avatar, provider, provider_id, addresses, preferences
		FROM users WHERE user_id = ?`
	insertUserCQL = `INSERT INTO users (user_id, email, password, name, phone, avatar, provider, provider_id, addresses, preferences, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	insertUserByEmailCQL = `INSERT INTO users_by_email (email, user_id) VALUES (?, ?)`
	updateProfileCQL     = `UPDATE users SET name = ?, phone = ?, avatar = ?, addresses = ?, preferences = ?, updated_at = ? WHERE user_id = ?`
)

func (s *ScyllaUserStore) UserByEmail(ctx context.Context, email string) (models.User, error) {
	var userID string
	if err := s.Session.Query(selectUserIDByEmailCQL, email).WithContext(ctx).Scan(&userID); err != nil {
		if err == gocql.ErrNotFound {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("lecture users_by_email: %w", err)
	}
	return s.UserByID(ctx, userID)
}

func (s *ScyllaUserStore) UserByID(ctx context.Context, userID string) (models.User, error) {
	var (
		email, password, name, phone, avatar string
		provider, providerID                 string
		addressesJSON, preferencesJSON       string
	)
	if err := s.Session.Query(selectUserByIDCQL, userID).WithContext(ctx).Scan(
		&email, &password, &name, &phone, &avatar, &provider, &providerID,
		&addressesJSON, &preferencesJSON,
	); err != nil {
		if err == gocql.ErrNotFound {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("lecture users: %w", err)
	}

	user := models.User{
		ID:         userID,
		Email:      email,
		Password:   password,
		Name:       name,
		Phone:      phone,
		Avatar:     avatar,
		Provider:   provider,
		ProviderID: providerID,
	}
	if addressesJSON != "" {
		if err := json.Unmarshal([]byte(addressesJSON), &user.Addresses); err != nil {
			return models.User{}, fmt.Errorf("décodage adresses de %s: %w", userID, err)
		}
	}
	if preferencesJSON != "" {
		if err := json.Unmarshal([]byte(preferencesJSON), &user.Preferences); err != nil {
			return models.User{}, fmt.Errorf("décodage préférences de %s: %w", userID, err)
		}
	}
	return user, nil
}

func (s *ScyllaUserStore) CreateUser(ctx context.Context, user models.User) error {
	addresses, preferences, err := encodeProfile(user)
	if err != nil {
		return err
	}

	now := time.Now()
	if err := s.Session.Query(insertUserCQL,
		user.ID, user.Email, user.Password, user.Name, user.Phone, user.Avatar,
		user.Provider, user.ProviderID, addresses, preferences, now, now,
	).WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("insertion user %s: %w", user.Email, err)
	}

	if err := s.Session.Query(insertUserByEmailCQL, user.Email, user.ID).
		WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("insertion users_by_email %s: %w", user.Email, err)
	}
	return nil
}

func (s *ScyllaUserStore) UpdateProfile(ctx context.Context, user models.User) error {
	addresses, preferences, err := encodeProfile(user)
	if err != nil {
		return err
	}
	if err := s.Session.Query(updateProfileCQL,
		user.Name, user.Phone, user.Avatar, addresses, preferences, time.Now(), user.ID,
	).WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("mise à jour profil %s: %w", user.ID, err)
	}
	return nil
}

func encodeProfile(user models.User) (string, string, error) {
	addresses, err := json.Marshal(user.Addresses)
	if err != nil {
		return "", "", fmt.Errorf("encodage adresses: %w", err)
	}
	preferences, err := json.Marshal(user.Preferences)
	if err != nil {
		return "", "", fmt.Errorf("encodage préférences: %w", err)
	}
	return string(addresses), string(preferences), nil
}
