package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sajhnaa_back_end/internal/models"
)

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super_secret"
	}
	return []byte(secret)
}

func GenerateJWT(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ParseJWT valide le token et retourne (user_id, email).
func ParseJWT(tokenString string) (string, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("méthode de signature inattendue")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", "", errors.New("token invalide ou expiré")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("claims invalides")
	}
	userID, _ := claims["user_id"].(string)
	email, _ := claims["email"].(string)
	if userID == "" {
		return "", "", errors.New("token sans user_id")
	}
	return userID, email, nil
}
