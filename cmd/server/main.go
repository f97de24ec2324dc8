package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/facebook"
	"github.com/markbates/goth/providers/google"
	"github.com/stripe/stripe-go/v83"

	"sajhnaa_back_end/internal/auth"
	"sajhnaa_back_end/internal/cache"
	"sajhnaa_back_end/internal/config"
	"sajhnaa_back_end/internal/database"
	"sajhnaa_back_end/internal/handlers"
	"sajhnaa_back_end/internal/ordersync"
	"sajhnaa_back_end/internal/routes"
	services "sajhnaa_back_end/internal/service"
)

func main() {
	config.Load()

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		log.Fatal("❌ Impossible d'initialiser Stripe : clé manquante")
	}
	log.Println("✅ Stripe initialisé")

	database.ConnectDatabases()

	// Indexer le catalogue pour la recherche
	services.IndexCatalog()

	initOAuthProviders()

	// Keyspaces Scylla: users pour les comptes, orders pour les commandes
	usersSession, err := database.GetUsersSession()
	if err != nil {
		log.Fatalf("❌ Session users indisponible: %v", err)
	}
	ordersSession, err := database.GetOrdersSession()
	if err != nil {
		log.Fatalf("❌ Session orders indisponible: %v", err)
	}

	orders := ordersync.New(ordersSession, database.Redis)
	authSvc := auth.NewService(auth.NewScyllaUserStore(usersSession))
	persist := cache.NewSnapshotStore(database.Redis)

	adminPassword := config.AdminPassword()
	if adminPassword == "" {
		log.Println("⚠️ ADMIN_PASSWORD non configuré: tableau de bord admin fermé")
	}

	manager := handlers.NewStoreManager(adminPassword, persist, orders, authSvc)

	r := gin.Default()
	routes.RegisterRoutes(r, manager)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur Sajhnaa lancé sur le port", port)
	r.Run(":" + port)
}

func initOAuthProviders() {
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("❌ SESSION_SECRET manquant dans .env")
	}

	store := sessions.NewCookieStore([]byte(sessionSecret))
	store.MaxAge(86400 * 30)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}

	gothic.Store = store

	// Extraire le provider depuis l'URL (/api/auth/:provider[/callback])
	gothic.GetProviderName = func(req *http.Request) (string, error) {
		if provider := req.URL.Query().Get("provider"); provider != "" {
			return provider, nil
		}
		if provider := req.FormValue("provider"); provider != "" {
			return provider, nil
		}
		parts := strings.Split(strings.Trim(req.URL.Path, "/"), "/")
		for i, part := range parts {
			if part == "auth" && i+1 < len(parts) {
				return parts[i+1], nil
			}
		}
		return "", errors.New("provider not found")
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	googleCallback := baseURL + "/api/auth/google/callback"
	facebookCallback := baseURL + "/api/auth/facebook/callback"

	googleClientID := os.Getenv("GOOGLE_CLIENT_ID")
	googleClientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	facebookClientID := os.Getenv("FACEBOOK_CLIENT_ID")
	facebookClientSecret := os.Getenv("FACEBOOK_CLIENT_SECRET")

	var providers []goth.Provider

	if googleClientID != "" && googleClientSecret != "" {
		providers = append(providers, google.New(
			googleClientID,
			googleClientSecret,
			googleCallback,
		))
		log.Println("✅ Google OAuth activé")
	}

	if facebookClientID != "" && facebookClientSecret != "" {
		providers = append(providers, facebook.New(
			facebookClientID,
			facebookClientSecret,
			facebookCallback,
		))
		log.Println("✅ Facebook OAuth activé")
	}

	if len(providers) == 0 {
		log.Println("⚠️ Aucun provider OAuth configuré")
		return
	}

	goth.UseProviders(providers...)
	log.Printf("✅ %d OAuth provider(s) initialisé(s)", len(providers))
}
