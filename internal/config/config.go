package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// AdminPassword retourne le mot de passe du tableau de bord admin.
// Vide = porte admin fermée, tout accès est refusé.
func AdminPassword() string {
	return os.Getenv("ADMIN_PASSWORD")
}
