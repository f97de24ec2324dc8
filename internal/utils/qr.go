package utils

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/skip2/go-qrcode"
)

// TrackingURL construit l'URL publique de suivi d'une commande.
func TrackingURL(orderID string) string {
	base := os.Getenv("FRONTEND_URL")
	if base == "" {
		base = "http://localhost:3000"
	}
	return fmt.Sprintf("%s/track/%s", base, orderID)
}

// GenerateTrackingQR génère le QR de suivi d'une commande en PNG.
func GenerateTrackingQR(orderID string) ([]byte, error) {
	return qrcode.Encode(TrackingURL(orderID), qrcode.Medium, 256)
}

// GenerateTrackingQRBase64 retourne le QR prêt pour un <img src="...">.
func GenerateTrackingQRBase64(orderID string) (string, error) {
	png, err := GenerateTrackingQR(orderID)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
