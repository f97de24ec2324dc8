package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"sajhnaa_back_end/internal/database"
)

// UploadProductImage stocke une image produit dans le bucket configuré et
// retourne son URL publique. Le nom d'objet est préfixé d'un uuid pour éviter
// les collisions entre uploads du même fichier.
func UploadProductImage(file *multipart.FileHeader) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	bucket := os.Getenv("MINIO_BUCKET")
	objectName := "products/" + uuid.NewString() + path.Ext(file.Filename)

	_, err = database.MinIO.PutObject(context.Background(), bucket, objectName, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	scheme := "http"
	if os.Getenv("MINIO_USE_SSL") == "true" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, os.Getenv("MINIO_ENDPOINT"), bucket, objectName), nil
}

// PresignedImageURL génère une URL signée temporaire pour un objet du bucket.
func PresignedImageURL(objectName string, expiry time.Duration) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}
	u, err := database.MinIO.PresignedGetObject(context.Background(),
		os.Getenv("MINIO_BUCKET"), objectName, expiry, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
