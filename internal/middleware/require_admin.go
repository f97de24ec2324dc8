package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin garde les routes du tableau de bord derrière la porte admin de
// la session boutique. Le prédicat est fourni par la couche handlers, qui sait
// retrouver le magasin de la session courante.
func RequireAdmin(isAdmin func(c *gin.Context) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isAdmin(c) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Accès réservé aux administrateurs"})
			c.Abort()
			return
		}
		c.Next()
	}
}
