package routes

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"sajhnaa_back_end/internal/handlers"
	"sajhnaa_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, m *handlers.StoreManager) {
	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		frontend = "http://localhost:3000"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontend},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	api.Use(middleware.APIRateLimit())

	// Catalogue
	api.GET("/products", m.GetProducts)
	api.GET("/products/:id", m.GetProduct)
	api.GET("/categories", m.GetCategories)
	api.GET("/recently-viewed", m.GetRecentlyViewed)
	api.GET("/search", middleware.SearchRateLimit(), m.SearchProducts)

	// Filtres
	api.GET("/filters", m.GetFilters)
	api.PATCH("/filters", m.SetFilters)
	api.DELETE("/filters", m.ResetFilters)

	// Panier
	api.GET("/cart", m.GetCart)
	api.POST("/cart", m.AddToCart)
	api.PUT("/cart", m.UpdateCartQuantity)
	api.DELETE("/cart", m.RemoveFromCart)
	api.DELETE("/cart/all", m.ClearCart)
	api.POST("/cart/save-for-later", m.SaveForLater)
	api.POST("/cart/move-to-cart", m.MoveToCart)

	// Wishlist
	api.GET("/wishlist", m.GetWishlist)
	api.POST("/wishlist", m.AddToWishlist)
	api.DELETE("/wishlist/:id", m.RemoveFromWishlist)

	// Promo & checkout
	api.POST("/promo", m.ApplyPromo)
	api.DELETE("/promo", m.RemovePromo)
	api.GET("/checkout/quote", m.GetQuote)
	api.POST("/checkout/payment-intent", m.CreatePaymentIntent)
	api.POST("/checkout/place-order", m.PlaceOrder)

	// Commandes
	api.GET("/orders", m.GetOrders)
	api.GET("/orders/:id", m.GetOrder)
	api.GET("/orders/:id/qr", m.GetOrderTrackingQR)
	api.GET("/orders/:id/invoice", m.GetOrderInvoice)

	// Notifications & thème
	api.GET("/notifications", m.GetNotifications)
	api.DELETE("/notifications/:id", m.DismissNotification)
	api.POST("/theme/toggle", m.ToggleDarkMode)

	// Auth
	auth := api.Group("/auth")
	auth.POST("/register", middleware.RegisterRateLimit(), m.Register)
	auth.POST("/login", middleware.LoginRateLimit(), m.Login)
	auth.GET("/session", m.GetSession)
	auth.POST("/logout", m.Logout)
	auth.PUT("/profile", middleware.AuthRequired(), m.UpdateProfile)
	auth.GET("/:provider", m.BeginAuth)
	auth.GET("/:provider/callback", m.CallbackAuth)
	auth.POST("/google/refresh", m.RefreshGoogleToken)

	// Admin : la connexion est hors de la porte, le reste derrière.
	admin := api.Group("/admin")
	admin.POST("/login", m.AdminLogin)
	admin.POST("/logout", m.AdminLogout)

	guarded := admin.Group("")
	guarded.Use(middleware.RequireAdmin(m.IsAdmin))
	guarded.GET("/dashboard", m.AdminDashboard)
	guarded.GET("/orders", m.AdminListOrders)
	guarded.PATCH("/orders/:id/status", m.AdminUpdateOrderStatus)
	guarded.GET("/orders/live", m.AdminOrdersWebSocket)
	guarded.POST("/products", m.AdminAddProduct)
	guarded.PUT("/products/:id", m.AdminUpdateProduct)
	guarded.DELETE("/products/:id", m.AdminDeleteProduct)
	guarded.POST("/products/image", m.AdminUploadImage)
}
