package routes

import (
	"resto_back_end/internal/handlers"
	"resto_back_end/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes branche toutes les routes de l'API
func RegisterRoutes(r *gin.Engine, env *handlers.Env) {
	r.Use(cors.Default())

	api := r.Group("/api")

	// Auth
	api.POST("/auth/login", middleware.LoginRateLimit(), env.Login)

	// Menu public
	api.GET("/menu", env.GetMenu)

	// Reçus (tout membre du personnel connecté)
	api.GET("/receipts/:orderId", middleware.AuthRequired(), env.GetReceipt)

	// POS — serveurs en salle
	pos := api.Group("/pos", middleware.AuthRequired(), middleware.RequireWaiter)
	{
		pos.POST("/orders", env.CreateOrder)
		pos.GET("/orders/:id", env.GetOrder)
		pos.POST("/orders/:id/items", env.AddOrderItem)
		pos.DELETE("/orders/:id/items/:productId", env.RemoveOrderItem)
		pos.POST("/orders/:id/clear", env.ClearOrder)
		pos.POST("/orders/:id/submit", env.SubmitOrder)
		pos.POST("/orders/:id/cancel", env.CancelOrder)
	}

	// Cuisine — chefs
	kitchen := api.Group("/kitchen", middleware.AuthRequired(), middleware.RequireChef)
	{
		kitchen.GET("/orders", env.ListPendingOrders)
		kitchen.POST("/orders/:id/start", env.StartOrder)
		kitchen.POST("/orders/:id/complete", env.CompleteOrder)
		kitchen.GET("/ws", env.KitchenWebSocket)
	}

	// Administration — manager
	admin := api.Group("/admin", middleware.AuthRequired(), middleware.RequireAdmin)
	{
		admin.POST("/menu", env.CreateMenuItem)
		admin.PUT("/menu/:id", env.UpdateMenuItem)
		admin.GET("/dashboard", env.Dashboard)
	}
}
