package routes

import (
	"github.com/visourastudio-blip/pizza-do-ze/cart"
	"github.com/visourastudio-blip/pizza-do-ze/handlers"
	"github.com/visourastudio-blip/pizza-do-ze/middleware"
	"github.com/visourastudio-blip/pizza-do-ze/models"
	"github.com/visourastudio-blip/pizza-do-ze/payment"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every endpoint. Carts and the payment client are
// created once at startup and injected here.
func SetupRoutes(r *gin.Engine, carts *cart.Manager, pix *payment.Client) {
	cartH := &handlers.CartHandlers{Carts: carts}
	orderH := &handlers.OrderHandlers{Carts: carts}
	paymentH := &handlers.PaymentHandlers{Pix: pix}

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Menu (no auth needed)
		public.GET("/menu", handlers.GetMenu)
		public.GET("/menu/pizzas/:id", handlers.GetPizza)

		// Reviews are readable by anyone
		public.GET("/reviews", handlers.ListReviews)

		// Status flow info (great for docs/Postman)
		public.GET("/status-flow", handlers.GetStatusFlow)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.PUT("/profile", handlers.UpdateProfile)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api/customer")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		// Cart
		customer.GET("/cart", cartH.GetCart)
		customer.POST("/cart/pizzas", cartH.AddPizza)
		customer.POST("/cart/beverages", cartH.AddBeverage)
		customer.POST("/cart/desserts", cartH.AddDessert)
		customer.PUT("/cart/items/:lineId", cartH.UpdateItem)
		customer.DELETE("/cart/items/:lineId", cartH.RemoveItem)
		customer.DELETE("/cart", cartH.ClearCart)

		// Orders
		customer.POST("/orders", orderH.Checkout)
		customer.GET("/orders", orderH.GetMyOrders)
		customer.GET("/orders/:id", orderH.GetOrderDetail)

		// Payments
		customer.POST("/payments/pix", paymentH.CreatePixCharge)

		// Reviews
		customer.POST("/reviews", handlers.CreateReview)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/orders", handlers.AdminGetAllOrders)
		admin.PUT("/orders/:id/status", handlers.AdminUpdateOrderStatus)
		admin.GET("/users", handlers.AdminGetAllUsers)
	}
}
