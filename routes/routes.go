package routes

import (
	"net/http"

	"eatkwik/analytics"
	"eatkwik/live"
	"eatkwik/menu"
	"eatkwik/orders"
	"eatkwik/ratelim"
	"eatkwik/settings"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/menupic/*filepath", http.Dir("static/menupic"))
}

func AddMenuRoutes(router *httprouter.Router) {
	router.GET("/api/menu-items", menu.GetMenuItems)
	router.POST("/api/menu-items", ratelim.RateLimit(menu.CreateMenuItem))
	router.GET("/api/menu-items/:id", menu.GetMenuItem)
	router.PUT("/api/menu-items/:id", ratelim.RateLimit(menu.EditMenuItem))
	router.DELETE("/api/menu-items/:id", ratelim.RateLimit(menu.DeleteMenuItem))
	router.POST("/api/menu-items/:id/feedback", ratelim.RateLimit(menu.AddFeedback))
	router.POST("/api/menu-items/:id/image", ratelim.RateLimit(menu.UploadMenuItemImage))
}

func AddOrderRoutes(router *httprouter.Router, hub *live.Hub) {
	router.GET("/api/orders", orders.GetOrders)
	router.POST("/api/orders", ratelim.RateLimit(orders.CreateOrder(hub)))
	router.POST("/api/order-intake/validate", orders.ValidateIntake)
	router.GET("/api/orders/:id", orders.GetOrder)
	router.PUT("/api/orders/:id", ratelim.RateLimit(orders.UpdateOrder(hub)))
	router.DELETE("/api/orders/:id", ratelim.RateLimit(orders.DeleteOrder))
	router.GET("/api/orders/:id/receipt", orders.PrintReceipt)
}

func AddSettingsRoutes(router *httprouter.Router) {
	router.GET("/api/settings", settings.GetSettings)
	router.PUT("/api/settings", ratelim.RateLimit(settings.UpdateSettings))
}

func AddAnalyticsRoutes(router *httprouter.Router) {
	router.GET("/api/analytics/dashboard", analytics.GetDashboard)
}

func AddLiveRoutes(router *httprouter.Router, hub *live.Hub) {
	router.GET("/ws/orders", live.WebSocketHandler(hub))
}
