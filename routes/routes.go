package routes

import (
	"restaurant-ops-api/handlers"
	"restaurant-ops-api/middleware"
	"restaurant-ops-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	r.GET("/", handlers.Welcome)
	r.GET("/health", handlers.Health)

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/")
	{
		public.POST("/owner/login", handlers.OwnerLogin)
		public.GET("/menu", handlers.GetMenu)
		public.POST("/order", handlers.PlaceOrder)
		public.POST("/reservation", handlers.CreateReservation)
		public.GET("/status-info", handlers.GetStatusInfo)
	}

	// ── Owner routes ───────────────────────────────────────────────
	owner := r.Group("/")
	owner.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleOwner))
	{
		// Menu management
		owner.POST("/menu", handlers.AddMenuItem)
		owner.PUT("/menu/:id", handlers.UpdateMenuItem)
		owner.DELETE("/menu/:id", handlers.DeleteMenuItem)

		// Orders
		owner.GET("/orders", handlers.GetOrders)
		owner.POST("/order/:id/status", handlers.UpdateOrderStatus)
		owner.GET("/order/:id/history", handlers.GetOrderHistory)

		// Reservations
		owner.GET("/reservations", handlers.GetReservations)
		owner.POST("/reservation/:id/status", handlers.UpdateReservationStatus)

		// Prepared quantities
		owner.POST("/prepared", handlers.SavePrepared)
		owner.GET("/prepared", handlers.GetPrepared)
	}

	// ── Reports ────────────────────────────────────────────────────
	reports := r.Group("/report")
	reports.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleOwner))
	{
		reports.GET("/daily-sales", handlers.DailySalesReport)
		reports.GET("/monthly-revenue", handlers.MonthlyRevenueReport)
		reports.GET("/daily-waste", handlers.DailyWasteReport)
		reports.GET("/monthly-waste", handlers.MonthlyWasteReport)
		reports.GET("/today-prep", handlers.TodayPrepReport)
		reports.GET("/low-stock", handlers.LowStockReport)
		reports.GET("/top-items", handlers.TopItemsReport)
		reports.GET("/customer-insights", handlers.CustomerInsightsReport)
		reports.GET("/export", handlers.ExportCSV)
		reports.GET("/export-pdf", handlers.ExportPDF)
	}
}

// NewRouter builds the engine with the standard middleware stack
func NewRouter(corsOrigin string) *gin.Engine {
	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()
	r.Use(middleware.RequestID(), middleware.CORS(corsOrigin))
	SetupRoutes(r)
	return r
}
