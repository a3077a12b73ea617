package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberops/internal/audit"
	"github.com/BruksfildServices01/barberops/internal/config"
	"github.com/BruksfildServices01/barberops/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barberops/internal/infra/repository"
	"github.com/BruksfildServices01/barberops/internal/media"
	"github.com/BruksfildServices01/barberops/internal/middleware"
	"github.com/BruksfildServices01/barberops/internal/notify"
	"github.com/BruksfildServices01/barberops/internal/payments"
	"github.com/BruksfildServices01/barberops/internal/settings"
	ucBooking "github.com/BruksfildServices01/barberops/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, rdb *redis.Client) error {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	settingsResolver := settings.NewResolver(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	notifyClient := notify.NewClient(cfg.NotifyURL)
	uploader := media.NewUploader(cfg)

	linkCreator, err := payments.NewLinkCreator(cfg.MPAccessToken)
	if err != nil {
		return err
	}

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
	)

	transitionUC := ucBooking.NewTransition(
		bookingRepo,
		auditDispatcher,
	)

	listByDateUC := ucBooking.NewListBookingsByDate(
		bookingRepo,
	)

	listByMonthUC := ucBooking.NewListBookingsByMonth(
		bookingRepo,
	)

	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		settingsResolver,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	staffHandler := handlers.NewStaffHandler(db)
	customerHandler := handlers.NewCustomerHandler(db)
	settingsHandler := handlers.NewSettingsHandler(db, settingsResolver)
	expenseHandler := handlers.NewExpenseHandler(db)
	inventoryHandler := handlers.NewInventoryHandler(db)
	incidentHandler := handlers.NewIncidentHandler(db, uploader, auditDispatcher)
	taskHandler := handlers.NewTaskHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		db,
		createBookingUC,
		transitionUC,
		listByDateUC,
		listByMonthUC,
		availabilityUC,
		bookingRepo,
	)

	invoiceHandler := handlers.NewInvoiceHandler(
		db,
		bookingRepo,
		settingsResolver,
		notifyClient,
		linkCreator,
		auditDispatcher,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		db,
		createBookingUC,
		availabilityUC,
		settingsResolver,
	)

	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		publicAPI.Use(middleware.RateLimit(rdb, 30, time.Minute, "public"))
		{
			publicAPI.GET("/:slug", publicHandler.Info)
			publicAPI.GET("/:slug/availability", publicHandler.AvailabilityForClient)
			publicAPI.POST("/:slug/bookings", publicHandler.CreateBooking)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		auth := api.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 10, time.Minute, "auth"))
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", staffHandler.GetMe)

			// Agenda
			secured.POST("/me/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.ListByDate)
			secured.GET("/me/bookings/month", bookingHandler.ListByMonth)
			secured.GET("/me/bookings/availability", bookingHandler.Availability)
			secured.PATCH("/me/bookings/:id", bookingHandler.Update)
			secured.DELETE("/me/bookings/:id", bookingHandler.Delete)
			secured.PATCH("/me/bookings/:id/complete", bookingHandler.Complete)
			secured.PATCH("/me/bookings/:id/cancel", bookingHandler.Cancel)
			secured.PATCH("/me/bookings/:id/payment", bookingHandler.SetPayment)

			// Recibos e pagamento
			secured.GET("/me/bookings/:id/invoice", invoiceHandler.Preview)
			secured.POST("/me/bookings/:id/invoice/send", invoiceHandler.Send)
			secured.GET("/me/bookings/:id/whatsapp-text", invoiceHandler.WhatsAppText)
			secured.POST("/me/bookings/:id/payment-link", invoiceHandler.PaymentLink)

			// Clientes
			secured.GET("/me/customers", customerHandler.List)
			secured.POST("/me/customers", customerHandler.Create)
			secured.PATCH("/me/customers/:id", customerHandler.Update)
			secured.DELETE("/me/customers/:id", customerHandler.Delete)

			// Configurações da barbearia
			secured.GET("/me/settings", settingsHandler.Get)
			secured.PUT("/me/settings", settingsHandler.Save)

			// Manual de operações
			secured.GET("/me/tasks", taskHandler.List)
			secured.POST("/me/tasks/:id/toggle", taskHandler.ToggleCompletion)

			// Ocorrências
			secured.GET("/me/incidents", incidentHandler.List)
			secured.POST("/me/incidents", incidentHandler.Create)
			secured.PATCH("/me/incidents/:id", incidentHandler.Update)
			secured.POST("/me/incidents/:id/resolve", incidentHandler.Resolve)
			secured.POST("/me/incidents/:id/photo", incidentHandler.UploadPhoto)

			// ------------------------------
			// GESTÃO (manager)
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireRole("owner", "manager"))
			{
				admin.GET("/me/staff", staffHandler.List)
				admin.POST("/me/staff", staffHandler.Create)
				admin.PATCH("/me/staff/:id", staffHandler.Update)

				admin.GET("/me/expenses", expenseHandler.List)
				admin.GET("/me/expenses/summary", expenseHandler.Summary)
				admin.POST("/me/expenses", expenseHandler.Create)
				admin.PATCH("/me/expenses/:id", expenseHandler.Update)
				admin.DELETE("/me/expenses/:id", expenseHandler.Delete)

				admin.GET("/me/inventory/equipment", inventoryHandler.ListEquipment)
				admin.POST("/me/inventory/equipment", inventoryHandler.CreateEquipment)
				admin.PATCH("/me/inventory/equipment/:id", inventoryHandler.UpdateEquipment)
				admin.DELETE("/me/inventory/equipment/:id", inventoryHandler.DeleteEquipment)

				admin.GET("/me/inventory/supplies", inventoryHandler.ListSupplies)
				admin.GET("/me/inventory/supplies/low-stock", inventoryHandler.ListLowStock)
				admin.POST("/me/inventory/supplies", inventoryHandler.CreateSupply)
				admin.PATCH("/me/inventory/supplies/:id", inventoryHandler.UpdateSupply)
				admin.DELETE("/me/inventory/supplies/:id", inventoryHandler.DeleteSupply)

				admin.POST("/me/tasks", taskHandler.Create)
				admin.PATCH("/me/tasks/:id", taskHandler.Update)
				admin.DELETE("/me/tasks/:id", taskHandler.Delete)

				admin.DELETE("/me/incidents/:id", incidentHandler.Delete)

				admin.GET("/me/audit-logs", auditLogsHandler.List)
			}
		}
	}

	return nil
}
