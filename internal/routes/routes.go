package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-pos/internal/archive"
	"github.com/BruksfildServices01/barber-pos/internal/audit"
	"github.com/BruksfildServices01/barber-pos/internal/config"
	"github.com/BruksfildServices01/barber-pos/internal/domain/payment"
	"github.com/BruksfildServices01/barber-pos/internal/exchange"
	"github.com/BruksfildServices01/barber-pos/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-pos/internal/infra/repository"
	"github.com/BruksfildServices01/barber-pos/internal/lock"
	"github.com/BruksfildServices01/barber-pos/internal/middleware"
	"github.com/BruksfildServices01/barber-pos/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-pos/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/barber-pos/internal/usecase/catalog"
	ucPayment "github.com/BruksfildServices01/barber-pos/internal/usecase/payment"
	ucReport "github.com/BruksfildServices01/barber-pos/internal/usecase/report"
)

// Deps are the long-lived components built by main. Archive may be nil.
type Deps struct {
	DB        *gorm.DB
	Config    *config.Config
	Log       *slog.Logger
	Clock     timezone.Clock
	Locker    lock.Locker
	Audit     *audit.Dispatcher
	Tracker   *exchange.Tracker
	Refresher *exchange.Refresher
	Archive   archive.Store
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Log),
		middleware.CORSMiddleware(),
	)

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	paymentRepo := infraRepo.NewPaymentGormRepository(d.DB)
	catalogRepo := infraRepo.NewCatalogGormRepository(d.DB)
	reportRepo := infraRepo.NewReportGormRepository(d.DB)

	shop := d.Config.Shop
	reconciler := payment.NewReconciler(payment.NewCurrencies(shop.BaseCurrency, shop.LocalCurrency))

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		catalogRepo,
		ucAppointment.NewConflictChecker(appointmentRepo, d.Log),
		d.Locker,
		d.Audit,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		ucAppointment.NewCreateExpressAppointment(createAppointmentUC, d.Clock),
		ucAppointment.NewCancelAppointment(appointmentRepo, d.Clock, d.Audit),
		ucAppointment.NewReassignClient(appointmentRepo, catalogRepo, d.Audit),
		ucAppointment.NewListAppointmentsByDate(appointmentRepo),
		ucAppointment.NewListAppointmentsByMonth(appointmentRepo),
		ucAppointment.NewGetAppointmentDetail(appointmentRepo, paymentRepo),
		ucAppointment.NewGetAvailability(appointmentRepo, catalogRepo, catalogRepo, d.Clock),
	)

	// ======================================================
	// USE CASES — PAYMENTS
	// ======================================================
	paymentHandler := handlers.NewPaymentHandler(
		ucPayment.NewRegisterPayment(appointmentRepo, paymentRepo, reconciler, d.Tracker, d.Clock, d.Audit),
		ucPayment.NewQuotePayment(appointmentRepo, reconciler, d.Tracker),
	)

	// ======================================================
	// USE CASES — CATALOG
	// ======================================================
	clientHandler := handlers.NewClientHandler(
		ucCatalog.NewClients(catalogRepo, appointmentRepo, shop.PhoneRegion, d.Clock, d.Audit),
	)
	serviceHandler := handlers.NewServiceHandler(ucCatalog.NewServices(catalogRepo, d.Audit))
	barberHandler := handlers.NewBarberHandler(ucCatalog.NewBarbers(catalogRepo, d.Audit))
	settingsHandler := handlers.NewSettingsHandler(ucCatalog.NewBusinessHours(catalogRepo, d.Audit))

	// ======================================================
	// USE CASES — REPORTS
	// ======================================================
	closingUC := ucReport.NewDailyClosing(reportRepo, d.Clock)
	reportHandler := handlers.NewReportHandler(
		closingUC,
		ucReport.NewArchiveClosing(closingUC, d.Archive, d.Audit),
		ucReport.NewComputeCommissions(reportRepo, d.Config.CommissionRate()),
		ucReport.NewDashboard(reportRepo, d.Clock, shop.TopServicesLimit),
	)

	rateHandler := handlers.NewRateHandler(d.Tracker, d.Refresher, d.Audit)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	// ======================================================
	// HEALTH
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":         "ok",
			"rate_available": d.Tracker.Status().Available,
		})
	})

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/rate", rateHandler.Get)
		api.PUT("/rate", rateHandler.Override)
		api.POST("/rate/refresh", rateHandler.Refresh)

		api.GET("/barbers", barberHandler.List)
		api.POST("/barbers", barberHandler.Create)
		api.PATCH("/barbers/:id/deactivate", barberHandler.Deactivate)

		api.GET("/services", serviceHandler.List)
		api.POST("/services", serviceHandler.Create)
		api.PATCH("/services/:id", serviceHandler.Update)
		api.DELETE("/services/:id", serviceHandler.Deactivate)

		api.GET("/clients", clientHandler.List)
		api.POST("/clients", clientHandler.Create)
		api.PATCH("/clients/:id", clientHandler.Update)
		api.GET("/clients/:id/history", clientHandler.History)

		api.GET("/settings/hours", settingsHandler.GetHours)
		api.PUT("/settings/hours", settingsHandler.UpdateHours)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.GET("/appointments", appointmentHandler.ListByDate)
		api.GET("/appointments/month", appointmentHandler.ListByMonth)
		api.GET("/appointments/availability", appointmentHandler.Availability)
		api.POST("/appointments", appointmentHandler.Create)
		api.POST("/appointments/express", appointmentHandler.CreateExpress)
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
		api.PATCH("/appointments/:id/client", appointmentHandler.ReassignClient)
		api.POST("/appointments/:id/payment", paymentHandler.Register)
		api.POST("/appointments/:id/payment/quote", paymentHandler.Quote)
		api.POST("/payments/quote", paymentHandler.QuoteAmount)

		// ------------------------------
		// REPORTS
		// ------------------------------
		api.GET("/reports/closing", reportHandler.Closing)
		api.POST("/reports/closing/archive", reportHandler.ArchiveClosing)
		api.GET("/reports/commissions", reportHandler.Commissions)
		api.GET("/reports/top-services", reportHandler.TopServices)
		api.GET("/reports/weekly-revenue", reportHandler.WeeklyRevenue)
		api.GET("/reports/barbers/month", reportHandler.BarberMonth)
		api.GET("/reports/kpis", reportHandler.KPIs)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
