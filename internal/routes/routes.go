package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/matheusvf/barber-agenda/internal/audit"
	"github.com/matheusvf/barber-agenda/internal/config"
	"github.com/matheusvf/barber-agenda/internal/domain/schedule"
	"github.com/matheusvf/barber-agenda/internal/handlers"
	infraRepo "github.com/matheusvf/barber-agenda/internal/infra/repository"
	"github.com/matheusvf/barber-agenda/internal/middleware"
	ucAppointment "github.com/matheusvf/barber-agenda/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	resolver := schedule.NewResolver(log)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		resolver,
		cfg.SlotGranularityMin,
	)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		resolver,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(
		appointmentRepo,
		resolver,
		auditDispatcher,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(db, availabilityUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		rescheduleAppointmentUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
	)

	scheduleHandler := handlers.NewScheduleHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 BOOKING (cliente)
		// ------------------------------
		api.GET("/services", publicHandler.ListServices)
		api.GET("/barbers", publicHandler.ListBarbers)
		api.GET("/barbers/:id/availability", publicHandler.Availability)
		api.POST("/appointments", appointmentHandler.Create)

		// ------------------------------
		// APPOINTMENTS (barbeiro/admin)
		// ------------------------------
		api.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
		api.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)
		api.GET("/barbers/:id/appointments", appointmentHandler.ListByDate)
		api.GET("/barbers/:id/appointments/month", appointmentHandler.ListByMonth)

		// ------------------------------
		// SCHEDULE (barbeiro/admin)
		// ------------------------------
		api.GET("/barbers/:id/schedule", scheduleHandler.Get)
		api.PUT("/barbers/:id/schedule", scheduleHandler.Update)
		api.GET("/barbers/:id/exceptions", scheduleHandler.ListExceptions)
		api.POST("/barbers/:id/exceptions", scheduleHandler.CreateException)
		api.DELETE("/barbers/:id/exceptions/:exceptionId", scheduleHandler.DeleteException)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
