package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autogleam/detailing-api/internal/audit"
	"github.com/autogleam/detailing-api/internal/cache"
	"github.com/autogleam/detailing-api/internal/config"
	"github.com/autogleam/detailing-api/internal/handlers"
	"github.com/autogleam/detailing-api/internal/infra/repository"
	"github.com/autogleam/detailing-api/internal/middleware"
	ucAppointment "github.com/autogleam/detailing-api/internal/usecase/appointment"
	ucProtocol "github.com/autogleam/detailing-api/internal/usecase/protocol"
)

// RegisterRoutes wires repositories, usecases and handlers and mounts the
// whole API under /api. Everything except /api/login requires a token.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, store *cache.Cache) {
	repo := repository.NewAppointmentGormRepository(db)

	dispatcher := audit.NewDispatcher(audit.New(db))

	createUC := ucAppointment.NewCreate(repo, dispatcher)
	updateUC := ucAppointment.NewUpdate(repo, dispatcher)
	statusUC := ucAppointment.NewChangeStatus(repo, dispatcher)
	listUC := ucAppointment.NewList(repo)
	getUC := ucAppointment.NewGet(repo)
	deleteUC := ucAppointment.NewDelete(repo, dispatcher)

	protocolGetUC := ucProtocol.NewGet(repo)
	protocolSaveUC := ucProtocol.NewSave(repo, dispatcher)

	authHandler := handlers.NewAuthHandler(db, cfg)
	clientHandler := handlers.NewClientHandler(db, dispatcher, listUC)
	carHandler := handlers.NewCarHandler(db, dispatcher)
	serviceHandler := handlers.NewServiceHandler(db, dispatcher)
	employeeHandler := handlers.NewEmployeeHandler(db, dispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(db, repo, createUC, updateUC, statusUC, listUC, getUC, deleteUC)
	protocolHandler := handlers.NewProtocolHandler(protocolGetUC, protocolSaveUC)
	dashboardHandler := handlers.NewDashboardHandler(db, store, listUC)

	api := r.Group("/api")

	api.POST("/login", authHandler.Login)

	secured := api.Group("")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.POST("/logout", authHandler.Logout)
		secured.GET("/me", authHandler.Me)

		secured.GET("/clients", clientHandler.List)
		secured.GET("/clients/:id", clientHandler.Get)
		secured.POST("/clients", clientHandler.Create)
		secured.PUT("/clients/:id", clientHandler.Update)
		secured.DELETE("/clients/:id", clientHandler.Delete)

		secured.GET("/cars", carHandler.List)
		secured.GET("/cars/:id", carHandler.Get)
		secured.POST("/cars", carHandler.Create)
		secured.PUT("/cars/:id", carHandler.Update)
		secured.DELETE("/cars/:id", carHandler.Delete)

		secured.GET("/services", serviceHandler.List)
		secured.GET("/services/:id", serviceHandler.Get)
		secured.POST("/services", serviceHandler.Create)
		secured.PUT("/services/:id", serviceHandler.Update)
		secured.DELETE("/services/:id", serviceHandler.Delete)

		secured.GET("/employees", employeeHandler.List)
		secured.GET("/employees/:id", employeeHandler.Get)
		secured.POST("/employees", employeeHandler.Create)
		secured.PUT("/employees/:id", employeeHandler.Update)
		secured.DELETE("/employees/:id", employeeHandler.Delete)

		secured.GET("/appointments", appointmentHandler.List)
		secured.GET("/appointments/stats", appointmentHandler.Stats)
		secured.GET("/appointments/:id", appointmentHandler.Get)
		secured.POST("/appointments", appointmentHandler.Create)
		secured.PUT("/appointments/:id", appointmentHandler.Update)
		secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
		secured.PATCH("/appointments/:id/payment", appointmentHandler.UpdatePayment)
		secured.DELETE("/appointments/:id", appointmentHandler.Delete)

		secured.GET("/appointments/:id/protocol", protocolHandler.Get)
		secured.PUT("/appointments/:id/protocol", protocolHandler.Save)

		secured.GET("/dashboard", dashboardHandler.Overview)
	}
}
