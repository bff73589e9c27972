// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"medifinder/internal/delivery/http/middleware"
	"medifinder/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler      *handler.SessionHandler
	CartHandler         *handler.CartHandler
	ReminderHandler     *handler.ReminderHandler
	CatalogHandler      *handler.CatalogHandler
	ReservationHandler  *handler.ReservationHandler
	TelemedicineHandler *handler.TelemedicineHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler      *handler.SessionHandler
	cartHandler         *handler.CartHandler
	reminderHandler     *handler.ReminderHandler
	catalogHandler      *handler.CatalogHandler
	reservationHandler  *handler.ReservationHandler
	telemedicineHandler *handler.TelemedicineHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:      params.SessionHandler,
		cartHandler:         params.CartHandler,
		reminderHandler:     params.ReminderHandler,
		catalogHandler:      params.CatalogHandler,
		reservationHandler:  params.ReservationHandler,
		telemedicineHandler: params.TelemedicineHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.sessionHandler.Register)
		authGroup.POST("/login", r.sessionHandler.Login)
		authGroup.POST("/logout", r.sessionHandler.Logout)
	}

	// Session snapshot is public; the profile patch requires a valid token.
	e.GET("/session", r.sessionHandler.Snapshot)
	e.PATCH("/session", r.sessionHandler.Update, r.authMiddleware.Authenticate)

	// Cart routes
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.Get)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:productId", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:productId", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.Clear)
	}

	// Dose reminder routes
	reminderGroup := e.Group("/reminders")
	{
		reminderGroup.GET("", r.reminderHandler.List)
		reminderGroup.GET("/:id/status", r.reminderHandler.Status)
		reminderGroup.POST("/:id/track", r.reminderHandler.Track)
		reminderGroup.DELETE("/:id/track", r.reminderHandler.Untrack)
		reminderGroup.POST("/:id/taken", r.reminderHandler.MarkTaken)
		reminderGroup.POST("/:id/snooze", r.reminderHandler.Snooze)
	}

	// Catalog routes
	pharmacyGroup := e.Group("/pharmacies")
	{
		pharmacyGroup.GET("", r.catalogHandler.SearchPharmacies)
		pharmacyGroup.GET("/nearby", r.catalogHandler.NearbyPharmacies)
		pharmacyGroup.GET("/on-duty", r.catalogHandler.OnDutyPharmacies)
		pharmacyGroup.GET("/:id", r.catalogHandler.GetPharmacy)
	}
	medicationGroup := e.Group("/medications")
	{
		medicationGroup.GET("", r.catalogHandler.SearchMedications)
		medicationGroup.GET("/:id", r.catalogHandler.GetMedication)
	}

	// Telemedicine routes; the directory is public, consultations need a user
	e.GET("/pharmacists", r.telemedicineHandler.ListPharmacists)
	consultationGroup := e.Group("/consultations")
	consultationGroup.Use(r.authMiddleware.Authenticate)
	{
		consultationGroup.POST("", r.telemedicineHandler.StartChat)
		consultationGroup.GET("/:id", r.telemedicineHandler.Get)
		consultationGroup.GET("/:id/messages", r.telemedicineHandler.Messages)
		consultationGroup.POST("/:id/messages", r.telemedicineHandler.SendMessage)
		consultationGroup.POST("/:id/end", r.telemedicineHandler.End)
	}

	// Reservation routes require authentication
	reservationGroup := e.Group("/reservations")
	reservationGroup.Use(r.authMiddleware.Authenticate)
	{
		reservationGroup.POST("", r.reservationHandler.Create)
		reservationGroup.GET("", r.reservationHandler.List)
		reservationGroup.GET("/:id", r.reservationHandler.Get)
		reservationGroup.GET("/:id/qr.png", r.reservationHandler.PickupQR)
		reservationGroup.POST("/:id/ready", r.reservationHandler.MarkReady)
		reservationGroup.POST("/:id/collect", r.reservationHandler.MarkCollected)
		reservationGroup.POST("/:id/cancel", r.reservationHandler.Cancel)
	}
}
