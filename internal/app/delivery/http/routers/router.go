package routers

import (
	"fmt"
	"glamslot-service/internal/app/config"
	"glamslot-service/internal/app/delivery/http/controllers"
	"glamslot-service/internal/app/delivery/http/middlewares"
	"glamslot-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	healthController *controllers.HealthController,
	authController *controllers.AuthController,
	slotController *controllers.SlotController,
	appointmentController *controllers.AppointmentController,
) {
	corsOptions := cors.Options{
		AllowedOrigins: internalConfig.App.AllowedOrigins,
		AllowedMethods: []string{
			constvars.MethodGet,
			constvars.MethodPost,
			constvars.MethodPatch,
			constvars.MethodDelete,
			constvars.MethodOptions,
		},
		AllowedHeaders: []string{
			constvars.HeaderAccept,
			constvars.HeaderAuthorization,
			constvars.HeaderContentType,
			constvars.HeaderXCSRFToken,
			constvars.HeaderXRequestID,
		},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.GlobalRateLimiter())
	router.Use(middlewares.BodyLimit)

	router.NotFound(middlewares.NotFound)

	router.Get("/", healthController.ServiceInfo)
	router.Get("/health", healthController.Health)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})

		r.Route("/slots", func(r chi.Router) {
			attachSlotRoutes(r, middlewares, slotController)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, middlewares, appointmentController)
		})
	})
}
