package routers

import (
	"glamslot-service/internal/app/delivery/http/controllers"
	"glamslot-service/internal/app/delivery/http/middlewares"
	"glamslot-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.With(middlewares.BookingRateLimiter()).Post("/", appointmentController.CreateAppointment)

	router.With(middlewares.Authenticate).Get("/", appointmentController.ListAppointments)
	router.With(middlewares.Authenticate).Post("/export", appointmentController.ExportAppointments)
	router.With(middlewares.Authenticate).Patch("/{"+constvars.URLParamAppointmentID+"}/status", appointmentController.UpdateStatus)
}
