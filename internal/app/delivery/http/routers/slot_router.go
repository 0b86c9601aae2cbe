package routers

import (
	"glamslot-service/internal/app/delivery/http/controllers"
	"glamslot-service/internal/app/delivery/http/middlewares"
	"glamslot-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachSlotRoutes(router chi.Router, middlewares *middlewares.Middlewares, slotController *controllers.SlotController) {
	router.Get("/available", slotController.ListAvailable)

	router.With(middlewares.Authenticate).Get("/", slotController.ListAll)
	router.With(middlewares.Authenticate).Post("/", slotController.CreateSlots)
	router.With(middlewares.Authenticate).Post("/defaults", slotController.EnsureDefaultSlots)
	router.With(middlewares.Authenticate).Delete("/{"+constvars.URLParamSlotID+"}", slotController.DeleteSlot)
}
