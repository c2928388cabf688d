package routes

import (
	link_handlers "anket.link/handlers/link"
	"anket.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerPublicLinkRoutes formu dolduranların eriştiği rotalar.
// /feedback/all gibi sabit yollardan SONRA tanımlanmalı.
func registerPublicLinkRoutes(router fiber.Router, deps *Dependencies) {
	publicHandler := link_handlers.NewPublicFormHandler(deps.Forms, deps.Responses)

	router.Get("/feedback/:id", middlewares.OptionalAuth(deps.Tokens), publicHandler.ShowForm) // GET /api/v1/feedback/{id}
	router.Post("/response/:form_id", publicHandler.SubmitResponse)                            // POST /api/v1/response/{form_id}
}
