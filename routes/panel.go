package routes

import (
	panel_handlers "anket.link/handlers/panel"
	"anket.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerPanelRoutes form sahibinin oturum gerektiren rotaları.
func registerPanelRoutes(router fiber.Router, deps *Dependencies) {
	formHandler := panel_handlers.NewPanelFormHandler(deps.Forms)
	questionHandler := panel_handlers.NewPanelQuestionHandler(deps.Questions)
	responseHandler := panel_handlers.NewPanelResponseHandler(deps.Responses)

	requireAuth := middlewares.RequireAuth(deps.Tokens)

	// --- Formlar ---
	router.Get("/feedback/all", requireAuth, formHandler.ListForms)            // GET /api/v1/feedback/all
	router.Post("/feedback/create", requireAuth, formHandler.CreateForm)       // POST /api/v1/feedback/create
	router.Get("/feedback/detail/:id", requireAuth, formHandler.GetFormDetail) // GET /api/v1/feedback/detail/{id}
	router.Patch("/feedback/:id", requireAuth, formHandler.PatchForm)          // PATCH /api/v1/feedback/{id}
	router.Delete("/feedback/:id", requireAuth, formHandler.DeleteForm)        // DELETE /api/v1/feedback/{id}

	// --- Sorular ---
	router.Patch("/question/:id", requireAuth, questionHandler.PatchQuestion)   // PATCH /api/v1/question/{id}
	router.Delete("/question/:id", requireAuth, questionHandler.DeleteQuestion) // DELETE /api/v1/question/{id}

	// --- Yanıtlar ---
	router.Get("/response/all/:form_id", requireAuth, responseHandler.ListResponses) // GET /api/v1/response/all/{form_id}
}
