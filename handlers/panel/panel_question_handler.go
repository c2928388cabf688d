package handlers

import (
	"anket.link/handlers/common"
	"anket.link/middlewares"
	"anket.link/pkg/apiresponse"
	"anket.link/services"

	"github.com/gofiber/fiber/v2"
)

// PanelQuestionHandler soru düzenleme ve silme.
type PanelQuestionHandler struct {
	service services.IQuestionService
}

func NewPanelQuestionHandler(service services.IQuestionService) *PanelQuestionHandler {
	return &PanelQuestionHandler{service: service}
}

// PatchQuestion soruyu günceller; checkbox seçeneklerini gelen listeye göre eşitler.
func (h *PanelQuestionHandler) PatchQuestion(c *fiber.Ctx) error {
	id, ok, err := common.ParamID(c, "id")
	if !ok {
		return err
	}
	var req PatchQuestionRequest
	if ok, err := common.ParseAndValidate(c, &req); !ok {
		return err
	}

	question, err := h.service.PatchQuestion(c.UserContext(), id, middlewares.CurrentUserID(c), req.toPatch())
	if err != nil {
		return common.ServiceError(c, err)
	}
	return apiresponse.JSONOK(c, "soru güncellendi", question)
}

func (h *PanelQuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, ok, err := common.ParamID(c, "id")
	if !ok {
		return err
	}

	formClosed, err := h.service.DeleteQuestion(c.UserContext(), id, middlewares.CurrentUserID(c))
	if err != nil {
		return common.ServiceError(c, err)
	}
	message := "soru silindi"
	if formClosed {
		message = "soru silindi, soru kalmadığı için form kapatıldı"
	}
	return apiresponse.JSONOK(c, message, fiber.Map{"form_closed": formClosed})
}
