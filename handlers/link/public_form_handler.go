package handlers // handlers/link paketi

import (
	"anket.link/handlers/common"
	"anket.link/middlewares"
	"anket.link/pkg/apiresponse"
	"anket.link/services"

	"github.com/gofiber/fiber/v2"
)

// PublicFormHandler formu dolduranların eriştiği uç noktalar.
type PublicFormHandler struct {
	forms     services.IFormService
	responses services.IResponseService
}

func NewPublicFormHandler(forms services.IFormService, responses services.IResponseService) *PublicFormHandler {
	return &PublicFormHandler{forms: forms, responses: responses}
}

// ShowForm formu doldurma görünümüyle döndürür. Kapalı formlar 200 ve closed=true ile döner.
func (h *PublicFormHandler) ShowForm(c *fiber.Ctx) error {
	id, ok, err := common.ParamID(c, "id")
	if !ok {
		return err
	}

	view, err := h.forms.GetFormForViewer(c.UserContext(), id, middlewares.CurrentUserID(c))
	if err != nil {
		return common.ServiceError(c, err)
	}
	if view.Closed {
		return apiresponse.JSONOK(c, services.ErrFormClosed.Error(), view)
	}
	return apiresponse.JSONOK(c, "", view)
}

// SubmitResponse anonim yanıt gönderimi.
func (h *PublicFormHandler) SubmitResponse(c *fiber.Ctx) error {
	formID, ok, err := common.ParamID(c, "form_id")
	if !ok {
		return err
	}
	var req SubmitResponseRequest
	if ok, err := common.ParseAndValidate(c, &req); !ok {
		return err
	}

	responseID, err := h.responses.SubmitResponse(c.UserContext(), formID, req.toAnswers())
	if err != nil {
		return common.ServiceError(c, err)
	}
	return apiresponse.JSONCreated(c, "yanıtınız kaydedildi", fiber.Map{"id": responseID})
}
