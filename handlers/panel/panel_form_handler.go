package handlers // handlers/panel paketi

import (
	"anket.link/handlers/common"
	"anket.link/middlewares"
	"anket.link/pkg/apiresponse"
	"anket.link/pkg/queryparams"
	"anket.link/services"

	"github.com/gofiber/fiber/v2"
)

// PanelFormHandler kullanıcının kendi formları için handler.
type PanelFormHandler struct {
	service services.IFormService
}

func NewPanelFormHandler(service services.IFormService) *PanelFormHandler {
	return &PanelFormHandler{service: service}
}

// ListForms kullanıcının formlarını yanıt sayılarıyla listeler.
func (h *PanelFormHandler) ListForms(c *fiber.Ctx) error {
	params := queryparams.DefaultListParams("created_at")
	if err := c.QueryParser(&params); err != nil {
		return apiresponse.JSONError(c, fiber.StatusBadRequest, "geçersiz sorgu parametresi")
	}

	result, err := h.service.ListForms(c.UserContext(), middlewares.CurrentUserID(c), params)
	if err != nil {
		return common.ServiceError(c, err)
	}
	return apiresponse.JSONList(c, "formlar listelendi", result.Data, result.Meta)
}

// CreateForm form ağacını (sorular ve seçenekler) tek seferde oluşturur.
func (h *PanelFormHandler) CreateForm(c *fiber.Ctx) error {
	var req CreateFormRequest
	if ok, err := common.ParseAndValidate(c, &req); !ok {
		return err
	}

	id, err := h.service.CreateForm(c.UserContext(), middlewares.CurrentUserID(c), req.toInput())
	if err != nil {
		return common.ServiceError(c, err)
	}
	return apiresponse.JSONCreated(c, "form oluşturuldu", fiber.Map{"id": id})
}

// GetFormDetail sahibin düzenleme görünümü.
func (h *PanelFormHandler) GetFormDetail(c *fiber.Ctx) error {
	id, ok, err := common.ParamID(c, "id")
	if !ok {
		return err
	}

	detail, err := h.service.GetFormDetail(c.UserContext(), id, middlewares.CurrentUserID(c))
	if err != nil {
		return common.ServiceError(c, err)
	}
	return apiresponse.JSONOK(c, "", detail)
}

func (h *PanelFormHandler) PatchForm(c *fiber.Ctx) error {
	id, ok, err := common.ParamID(c, "id")
	if !ok {
		return err
	}
	var req PatchFormRequest
	if ok, err := common.ParseAndValidate(c, &req); !ok {
		return err
	}

	form, err := h.service.PatchForm(c.UserContext(), id, middlewares.CurrentUserID(c), req.toPatch())
	if err != nil {
		return common.ServiceError(c, err)
	}
	return apiresponse.JSONOK(c, "form güncellendi", form)
}

func (h *PanelFormHandler) DeleteForm(c *fiber.Ctx) error {
	id, ok, err := common.ParamID(c, "id")
	if !ok {
		return err
	}

	if err := h.service.DeleteForm(c.UserContext(), id, middlewares.CurrentUserID(c)); err != nil {
		return common.ServiceError(c, err)
	}
	return apiresponse.JSONMessage(c, "form silindi")
}
