package handlers

import (
	"anket.link/handlers/common"
	"anket.link/middlewares"
	"anket.link/pkg/apiresponse"
	"anket.link/pkg/queryparams"
	"anket.link/services"

	"github.com/gofiber/fiber/v2"
)

// PanelResponseHandler form sahibinin yanıt listesi.
type PanelResponseHandler struct {
	service services.IResponseService
}

func NewPanelResponseHandler(service services.IResponseService) *PanelResponseHandler {
	return &PanelResponseHandler{service: service}
}

// ListResponses ?page ve ?limit ile sayfalı yanıtları döndürür.
func (h *PanelResponseHandler) ListResponses(c *fiber.Ctx) error {
	formID, ok, err := common.ParamID(c, "form_id")
	if !ok {
		return err
	}
	page := c.QueryInt("page", queryparams.DefaultPage)
	limit := c.QueryInt("limit", queryparams.DefaultPerPage)

	result, err := h.service.ListResponses(c.UserContext(), formID, middlewares.CurrentUserID(c), page, limit)
	if err != nil {
		return common.ServiceError(c, err)
	}
	return apiresponse.JSONList(c, "yanıtlar listelendi", result.Responses, result.Meta)
}
