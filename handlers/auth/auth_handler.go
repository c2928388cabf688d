package handlers // handlers/auth paketi

import (
	"anket.link/handlers/common"
	"anket.link/middlewares"
	"anket.link/pkg/apiresponse"
	"anket.link/services"

	"github.com/gofiber/fiber/v2"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler kayıt, giriş ve profil uç noktaları.
type AuthHandler struct {
	service services.IAuthService
}

func NewAuthHandler(service services.IAuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if ok, err := common.ParseAndValidate(c, &req); !ok {
		return err
	}

	user, err := h.service.Register(c.UserContext(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return common.ServiceError(c, err)
	}
	return apiresponse.JSONCreated(c, "kullanıcı oluşturuldu", user)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if ok, err := common.ParseAndValidate(c, &req); !ok {
		return err
	}

	result, err := h.service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return common.ServiceError(c, err)
	}
	return apiresponse.JSONOK(c, "giriş başarılı", result)
}

// Profile oturumdaki kullanıcının bilgilerini döndürür.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	user, err := h.service.GetProfile(c.UserContext(), middlewares.CurrentUserID(c))
	if err != nil {
		return common.ServiceError(c, err)
	}
	return apiresponse.JSONOK(c, "", user)
}
