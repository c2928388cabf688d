// Package common handler paketlerinin ortak istek ayrıştırma ve hata eşleme yardımcıları.
package common

import (
	"errors"
	"fmt"
	"strings"

	"anket.link/configs/configslog"
	"anket.link/pkg/apiresponse"
	"anket.link/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var validate = validator.New()

// ParseAndValidate gövdeyi çözer ve validate etiketlerini uygular.
// Hata durumunda yanıt yazılmış olarak false döner.
func ParseAndValidate(c *fiber.Ctx, dst interface{}) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		return false, apiresponse.JSONError(c, fiber.StatusBadRequest, "geçersiz istek gövdesi")
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return false, apiresponse.JSONValidationError(c, fieldErrors(verrs))
		}
		return false, apiresponse.JSONError(c, fiber.StatusBadRequest, "geçersiz istek gövdesi")
	}
	return true, nil
}

func fieldErrors(verrs validator.ValidationErrors) map[string][]string {
	out := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		// Namespace "CreateFormRequest.Questions[0].QuestionText" biçimindedir
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		msg := fe.Tag()
		if fe.Param() != "" {
			msg = fmt.Sprintf("%s=%s", fe.Tag(), fe.Param())
		}
		out[field] = append(out[field], msg)
	}
	return out
}

// ParamID yol parametresindeki UUID'yi döndürür; geçersizse 404 yazar.
func ParamID(c *fiber.Ctx, name string) (string, bool, error) {
	id := c.Params(name)
	if err := uuid.Validate(id); err != nil {
		return "", false, apiresponse.JSONError(c, fiber.StatusNotFound, "kayıt bulunamadı")
	}
	return id, true, nil
}

// ServiceError servis hatasını türüne göre HTTP yanıtına çevirir.
// Beklenmeyen hatalar loglanır, ayrıntısı istemciye gösterilmez.
func ServiceError(c *fiber.Ctx, err error) error {
	kind := services.KindOf(err)
	if kind == services.KindInternal {
		configslog.Log.Error("İstek işlenemedi",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return apiresponse.JSONError(c, fiber.StatusInternalServerError, "beklenmeyen bir hata oluştu")
	}
	return apiresponse.JSONError(c, kind.HTTPStatus(), err.Error())
}
