// Package apiresponse API uç noktalarının ortak JSON zarfını üretir:
// {success, message, data?, pagination?} ve hata durumunda {success:false, message, error_code}.
package apiresponse

import (
	"strings"

	"anket.link/pkg/queryparams"

	"github.com/gofiber/fiber/v2"
)

type ErrorResponse struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code,omitempty"`
	Errors    map[string][]string `json:"errors,omitempty"`
}

func StatusToErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	case fiber.StatusConflict:
		return "CONFLICT"
	default:
		if status >= 500 {
			return "INTERNAL_ERROR"
		}
		return "ERROR"
	}
}

func orDefault(message, def string) string {
	if strings.TrimSpace(message) == "" {
		return def
	}
	return message
}

// JSONOK başarılı okuma/güncelleme yanıtı (200).
func JSONOK(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": orDefault(message, "ok"),
		"data":    data,
	})
}

// JSONCreated oluşturma yanıtı (201).
func JSONCreated(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": orDefault(message, "oluşturuldu"),
		"data":    data,
	})
}

// JSONMessage veri taşımayan başarılı yanıt (ör. silme).
func JSONMessage(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": orDefault(message, "ok"),
	})
}

// JSONList sayfalı liste yanıtı.
func JSONList(c *fiber.Ctx, message string, data any, meta queryparams.PaginationMeta) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"message":    orDefault(message, "ok"),
		"data":       data,
		"pagination": meta,
	})
}

// JSONError doğrulama dışı hatalar için standart hata gövdesi.
func JSONError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(ErrorResponse{
		Success:   false,
		Message:   message,
		ErrorCode: StatusToErrorCode(status),
	})
}

// JSONValidationError alan bazlı doğrulama hatalarını 422 ile döndürür.
func JSONValidationError(c *fiber.Ctx, fieldErrors map[string][]string) error {
	if fieldErrors == nil {
		fieldErrors = map[string][]string{}
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
		Success:   false,
		Message:   "doğrulama başarısız",
		ErrorCode: "VALIDATION_ERROR",
		Errors:    fieldErrors,
	})
}
