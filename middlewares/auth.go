package middlewares

import (
	"errors"
	"strings"

	"anket.link/pkg/apiresponse"
	"anket.link/pkg/tokens"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalsUserID    = "userID"
	LocalsUserEmail = "userEmail"
	LocalsUserName  = "userName"
)

func bearerToken(c *fiber.Ctx) string {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}

func setIdentity(c *fiber.Ctx, claims *tokens.Claims) {
	c.Locals(LocalsUserID, claims.ID)
	c.Locals(LocalsUserEmail, claims.Email)
	c.Locals(LocalsUserName, claims.Name)
}

// RequireAuth geçerli Bearer token olmadan isteği 401 ile reddeder.
func RequireAuth(manager *tokens.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := bearerToken(c)
		if raw == "" {
			return apiresponse.JSONError(c, fiber.StatusUnauthorized, "oturum açmanız gerekiyor")
		}
		claims, err := manager.Parse(raw)
		if err != nil {
			if errors.Is(err, tokens.ErrTokenExpired) {
				return apiresponse.JSONError(c, fiber.StatusUnauthorized, "oturum süresi doldu")
			}
			return apiresponse.JSONError(c, fiber.StatusUnauthorized, "geçersiz oturum")
		}
		setIdentity(c, claims)
		return c.Next()
	}
}

// OptionalAuth token varsa ve geçerliyse kimliği ayarlar; aksi halde istek anonim devam eder.
func OptionalAuth(manager *tokens.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if raw := bearerToken(c); raw != "" {
			if claims, err := manager.Parse(raw); err == nil {
				setIdentity(c, claims)
			}
		}
		return c.Next()
	}
}

// CurrentUserID isteğe bağlı kimliği döndürür; anonim istekte boş string.
func CurrentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalsUserID).(string)
	return id
}
