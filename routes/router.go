package routes

import (
	"anket.link/configs"
	"anket.link/pkg/apiresponse"
	"anket.link/pkg/metrics"
	"anket.link/pkg/tokens"
	"anket.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Dependencies rotaların ihtiyaç duyduğu servis örnekleri.
type Dependencies struct {
	Auth      services.IAuthService
	Forms     services.IFormService
	Questions services.IQuestionService
	Responses services.IResponseService
	Tokens    *tokens.Manager
	DB        *gorm.DB
}

// NewDependencies tüm servisleri verilen bağlantı üzerinde kurar.
func NewDependencies(db *gorm.DB, tokenManager *tokens.Manager) *Dependencies {
	return &Dependencies{
		Auth:      services.NewAuthService(db, tokenManager),
		Forms:     services.NewFormService(db),
		Questions: services.NewQuestionService(db),
		Responses: services.NewResponseService(db),
		Tokens:    tokenManager,
		DB:        db,
	}
}

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App, cfg *configs.AppConfig, deps *Dependencies) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama
	app.Use(cors.New(cors.Config{
		AllowOrigins: joinOrigins(cfg.AllowedOrigins),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
	}))

	app.Get("/health", healthHandler(deps.DB))
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	// --- Rota Grupları ---
	v1 := app.Group("/api/v1")
	registerAuthRoutes(v1, deps)
	registerPanelRoutes(v1, deps)
	registerPublicLinkRoutes(v1, deps)

	// --- 404 Handler ---
	app.Use(notFoundHandler)
}

func joinOrigins(origins []string) string {
	if len(origins) == 0 {
		return "*"
	}
	out := origins[0]
	for _, o := range origins[1:] {
		out += "," + o
	}
	return out
}

// healthHandler veritabanı bağlantısını da kontrol eder.
func healthHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.UserContext())
		}
		if err != nil {
			return apiresponse.JSONError(c, fiber.StatusServiceUnavailable, "veritabanına erişilemiyor")
		}
		return apiresponse.JSONOK(c, "ok", fiber.Map{"status": "up"})
	}
}

func notFoundHandler(c *fiber.Ctx) error {
	return apiresponse.JSONError(c, fiber.StatusNotFound, "kaynak bulunamadı")
}
