package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"anket.link/configs"
	"anket.link/configs/configsdatabase"
	"anket.link/configs/configslog"
	"anket.link/pkg/apiresponse"
	"anket.link/pkg/tokens"
	"anket.link/routes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg := configs.LoadEnv()

	db, err := configsdatabase.InitDB(cfg)
	if err != nil {
		configslog.Log.Fatal("Veritabanı başlatılamadı", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName:               "anket.link",
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
		ErrorHandler:          errorHandler,
	})

	deps := routes.NewDependencies(db, tokens.NewManager(cfg.JWTSecret, cfg.JWTTTL))
	routes.SetupRoutes(app, cfg, deps)

	go func() {
		configslog.SLog.Infof("Sunucu :%s portunda dinleniyor", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			configslog.Log.Fatal("Sunucu hatası", zap.Error(err))
		}
	}()

	// graceful shutdown + havuzu kapat
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		configslog.Log.Error("Sunucu düzgün kapatılamadı", zap.Error(err))
	}
	configsdatabase.CloseDB(db)
}

// errorHandler handler dışına taşan hataları (ör. fiber.ErrMethodNotAllowed) JSON zarfına çevirir.
func errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "beklenmeyen bir hata oluştu"
	if fe, ok := err.(*fiber.Error); ok {
		status = fe.Code
		message = fe.Message
	} else {
		configslog.Log.Error("Yakalanmamış handler hatası", zap.String("path", c.Path()), zap.Error(err))
	}
	return apiresponse.JSONError(c, status, message)
}
