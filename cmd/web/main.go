package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/auth"
	appsales "github.com/Alexander08S-C/inventario-frontend/internal/application/sales"
	"github.com/Alexander08S-C/inventario-frontend/internal/application/usecase"
	"github.com/Alexander08S-C/inventario-frontend/internal/infrastructure/api"
	"github.com/Alexander08S-C/inventario-frontend/internal/infrastructure/excel"
	infrapdf "github.com/Alexander08S-C/inventario-frontend/internal/infrastructure/pdf"
	"github.com/Alexander08S-C/inventario-frontend/internal/infrastructure/storage"
	"github.com/Alexander08S-C/inventario-frontend/internal/interfaces/web"
	"github.com/Alexander08S-C/inventario-frontend/internal/session"
	"github.com/Alexander08S-C/inventario-frontend/pkg/config"
	"github.com/Alexander08S-C/inventario-frontend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.API.BaseURL).
		Msg("iniciando panel")

	// Sesión persistida en archivo local; rehidrata login y tema al arrancar.
	sess := session.New(storage.NewFileStorage(cfg.Session.File))

	// Gateway: toda petición lee el token fresco de la sesión.
	client := api.NewClient(cfg.API, sess.Token, log)

	authUC := auth.NewUseCase(api.NewAuthAPI(client), sess, log)
	salesUC := appsales.NewUseCase(api.NewSaleAPI(client), infrapdf.NewReceiptGenerator(), log)
	catalogUC := usecase.NewCatalogUseCase(api.NewProductAPI(client), api.NewCategoryAPI(client), api.NewSupplierAPI(client))
	stockUC := usecase.NewStockUseCase(api.NewStockAPI(client))
	usersUC := usecase.NewUserUseCase(api.NewUserAPI(client))
	reportsUC := usecase.NewReportUseCase(api.NewReportAPI(client), infrapdf.NewReportGenerator(), excel.NewReportWorkbook())

	engine := html.New(cfg.HTTP.ViewsDir, ".html")
	engine.AddFunc("money", web.Money)
	engine.AddFunc("add", func(a, b int) int { return a + b })
	engine.AddFunc("subtract", func(a, b int) int { return a - b })
	if cfg.App.Env == "development" {
		engine.Reload(true)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        engine,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
	})
	app.Use(recover.New())

	web.Router(app, web.RouterDeps{
		Session: sess,
		AuthUC:  authUC,
		SalesUC: salesUC,
		Catalog: catalogUC,
		Stock:   stockUC,
		Users:   usersUC,
		Reports: reportsUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("panel disponible")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}
