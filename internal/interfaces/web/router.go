package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/auth"
	"github.com/Alexander08S-C/inventario-frontend/internal/application/sales"
	"github.com/Alexander08S-C/inventario-frontend/internal/application/usecase"
	"github.com/Alexander08S-C/inventario-frontend/internal/session"
)

// RouterDeps dependencias inyectadas a las rutas.
type RouterDeps struct {
	Session *session.Store
	AuthUC  *auth.UseCase
	SalesUC *sales.UseCase
	Catalog *usecase.CatalogUseCase
	Stock   *usecase.StockUseCase
	Users   *usecase.UserUseCase
	Reports *usecase.ReportUseCase
}

// Router registra todas las páginas del panel. Todo salvo /login queda detrás
// de RequireAuth; /users exige además rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	sess := deps.Session

	authH := NewAuthHandler(deps.AuthUC, sess)
	dashboardH := NewDashboardHandler(deps.Reports, sess)
	productH := NewProductHandler(deps.Catalog, sess)
	categoryH := NewCategoryHandler(deps.Catalog, sess)
	supplierH := NewSupplierHandler(deps.Catalog, sess)
	saleH := NewSaleHandler(deps.SalesUC, deps.Catalog, sess)
	stockH := NewStockHandler(deps.Stock, deps.Catalog, sess)
	userH := NewUserHandler(deps.Users, sess)
	reportH := NewReportHandler(deps.Reports, sess)
	profileH := NewProfileHandler(sess)

	app.Get("/login", authH.LoginPage)
	app.Post("/login", authH.Login)

	panel := app.Group("/", RequireAuth(sess))
	panel.Post("/logout", authH.Logout)
	panel.Post("/theme/toggle", authH.ToggleTheme)

	panel.Get("/", func(c *fiber.Ctx) error { return c.Redirect("/dashboard") })
	panel.Get("/dashboard", dashboardH.Page)

	panel.Get("/products", productH.List)
	panel.Get("/products/create", productH.CreateForm)
	panel.Post("/products/create", productH.Save)
	panel.Get("/products/:id/edit", productH.EditForm)
	panel.Post("/products/:id/edit", productH.Save)
	panel.Post("/products/:id/delete", productH.Delete)

	panel.Get("/categories", categoryH.List)
	panel.Post("/categories", categoryH.Save)
	panel.Post("/categories/:id", categoryH.Save)
	panel.Post("/categories/:id/delete", categoryH.Delete)

	panel.Get("/suppliers", supplierH.List)
	panel.Post("/suppliers", supplierH.Save)
	panel.Post("/suppliers/:id", supplierH.Save)
	panel.Post("/suppliers/:id/delete", supplierH.Delete)

	panel.Get("/sales", saleH.List)
	panel.Post("/sales", saleH.Submit)
	panel.Post("/sales/draft/add", saleH.AddLine)
	panel.Post("/sales/draft/remove/:index", saleH.RemoveLine)
	panel.Post("/sales/draft/cancel", saleH.CancelDraft)
	panel.Get("/sales/:id/cancel", saleH.ConfirmCancel)
	panel.Post("/sales/:id/cancel", saleH.Cancel)
	panel.Get("/sales/:id/receipt", saleH.Receipt)

	panel.Get("/stock-movements", stockH.List)
	panel.Post("/stock-movements", stockH.Register)

	panel.Get("/reports", reportH.Page)
	panel.Get("/reports/export/pdf", reportH.ExportPDF)
	panel.Get("/reports/export/excel", reportH.ExportExcel)

	admin := panel.Group("/users", RequireRole(sess, "admin"))
	admin.Get("/", userH.List)
	admin.Post("/", userH.Save)
	admin.Post("/:id", userH.Save)
	admin.Post("/:id/delete", userH.Delete)

	panel.Get("/profile", profileH.Page)

	// Cualquier otra ruta vuelve a /login, igual que el catch-all del panel.
	app.Use(func(c *fiber.Ctx) error { return c.Redirect("/login") })
}
