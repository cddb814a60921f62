package http

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName      string
	AuthUC       *auth.AuthUseCase
	ProductUC    *usecase.ProductUseCase
	ReportUC     *usecase.InventoryReportUseCase
	Tokens       TokenParser
	RequireToken bool // protege POST/PUT/DELETE de productos con Bearer token
	Store        Pinger
	StaticDir    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", Health(deps.AppName, deps.Store))

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)

	// Products: lectura pública; escritura protegida solo si RequireToken
	var guard []fiber.Handler
	if deps.RequireToken {
		guard = append(guard, AuthMiddleware(deps.Tokens))
	}
	write := func(h fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, guard...), h)
	}

	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.ReportUC)
	products.Get("/", productHandler.List)
	products.Post("/", write(productHandler.Create)...)
	products.Get("/report.pdf", productHandler.Report)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", write(productHandler.Update)...)
	products.Delete("/:id", write(productHandler.Delete)...)

	// Front-end estático: / sirve index.html, el resto de assets tal cual
	if deps.StaticDir != "" {
		app.Get("/", func(c *fiber.Ctx) error {
			return c.SendFile(filepath.Join(deps.StaticDir, "index.html"))
		})
		app.Static("/", deps.StaticDir)
	}
}
