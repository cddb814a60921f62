package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// NewApp crea la aplicación Fiber con log de peticiones, recover y el ErrorHandler común.
// El logger va primero para registrar también las peticiones que terminan en panic.
func NewApp(appName string, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               appName,
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 60,
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler,
	})
	app.Use(RequestLogger(log.Component("http")))
	app.Use(recover.New())
	return app
}

// ErrorHandler convierte los errores no manejados (rutas inexistentes, panics, etc.) en ErrorResponse.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: errorCode(status), Error: err.Error()})
}

func errorCode(status int) string {
	switch {
	case status == fiber.StatusNotFound:
		return "NOT_FOUND"
	case status == fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case status == fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case status >= 500:
		return "INTERNAL"
	default:
		return "BAD_REQUEST"
	}
}

// internalError responde 500 con el mensaje crudo del error (incluido el del driver del almacén).
func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Error: err.Error()})
}

func invalidBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Error: "cuerpo inválido: " + err.Error()})
}
