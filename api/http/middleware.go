package http

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/artem13815/cvtailor/pkg/logger"
)

// UseCommon installs panic recovery, request ids and request logging.
func UseCommon(app *fiber.App, log *slog.Logger) {
	if log == nil {
		log = slog.Default()
	}
	log = log.With("component", "http")
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		id, _ := c.Locals("requestid").(string)
		ctx := logger.WithRequestID(c.UserContext(), id)
		c.SetUserContext(ctx)

		err := c.Next()
		if err != nil {
			// let the error handler set the status before logging it
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()
		level := slog.LevelInfo
		if status >= fiber.StatusInternalServerError {
			level = slog.LevelError
		}
		log.Log(ctx, level, "request",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration", time.Since(start),
		)
		return nil
	})
}
