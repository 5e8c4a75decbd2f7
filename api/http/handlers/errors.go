package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/cvtailor/api/http/presenter"
	"github.com/artem13815/cvtailor/pkg/company"
	"github.com/artem13815/cvtailor/pkg/logger"
	"github.com/artem13815/cvtailor/pkg/resume"
)

// fail maps domain errors onto HTTP statuses. Unexpected errors are logged and
// reported as 500 with the generic message.
func fail(c *fiber.Ctx, err error, internalMsg string) error {
	switch {
	case errors.Is(err, company.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, err.Error())
	case company.IsValidation(err), errors.Is(err, resume.ErrValidation):
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	slog.ErrorContext(logger.WithRequestID(c.UserContext(), requestID(c)), internalMsg, "error", err)
	return presenter.Error(c, http.StatusInternalServerError, internalMsg)
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
