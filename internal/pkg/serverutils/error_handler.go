package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"genfy-be/internal/pkg/apperrors"
	"genfy-be/internal/pkg/logger"
)

// NewErrorHandler maps service errors onto HTTP statuses and the uniform
// JSON envelope. Unknown errors become 500s with the detail logged, not leaked.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := err.Error()

		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
		case errors.Is(err, apperrors.ErrNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, apperrors.ErrForbidden):
			status = fiber.StatusForbidden
		case errors.Is(err, apperrors.ErrUnauthorized):
			status = fiber.StatusUnauthorized
		case errors.Is(err, apperrors.ErrConflict):
			status = fiber.StatusConflict
		case errors.Is(err, apperrors.ErrInvalidInput):
			status = fiber.StatusBadRequest
		}

		if status == fiber.StatusInternalServerError {
			log.Error("http", "unhandled error", map[string]interface{}{
				"path":   ctx.Path(),
				"method": ctx.Method(),
				"error":  err.Error(),
			})
			message = "internal server error"
		}

		return ctx.Status(status).JSON(Response{
			Success: false,
			Message: message,
		})
	}
}
