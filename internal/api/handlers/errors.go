package handlers

import (
	"spendtrack/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// respondError maps the error taxonomy to HTTP statuses. Session problems
// (including stale owner references) come back as an instruction to
// re-authenticate; everything else surfaces its message.
func respondError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	switch apperr.KindOf(err) {
	case apperr.Unauthenticated, apperr.ReferentialIntegrityViolation:
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Your session is no longer valid. Please sign out and sign in again.",
		})
	case apperr.DuplicateName:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	case apperr.ValidationFailed:
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	case apperr.NotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "not found",
		})
	default:
		logger.Error("Request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
