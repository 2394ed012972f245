package api

import (
	"errors"

	"github.com/cyra-app/cyra/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) fail(c *fiber.Ctx, err error) error {
	status, message := classifyError(err)
	if status >= fiber.StatusInternalServerError {
		handler.log.WithError(err).WithField("path", c.Path()).Error("request failed")
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrCycleNotFound):
		return fiber.StatusNotFound, services.ErrCycleNotFound.Error()
	case errors.Is(err, services.ErrInvalidPeriodRange):
		return fiber.StatusBadRequest, services.ErrInvalidPeriodRange.Error()
	case errors.Is(err, services.ErrInvalidCycleRange):
		return fiber.StatusBadRequest, services.ErrInvalidCycleRange.Error()
	case errors.Is(err, services.ErrNoteTextEmpty):
		return fiber.StatusBadRequest, services.ErrNoteTextEmpty.Error()
	case errors.Is(err, services.ErrNoteSourceInvalid):
		return fiber.StatusBadRequest, services.ErrNoteSourceInvalid.Error()
	case errors.Is(err, services.ErrStoreUnavailable):
		return fiber.StatusServiceUnavailable, services.ErrStoreUnavailable.Error()
	default:
		return fiber.StatusInternalServerError, "internal error"
	}
}
