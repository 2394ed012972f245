package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CycleState returns the live snapshot for the acting user. A null state
// means no cycle has been logged yet, which is distinct from a load failure.
func (handler *Handler) CycleState(c *fiber.Ctx) error {
	state, err := handler.cycleService.CurrentState(currentUserID(c), time.Now())
	if err != nil {
		return handler.fail(c, err)
	}
	return c.JSON(fiber.Map{"state": state})
}

type startCycleRequest struct {
	StartDate string `json:"start_date"`
}

func (handler *Handler) StartCycle(c *fiber.Ctx) error {
	request := startCycleRequest{}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	startDate, err := time.ParseInLocation("2006-01-02", request.StartDate, handler.location)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid start_date"})
	}

	record, err := handler.cycleService.StartCycle(currentUserID(c), startDate)
	if err != nil {
		return handler.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":         record.ID,
		"start_date": record.StartDate.Format("2006-01-02"),
	})
}

func (handler *Handler) MarkPeriodEnd(c *fiber.Ctx) error {
	cycleID, err := c.ParamsInt("cycleID")
	if err != nil || cycleID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid cycle id"})
	}

	if err := handler.cycleService.MarkPeriodEndToday(currentUserID(c), uint(cycleID), time.Now()); err != nil {
		return handler.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) CycleLengths(c *fiber.Ctx) error {
	lengths, err := handler.cycleService.CycleLengthHistory(currentUserID(c))
	if err != nil {
		return handler.fail(c, err)
	}
	return c.JSON(fiber.Map{"lengths": lengths})
}
