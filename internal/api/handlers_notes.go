package api

import (
	"time"

	"github.com/cyra-app/cyra/internal/models"
	"github.com/gofiber/fiber/v2"
)

type addNoteRequest struct {
	CycleID *uint  `json:"cycle_id"`
	Date    string `json:"date"`
	Source  string `json:"source"`
	Text    string `json:"text"`
}

func (handler *Handler) AddNote(c *fiber.Ctx) error {
	request := addNoteRequest{}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	date, err := time.ParseInLocation("2006-01-02", request.Date, handler.location)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date"})
	}

	note, err := handler.noteService.AddNote(currentUserID(c), request.CycleID, date, request.Source, request.Text, time.Now())
	if err != nil {
		return handler.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(noteResponse(note))
}

func (handler *Handler) ListNotes(c *fiber.Ctx) error {
	limit := c.QueryInt("limit")
	userID := currentUserID(c)

	var notes []models.CycleNote
	var err error
	if cycleID := c.QueryInt("cycle_id"); cycleID > 0 {
		notes, err = handler.noteService.ListCycleNotes(userID, uint(cycleID), limit)
	} else {
		notes, err = handler.noteService.ListNotes(userID, limit)
	}
	if err != nil {
		return handler.fail(c, err)
	}

	payload := make([]fiber.Map, 0, len(notes))
	for _, note := range notes {
		payload = append(payload, noteResponse(note))
	}
	return c.JSON(fiber.Map{"notes": payload})
}

func noteResponse(note models.CycleNote) fiber.Map {
	return fiber.Map{
		"id":         note.ID,
		"cycle_id":   note.CycleID,
		"date":       note.Date.Format("2006-01-02"),
		"source":     note.Source,
		"text":       note.Text,
		"created_at": note.CreatedAt.Format(time.RFC3339),
	}
}
