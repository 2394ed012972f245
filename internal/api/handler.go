package api

import (
	"strconv"
	"time"

	"github.com/cyra-app/cyra/internal/db"
	"github.com/cyra-app/cyra/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Handler struct {
	cycleService *services.CycleService
	noteService  *services.NoteService
	location     *time.Location
	log          *logrus.Logger
}

func NewHandler(database *gorm.DB, location *time.Location, log *logrus.Logger) *Handler {
	if location == nil {
		location = time.UTC
	}
	repositories := db.NewRepositories(database)
	return &Handler{
		cycleService: services.NewCycleService(repositories.CycleRecords, location),
		noteService:  services.NewNoteService(repositories.CycleNotes, location),
		location:     location,
		log:          log,
	}
}

func (handler *Handler) CycleService() *services.CycleService {
	return handler.cycleService
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// RequireUser resolves the acting user from the X-User-ID header set by the
// fronting presentation layer. Authentication itself happens upstream.
func (handler *Handler) RequireUser(c *fiber.Ctx) error {
	raw := c.Get("X-User-ID")
	if raw == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing user"})
	}
	userID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid user"})
	}
	c.Locals("userID", uint(userID))
	return c.Next()
}

func currentUserID(c *fiber.Ctx) uint {
	userID, _ := c.Locals("userID").(uint)
	return userID
}
