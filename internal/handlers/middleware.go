package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobportal/internal/apperrors"
)

var validate = validator.New()

// Authentication is an external collaborator: the upstream auth layer
// resolves the session and injects the caller's identity as a header.
// These middlewares only enforce presence and shape.
const (
	headerEmployeeID = "X-Employee-ID"
	headerEmployerID = "X-Employer-ID"

	localEmployeeID = "employeeID"
	localEmployerID = "employerID"
)

func RequireEmployee(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Get(headerEmployeeID))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "employee authentication required",
		})
	}
	c.Locals(localEmployeeID, id)
	return c.Next()
}

func RequireEmployer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Get(headerEmployerID))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "employer authentication required",
		})
	}
	c.Locals(localEmployerID, id)
	return c.Next()
}

func employeeID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(localEmployeeID).(uuid.UUID)
	return id
}

func employerID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(localEmployerID).(uuid.UUID)
	return id
}

func respondError(c *fiber.Ctx, err error) error {
	return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func parseIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}
