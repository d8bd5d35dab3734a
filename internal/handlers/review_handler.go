package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobportal/internal/models"
	"jobportal/internal/services"
)

type ReviewHandler struct {
	reviewService services.ReviewService
}

func NewReviewHandler(reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// HandleAddReview handles POST /reviews
func (h *ReviewHandler) HandleAddReview(c *fiber.Ctx) error {
	var req models.AddReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	reviewedEmployerID, _ := uuid.Parse(req.EmployerID)
	review, err := h.reviewService.AddReview(employeeID(c), reviewedEmployerID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// HandleDeleteReview handles DELETE /reviews/:id
func (h *ReviewHandler) HandleDeleteReview(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid review ID format",
		})
	}

	if err := h.reviewService.DeleteReview(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Review deleted successfully"})
}

// HandleEmployerDirectory handles GET /employers
func (h *ReviewHandler) HandleEmployerDirectory(c *fiber.Ctx) error {
	employers, err := h.reviewService.EmployerDirectory(c.Query("companyName"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"employers": employers})
}

// HandleEmployerReviews handles GET /employers/:id/reviews
func (h *ReviewHandler) HandleEmployerReviews(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid employer ID format",
		})
	}

	page, err := h.reviewService.EmployerReviews(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}
