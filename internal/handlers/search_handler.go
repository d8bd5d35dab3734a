package handlers

import (
	"github.com/gofiber/fiber/v2"

	"jobportal/internal/models"
	"jobportal/internal/services"
)

type SearchHandler struct {
	searchService services.SearchService
}

func NewSearchHandler(searchService services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// pagination resolves page and limit from the request body, falling
// back to the query string when the body leaves them unset. The
// service applies the 1/10 defaults.
func pagination(c *fiber.Ctx, criteria models.SearchCriteria) (int, int) {
	page := criteria.Page
	if page < 1 {
		page = c.QueryInt("page")
	}
	limit := criteria.Limit
	if limit < 1 {
		limit = c.QueryInt("limit")
	}
	return page, limit
}

// HandleSearch handles POST /jobs/search. The body is the optional
// criteria bag, including page and limit.
func (h *SearchHandler) HandleSearch(c *fiber.Ctx) error {
	var criteria models.SearchCriteria
	if err := c.BodyParser(&criteria); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	page, limit := pagination(c, criteria)
	response, err := h.searchService.SearchJobs(criteria, page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(response)
}

// HandleSalaryRange handles POST /jobs/salary-range: the same filter
// shape plus the page-local salary breakdown.
func (h *SearchHandler) HandleSalaryRange(c *fiber.Ctx) error {
	var criteria models.SearchCriteria
	if err := c.BodyParser(&criteria); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	page, limit := pagination(c, criteria)
	response, err := h.searchService.SearchJobsWithSalary(criteria, page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(response)
}
