package handlers

import (
	"github.com/gofiber/fiber/v2"

	"jobportal/internal/models"
	"jobportal/internal/services"
)

type JobHandler struct {
	jobService services.JobService
}

func NewJobHandler(jobService services.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// HandleCreateJob handles POST /jobs
func (h *JobHandler) HandleCreateJob(c *fiber.Ctx) error {
	var req models.CreateJobRequest
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

	job, err := h.jobService.CreateJob(employerID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

// HandleUpdateJob handles PUT /jobs/:id
func (h *JobHandler) HandleUpdateJob(c *fiber.Ctx) error {
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	var req models.CreateJobRequest
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

	job, err := h.jobService.UpdateJob(employerID(c), jobID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(job)
}

// HandleGetJob handles GET /jobs/:id
func (h *JobHandler) HandleGetJob(c *fiber.Ctx) error {
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	job, err := h.jobService.GetJob(jobID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(job)
}

// HandleDeleteJob handles DELETE /jobs/:id
func (h *JobHandler) HandleDeleteJob(c *fiber.Ctx) error {
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	if err := h.jobService.DeleteJob(employerID(c), jobID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Job deleted successfully"})
}

// HandleUpdateJobStatus handles PATCH /jobs/:id/status
func (h *JobHandler) HandleUpdateJobStatus(c *fiber.Ctx) error {
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	var req models.UpdateJobStatusRequest
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

	if err := h.jobService.UpdateJobStatus(employerID(c), jobID, models.JobStatus(req.Status)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Status updated"})
}

// HandleActiveJobs handles GET /employers/me/jobs
func (h *JobHandler) HandleActiveJobs(c *fiber.Ctx) error {
	query := models.EmployerJobsQuery{
		JobTitle:  c.Query("jobTitle"),
		Location:  c.Query("location"),
		SortOrder: c.Query("sortOrder"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}

	jobs, err := h.jobService.ActiveJobsByEmployer(employerID(c), query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"jobs": jobs})
}

// HandleClosedJobs handles GET /employers/me/jobs/closed
func (h *JobHandler) HandleClosedJobs(c *fiber.Ctx) error {
	jobs, err := h.jobService.ClosedJobsByEmployer(employerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"jobs": jobs})
}

// HandleSkills handles GET /jobs/skills
func (h *JobHandler) HandleSkills(c *fiber.Ctx) error {
	skills, err := h.jobService.DistinctSkills()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"skills": skills})
}
