package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobportal/internal/models"
	"jobportal/internal/services"
)

type ApplicationHandler struct {
	appService services.ApplicationService
}

func NewApplicationHandler(appService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appService: appService}
}

// HandleApply handles POST /applications
func (h *ApplicationHandler) HandleApply(c *fiber.Ctx) error {
	var req models.ApplyRequest
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

	applied, err := h.appService.Apply(employeeID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(applied)
}

// HandleUpdateEmployeeStatus handles PUT /applications/:id/employee-status
func (h *ApplicationHandler) HandleUpdateEmployeeStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	var req models.UpdateEmployeeStatusRequest
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

	if err := h.appService.UpdateEmployeeStatus(id, models.ApplicationStatus(req.EmployeeStatus)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Employee status updated"})
}

// HandleUpdateEmployerStatus handles PUT /applications/:id/employer-status
func (h *ApplicationHandler) HandleUpdateEmployerStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	var req models.UpdateEmployerStatusRequest
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

	if err := h.appService.UpdateEmployerStatus(id, models.ApplicationStatus(req.EmployerStatus)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Employer status updated"})
}

// HandleWithdraw handles DELETE /applications/:id
func (h *ApplicationHandler) HandleWithdraw(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	if err := h.appService.Withdraw(employeeID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Application withdrawn"})
}

// HandleListApplied handles GET /applications
func (h *ApplicationHandler) HandleListApplied(c *fiber.Ctx) error {
	applied, err := h.appService.ListByEmployee(employeeID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"appliedJobs": applied})
}

// HandleApplicants handles GET /jobs/:id/applicants
func (h *ApplicationHandler) HandleApplicants(c *fiber.Ctx) error {
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	applicants, err := h.appService.ApplicantsForJob(jobID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"applicants": applicants})
}

// HandleApplicantCounts handles GET /employers/me/applicant-counts
func (h *ApplicationHandler) HandleApplicantCounts(c *fiber.Ctx) error {
	counts, err := h.appService.ApplicantCountsPerJob(employerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"jobs": counts})
}

// HandleStatusCounts handles GET /employers/me/application-stats
func (h *ApplicationHandler) HandleStatusCounts(c *fiber.Ctx) error {
	counts, err := h.appService.StatusCounts(employerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"count": counts})
}

// HandleSaveJob handles POST /saved-jobs
func (h *ApplicationHandler) HandleSaveJob(c *fiber.Ctx) error {
	var req models.SaveJobRequest
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

	jobID, _ := uuid.Parse(req.JobID)
	saved, err := h.appService.SaveJob(employeeID(c), jobID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// HandleUnsaveJob handles DELETE /saved-jobs/:jobId
func (h *ApplicationHandler) HandleUnsaveJob(c *fiber.Ctx) error {
	jobID, err := parseIDParam(c, "jobId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	if err := h.appService.UnsaveJob(employeeID(c), jobID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Job unsaved"})
}

// HandleListSaved handles GET /saved-jobs
func (h *ApplicationHandler) HandleListSaved(c *fiber.Ctx) error {
	saved, err := h.appService.ListSavedJobs(employeeID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"savedJobs": saved})
}
