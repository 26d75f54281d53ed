package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/services"
)

type JobsHandler struct {
	catalog services.JobCatalogService
}

func NewJobsHandler(catalog services.JobCatalogService) *JobsHandler {
	return &JobsHandler{catalog: catalog}
}

// HandleListJobs handles GET /jobs
func (h *JobsHandler) HandleListJobs(c *fiber.Ctx) error {
	return c.JSON(models.JobListResponse{
		Jobs: h.catalog.Titles(),
	})
}

// HandleGetJob handles GET /jobs/:title
func (h *JobsHandler) HandleGetJob(c *fiber.Ctx) error {
	title := c.Params("title")
	if decoded, err := url.PathUnescape(title); err == nil {
		title = decoded
	}

	job, ok := h.catalog.Find(title)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}

	return c.JSON(job)
}
