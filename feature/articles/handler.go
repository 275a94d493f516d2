package articles

import (
	"errors"

	"article-stream/core/document"
	"article-stream/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for article records.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the article routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/articles")
	group.Get("/schema", h.HandleGetSchema)
	group.Get("/batches", h.HandleGetBatches)
	group.Get("/report", h.HandleGetReport)
}

// HandleGetSchema returns the field names of the reconciled records.
// @Summary Get Record Schema
// @Description Get the ordered field names of the reconciled article records.
// @Tags articles
// @Accept json
// @Produce json
// @Success 200 {array} string "Field Names"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /articles/schema [get]
func (h *Handler) HandleGetSchema(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	schema, err := h.service.Schema()
	if err != nil {
		l.Error("Schema lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(schema)
}

// HandleGetBatches returns the reconciled records grouped into batches.
// @Summary Get Record Batches
// @Description Get the reconciled article records grouped into fixed-size batches.
// @Tags articles
// @Accept json
// @Produce json
// @Param size query int false "Records per batch" default(10)
// @Param max query int false "Maximum number of batches, 0 for all" default(0)
// @Success 200 {array} []map[string]interface{} "Record Batches"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /articles/batches [get]
func (h *Handler) HandleGetBatches(c *fiber.Ctx) error {
	size := c.QueryInt("size", 10)
	max := c.QueryInt("max", 0)
	l := logger.WithRayID(h.service.logger, c)

	batches, err := h.service.Batches(size, max)
	if err != nil {
		if errors.Is(err, ErrBatchSize) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Batch read failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if batches == nil {
		batches = [][]*document.Record{}
	}
	return c.JSON(batches)
}

// HandleGetReport returns the coverage report for the current sources.
// @Summary Get Coverage Report
// @Description Compare the article collection against the editorial reference table.
// @Tags articles
// @Accept json
// @Produce json
// @Success 200 {object} models.CoverageReport "Coverage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /articles/report [get]
func (h *Handler) HandleGetReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Report()
	if err != nil {
		l.Error("Coverage report failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(report)
}
