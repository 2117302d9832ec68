package audit

import (
	"lexicon-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for audit checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the audit routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/audit")
	group.Get("/", h.HandleAuditCheck)
	group.Get("/references", h.HandleReferenceCheck)
	group.Get("/duplicates", h.HandleDuplicateCheck)
	group.Get("/suggestions", h.HandleSuggestionCheck)
	group.Get("/schema", h.HandleSchemaCheck)
}

// HandleAuditCheck triggers all consistency checks.
// @Summary Run All Audit Checks
// @Description Performs all available consistency checks (references, duplicates, merged suggestions, stale intents, schema).
// @Tags audit
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit [get]
func (h *Handler) HandleAuditCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all audit checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	if dangling, err := h.service.CheckExampleReferences(ctx); err != nil {
		report["exampleReferences"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["exampleReferences"] = map[string]interface{}{"status": "ok", "dangling": dangling}
	}

	if dangling, err := h.service.CheckWordExamples(ctx); err != nil {
		report["wordExamples"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["wordExamples"] = map[string]interface{}{"status": "ok", "dangling": dangling}
	}

	if duplicates, err := h.service.CheckDuplicates(ctx); err != nil {
		report["duplicates"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["duplicates"] = map[string]interface{}{"status": "ok", "records": duplicates}
	}

	if orphans, err := h.service.CheckMergedSuggestions(ctx); err != nil {
		report["mergedSuggestions"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["mergedSuggestions"] = map[string]interface{}{"status": "ok", "orphaned": orphans}
	}

	if stale, err := h.service.CheckStaleIntents(ctx); err != nil {
		report["staleIntents"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["staleIntents"] = map[string]interface{}{"status": "ok", "intents": stale}
	}

	if schemaReport, err := h.service.CheckSchema(); err != nil {
		report["schema"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schemaReport
	}

	return c.JSON(report)
}

// HandleReferenceCheck checks cross-references in both directions.
// @Summary Check Cross-References
// @Description Find examples pointing at nonexistent words and words pointing at nonexistent examples.
// @Tags audit
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Reference Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit/references [get]
func (h *Handler) HandleReferenceCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	exampleRefs, err := h.service.CheckExampleReferences(c.Context())
	if err != nil {
		l.Error("Example reference check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	wordRefs, err := h.service.CheckWordExamples(c.Context())
	if err != nil {
		l.Error("Word example check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(exampleRefs) > 0 || len(wordRefs) > 0 {
		l.Warn("Dangling references detected",
			zap.Int("example_refs", len(exampleRefs)),
			zap.Int("word_refs", len(wordRefs)))
	}

	return c.JSON(fiber.Map{
		"status":            "checked",
		"exampleReferences": exampleRefs,
		"wordExamples":      wordRefs,
	})
}

// HandleDuplicateCheck flags records with repeated array values.
// @Summary Check Duplicates
// @Description Find words and examples whose array fields carry repeated values.
// @Tags audit
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Duplicate Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit/duplicates [get]
func (h *Handler) HandleDuplicateCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	duplicates, err := h.service.CheckDuplicates(c.Context())
	if err != nil {
		l.Error("Duplicate check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"records": duplicates,
	})
}

// HandleSuggestionCheck audits merged suggestions and merge intents.
// @Summary Check Suggestions
// @Description Find merged suggestions whose canonical record is missing and merge cascades that never completed.
// @Tags audit
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Suggestion Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit/suggestions [get]
func (h *Handler) HandleSuggestionCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	orphans, err := h.service.CheckMergedSuggestions(c.Context())
	if err != nil {
		l.Error("Merged suggestion check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	stale, err := h.service.CheckStaleIntents(c.Context())
	if err != nil {
		l.Error("Stale intent check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"status":       "checked",
		"orphaned":     orphans,
		"staleIntents": stale,
	})
}

// HandleSchemaCheck checks the lexicon tables against their required columns.
// @Summary Check Schema
// @Description Verify that every lexicon table carries the columns the services depend on.
// @Tags audit
// @Accept json
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting schema check")

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}
