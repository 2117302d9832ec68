package example

import (
	"lexicon-manager/core/apperr"
	"lexicon-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for examples.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the example routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/examples")
	group.Get("/:id", h.HandleGetExample)
	group.Post("/suggestions/:id/merge", h.HandleMergeSuggestion)
}

// HandleGetExample returns a canonical example.
// @Summary Get Example
// @Description Get a canonical example sentence by id.
// @Tags examples
// @Accept json
// @Produce json
// @Param id path string true "Example ID"
// @Success 200 {object} models.Example "Canonical Example"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /examples/{id} [get]
func (h *Handler) HandleGetExample(c *fiber.Ctx) error {
	ex, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Error("Example lookup failed", zap.Error(err))
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(ex)
}

// HandleMergeSuggestion merges an example suggestion into a canonical example.
// @Summary Merge Example Suggestion
// @Description Validate an example suggestion and commit it into a canonical example (create or update).
// @Tags examples
// @Accept json
// @Produce json
// @Param id path string true "Example Suggestion ID"
// @Success 200 {object} models.Example "Merged Canonical Example"
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]string "Concurrent Modification"
// @Router /examples/suggestions/{id}/merge [post]
func (h *Handler) HandleMergeSuggestion(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	mergedBy, _ := c.Locals("editor_id").(string)
	if mergedBy == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "editor identity required"})
	}

	ex, err := h.service.Merge(c.Context(), c.Params("id"), mergedBy)
	if err != nil {
		l.Error("Example merge failed",
			zap.String("suggestion_id", c.Params("id")),
			zap.Error(err))
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(ex)
}
