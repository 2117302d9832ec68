package word

import (
	"lexicon-manager/core/apperr"
	"lexicon-manager/core/logger"
	"lexicon-manager/feature/word/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for words.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the word routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/words")
	group.Post("/", h.HandleCreateWord)
	group.Get("/search", h.HandleSearchWord)
	group.Get("/:id", h.HandleGetWord)
	group.Delete("/:id", h.HandleDeleteWord)
	group.Post("/suggestions/:id/merge", h.HandleMergeSuggestion)
}

// HandleGetWord returns a populated canonical word.
// @Summary Get Word
// @Description Get a canonical word by id with its example references resolved.
// @Tags words
// @Accept json
// @Produce json
// @Param id path string true "Word ID"
// @Success 200 {object} models.PopulatedWord "Populated Word"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /words/{id} [get]
func (h *Handler) HandleGetWord(c *fiber.Ctx) error {
	populated, err := h.service.Populated(c.Context(), c.Params("id"))
	if err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Error("Word lookup failed", zap.Error(err))
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(populated)
}

// HandleSearchWord returns the populated word for a headword.
// @Summary Search Word
// @Description Look up a canonical word by its headword.
// @Tags words
// @Accept json
// @Produce json
// @Param q query string true "Headword"
// @Success 200 {object} models.PopulatedWord "Populated Word"
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /words/search [get]
func (h *Handler) HandleSearchWord(c *fiber.Ctx) error {
	headword := c.Query("q")
	if headword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no headword provided"})
	}

	populated, err := h.service.FindByHeadword(c.Context(), headword)
	if err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Error("Word search failed", zap.String("headword", headword), zap.Error(err))
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(populated)
}

// HandleCreateWord inserts a canonical word directly.
// @Summary Create Word
// @Description Create a canonical word record (administrative path).
// @Tags words
// @Accept json
// @Produce json
// @Param word body models.Word true "Word Fields"
// @Success 201 {object} models.Word "Created Word"
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /words [post]
func (h *Handler) HandleCreateWord(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var fields models.Word
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if fields.Word == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing required word"})
	}

	w, err := h.service.Create(c.Context(), fields)
	if err != nil {
		l.Error("Word creation failed", zap.Error(err))
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(w)
}

// HandleMergeSuggestion merges a word suggestion into a canonical word.
// @Summary Merge Word Suggestion
// @Description Commit a word suggestion into a canonical word, cascading over its nested example suggestions.
// @Tags words
// @Accept json
// @Produce json
// @Param id path string true "Word Suggestion ID"
// @Success 200 {object} models.PopulatedWord "Merged Populated Word"
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]string "Concurrent Modification"
// @Router /words/suggestions/{id}/merge [post]
func (h *Handler) HandleMergeSuggestion(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	mergedBy, _ := c.Locals("editor_id").(string)
	if mergedBy == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "editor identity required"})
	}

	sug, err := h.service.GetSuggestion(c.Context(), c.Params("id"))
	if err != nil {
		l.Error("Word suggestion lookup failed", zap.Error(err))
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	populated, err := h.service.Merge(c.Context(), sug, mergedBy)
	if err != nil {
		l.Error("Word merge failed",
			zap.String("suggestion_id", sug.ID),
			zap.Error(err))
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(populated)
}

// HandleDeleteWord deletes a word and consolidates it into a survivor.
// @Summary Delete Word
// @Description Delete a canonical word and fold its content into the word named by the primary query parameter.
// @Tags words
// @Accept json
// @Produce json
// @Param id path string true "Word ID to delete"
// @Param primary query string true "Surviving Word ID"
// @Success 200 {object} models.Word "Updated Surviving Word"
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /words/{id} [delete]
func (h *Handler) HandleDeleteWord(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	primary, err := h.service.Delete(c.Context(), c.Params("id"), c.Query("primary"))
	if err != nil {
		l.Error("Word deletion failed",
			zap.String("word_id", c.Params("id")),
			zap.Error(err))
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(primary)
}
