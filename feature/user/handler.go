package user

import (
	"lexicon-manager/core/apperr"
	"lexicon-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for users.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the user routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/users")
	group.Get("/:id", h.HandleGetUser)
}

// HandleGetUser returns a user.
// @Summary Get User
// @Description Get a registered user by id.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User "User"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /users/{id} [get]
func (h *Handler) HandleGetUser(c *fiber.Ctx) error {
	u, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Error("User lookup failed", zap.Error(err))
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(u)
}
