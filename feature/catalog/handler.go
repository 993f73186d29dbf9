package catalog

import (
	"errors"
	"strconv"

	"modhangar/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/mods")
	group.Get("/", h.HandleListMods)
	group.Get("/:code/versions", h.HandleListVersions)
	group.Get("/:code/versions/:major/:minor/:patch", h.HandleGetVersionContent)
}

// HandleListMods lists every known mod.
// @Summary List Mods
// @Description List all mods present in the catalog.
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Mod "Mods"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /mods [get]
func (h *Handler) HandleListMods(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	mods, err := h.service.ListMods(c.Context())
	if err != nil {
		l.Error("Mod listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(mods)
}

// HandleListVersions lists the imported versions of one mod.
// @Summary List Mod Versions
// @Description List every imported version of a mod.
// @Tags catalog
// @Produce json
// @Param code path string true "Mod Code (e.g. 'vanilla')"
// @Success 200 {array} models.ModVersion "Versions"
// @Failure 404 {object} map[string]string "Mod Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /mods/{code}/versions [get]
func (h *Handler) HandleListVersions(c *fiber.Ctx) error {
	code := c.Params("code")
	l := logger.WithRayID(h.service.logger, c)

	versions, err := h.service.ListVersions(c.Context(), code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Version listing failed", zap.String("mod", code), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(versions)
}

// HandleGetVersionContent returns the entity listing of one mod version.
// @Summary Get Version Content
// @Description List the ships, weapons, hullmods, ship systems and wings one mod version shipped.
// @Tags catalog
// @Produce json
// @Param code path string true "Mod Code"
// @Param major path int true "Major Version"
// @Param minor path int true "Minor Version"
// @Param patch path int true "Patch Version"
// @Success 200 {object} VersionContent "Version Content"
// @Failure 400 {object} map[string]string "Invalid Version"
// @Failure 404 {object} map[string]string "Mod or Version Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /mods/{code}/versions/{major}/{minor}/{patch} [get]
func (h *Handler) HandleGetVersionContent(c *fiber.Ctx) error {
	code := c.Params("code")
	l := logger.WithRayID(h.service.logger, c)

	major, minor, patch, err := versionParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	content, err := h.service.GetVersionContent(c.Context(), code, major, minor, patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Version content lookup failed", zap.String("mod", code), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(content)
}

func versionParams(c *fiber.Ctx) (major, minor, patch int, err error) {
	for _, part := range []struct {
		name string
		dest *int
	}{
		{"major", &major}, {"minor", &minor}, {"patch", &patch},
	} {
		*part.dest, err = strconv.Atoi(c.Params(part.name))
		if err != nil {
			return 0, 0, 0, errors.New("version segments must be integers")
		}
	}
	return major, minor, patch, nil
}
