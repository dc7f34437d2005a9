package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventar/internal/application/dto"
	"github.com/jhoicas/inventar/internal/application/usecase"
	"github.com/jhoicas/inventar/internal/domain/entity"
)

// PreferencesHandler tema, idioma y primera visita.
type PreferencesHandler struct {
	uc *usecase.PreferencesUseCase
}

// NewPreferencesHandler construye el handler.
func NewPreferencesHandler(uc *usecase.PreferencesUseCase) *PreferencesHandler {
	return &PreferencesHandler{uc: uc}
}

// Get godoc
// @Summary      Preferencias actuales
// @Tags         preferences
// @Produce      json
// @Success      200  {object}  dto.PreferencesResponse
// @Router       /api/preferences [get]
func (h *PreferencesHandler) Get(c *fiber.Ctx) error {
	p, err := h.uc.Get(c.UserContext(), c.Get(fiber.HeaderAcceptLanguage))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toPreferencesResponse(p))
}

// Update godoc
// @Summary      Cambiar preferencias
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdatePreferencesRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.PreferencesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/preferences [put]
func (h *PreferencesHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePreferencesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	p, err := h.uc.Update(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toPreferencesResponse(p))
}

// ToggleTheme godoc
// @Summary      Interruptor de tema claro/oscuro
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ToggleThemeRequest  true  "dark=true para tema oscuro"
// @Success      200   {object}  dto.PreferencesResponse
// @Router       /api/preferences/theme [post]
func (h *PreferencesHandler) ToggleTheme(c *fiber.Ctx) error {
	var in dto.ToggleThemeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ctx := c.UserContext()
	if _, err := h.uc.ToggleTheme(ctx, in.Dark); err != nil {
		return writeError(c, err)
	}
	p, err := h.uc.Get(ctx, c.Get(fiber.HeaderAcceptLanguage))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toPreferencesResponse(p))
}

// MarkVisited godoc
// @Summary      Cerrar la bienvenida de primera visita
// @Tags         preferences
// @Produce      json
// @Success      200  {object}  dto.PreferencesResponse
// @Router       /api/preferences/visited [post]
func (h *PreferencesHandler) MarkVisited(c *fiber.Ctx) error {
	ctx := c.UserContext()
	if err := h.uc.MarkVisited(ctx); err != nil {
		return writeError(c, err)
	}
	p, err := h.uc.Get(ctx, c.Get(fiber.HeaderAcceptLanguage))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toPreferencesResponse(p))
}

func toPreferencesResponse(p entity.Preferences) dto.PreferencesResponse {
	return dto.PreferencesResponse{Theme: string(p.Theme), Language: p.Language, FirstVisit: p.FirstVisit}
}
