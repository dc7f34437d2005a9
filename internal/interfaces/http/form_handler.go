package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventar/internal/application/dto"
	"github.com/jhoicas/inventar/internal/application/form"
	appinventory "github.com/jhoicas/inventar/internal/application/inventory"
	"github.com/jhoicas/inventar/internal/infrastructure/metrics"
)

// FormHandler expone el modal de alta/edición. Hay un único usuario, por lo tanto un único modal.
type FormHandler struct {
	ctrl *form.Controller
	repo *appinventory.RecordRepository
}

// NewFormHandler construye el handler.
func NewFormHandler(ctrl *form.Controller, repo *appinventory.RecordRepository) *FormHandler {
	return &FormHandler{ctrl: ctrl, repo: repo}
}

// View godoc
// @Summary      Estado del modal y de los botones de borrado
// @Tags         form
// @Produce      json
// @Success      200  {object}  form.View
// @Router       /api/form [get]
func (h *FormHandler) View(c *fiber.Ctx) error {
	return c.JSON(h.ctrl.View())
}

// OpenNew godoc
// @Summary      Abrir el modal para un producto nuevo
// @Tags         form
// @Produce      json
// @Success      200  {object}  form.View
// @Router       /api/form/new [post]
func (h *FormHandler) OpenNew(c *fiber.Ctx) error {
	return c.JSON(h.ctrl.OpenNew())
}

// OpenExisting godoc
// @Summary      Abrir el modal con un producto existente
// @Tags         form
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  form.View
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/form/edit/{id} [post]
func (h *FormHandler) OpenExisting(c *fiber.Ctx) error {
	rec, found, err := h.repo.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if !found {
		return writeError(c, recordNotFound(c.Params("id")))
	}
	return c.JSON(h.ctrl.OpenExisting(rec))
}

// Input godoc
// @Summary      Escribir en un campo (devuelve el valor saneado)
// @Tags         form
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FormInputRequest  true  "Campo y valor crudo"
// @Success      200   {object}  dto.FormInputResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/form/input [post]
func (h *FormHandler) Input(c *fiber.Ctx) error {
	var in dto.FormInputRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	v, err := h.ctrl.Input(in.Field, in.Value)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FormInputResponse{Field: in.Field, Value: v})
}

// Submit godoc
// @Summary      Guardar el formulario
// @Tags         form
// @Produce      json
// @Success      200  {object}  form.View
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/form/submit [post]
func (h *FormHandler) Submit(c *fiber.Ctx) error {
	_, outcome, err := h.ctrl.Submit(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	metrics.RecordMutationsTotal.WithLabelValues(outcome.String()).Inc()
	return c.JSON(h.ctrl.View())
}

// Cancel godoc
// @Summary      Cerrar el modal sin guardar
// @Tags         form
// @Produce      json
// @Success      200  {object}  form.View
// @Router       /api/form/cancel [post]
func (h *FormHandler) Cancel(c *fiber.Ctx) error {
	return c.JSON(h.ctrl.Cancel())
}

// PressDelete godoc
// @Summary      Pulsar "Șterge produs"
// @Tags         form
// @Produce      json
// @Success      200  {object}  dto.PressResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/form/delete [post]
func (h *FormHandler) PressDelete(c *fiber.Ctx) error {
	res, deleted, err := h.ctrl.PressDelete(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	if deleted {
		metrics.RecordMutationsTotal.WithLabelValues("delete").Inc()
	}
	return c.JSON(dto.PressResponse{Result: res.String(), Deleted: deleted})
}

// PressClearAll godoc
// @Summary      Pulsar "Șterge toate produsele"
// @Tags         form
// @Produce      json
// @Success      200  {object}  dto.PressResponse
// @Router       /api/form/clear [post]
func (h *FormHandler) PressClearAll(c *fiber.Ctx) error {
	res, err := h.ctrl.PressClearAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	if res == form.PressConfirmed {
		metrics.RecordMutationsTotal.WithLabelValues("clear").Inc()
	}
	return c.JSON(dto.PressResponse{Result: res.String(), Deleted: res == form.PressConfirmed})
}
