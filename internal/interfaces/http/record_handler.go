package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventar/internal/application/dto"
	appinventory "github.com/jhoicas/inventar/internal/application/inventory"
	"github.com/jhoicas/inventar/internal/domain/entity"
	"github.com/jhoicas/inventar/internal/domain/inventory"
	"github.com/jhoicas/inventar/internal/infrastructure/metrics"
)

// RecordHandler maneja las peticiones HTTP sobre la lista de productos.
type RecordHandler struct {
	repo  *appinventory.RecordRepository
	table *appinventory.TableRenderer
}

// NewRecordHandler construye el handler.
func NewRecordHandler(repo *appinventory.RecordRepository, table *appinventory.TableRenderer) *RecordHandler {
	return &RecordHandler{repo: repo, table: table}
}

// List godoc
// @Summary      Tabla de productos (completa o filtrada)
// @Tags         records
// @Produce      json
// @Param        q    query  string  false  "Búsqueda por nombre o total"
// @Success      200  {object}  dto.TableResponse
// @Router       /api/records [get]
func (h *RecordHandler) List(c *fiber.Ctx) error {
	q := c.Query("q")
	records, err := h.repo.Filter(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toTableResponse(q, h.table.Render(records)))
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         records
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.RecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/records/{id} [get]
func (h *RecordHandler) GetByID(c *fiber.Ctx) error {
	rec, found, err := h.repo.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if !found {
		return writeError(c, recordNotFound(c.Params("id")))
	}
	return c.JSON(toRecordResponse(rec))
}

// Upsert godoc
// @Summary      Crear o reemplazar producto
// @Description  Sin id (o con un id desconocido) agrega al final; con un id existente reemplaza en su posición.
// @Description  unitPrice admite hasta 2 decimales con punto; sku solo dígitos. Otros formatos devuelven 400.
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertRecordRequest  true  "Datos del producto"
// @Success      201   {object}  dto.UpsertRecordResponse
// @Success      200   {object}  dto.UpsertRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/records [post]
func (h *RecordHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := inventory.CheckTypedAmounts(in.UnitPrice, in.SKU); err != nil {
		return writeError(c, err)
	}
	rec, err := inventory.BuildRecord(in.ID, in.ProductName, in.UnitPrice, in.SKU)
	if err != nil {
		return writeError(c, err)
	}
	saved, outcome, err := h.repo.Upsert(c.UserContext(), rec)
	if err != nil {
		return writeError(c, err)
	}
	metrics.RecordMutationsTotal.WithLabelValues(outcome.String()).Inc()

	status := fiber.StatusOK
	if outcome == appinventory.OutcomeInserted {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(dto.UpsertRecordResponse{Outcome: outcome.String(), Record: toRecordResponse(saved)})
}

// Delete godoc
// @Summary      Borrar producto
// @Tags         records
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/records/{id} [delete]
func (h *RecordHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.repo.DeleteByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if !deleted {
		return writeError(c, recordNotFound(c.Params("id")))
	}
	metrics.RecordMutationsTotal.WithLabelValues("delete").Inc()
	return c.SendStatus(fiber.StatusNoContent)
}

// Clear godoc
// @Summary      Borrar todos los productos
// @Tags         records
// @Success      204
// @Router       /api/records [delete]
func (h *RecordHandler) Clear(c *fiber.Ctx) error {
	if err := h.repo.ClearAll(c.UserContext()); err != nil {
		return writeError(c, err)
	}
	metrics.RecordMutationsTotal.WithLabelValues("clear").Inc()
	return c.SendStatus(fiber.StatusNoContent)
}

func toRecordResponse(r entity.Record) dto.RecordResponse {
	return dto.RecordResponse{
		ID:          r.ID,
		ProductName: r.ProductName,
		SKU:         r.SKU,
		UnitPrice:   r.UnitPrice,
		TotalPrice:  r.TotalPrice,
	}
}

func toTableResponse(q string, v appinventory.TableView) dto.TableResponse {
	out := dto.TableResponse{Query: q, Rows: make([]dto.TableRowResponse, 0, len(v.Rows)), Empty: v.Empty}
	for _, r := range v.Rows {
		out.Rows = append(out.Rows, dto.TableRowResponse{
			ProductName: r.ProductName,
			TotalPrice:  r.TotalPrice,
			Record:      toRecordResponse(r.EditRecord),
		})
	}
	if v.Total != nil {
		out.Total = &dto.TableTotalResponse{Label: v.Total.Label, TotalPrice: v.Total.TotalPrice, Amount: v.Total.Amount}
	}
	return out
}
