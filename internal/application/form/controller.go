// Package form implementa el estado del modal de alta/edición de productos
// y los botones de borrado con confirmación por cuenta atrás.
package form

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	appinventory "github.com/jhoicas/inventar/internal/application/inventory"
	"github.com/jhoicas/inventar/internal/domain"
	"github.com/jhoicas/inventar/internal/domain/entity"
	"github.com/jhoicas/inventar/internal/domain/inventory"
)

// Títulos y mensajes visibles del modal.
const (
	TitleNew       = "Produs Nou"
	TitleExisting  = "Detalii produs"
	TitleNext      = "Adaugă următorul produs"
	SuccessMessage = "Produsul a fost adăugat!"

	// SuccessDuration tiempo que el mensaje de éxito reemplaza al título.
	SuccessDuration = 2 * time.Second
)

// Campos editables del formulario (mismos nombres que en el JSON persistido).
const (
	FieldProductName = "productName"
	FieldUnitPrice   = "unitPrice"
	FieldSKU         = "sku"
)

// State estado del modal.
type State int

const (
	StateClosed State = iota
	StateEditingNew
	StateEditingExisting
)

func (s State) String() string {
	switch s {
	case StateEditingNew:
		return "editing-new"
	case StateEditingExisting:
		return "editing-existing"
	default:
		return "closed"
	}
}

// RecordWriter operaciones del repositorio que usa el formulario.
type RecordWriter interface {
	Upsert(ctx context.Context, record entity.Record) (entity.Record, appinventory.UpsertOutcome, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
	ClearAll(ctx context.Context) error
}

// Fields valores actuales de los inputs, tal como los ve el usuario.
type Fields struct {
	ProductName string `json:"productName"`
	UnitPrice   string `json:"unitPrice"`
	SKU         string `json:"sku"`
	TotalPrice  string `json:"totalPrice"`
}

// View instantánea del modal y de los dos botones de borrado.
type View struct {
	State       string      `json:"state"`
	Title       string      `json:"title"`
	ShowSuccess bool        `json:"showSuccess"`
	Success     string      `json:"successMessage,omitempty"`
	RecordID    string      `json:"recordId,omitempty"`
	Fields      Fields      `json:"fields"`
	ShowDelete  bool        `json:"showDelete"`
	Delete      ConfirmView `json:"delete"`
	ClearAll    ConfirmView `json:"clearAll"`
}

// Controller el modal del único usuario. Seguro para uso concurrente: los timers
// corren en otras goroutines y todo el estado va bajo mu.
type Controller struct {
	mu    sync.Mutex
	repo  RecordWriter
	sched Scheduler
	log   zerolog.Logger

	state    State
	title    string
	recordID string
	fields   Fields

	showSuccess  bool
	successToken uint64

	deleteBtn   *Confirmation
	clearAllBtn *Confirmation
}

// NewController crea el modal cerrado.
func NewController(repo RecordWriter, sched Scheduler, log zerolog.Logger) *Controller {
	return &Controller{
		repo:        repo,
		sched:       sched,
		log:         log,
		deleteBtn:   NewConfirmation(DeleteCountdown, sched),
		clearAllBtn: NewConfirmation(ClearAllCountdown, sched),
	}
}

// OpenNew abre el modal vacío para un producto nuevo. Abrirlo de nuevo limpia los campos.
func (c *Controller) OpenNew() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = StateEditingNew
	c.title = TitleNew
	c.recordID = ""
	c.fields = Fields{}
	c.hideSuccessLocked()
	c.deleteBtn.Reset()
	return c.viewLocked()
}

// OpenExisting abre el modal con los datos del producto y el botón de borrado ligado a su ID.
func (c *Controller) OpenExisting(record entity.Record) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = StateEditingExisting
	c.title = TitleExisting
	c.recordID = record.ID
	c.fields = Fields{
		ProductName: record.ProductName,
		UnitPrice:   record.UnitPrice.String(),
		SKU:         record.SKU.String(),
		TotalPrice:  record.TotalPrice.String(),
	}
	c.hideSuccessLocked()
	c.deleteBtn.Reset()
	return c.viewLocked()
}

// Input aplica una pulsación sobre un campo y devuelve el valor saneado.
func (c *Controller) Input(field, raw string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateClosed {
		return "", fmt.Errorf("formulario cerrado: %w", domain.ErrConflict)
	}
	switch field {
	case FieldProductName:
		c.fields.ProductName = raw
		return raw, nil
	case FieldUnitPrice:
		c.fields.UnitPrice = inventory.SanitizePrice(raw)
		return c.fields.UnitPrice, nil
	case FieldSKU:
		c.fields.SKU = inventory.SanitizeQuantity(raw)
		return c.fields.SKU, nil
	default:
		return "", fmt.Errorf("campo %q: %w", field, domain.ErrInvalidInput)
	}
}

// Submit guarda el formulario. Alta: el modal queda abierto y vacío para el siguiente producto,
// con el mensaje de éxito durante SuccessDuration. Edición: el modal se cierra.
// Con un campo numérico vacío o ilegible devuelve ErrInvalidInput y no guarda nada.
func (c *Controller) Submit(ctx context.Context) (entity.Record, appinventory.UpsertOutcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateClosed {
		return entity.Record{}, 0, fmt.Errorf("formulario cerrado: %w", domain.ErrConflict)
	}
	id := ""
	if c.state == StateEditingExisting {
		id = c.recordID
	}
	rec, err := inventory.BuildRecord(id, c.fields.ProductName, c.fields.UnitPrice, c.fields.SKU)
	if err != nil {
		return entity.Record{}, 0, err
	}

	saved, outcome, err := c.repo.Upsert(ctx, rec)
	if err != nil {
		return entity.Record{}, 0, err
	}

	if outcome == appinventory.OutcomeUpdated {
		c.closeLocked()
		return saved, outcome, nil
	}

	// El registro editado pudo haber sido borrado en otra pestaña: se reinsertó, igual que un alta.
	c.state = StateEditingNew
	c.recordID = ""
	c.fields = Fields{}
	c.title = TitleNext
	c.deleteBtn.Reset()
	c.showSuccessLocked()
	return saved, outcome, nil
}

// Cancel cierra el modal sin guardar.
func (c *Controller) Cancel() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeLocked()
	return c.viewLocked()
}

// PressDelete pulsa el botón "Șterge produs". Solo existe con el modal en edición de un producto.
// Al confirmarse borra el producto y cierra el modal; si ya no existe, el modal sigue abierto.
func (c *Controller) PressDelete(ctx context.Context) (PressResult, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateEditingExisting {
		return 0, false, fmt.Errorf("no hay producto abierto: %w", domain.ErrConflict)
	}
	res := c.deleteBtn.Press()
	if res != PressConfirmed {
		return res, false, nil
	}
	deleted, err := c.repo.DeleteByID(ctx, c.recordID)
	if err != nil {
		return res, false, err
	}
	if !deleted {
		c.log.Warn().Str("id", c.recordID).Msg("producto a borrar no encontrado")
		return res, false, nil
	}
	c.closeLocked()
	return res, true, nil
}

// PressClearAll pulsa el botón "Șterge toate produsele"; al confirmarse vacía la lista.
func (c *Controller) PressClearAll(ctx context.Context) (PressResult, error) {
	res := c.clearAllBtn.Press()
	if res != PressConfirmed {
		return res, nil
	}
	return res, c.repo.ClearAll(ctx)
}

// View estado actual del modal.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *Controller) viewLocked() View {
	v := View{
		State:       c.state.String(),
		Title:       c.title,
		ShowSuccess: c.showSuccess,
		RecordID:    c.recordID,
		Fields:      c.fields,
		ShowDelete:  c.state == StateEditingExisting,
		Delete:      c.deleteBtn.View(),
		ClearAll:    c.clearAllBtn.View(),
	}
	if c.showSuccess {
		v.Success = SuccessMessage
	}
	return v
}

func (c *Controller) closeLocked() {
	c.state = StateClosed
	c.title = ""
	c.recordID = ""
	c.fields = Fields{}
	c.hideSuccessLocked()
	c.deleteBtn.Reset()
}

func (c *Controller) showSuccessLocked() {
	c.successToken++
	tok := c.successToken
	c.showSuccess = true
	c.sched.AfterFunc(SuccessDuration, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if tok == c.successToken {
			c.showSuccess = false
		}
	})
}

func (c *Controller) hideSuccessLocked() {
	c.successToken++
	c.showSuccess = false
}
