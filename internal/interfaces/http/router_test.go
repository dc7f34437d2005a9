package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventar/internal/application/dto"
	"github.com/jhoicas/inventar/internal/application/export"
	"github.com/jhoicas/inventar/internal/application/form"
	appinventory "github.com/jhoicas/inventar/internal/application/inventory"
	"github.com/jhoicas/inventar/internal/application/usecase"
	"github.com/jhoicas/inventar/internal/infrastructure/localstore"
	"github.com/jhoicas/inventar/internal/infrastructure/memory"
	"github.com/jhoicas/inventar/internal/infrastructure/pdf"
	"github.com/jhoicas/inventar/internal/infrastructure/spreadsheet"
	apphttp "github.com/jhoicas/inventar/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app   *fiber.App
	sched *form.ManualScheduler
}

// buildTestApp arma la aplicación completa sobre el almacén en memoria.
func buildTestApp(t *testing.T) testEnv {
	t.Helper()
	kv := memory.NewKVStore()
	store := localstore.NewRecordStore(kv, "inventoryTable", zerolog.Nop())
	repo := appinventory.NewRecordRepository(store)
	sched := form.NewManualScheduler()

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Use(apphttp.RequestID())
	app.Use(apphttp.RequestLogger(zerolog.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		AppName:       "inventar",
		Records:       repo,
		Table:         appinventory.NewTableRenderer("RON"),
		Form:          form.NewController(repo, sched, zerolog.Nop()),
		Export:        export.NewUseCase(repo, pdf.NewMarotoPDFGenerator("inventar"), spreadsheet.NewSheetGenerator(), "RON"),
		PreferencesUC: usecase.NewPreferencesUseCase(kv),
	})
	return testEnv{app: app, sched: sched}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func createRecord(t *testing.T, app *fiber.App, name, price, qty string) dto.UpsertRecordResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/records", dto.UpsertRecordRequest{ProductName: name, UnitPrice: price, SKU: qty})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[dto.UpsertRecordResponse](t, resp)
}

// ──────────────────────────────────────────────────────────────────────────────
// Records
// ──────────────────────────────────────────────────────────────────────────────

func TestRecords_UpsertListarYTotal(t *testing.T) {
	env := buildTestApp(t)

	created := createRecord(t, env.app, "Widget", "2.5", "4")
	assert.Equal(t, "inserted", created.Outcome)
	assert.Len(t, created.Record.ID, 22)
	createRecord(t, env.app, "Gadget", "0.1", "3")

	resp := doJSON(t, env.app, http.MethodGet, "/api/records", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	table := decode[dto.TableResponse](t, resp)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "10.00 RON", table.Rows[0].TotalPrice)
	require.NotNil(t, table.Total)
	assert.Equal(t, "TOTAL", table.Total.Label)
	assert.Equal(t, "10.30 RON", table.Total.TotalPrice)
	assert.Equal(t, "10.3", table.Total.Amount.String())
}

func TestRecords_UpdateDevuelve200(t *testing.T) {
	env := buildTestApp(t)
	created := createRecord(t, env.app, "Widget", "2.5", "4")

	resp := doJSON(t, env.app, http.MethodPost, "/api/records", dto.UpsertRecordRequest{
		ID: created.Record.ID, ProductName: "Widget", UnitPrice: "2.5", SKU: "6",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.UpsertRecordResponse](t, resp)
	assert.Equal(t, "updated", out.Outcome)
	assert.Equal(t, "15", out.Record.TotalPrice.String())
}

func TestRecords_ValidacionDevuelve400(t *testing.T) {
	env := buildTestApp(t)
	resp := doJSON(t, env.app, http.MethodPost, "/api/records", dto.UpsertRecordRequest{ProductName: "X", UnitPrice: "", SKU: "1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)
}

func TestRecords_ImportesConFormatoNoTecleableDevuelven400(t *testing.T) {
	env := buildTestApp(t)
	for _, in := range []dto.UpsertRecordRequest{
		{ProductName: "Cable", UnitPrice: "4", SKU: "2.5"},
		{ProductName: "Cable", UnitPrice: "1,5", SKU: "2"},
		{ProductName: "Cable", UnitPrice: "0.333", SKU: "3"},
	} {
		resp := doJSON(t, env.app, http.MethodPost, "/api/records", in)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "%+v", in)
		assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)
	}
	table := decode[dto.TableResponse](t, doJSON(t, env.app, http.MethodGet, "/api/records", nil))
	assert.True(t, table.Empty)
}

func TestRecords_FiltroYBorrado(t *testing.T) {
	env := buildTestApp(t)
	w := createRecord(t, env.app, "Widget", "2.5", "4")
	createRecord(t, env.app, "Gadget", "1", "1")

	table := decode[dto.TableResponse](t, doJSON(t, env.app, http.MethodGet, "/api/records?q=WID", nil))
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Widget", table.Rows[0].ProductName)

	resp := doJSON(t, env.app, http.MethodDelete, "/api/records/"+w.Record.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = doJSON(t, env.app, http.MethodDelete, "/api/records/"+w.Record.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = doJSON(t, env.app, http.MethodGet, "/api/records/"+w.Record.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)

	resp = doJSON(t, env.app, http.MethodDelete, "/api/records", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	table = decode[dto.TableResponse](t, doJSON(t, env.app, http.MethodGet, "/api/records", nil))
	assert.True(t, table.Empty)
	assert.Nil(t, table.Total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Form
// ──────────────────────────────────────────────────────────────────────────────

func TestForm_AltaPorPasos(t *testing.T) {
	env := buildTestApp(t)

	v := decode[form.View](t, doJSON(t, env.app, http.MethodPost, "/api/form/new", nil))
	assert.Equal(t, form.TitleNew, v.Title)

	in := decode[dto.FormInputResponse](t, doJSON(t, env.app, http.MethodPost, "/api/form/input", dto.FormInputRequest{Field: "unitPrice", Value: "2..555"}))
	assert.Equal(t, "2.55", in.Value)
	doJSON(t, env.app, http.MethodPost, "/api/form/input", dto.FormInputRequest{Field: "productName", Value: "Widget"})
	doJSON(t, env.app, http.MethodPost, "/api/form/input", dto.FormInputRequest{Field: "sku", Value: "2"})

	v = decode[form.View](t, doJSON(t, env.app, http.MethodPost, "/api/form/submit", nil))
	assert.Equal(t, "editing-new", v.State)
	assert.Equal(t, form.TitleNext, v.Title)
	assert.True(t, v.ShowSuccess)

	table := decode[dto.TableResponse](t, doJSON(t, env.app, http.MethodGet, "/api/records", nil))
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "5.10 RON", table.Rows[0].TotalPrice)

	v = decode[form.View](t, doJSON(t, env.app, http.MethodPost, "/api/form/cancel", nil))
	assert.Equal(t, "closed", v.State)
}

func TestForm_BorrarDesdeModal(t *testing.T) {
	env := buildTestApp(t)
	w := createRecord(t, env.app, "Widget", "1", "1")

	resp := doJSON(t, env.app, http.MethodPost, "/api/form/delete", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "sin producto abierto")

	v := decode[form.View](t, doJSON(t, env.app, http.MethodPost, "/api/form/edit/"+w.Record.ID, nil))
	assert.True(t, v.ShowDelete)

	p := decode[dto.PressResponse](t, doJSON(t, env.app, http.MethodPost, "/api/form/delete", nil))
	assert.Equal(t, "started", p.Result)
	env.sched.Advance(time.Second)
	p = decode[dto.PressResponse](t, doJSON(t, env.app, http.MethodPost, "/api/form/delete", nil))
	assert.Equal(t, "confirmed", p.Result)
	assert.True(t, p.Deleted)

	resp = doJSON(t, env.app, http.MethodPost, "/api/form/edit/"+w.Record.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Export, preferencias y página
// ──────────────────────────────────────────────────────────────────────────────

func TestExport_HTMLPDFyXML(t *testing.T) {
	env := buildTestApp(t)
	createRecord(t, env.app, "Widget", "2.5", "4")

	resp := doJSON(t, env.app, http.MethodGet, "/api/export?title=Stoc&width=500", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	html := readBody(t, resp)
	assert.Contains(t, html, "font-size: 22px", "ancho < 768 es móvil")
	assert.Contains(t, html, export.HeaderUnitPrice)

	resp = doJSON(t, env.app, http.MethodGet, "/api/export/pdf?title=Stoc", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `filename="Stoc.pdf"`)
	assert.True(t, strings.HasPrefix(readBody(t, resp), "%PDF"))

	resp = doJSON(t, env.app, http.MethodGet, "/api/export/xml", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "<Workbook")
}

func TestPreferences_GetYPut(t *testing.T) {
	env := buildTestApp(t)

	p := decode[dto.PreferencesResponse](t, doJSON(t, env.app, http.MethodGet, "/api/preferences", nil))
	assert.Equal(t, "dark", p.Theme)
	assert.True(t, p.FirstVisit)

	light := "light"
	p = decode[dto.PreferencesResponse](t, doJSON(t, env.app, http.MethodPut, "/api/preferences", dto.UpdatePreferencesRequest{Theme: &light}))
	assert.Equal(t, "light", p.Theme)

	bad := "purple"
	resp := doJSON(t, env.app, http.MethodPut, "/api/preferences", dto.UpdatePreferencesRequest{Theme: &bad})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPreferences_InterruptorDeTemaYPrimeraVisita(t *testing.T) {
	env := buildTestApp(t)

	p := decode[dto.PreferencesResponse](t, doJSON(t, env.app, http.MethodPost, "/api/preferences/theme", dto.ToggleThemeRequest{Dark: false}))
	assert.Equal(t, "light", p.Theme)
	p = decode[dto.PreferencesResponse](t, doJSON(t, env.app, http.MethodPost, "/api/preferences/theme", dto.ToggleThemeRequest{Dark: true}))
	assert.Equal(t, "dark", p.Theme)

	p = decode[dto.PreferencesResponse](t, doJSON(t, env.app, http.MethodPost, "/api/preferences/visited", nil))
	assert.False(t, p.FirstVisit)
	p = decode[dto.PreferencesResponse](t, doJSON(t, env.app, http.MethodGet, "/api/preferences", nil))
	assert.False(t, p.FirstVisit)
}

func TestPage_VaciaYConProductos(t *testing.T) {
	env := buildTestApp(t)

	page := readBody(t, doJSON(t, env.app, http.MethodGet, "/", nil))
	assert.Contains(t, page, apphttp.EmptyMessage)
	assert.NotContains(t, page, "inventoryTable")

	createRecord(t, env.app, "<b>Widget</b>", "2.5", "4")
	page = readBody(t, doJSON(t, env.app, http.MethodGet, "/", nil))
	assert.NotContains(t, page, apphttp.EmptyMessage)
	assert.Contains(t, page, "&lt;b&gt;Widget&lt;/b&gt;")
	assert.Contains(t, page, "10.00 RON")
	assert.Contains(t, page, `data-theme="dark"`)
}
