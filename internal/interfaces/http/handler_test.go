package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcaicedo/catalogo-obras-api/internal/application/budgets"
	"github.com/jcaicedo/catalogo-obras-api/internal/application/catalogs"
	"github.com/jcaicedo/catalogo-obras-api/internal/application/usecase"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/entity"
	apphttp "github.com/jcaicedo/catalogo-obras-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs de repositorio para rutas GET (solo lectura, sin transacciones)
// ──────────────────────────────────────────────────────────────────────────────

// conceptRepoStub devuelve el concepto fijado (si el ID coincide) o ninguno.
type conceptRepoStub struct{ concept *entity.Concept }

func (s conceptRepoStub) Create(*entity.Concept) error { return nil }
func (s conceptRepoStub) GetByID(id string) (*entity.Concept, error) {
	if s.concept != nil && s.concept.ID == id {
		return s.concept, nil
	}
	return nil, nil
}
func (s conceptRepoStub) GetActiveByCode(string) (*entity.Concept, error)  { return nil, nil }
func (s conceptRepoStub) Update(*entity.Concept) error                     { return nil }
func (s conceptRepoStub) HasChildren(string) (bool, error)                 { return false, nil }
func (s conceptRepoStub) List(string, int, int) ([]*entity.Concept, error) { return nil, nil }
func (s conceptRepoStub) CountByCategory() ([]entity.CategoryCount, error) { return nil, nil }

type catalogRepoStub struct{}

func (catalogRepoStub) Create(*entity.PriceCatalog) error                     { return nil }
func (catalogRepoStub) GetByID(string) (*entity.PriceCatalog, error)          { return nil, nil }
func (catalogRepoStub) Update(*entity.PriceCatalog) error                     { return nil }
func (catalogRepoStub) Delete(string) error                                   { return nil }
func (catalogRepoStub) List(string, int, int) ([]*entity.PriceCatalog, error) { return nil, nil }

type budgetRepoStub struct{}

func (budgetRepoStub) Create(*entity.Budget) error            { return nil }
func (budgetRepoStub) GetByID(string) (*entity.Budget, error) { return nil, nil }
func (budgetRepoStub) Update(*entity.Budget) error            { return nil }

func getJSON(t *testing.T, app *fiber.App, path string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET por ID: recurso inexistente debe responder 404, nunca 500
// ──────────────────────────────────────────────────────────────────────────────

func TestConceptGetByID_NoEncontrado_Retorna404(t *testing.T) {
	h := apphttp.NewConceptHandler(usecase.NewConceptUseCase(conceptRepoStub{}))
	app := fiber.New()
	app.Get("/api/concepts/:id", h.GetByID)

	resp, body := getJSON(t, app, "/api/concepts/no-existe")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode,
		"un concepto inexistente debe responder 404")
	assert.Contains(t, body, "NOT_FOUND")
}

func TestConceptGetByID_Existente_Retorna200(t *testing.T) {
	repo := conceptRepoStub{concept: &entity.Concept{
		ID:     "c-1",
		Code:   "CON-001",
		Name:   "Concreto",
		Unit:   "m3",
		Status: entity.ConceptStatusActive,
	}}
	h := apphttp.NewConceptHandler(usecase.NewConceptUseCase(repo))
	app := fiber.New()
	app.Get("/api/concepts/:id", h.GetByID)

	resp, body := getJSON(t, app, "/api/concepts/c-1")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "CON-001")
}

func TestCatalogGetByID_NoEncontrado_Retorna404(t *testing.T) {
	h := apphttp.NewCatalogHandler(catalogs.NewCatalogUseCase(catalogRepoStub{}, nil, nil, nil))
	app := fiber.New()
	app.Get("/api/catalogs/:id", h.GetByID)

	resp, body := getJSON(t, app, "/api/catalogs/no-existe")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode,
		"un catálogo inexistente debe responder 404")
	assert.Contains(t, body, "NOT_FOUND")
}

func TestBudgetGetByID_NoEncontrado_Retorna404(t *testing.T) {
	h := apphttp.NewBudgetHandler(budgets.NewLineUseCase(budgetRepoStub{}, nil, nil, nil, nil))
	app := fiber.New()
	app.Get("/api/budgets/:id", h.GetByID)

	resp, body := getJSON(t, app, "/api/budgets/no-existe")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode,
		"un presupuesto inexistente debe responder 404")
	assert.Contains(t, body, "NOT_FOUND")
}
