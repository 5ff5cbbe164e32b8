package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcaicedo/catalogo-obras-api/internal/application/dto"
	"github.com/jcaicedo/catalogo-obras-api/internal/application/usecase"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/entity"
)

func newConceptUC() (*usecase.ConceptUseCase, *fakeConceptRepo) {
	repo := newFakeConceptRepo()
	return usecase.NewConceptUseCase(repo), repo
}

func createConcept(t *testing.T, uc *usecase.ConceptUseCase, code, name string) *dto.ConceptResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateConceptRequest{
		Code: code,
		Name: name,
		Unit: "m3",
	})
	require.NoError(t, err)
	return out
}

func TestConceptCreate_CodigoDuplicado(t *testing.T) {
	uc, _ := newConceptUC()
	createConcept(t, uc, "CON-001", "Concreto")

	_, err := uc.Create(dto.CreateConceptRequest{Code: "CON-001", Name: "Otro", Unit: "m3"})
	assert.ErrorIs(t, err, domain.ErrDuplicateCode)
}

func TestConceptCreate_CodigoReutilizableTrasObsoleto(t *testing.T) {
	uc, _ := newConceptUC()
	first := createConcept(t, uc, "CON-001", "Concreto")
	require.NoError(t, uc.Obsolete(first.ID))

	// La unicidad del código es solo entre activos.
	out, err := uc.Create(dto.CreateConceptRequest{Code: "CON-001", Name: "Concreto v2", Unit: "m3"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, out.ID)
}

func TestConceptCreate_PadreDebeExistirYEstarActivo(t *testing.T) {
	uc, _ := newConceptUC()

	bad := "no-existe"
	_, err := uc.Create(dto.CreateConceptRequest{
		Code: "HIJ-001", Name: "Hijo", Unit: "pza", ParentID: &bad,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	parent := createConcept(t, uc, "PAD-001", "Padre")
	out, err := uc.Create(dto.CreateConceptRequest{
		Code: "HIJ-001", Name: "Hijo", Unit: "pza", ParentID: &parent.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, out.ParentID)
	assert.Equal(t, parent.ID, *out.ParentID)
}

func TestConceptCreate_TipoDesconocido(t *testing.T) {
	uc, _ := newConceptUC()
	_, err := uc.Create(dto.CreateConceptRequest{
		Code: "X-1", Name: "x", Unit: "m", Type: "mixto",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConceptUpdate_NoPuedeSerSuPropioPadre(t *testing.T) {
	uc, _ := newConceptUC()
	c := createConcept(t, uc, "CON-001", "Concreto")

	_, err := uc.Update(c.ID, dto.UpdateConceptRequest{ParentID: &c.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConceptUpdate_Parche(t *testing.T) {
	uc, _ := newConceptUC()
	c := createConcept(t, uc, "CON-001", "Concreto")

	name := "Concreto premezclado"
	price := decimal.NewFromInt(1800)
	out, err := uc.Update(c.ID, dto.UpdateConceptRequest{Name: &name, ReferencePrice: &price})

	require.NoError(t, err)
	assert.Equal(t, "Concreto premezclado", out.Name)
	assert.True(t, price.Equal(out.ReferencePrice))
	assert.Equal(t, "CON-001", out.Code, "el código es inmutable")
	assert.Equal(t, "m3", out.Unit)
}

func TestConceptObsolete_ConHijosFalla(t *testing.T) {
	uc, _ := newConceptUC()
	parent := createConcept(t, uc, "PAD-001", "Padre")
	_, err := uc.Create(dto.CreateConceptRequest{
		Code: "HIJ-001", Name: "Hijo", Unit: "pza", ParentID: &parent.ID,
	})
	require.NoError(t, err)

	err = uc.Obsolete(parent.ID)
	assert.ErrorIs(t, err, domain.ErrHasChildren)

	got, err := uc.GetByID(parent.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ConceptStatusActive, got.Status, "el padre sigue activo")
}

func TestConceptObsolete_NoBorraLaFila(t *testing.T) {
	uc, _ := newConceptUC()
	c := createConcept(t, uc, "CON-001", "Concreto")

	require.NoError(t, uc.Obsolete(c.ID))

	got, err := uc.GetByID(c.ID)
	require.NoError(t, err, "el concepto obsoleto sigue consultable por ID")
	assert.Equal(t, entity.ConceptStatusObsolete, got.Status)
}

func TestConceptList_BusquedaInsensibleAAcentos(t *testing.T) {
	uc, _ := newConceptUC()
	createConcept(t, uc, "ALB-001", "Albañilería en muros")
	createConcept(t, uc, "CON-001", "Concreto")

	out, err := uc.List("albanileria", 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "ALB-001", out.Items[0].Code)

	out, err = uc.List("ALBAÑILERÍA", 20, 0)
	require.NoError(t, err)
	assert.Len(t, out.Items, 1, "mayúsculas y acentos no afectan la búsqueda")
}
