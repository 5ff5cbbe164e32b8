package catalogs_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcaicedo/catalogo-obras-api/internal/application/dto"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/catalog"
)

func boolPtr(b bool) *bool { return &b }

func (f *fixture) seedEntries(t *testing.T, catalogID string, prices ...int64) {
	t.Helper()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, p := range prices {
		_, err := f.uc.AddEntry(context.Background(), catalogID, actorID, dto.AddCatalogEntryRequest{
			ConceptID: "c-1",
			UnitPrice: decimal.NewFromInt(p),
			ValidFrom: from.AddDate(0, i, 0),
		})
		require.NoError(t, err)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Duplicar
// ──────────────────────────────────────────────────────────────────────────────

func TestDuplicate_ClonaCabeceraYEntradas(t *testing.T) {
	f := newFixture(concreto())
	srcID := f.createDraft(t)
	f.seedEntries(t, srcID, 1500, 1650)
	f.activate(t, srcID)

	out, err := f.uc.Duplicate(context.Background(), srcID, "duplicador", dto.DuplicateCatalogRequest{
		NewName: "CDMX 2027",
	})

	require.NoError(t, err)
	assert.NotEqual(t, srcID, out.Catalog.ID, "el clon tiene ID propio")
	assert.Equal(t, "CDMX 2027", out.Catalog.Name)
	assert.Equal(t, "CDMX", out.Catalog.Region, "la región se hereda del origen")
	assert.Equal(t, 2, out.EntryCount)

	// Auditoría reiniciada: aunque el origen está activo y aprobado, el clon
	// nace en borrador sin aprobación.
	assert.Equal(t, string(catalog.StatusDraft), out.Catalog.Status)
	assert.Equal(t, "duplicador", out.Catalog.CreatedBy)
	assert.Nil(t, out.Catalog.ApprovedBy)
	assert.Nil(t, out.Catalog.ApprovedAt)

	cloneEntries, err := f.uc.ListEntries(out.Catalog.ID)
	require.NoError(t, err)
	require.Len(t, cloneEntries, 2)
	for _, e := range cloneEntries {
		assert.Equal(t, out.Catalog.ID, e.CatalogID)
		assert.Equal(t, "duplicador", e.UpdatedBy)
	}

	srcEntries, err := f.uc.ListEntries(srcID)
	require.NoError(t, err)
	assert.Len(t, srcEntries, 2, "el origen queda intacto")
}

func TestDuplicate_ConservaPreciosYVentanas(t *testing.T) {
	f := newFixture(concreto())
	srcID := f.createDraft(t)
	f.seedEntries(t, srcID, 1500, 1650)

	out, err := f.uc.Duplicate(context.Background(), srcID, actorID, dto.DuplicateCatalogRequest{NewName: "copia"})
	require.NoError(t, err)

	src, err := f.uc.ListEntries(srcID)
	require.NoError(t, err)
	clone, err := f.uc.ListEntries(out.Catalog.ID)
	require.NoError(t, err)
	require.Len(t, clone, len(src))

	bySrc := make(map[string]bool)
	for _, e := range src {
		bySrc[e.UnitPrice.String()+"|"+e.ValidFrom.String()] = true
	}
	for _, e := range clone {
		assert.True(t, bySrc[e.UnitPrice.String()+"|"+e.ValidFrom.String()],
			"cada entrada clonada conserva precio y ventana: %s", e.UnitPrice)
	}
}

func TestDuplicate_SinEntradas(t *testing.T) {
	f := newFixture(concreto())
	srcID := f.createDraft(t)
	f.seedEntries(t, srcID, 1500)

	out, err := f.uc.Duplicate(context.Background(), srcID, actorID, dto.DuplicateCatalogRequest{
		NewName:     "solo cabecera",
		CopyEntries: boolPtr(false),
	})

	require.NoError(t, err)
	assert.Equal(t, 0, out.EntryCount)
	clone, err := f.uc.ListEntries(out.Catalog.ID)
	require.NoError(t, err)
	assert.Empty(t, clone)
}

func TestDuplicate_OrigenInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Duplicate(context.Background(), "no-existe", actorID, dto.DuplicateCatalogRequest{NewName: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Factor de actualización
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyUpdateFactor_MultiplicaTodasLasEntradas(t *testing.T) {
	f := newFixture(concreto())
	id := f.createDraft(t)
	f.seedEntries(t, id, 1000, 2000)

	out, err := f.uc.ApplyUpdateFactor(context.Background(), id, actorID, decimal.RequireFromString("1.08"))

	require.NoError(t, err)
	assert.Equal(t, int64(2), out.UpdatedCount)

	entries, err := f.uc.ListEntries(id)
	require.NoError(t, err)
	got := make(map[string]bool)
	for _, e := range entries {
		got[e.UnitPrice.String()] = true
	}
	assert.True(t, got["1080"], "1000 * 1.08 = 1080, got %v", got)
	assert.True(t, got["2160"], "2000 * 1.08 = 2160, got %v", got)
}

func TestApplyUpdateFactor_PermitidoEnActivo(t *testing.T) {
	f := newFixture(concreto())
	id := f.createDraft(t)
	f.seedEntries(t, id, 1000)
	f.activate(t, id)

	out, err := f.uc.ApplyUpdateFactor(context.Background(), id, actorID, decimal.RequireFromString("0.95"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.UpdatedCount)
}

func TestApplyUpdateFactor_RechazadoEnSuspendidoYObsoleto(t *testing.T) {
	f := newFixture(concreto())
	id := f.createDraft(t)
	f.activate(t, id)
	_, err := f.uc.Transition(id, actorID, catalog.StatusSuspended)
	require.NoError(t, err)

	_, err = f.uc.ApplyUpdateFactor(context.Background(), id, actorID, decimal.NewFromInt(2))
	assert.ErrorIs(t, err, domain.ErrNotEditable)

	_, err = f.uc.Transition(id, actorID, catalog.StatusObsolete)
	require.NoError(t, err)
	_, err = f.uc.ApplyUpdateFactor(context.Background(), id, actorID, decimal.NewFromInt(2))
	assert.ErrorIs(t, err, domain.ErrNotEditable)
}

func TestApplyUpdateFactor_FactorDebeSerPositivo(t *testing.T) {
	f := newFixture(concreto())
	id := f.createDraft(t)

	_, err := f.uc.ApplyUpdateFactor(context.Background(), id, actorID, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.ApplyUpdateFactor(context.Background(), id, actorID, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Estadísticas
// ──────────────────────────────────────────────────────────────────────────────

func TestStatistics_Agrega(t *testing.T) {
	f := newFixture(concreto())
	id := f.createDraft(t)
	// Tres altas encadenadas del mismo concepto: dos quedan cerradas y la
	// última abierta.
	f.seedEntries(t, id, 100, 200, 300)

	out, err := f.uc.Statistics(id)

	require.NoError(t, err)
	assert.Equal(t, 3, out.EntryCount)
	assert.True(t, decimal.NewFromInt(100).Equal(out.MinUnitPrice))
	assert.True(t, decimal.NewFromInt(300).Equal(out.MaxUnitPrice))
	assert.True(t, decimal.NewFromInt(200).Equal(out.AvgUnitPrice), "got %s", out.AvgUnitPrice)
	assert.Equal(t, 1, out.OpenWindows)
	assert.Equal(t, 2, out.ClosedWindows)
}

func TestStatistics_CatalogoVacio(t *testing.T) {
	f := newFixture()
	id := f.createDraft(t)

	out, err := f.uc.Statistics(id)

	require.NoError(t, err)
	assert.Equal(t, 0, out.EntryCount)
	assert.True(t, out.MinUnitPrice.IsZero())
	assert.True(t, out.AvgUnitPrice.IsZero())
}
