package catalogs_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcaicedo/catalogo-obras-api/internal/application/catalogs"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/entity"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/pricing"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCatalogRepo struct {
	items map[string]*entity.PriceCatalog
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{items: make(map[string]*entity.PriceCatalog)}
}

func (r *fakeCatalogRepo) Create(c *entity.PriceCatalog) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCatalogRepo) GetByID(id string) (*entity.PriceCatalog, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCatalogRepo) Update(c *entity.PriceCatalog) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCatalogRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeCatalogRepo) List(region string, limit, offset int) ([]*entity.PriceCatalog, error) {
	var out []*entity.PriceCatalog
	for _, c := range r.items {
		if region == "" || c.Region == region {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeEntryRepo struct {
	items map[string]*entity.CatalogEntry
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{items: make(map[string]*entity.CatalogEntry)}
}

func (r *fakeEntryRepo) Create(e *entity.CatalogEntry) error {
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeEntryRepo) GetByID(id string) (*entity.CatalogEntry, error) {
	e, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEntryRepo) Update(e *entity.CatalogEntry) error {
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeEntryRepo) ListByCatalog(catalogID string) ([]*entity.CatalogEntry, error) {
	var out []*entity.CatalogEntry
	for _, e := range r.items {
		if e.CatalogID == catalogID {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeEntryRepo) GetOpenByConcept(catalogID, conceptID string) (*entity.CatalogEntry, error) {
	for _, e := range r.items {
		if e.CatalogID == catalogID && e.ConceptID == conceptID && e.ValidTo == nil {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeEntryRepo) CountByCatalog(catalogID string) (int, error) {
	n := 0
	for _, e := range r.items {
		if e.CatalogID == catalogID {
			n++
		}
	}
	return n, nil
}

func (r *fakeEntryRepo) MultiplyPrices(catalogID string, factor decimal.Decimal, updatedBy string) (int64, error) {
	var n int64
	for _, e := range r.items {
		if e.CatalogID == catalogID {
			e.UnitPrice = e.UnitPrice.Mul(factor)
			e.UpdatedBy = updatedBy
			n++
		}
	}
	return n, nil
}

func (r *fakeEntryRepo) Stats(catalogID string) (*repository.CatalogStats, error) {
	s := &repository.CatalogStats{}
	for _, e := range r.items {
		if e.CatalogID != catalogID {
			continue
		}
		if s.EntryCount == 0 {
			s.MinUnitPrice = e.UnitPrice
			s.MaxUnitPrice = e.UnitPrice
		}
		if e.UnitPrice.LessThan(s.MinUnitPrice) {
			s.MinUnitPrice = e.UnitPrice
		}
		if e.UnitPrice.GreaterThan(s.MaxUnitPrice) {
			s.MaxUnitPrice = e.UnitPrice
		}
		s.AvgUnitPrice = s.AvgUnitPrice.Add(e.UnitPrice)
		if e.ValidTo == nil {
			s.OpenWindows++
		} else {
			s.ClosedWindows++
		}
		s.EntryCount++
	}
	if s.EntryCount > 0 {
		s.AvgUnitPrice = s.AvgUnitPrice.Div(decimal.NewFromInt(int64(s.EntryCount)))
	}
	return s, nil
}

func (r *fakeEntryRepo) FindCurrent(conceptID, region string, asOf time.Time) ([]pricing.Candidate, error) {
	return nil, nil
}

type fakeConceptRepo struct {
	items map[string]*entity.Concept
}

func newFakeConceptRepo(concepts ...*entity.Concept) *fakeConceptRepo {
	r := &fakeConceptRepo{items: make(map[string]*entity.Concept)}
	for _, c := range concepts {
		r.items[c.ID] = c
	}
	return r
}

func (r *fakeConceptRepo) Create(c *entity.Concept) error {
	r.items[c.ID] = c
	return nil
}

func (r *fakeConceptRepo) GetByID(id string) (*entity.Concept, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *fakeConceptRepo) GetActiveByCode(code string) (*entity.Concept, error) {
	for _, c := range r.items {
		if c.Code == code && c.IsActive() {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeConceptRepo) Update(c *entity.Concept) error {
	r.items[c.ID] = c
	return nil
}

func (r *fakeConceptRepo) HasChildren(id string) (bool, error) {
	for _, c := range r.items {
		if c.ParentID != nil && *c.ParentID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeConceptRepo) List(search string, limit, offset int) ([]*entity.Concept, error) {
	var out []*entity.Concept
	for _, c := range r.items {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeConceptRepo) CountByCategory() ([]entity.CategoryCount, error) {
	return nil, nil
}

// fakeTxRunner ejecuta el callback directamente con los repos en memoria, sin
// transacción real.
type fakeTxRunner struct {
	catalogRepo repository.CatalogRepository
	entryRepo   repository.CatalogEntryRepository
}

func (r *fakeTxRunner) RunCatalog(ctx context.Context, fn func(
	catalogRepo repository.CatalogRepository,
	entryRepo repository.CatalogEntryRepository,
) error) error {
	return fn(r.catalogRepo, r.entryRepo)
}

var _ catalogs.TxRunner = (*fakeTxRunner)(nil)
