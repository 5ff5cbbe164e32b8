package usecase_test

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcaicedo/catalogo-obras-api/internal/domain/entity"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/pricing"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/repository"
	"github.com/jcaicedo/catalogo-obras-api/pkg/textutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeConceptRepo struct {
	items map[string]*entity.Concept
}

func newFakeConceptRepo() *fakeConceptRepo {
	return &fakeConceptRepo{items: make(map[string]*entity.Concept)}
}

func (r *fakeConceptRepo) Create(c *entity.Concept) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeConceptRepo) GetByID(id string) (*entity.Concept, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeConceptRepo) GetActiveByCode(code string) (*entity.Concept, error) {
	for _, c := range r.items {
		if c.Code == code && c.IsActive() {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeConceptRepo) Update(c *entity.Concept) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeConceptRepo) HasChildren(id string) (bool, error) {
	for _, c := range r.items {
		if c.ParentID != nil && *c.ParentID == id && c.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeConceptRepo) List(search string, limit, offset int) ([]*entity.Concept, error) {
	needle := textutil.Normalize(search)
	var out []*entity.Concept
	for _, c := range r.items {
		if !c.IsActive() {
			continue
		}
		if needle != "" && !strings.Contains(textutil.Normalize(c.Code+" "+c.Name), needle) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *fakeConceptRepo) CountByCategory() ([]entity.CategoryCount, error) {
	byCat := make(map[string]int)
	for _, c := range r.items {
		if c.IsActive() {
			byCat[c.Category]++
		}
	}
	out := make([]entity.CategoryCount, 0, len(byCat))
	for cat, n := range byCat {
		out = append(out, entity.CategoryCount{Category: cat, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

// fakeEntryRepoStub implementa los métodos de CatalogEntryRepository que el
// resolutor no usa.
type fakeEntryRepoStub struct{}

func (fakeEntryRepoStub) Create(*entity.CatalogEntry) error            { return nil }
func (fakeEntryRepoStub) GetByID(string) (*entity.CatalogEntry, error) { return nil, nil }
func (fakeEntryRepoStub) Update(*entity.CatalogEntry) error            { return nil }
func (fakeEntryRepoStub) ListByCatalog(string) ([]*entity.CatalogEntry, error) {
	return nil, nil
}
func (fakeEntryRepoStub) GetOpenByConcept(string, string) (*entity.CatalogEntry, error) {
	return nil, nil
}
func (fakeEntryRepoStub) CountByCatalog(string) (int, error) { return 0, nil }
func (fakeEntryRepoStub) MultiplyPrices(string, decimal.Decimal, string) (int64, error) {
	return 0, nil
}
func (fakeEntryRepoStub) Stats(string) (*repository.CatalogStats, error) { return nil, nil }

// fakeUnitPriceRepoStub almacena precios unitarios en memoria (alta y
// aprobación).
type fakeUnitPriceRepoStub struct {
	items map[string]*entity.UnitPrice
}

func (r *fakeUnitPriceRepoStub) Create(p *entity.UnitPrice) error {
	if r.items == nil {
		r.items = make(map[string]*entity.UnitPrice)
	}
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeUnitPriceRepoStub) GetByID(id string) (*entity.UnitPrice, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeUnitPriceRepoStub) Update(p *entity.UnitPrice) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

// fakeEntryFinder y fakeStandaloneFinder alimentan la cascada del resolutor
// con candidatos fijos por (concepto, región).

type candidateKey struct {
	conceptID string
	region    string
}

type fakeEntryFinder struct {
	fakeEntryRepoStub
	candidates map[candidateKey][]pricing.Candidate
}

func (r *fakeEntryFinder) FindCurrent(conceptID, region string, asOf time.Time) ([]pricing.Candidate, error) {
	var out []pricing.Candidate
	out = append(out, r.candidates[candidateKey{conceptID, region}]...)
	if region != pricing.RegionGeneral {
		out = append(out, r.candidates[candidateKey{conceptID, pricing.RegionGeneral}]...)
	}
	return out, nil
}

type fakeStandaloneFinder struct {
	fakeUnitPriceRepoStub
	candidates map[candidateKey][]pricing.Candidate
}

func (r *fakeStandaloneFinder) FindApproved(conceptID, region string, asOf time.Time) ([]pricing.Candidate, error) {
	var out []pricing.Candidate
	out = append(out, r.candidates[candidateKey{conceptID, region}]...)
	if region != pricing.RegionGeneral {
		out = append(out, r.candidates[candidateKey{conceptID, pricing.RegionGeneral}]...)
	}
	return out, nil
}
