package budgets_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcaicedo/catalogo-obras-api/internal/application/budgets"
	"github.com/jcaicedo/catalogo-obras-api/internal/application/dto"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/entity"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeBudgetRepo struct {
	items map[string]*entity.Budget
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{items: make(map[string]*entity.Budget)}
}

func (r *fakeBudgetRepo) Create(b *entity.Budget) error {
	cp := *b
	r.items[b.ID] = &cp
	return nil
}

func (r *fakeBudgetRepo) GetByID(id string) (*entity.Budget, error) {
	b, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBudgetRepo) Update(b *entity.Budget) error {
	cp := *b
	r.items[b.ID] = &cp
	return nil
}

type fakeLineRepo struct {
	items map[string]*entity.BudgetLine
}

func newFakeLineRepo() *fakeLineRepo {
	return &fakeLineRepo{items: make(map[string]*entity.BudgetLine)}
}

func (r *fakeLineRepo) Create(l *entity.BudgetLine) error {
	cp := *l
	r.items[l.ID] = &cp
	return nil
}

func (r *fakeLineRepo) GetByID(id string) (*entity.BudgetLine, error) {
	l, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLineRepo) Update(l *entity.BudgetLine) error {
	cp := *l
	r.items[l.ID] = &cp
	return nil
}

func (r *fakeLineRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeLineRepo) ListByBudget(budgetID string) ([]*entity.BudgetLine, error) {
	var out []*entity.BudgetLine
	for _, l := range r.items {
		if l.BudgetID == budgetID {
			cp := *l
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (r *fakeLineRepo) MaxPartidaNumber(budgetID string) (int, error) {
	max := 0
	for _, l := range r.items {
		if l.BudgetID == budgetID && l.PartidaNumber > max {
			max = l.PartidaNumber
		}
	}
	return max, nil
}

func (r *fakeLineRepo) MaxDisplayOrder(budgetID string) (int, error) {
	max := 0
	for _, l := range r.items {
		if l.BudgetID == budgetID && l.DisplayOrder > max {
			max = l.DisplayOrder
		}
	}
	return max, nil
}

func (r *fakeLineRepo) ExistsPartidaNumber(budgetID string, number int) (bool, error) {
	for _, l := range r.items {
		if l.BudgetID == budgetID && l.PartidaNumber == number {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeLineRepo) UpdateDisplayOrder(lineID string, order int) error {
	if l, ok := r.items[lineID]; ok {
		l.DisplayOrder = order
	}
	return nil
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

func (r *fakeConceptRepo) Create(c *entity.Concept) error { r.items[c.ID] = c; return nil }

func (r *fakeConceptRepo) GetByID(id string) (*entity.Concept, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *fakeConceptRepo) GetActiveByCode(code string) (*entity.Concept, error) { return nil, nil }
func (r *fakeConceptRepo) Update(c *entity.Concept) error                       { return nil }
func (r *fakeConceptRepo) HasChildren(id string) (bool, error)                  { return false, nil }
func (r *fakeConceptRepo) List(search string, limit, offset int) ([]*entity.Concept, error) {
	return nil, nil
}
func (r *fakeConceptRepo) CountByCategory() ([]entity.CategoryCount, error) { return nil, nil }

// fakeResolver devuelve siempre el mismo precio con su procedencia.
type fakeResolver struct {
	price  decimal.Decimal
	source string
	region string // registra la región consultada
}

func (r *fakeResolver) FindCurrentPrice(conceptID, region string, asOf time.Time) (*dto.ResolvePriceResponse, error) {
	r.region = region
	return &dto.ResolvePriceResponse{
		ConceptID: conceptID,
		Region:    region,
		AsOf:      asOf,
		Price:     r.price,
		Source:    r.source,
	}, nil
}

// fakeTxRunner ejecuta el callback directamente con los repos en memoria.
type fakeTxRunner struct {
	budgetRepo repository.BudgetRepository
	lineRepo   repository.BudgetLineRepository
}

func (r *fakeTxRunner) RunBudget(ctx context.Context, fn func(
	budgetRepo repository.BudgetRepository,
	lineRepo repository.BudgetLineRepository,
) error) error {
	return fn(r.budgetRepo, r.lineRepo)
}

var _ budgets.TxRunner = (*fakeTxRunner)(nil)
var _ budgets.PriceResolver = (*fakeResolver)(nil)
