package catalogs

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jcaicedo/catalogo-obras-api/internal/application/dto"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/catalog"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/entity"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/repository"
)

// CatalogUseCase ciclo de vida de catálogos de precios: CRUD, transiciones de
// estado y altas de entradas. Las operaciones masivas (duplicar, factor,
// estadísticas) están en operations.go.
type CatalogUseCase struct {
	catalogRepo repository.CatalogRepository
	entryRepo   repository.CatalogEntryRepository
	conceptRepo repository.ConceptRepository
	txRunner    TxRunner
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	catalogRepo repository.CatalogRepository,
	entryRepo repository.CatalogEntryRepository,
	conceptRepo repository.ConceptRepository,
	txRunner TxRunner,
) *CatalogUseCase {
	return &CatalogUseCase{
		catalogRepo: catalogRepo,
		entryRepo:   entryRepo,
		conceptRepo: conceptRepo,
		txRunner:    txRunner,
	}
}

// Create crea un catálogo en estado borrador.
func (uc *CatalogUseCase) Create(actorID string, in dto.CreateCatalogRequest) (*dto.CatalogResponse, error) {
	if in.Name == "" || in.Region == "" {
		return nil, domain.ErrInvalidInput
	}
	validFrom := in.ValidFrom
	if validFrom.IsZero() {
		validFrom = time.Now()
	}
	if in.ValidTo != nil && in.ValidTo.Before(validFrom) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	cat := &entity.PriceCatalog{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Type:            in.Type,
		Region:          in.Region,
		City:            in.City,
		ValidFrom:       validFrom,
		ValidTo:         in.ValidTo,
		CalculationBase: in.CalculationBase,
		AppliesOverhead: in.AppliesOverhead,
		OverheadPercent: in.OverheadPercent,
		AppliesProfit:   in.AppliesProfit,
		ProfitPercent:   in.ProfitPercent,
		IsPublic:        in.IsPublic,
		OwnerClientID:   in.OwnerClientID,
		Status:          string(catalog.StatusDraft),
		CreatedBy:       actorID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.catalogRepo.Create(cat); err != nil {
		return nil, err
	}
	return toCatalogResponse(cat), nil
}

// GetByID obtiene un catálogo por ID.
func (uc *CatalogUseCase) GetByID(id string) (*dto.CatalogResponse, error) {
	cat, err := uc.catalogRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	return toCatalogResponse(cat), nil
}

// List lista catálogos, opcionalmente filtrados por región.
func (uc *CatalogUseCase) List(region string, limit, offset int) (*dto.CatalogListResponse, error) {
	list, err := uc.catalogRepo.List(region, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCatalogResponse(c))
	}
	return &dto.CatalogListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Update actualiza la cabecera. Solo en estados editables (borrador o
// suspendido para corrección administrativa).
func (uc *CatalogUseCase) Update(id string, in dto.UpdateCatalogRequest) (*dto.CatalogResponse, error) {
	cat, err := uc.catalogRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	if !catalog.Status(cat.Status).CanEdit() {
		return nil, domain.ErrNotEditable
	}
	if in.Name != nil {
		cat.Name = *in.Name
	}
	if in.City != nil {
		cat.City = *in.City
	}
	if in.ValidTo != nil {
		cat.ValidTo = in.ValidTo
	}
	if in.CalculationBase != nil {
		cat.CalculationBase = *in.CalculationBase
	}
	if in.OverheadPercent != nil {
		cat.OverheadPercent = *in.OverheadPercent
	}
	if in.ProfitPercent != nil {
		cat.ProfitPercent = *in.ProfitPercent
	}
	if in.IsPublic != nil {
		cat.IsPublic = *in.IsPublic
	}
	cat.UpdatedAt = time.Now()
	if err := uc.catalogRepo.Update(cat); err != nil {
		return nil, err
	}
	return toCatalogResponse(cat), nil
}

// Delete elimina un catálogo. Permitido únicamente en borrador.
func (uc *CatalogUseCase) Delete(id string) error {
	cat, err := uc.catalogRepo.GetByID(id)
	if err != nil {
		return err
	}
	if cat == nil {
		return domain.ErrNotFound
	}
	if !catalog.Status(cat.Status).CanDelete() {
		return domain.ErrNotEditable
	}
	return uc.catalogRepo.Delete(id)
}

// Transition mueve el catálogo al estado destino validando la tabla de
// transiciones. La activación estampa ApprovedBy/ApprovedAt.
func (uc *CatalogUseCase) Transition(id, actorID string, target catalog.Status) (*dto.CatalogResponse, error) {
	if !target.Valid() {
		return nil, domain.ErrInvalidInput
	}
	cat, err := uc.catalogRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	current := catalog.Status(cat.Status)
	if !current.CanTransition(target) {
		return nil, domain.ErrInvalidTransition
	}
	now := time.Now()
	if target == catalog.StatusActive && current == catalog.StatusDraft {
		cat.ApprovedBy = &actorID
		cat.ApprovedAt = &now
	}
	cat.Status = string(target)
	cat.UpdatedAt = now
	if err := uc.catalogRepo.Update(cat); err != nil {
		return nil, err
	}
	return toCatalogResponse(cat), nil
}

// AddEntry agrega un precio al catálogo. Si el concepto ya tiene una entrada
// con ventana abierta, la cierra en el ValidFrom de la nueva (se agrega y
// sustituye, nunca se sobreescribe), manteniendo a lo sumo una vigente.
func (uc *CatalogUseCase) AddEntry(ctx context.Context, catalogID, actorID string, in dto.AddCatalogEntryRequest) (*dto.CatalogEntryResponse, error) {
	if in.ConceptID == "" || !in.UnitPrice.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	cat, err := uc.catalogRepo.GetByID(catalogID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	if !catalog.Status(cat.Status).CanEdit() {
		return nil, domain.ErrNotEditable
	}
	concept, err := uc.conceptRepo.GetByID(in.ConceptID)
	if err != nil {
		return nil, err
	}
	if concept == nil {
		return nil, domain.ErrNotFound
	}
	validFrom := in.ValidFrom
	if validFrom.IsZero() {
		validFrom = time.Now()
	}
	if in.ValidTo != nil && in.ValidTo.Before(validFrom) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	entry := &entity.CatalogEntry{
		ID:        uuid.New().String(),
		CatalogID: catalogID,
		ConceptID: in.ConceptID,
		UnitPrice: in.UnitPrice,
		ValidFrom: validFrom,
		ValidTo:   in.ValidTo,
		UpdatedBy: actorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.txRunner.RunCatalog(ctx, func(
		_ repository.CatalogRepository,
		entryRepo repository.CatalogEntryRepository,
	) error {
		open, err := entryRepo.GetOpenByConcept(catalogID, in.ConceptID)
		if err != nil {
			return err
		}
		if open != nil {
			if !open.ValidFrom.Before(validFrom) {
				return domain.ErrInvalidInput // la nueva ventana empezaría antes que la vigente
			}
			closeAt := validFrom
			open.ValidTo = &closeAt
			open.UpdatedBy = actorID
			open.UpdatedAt = now
			if err := entryRepo.Update(open); err != nil {
				return err
			}
		}
		return entryRepo.Create(entry)
	})
	if err != nil {
		return nil, err
	}
	return toEntryResponse(entry), nil
}

// ListEntries devuelve las entradas del catálogo.
func (uc *CatalogUseCase) ListEntries(catalogID string) ([]dto.CatalogEntryResponse, error) {
	cat, err := uc.catalogRepo.GetByID(catalogID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	entries, err := uc.entryRepo.ListByCatalog(catalogID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CatalogEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, *toEntryResponse(e))
	}
	return out, nil
}

func toCatalogResponse(c *entity.PriceCatalog) *dto.CatalogResponse {
	if c == nil {
		return nil
	}
	return &dto.CatalogResponse{
		ID:              c.ID,
		Name:            c.Name,
		Type:            c.Type,
		Region:          c.Region,
		City:            c.City,
		ValidFrom:       c.ValidFrom,
		ValidTo:         c.ValidTo,
		CalculationBase: c.CalculationBase,
		AppliesOverhead: c.AppliesOverhead,
		OverheadPercent: c.OverheadPercent,
		AppliesProfit:   c.AppliesProfit,
		ProfitPercent:   c.ProfitPercent,
		IsPublic:        c.IsPublic,
		OwnerClientID:   c.OwnerClientID,
		Status:          c.Status,
		CreatedBy:       c.CreatedBy,
		ApprovedBy:      c.ApprovedBy,
		ApprovedAt:      c.ApprovedAt,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func toEntryResponse(e *entity.CatalogEntry) *dto.CatalogEntryResponse {
	if e == nil {
		return nil
	}
	return &dto.CatalogEntryResponse{
		ID:        e.ID,
		CatalogID: e.CatalogID,
		ConceptID: e.ConceptID,
		UnitPrice: e.UnitPrice,
		ValidFrom: e.ValidFrom,
		ValidTo:   e.ValidTo,
		UpdatedBy: e.UpdatedBy,
	}
}
