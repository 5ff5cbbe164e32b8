package catalogs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcaicedo/catalogo-obras-api/internal/application/dto"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/catalog"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/repository"
)

// Duplicate clona un catálogo completo en una sola transacción: cabecera con
// ID nuevo, estado forzado a borrador, auditoría reiniciada (CreatedBy =
// actor, ApprovedBy/ApprovedAt nulos) y, si copyEntries, cada entrada clonada
// con ID nuevo conservando precio y ventana. Si algo falla no queda catálogo
// parcial.
func (uc *CatalogUseCase) Duplicate(ctx context.Context, catalogID, actorID string, in dto.DuplicateCatalogRequest) (*dto.DuplicateCatalogResponse, error) {
	if in.NewName == "" {
		return nil, domain.ErrInvalidInput
	}
	source, err := uc.catalogRepo.GetByID(catalogID)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, domain.ErrNotFound
	}

	copyEntries := in.CopyEntries == nil || *in.CopyEntries
	now := time.Now()
	clone := *source
	clone.ID = uuid.New().String()
	clone.Name = in.NewName
	clone.Status = string(catalog.StatusDraft)
	clone.CreatedBy = actorID
	clone.ApprovedBy = nil
	clone.ApprovedAt = nil
	clone.CreatedAt = now
	clone.UpdatedAt = now

	var entryCount int
	err = uc.txRunner.RunCatalog(ctx, func(
		catalogRepo repository.CatalogRepository,
		entryRepo repository.CatalogEntryRepository,
	) error {
		if err := catalogRepo.Create(&clone); err != nil {
			return err
		}
		if !copyEntries {
			return nil
		}
		entries, err := entryRepo.ListByCatalog(catalogID)
		if err != nil {
			return err
		}
		for _, e := range entries {
			entryClone := *e
			entryClone.ID = uuid.New().String()
			entryClone.CatalogID = clone.ID
			entryClone.UpdatedBy = actorID
			entryClone.CreatedAt = now
			entryClone.UpdatedAt = now
			if err := entryRepo.Create(&entryClone); err != nil {
				return err
			}
		}
		entryCount = len(entries)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.DuplicateCatalogResponse{
		Catalog:    *toCatalogResponse(&clone),
		EntryCount: entryCount,
	}, nil
}

// ApplyUpdateFactor multiplica el precio de todas las entradas del catálogo
// por el factor, sin tocar las ventanas de vigencia. Todo-o-nada dentro de
// una transacción. Permitido en borrador y, por política, también en activo.
func (uc *CatalogUseCase) ApplyUpdateFactor(ctx context.Context, catalogID, actorID string, factor decimal.Decimal) (*dto.ApplyFactorResponse, error) {
	if !factor.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	cat, err := uc.catalogRepo.GetByID(catalogID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	if !catalog.Status(cat.Status).CanApplyFactor() {
		return nil, domain.ErrNotEditable
	}

	var updated int64
	err = uc.txRunner.RunCatalog(ctx, func(
		catalogRepo repository.CatalogRepository,
		entryRepo repository.CatalogEntryRepository,
	) error {
		n, err := entryRepo.MultiplyPrices(catalogID, factor, actorID)
		if err != nil {
			return err
		}
		updated = n
		cat.UpdatedAt = time.Now()
		return catalogRepo.Update(cat)
	})
	if err != nil {
		return nil, err
	}
	return &dto.ApplyFactorResponse{
		Catalog:      *toCatalogResponse(cat),
		UpdatedCount: updated,
	}, nil
}

// Statistics agrega las entradas del catálogo: conteo, mín/máx/promedio de
// precio y ventanas abiertas vs cerradas. Solo lectura.
func (uc *CatalogUseCase) Statistics(catalogID string) (*dto.CatalogStatsResponse, error) {
	cat, err := uc.catalogRepo.GetByID(catalogID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	stats, err := uc.entryRepo.Stats(catalogID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = &repository.CatalogStats{}
	}
	return &dto.CatalogStatsResponse{
		EntryCount:    stats.EntryCount,
		MinUnitPrice:  stats.MinUnitPrice,
		MaxUnitPrice:  stats.MaxUnitPrice,
		AvgUnitPrice:  stats.AvgUnitPrice,
		OpenWindows:   stats.OpenWindows,
		ClosedWindows: stats.ClosedWindows,
	}, nil
}
