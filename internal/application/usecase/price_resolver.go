package usecase

import (
	"time"

	"github.com/jcaicedo/catalogo-obras-api/internal/application/dto"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/pricing"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/repository"
)

// PriceResolverUseCase resuelve el precio unitario vigente de un concepto en
// una región a un instante dado. Solo lecturas; el resultado es una
// sugerencia, no un valor comprometido, por lo que tolera instantáneas
// ligeramente desactualizadas.
type PriceResolverUseCase struct {
	conceptRepo repository.ConceptRepository
	entryRepo   repository.CatalogEntryRepository
	priceRepo   repository.UnitPriceRepository
}

// NewPriceResolverUseCase construye el caso de uso.
func NewPriceResolverUseCase(
	conceptRepo repository.ConceptRepository,
	entryRepo repository.CatalogEntryRepository,
	priceRepo repository.UnitPriceRepository,
) *PriceResolverUseCase {
	return &PriceResolverUseCase{conceptRepo: conceptRepo, entryRepo: entryRepo, priceRepo: priceRepo}
}

// FindCurrentPrice aplica la cascada de resolución:
//  1. entradas de catálogos activos de la región (o la comodín "General")
//     cuya ventana cubre asOf, desempatadas por ValidFrom y ApprovedAt;
//  2. precios unitarios independientes aprobados, mismo desempate;
//  3. precio de referencia del concepto.
// Solo falla si el concepto no existe.
func (uc *PriceResolverUseCase) FindCurrentPrice(conceptID, region string, asOf time.Time) (*dto.ResolvePriceResponse, error) {
	concept, err := uc.conceptRepo.GetByID(conceptID)
	if err != nil {
		return nil, err
	}
	if concept == nil {
		return nil, domain.ErrNotFound
	}
	if asOf.IsZero() {
		asOf = time.Now()
	}

	candidates, err := uc.entryRepo.FindCurrent(conceptID, region, asOf)
	if err != nil {
		return nil, err
	}
	if best, ok := pricing.PickBest(candidates); ok {
		return &dto.ResolvePriceResponse{
			ConceptID: conceptID,
			Region:    region,
			AsOf:      asOf,
			Price:     best.UnitPrice,
			Source:    string(pricing.SourceCatalogEntry),
			CatalogID: best.CatalogID,
			RefID:     best.RefID,
		}, nil
	}

	standalone, err := uc.priceRepo.FindApproved(conceptID, region, asOf)
	if err != nil {
		return nil, err
	}
	if best, ok := pricing.PickBest(standalone); ok {
		return &dto.ResolvePriceResponse{
			ConceptID: conceptID,
			Region:    region,
			AsOf:      asOf,
			Price:     best.UnitPrice,
			Source:    string(pricing.SourceStandalonePrice),
			RefID:     best.RefID,
		}, nil
	}

	return &dto.ResolvePriceResponse{
		ConceptID: conceptID,
		Region:    region,
		AsOf:      asOf,
		Price:     concept.ReferencePrice,
		Source:    string(pricing.SourceReferencePrice),
	}, nil
}
