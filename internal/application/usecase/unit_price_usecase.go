package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jcaicedo/catalogo-obras-api/internal/application/dto"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/entity"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/repository"
)

// UnitPriceUseCase alta y aprobación de precios unitarios independientes
// (segundo nivel de la cascada de resolución).
type UnitPriceUseCase struct {
	priceRepo   repository.UnitPriceRepository
	conceptRepo repository.ConceptRepository
}

// NewUnitPriceUseCase construye el caso de uso.
func NewUnitPriceUseCase(priceRepo repository.UnitPriceRepository, conceptRepo repository.ConceptRepository) *UnitPriceUseCase {
	return &UnitPriceUseCase{priceRepo: priceRepo, conceptRepo: conceptRepo}
}

// Create registra un precio unitario en estado pendiente.
func (uc *UnitPriceUseCase) Create(in dto.CreateUnitPriceRequest) (*dto.UnitPriceResponse, error) {
	if in.ConceptID == "" || in.Region == "" || !in.Price.IsPositive() {
		return nil, domain.ErrInvalidInput
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
	now := time.Now()
	price := &entity.UnitPrice{
		ID:        uuid.New().String(),
		ConceptID: in.ConceptID,
		Region:    in.Region,
		Price:     in.Price,
		Status:    entity.UnitPriceStatusPending,
		ValidFrom: validFrom,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.priceRepo.Create(price); err != nil {
		return nil, err
	}
	return toUnitPriceResponse(price), nil
}

// Approve aprueba un precio pendiente estampando actor y fecha. Solo los
// aprobados participan en la resolución.
func (uc *UnitPriceUseCase) Approve(id, actorID string) (*dto.UnitPriceResponse, error) {
	price, err := uc.priceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, domain.ErrNotFound
	}
	if price.Status != entity.UnitPriceStatusPending {
		return nil, domain.ErrInvalidTransition
	}
	now := time.Now()
	price.Status = entity.UnitPriceStatusApproved
	price.ApprovedBy = &actorID
	price.ApprovedAt = &now
	price.UpdatedAt = now
	if err := uc.priceRepo.Update(price); err != nil {
		return nil, err
	}
	return toUnitPriceResponse(price), nil
}

func toUnitPriceResponse(p *entity.UnitPrice) *dto.UnitPriceResponse {
	if p == nil {
		return nil
	}
	return &dto.UnitPriceResponse{
		ID:         p.ID,
		ConceptID:  p.ConceptID,
		Region:     p.Region,
		Price:      p.Price,
		Status:     p.Status,
		ValidFrom:  p.ValidFrom,
		ApprovedBy: p.ApprovedBy,
		ApprovedAt: p.ApprovedAt,
		CreatedAt:  p.CreatedAt,
	}
}
