package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jcaicedo/catalogo-obras-api/internal/application/dto"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/entity"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/repository"
)

// ConceptUseCase casos de uso del catálogo maestro de conceptos de obra.
type ConceptUseCase struct {
	repo repository.ConceptRepository
}

// NewConceptUseCase construye el caso de uso.
func NewConceptUseCase(repo repository.ConceptRepository) *ConceptUseCase {
	return &ConceptUseCase{repo: repo}
}

// Create crea un concepto. El código debe ser único entre conceptos activos y,
// si se indica padre, este debe existir y estar activo.
func (uc *ConceptUseCase) Create(in dto.CreateConceptRequest) (*dto.ConceptResponse, error) {
	if in.Code == "" || in.Name == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetActiveByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateCode
	}
	if in.ParentID != nil {
		parent, err := uc.repo.GetByID(*in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || !parent.IsActive() {
			return nil, domain.ErrInvalidInput
		}
	}
	cType := in.Type
	if cType == "" {
		cType = entity.ConceptTypeSimple
	}
	if cType != entity.ConceptTypeSimple && cType != entity.ConceptTypeCompound {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	concept := &entity.Concept{
		ID:             uuid.New().String(),
		Code:           in.Code,
		Name:           in.Name,
		Unit:           in.Unit,
		Category:       in.Category,
		Subcategory:    in.Subcategory,
		Type:           cType,
		ParentID:       in.ParentID,
		ReferencePrice: in.ReferencePrice,
		Status:         entity.ConceptStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(concept); err != nil {
		return nil, err
	}
	return toConceptResponse(concept), nil
}

// GetByID obtiene un concepto por ID.
func (uc *ConceptUseCase) GetByID(id string) (*dto.ConceptResponse, error) {
	concept, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if concept == nil {
		return nil, domain.ErrNotFound
	}
	return toConceptResponse(concept), nil
}

// Update actualiza los campos editables de un concepto (Code es inmutable).
func (uc *ConceptUseCase) Update(id string, in dto.UpdateConceptRequest) (*dto.ConceptResponse, error) {
	concept, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if concept == nil {
		return nil, domain.ErrNotFound
	}
	if in.ParentID != nil {
		if *in.ParentID == id {
			return nil, domain.ErrInvalidInput // un concepto no puede ser su propio padre
		}
		parent, err := uc.repo.GetByID(*in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || !parent.IsActive() {
			return nil, domain.ErrInvalidInput
		}
		concept.ParentID = in.ParentID
	}
	if in.Name != nil {
		concept.Name = *in.Name
	}
	if in.Unit != nil {
		concept.Unit = *in.Unit
	}
	if in.Category != nil {
		concept.Category = *in.Category
	}
	if in.Subcategory != nil {
		concept.Subcategory = *in.Subcategory
	}
	if in.ReferencePrice != nil {
		concept.ReferencePrice = *in.ReferencePrice
	}
	concept.UpdatedAt = time.Now()
	if err := uc.repo.Update(concept); err != nil {
		return nil, err
	}
	return toConceptResponse(concept), nil
}

// Obsolete marca un concepto como obsoleto (nunca borra la fila). Falla si
// algún concepto lo tiene como padre.
func (uc *ConceptUseCase) Obsolete(id string) error {
	concept, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if concept == nil {
		return domain.ErrNotFound
	}
	hasChildren, err := uc.repo.HasChildren(id)
	if err != nil {
		return err
	}
	if hasChildren {
		return domain.ErrHasChildren
	}
	concept.Status = entity.ConceptStatusObsolete
	concept.UpdatedAt = time.Now()
	return uc.repo.Update(concept)
}

// List lista conceptos activos con búsqueda por código o nombre.
func (uc *ConceptUseCase) List(search string, limit, offset int) (*dto.ConceptListResponse, error) {
	list, err := uc.repo.List(search, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ConceptResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toConceptResponse(c))
	}
	return &dto.ConceptListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListByCategory devuelve el conteo de conceptos activos por categoría.
func (uc *ConceptUseCase) ListByCategory() ([]dto.CategoryCountResponse, error) {
	counts, err := uc.repo.CountByCategory()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryCountResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.CategoryCountResponse{Category: c.Category, Count: c.Count})
	}
	return out, nil
}

func toConceptResponse(c *entity.Concept) *dto.ConceptResponse {
	if c == nil {
		return nil
	}
	return &dto.ConceptResponse{
		ID:             c.ID,
		Code:           c.Code,
		Name:           c.Name,
		Unit:           c.Unit,
		Category:       c.Category,
		Subcategory:    c.Subcategory,
		Type:           c.Type,
		ParentID:       c.ParentID,
		ReferencePrice: c.ReferencePrice,
		Status:         c.Status,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
