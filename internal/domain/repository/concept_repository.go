package repository

import "github.com/jcaicedo/catalogo-obras-api/internal/domain/entity"

// ConceptRepository define el puerto de persistencia para Concept (DIP).
type ConceptRepository interface {
	Create(concept *entity.Concept) error
	GetByID(id string) (*entity.Concept, error)
	// GetActiveByCode busca un concepto activo por código (unicidad de Code).
	GetActiveByCode(code string) (*entity.Concept, error)
	Update(concept *entity.Concept) error
	// HasChildren indica si algún concepto tiene a id como padre.
	HasChildren(id string) (bool, error)
	// List lista conceptos activos; search filtra por código o nombre
	// normalizado (sin acentos, sin mayúsculas).
	List(search string, limit, offset int) ([]*entity.Concept, error)
	// CountByCategory agrupa conceptos activos por categoría.
	CountByCategory() ([]entity.CategoryCount, error)
}
