package catalogs

import (
	"context"

	"github.com/jcaicedo/catalogo-obras-api/internal/domain/repository"
)

// TxRunner ejecuta una función con repositorios de catálogo atados a una
// misma transacción. Duplicate y ApplyUpdateFactor dependen de esto para ser
// todo-o-nada: cualquier error dentro de fn revierte la transacción completa.
type TxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		catalogRepo repository.CatalogRepository,
		entryRepo repository.CatalogEntryRepository,
	) error) error
}
