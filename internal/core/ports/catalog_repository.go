package ports

import (
	"context"

	"github.com/mercadinho/catalog-api/internal/core/domain"
)

// ListFilter carries the query parameters for catalog listings.
type ListFilter struct {
	NameFilter string           // optional: substring match on nome
	Order      domain.SortOrder // asc or desc by nome
	Page       int              // 1-based
	Limit      int              // rows per page (capped at 100 by the service)
}

// Offset returns the row offset for the current page.
func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// TypeProductRepository defines persistence operations for type_products.
type TypeProductRepository interface {
	Create(ctx context.Context, tp *domain.TypeProduct) (*domain.TypeProduct, error)
	List(ctx context.Context, filter ListFilter) ([]domain.TypeProduct, error)
	// Update replaces the mutable fields of the record identified by tp.ID.
	// Returns domain.ErrNotFound when no row matches.
	Update(ctx context.Context, tp *domain.TypeProduct) error
	Delete(ctx context.Context, id int64) error
}

// ProdutoRepository defines persistence operations for produto.
type ProdutoRepository interface {
	Create(ctx context.Context, p *domain.Produto) (*domain.Produto, error)
	List(ctx context.Context, filter ListFilter) ([]domain.Produto, error)
	Update(ctx context.Context, p *domain.Produto) error
	Delete(ctx context.Context, id int64) error
}
