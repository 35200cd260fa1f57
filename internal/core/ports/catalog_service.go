package ports

import (
	"context"

	"github.com/mercadinho/catalog-api/internal/core/domain"
)

// TypeProductInput carries the mutable fields of a type_product.
type TypeProductInput struct {
	Nome   string
	Codigo string
	Ativo  bool
}

// ProdutoInput carries the mutable fields of a produto.
type ProdutoInput struct {
	Nome        string
	TipoProduto int64
	Ativo       bool
}

type CatalogService interface {
	CreateTypeProduct(ctx context.Context, input TypeProductInput) (*domain.TypeProduct, error)
	ListTypeProducts(ctx context.Context, filter ListFilter) ([]domain.TypeProduct, error)
	UpdateTypeProduct(ctx context.Context, id int64, input TypeProductInput) error
	DeleteTypeProduct(ctx context.Context, id int64) error

	CreateProduto(ctx context.Context, input ProdutoInput) (*domain.Produto, error)
	ListProdutos(ctx context.Context, filter ListFilter) ([]domain.Produto, error)
	UpdateProduto(ctx context.Context, id int64, input ProdutoInput) error
	DeleteProduto(ctx context.Context, id int64) error
}
