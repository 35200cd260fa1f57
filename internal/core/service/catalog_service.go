package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mercadinho/catalog-api/internal/core/domain"
	"github.com/mercadinho/catalog-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// CatalogService implements CRUD over both catalog resources.
type CatalogService struct {
	typeProducts ports.TypeProductRepository
	produtos     ports.ProdutoRepository
	logger       zerolog.Logger
}

func NewCatalogService(typeProducts ports.TypeProductRepository, produtos ports.ProdutoRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{typeProducts: typeProducts, produtos: produtos, logger: logger}
}

// normalizeFilter applies the documented leniency: out-of-range values fall
// back to defaults rather than erroring.
func normalizeFilter(f ports.ListFilter) ports.ListFilter {
	if f.Page < 1 {
		f.Page = defaultPage
	}
	if f.Limit < 1 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Order != domain.OrderDesc {
		f.Order = domain.OrderAsc
	}
	return f
}

func (s *CatalogService) CreateTypeProduct(ctx context.Context, input ports.TypeProductInput) (*domain.TypeProduct, error) {
	created, err := s.typeProducts.Create(ctx, &domain.TypeProduct{
		Nome:   input.Nome,
		Codigo: input.Codigo,
		Ativo:  input.Ativo,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("id", created.ID).Str("nome", created.Nome).Msg("type_product created")
	return created, nil
}

func (s *CatalogService) ListTypeProducts(ctx context.Context, filter ports.ListFilter) ([]domain.TypeProduct, error) {
	return s.typeProducts.List(ctx, normalizeFilter(filter))
}

func (s *CatalogService) UpdateTypeProduct(ctx context.Context, id int64, input ports.TypeProductInput) error {
	err := s.typeProducts.Update(ctx, &domain.TypeProduct{
		ID:     id,
		Nome:   input.Nome,
		Codigo: input.Codigo,
		Ativo:  input.Ativo,
	})
	if err != nil {
		return err
	}
	s.logger.Info().Int64("id", id).Msg("type_product updated")
	return nil
}

func (s *CatalogService) DeleteTypeProduct(ctx context.Context, id int64) error {
	if err := s.typeProducts.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("id", id).Msg("type_product deleted")
	return nil
}

func (s *CatalogService) CreateProduto(ctx context.Context, input ports.ProdutoInput) (*domain.Produto, error) {
	created, err := s.produtos.Create(ctx, &domain.Produto{
		Nome:        input.Nome,
		TipoProduto: input.TipoProduto,
		Ativo:       input.Ativo,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("id", created.ID).Str("nome", created.Nome).Msg("produto created")
	return created, nil
}

func (s *CatalogService) ListProdutos(ctx context.Context, filter ports.ListFilter) ([]domain.Produto, error) {
	return s.produtos.List(ctx, normalizeFilter(filter))
}

func (s *CatalogService) UpdateProduto(ctx context.Context, id int64, input ports.ProdutoInput) error {
	err := s.produtos.Update(ctx, &domain.Produto{
		ID:          id,
		Nome:        input.Nome,
		TipoProduto: input.TipoProduto,
		Ativo:       input.Ativo,
	})
	if err != nil {
		return err
	}
	s.logger.Info().Int64("id", id).Msg("produto updated")
	return nil
}

func (s *CatalogService) DeleteProduto(ctx context.Context, id int64) error {
	if err := s.produtos.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("id", id).Msg("produto deleted")
	return nil
}
