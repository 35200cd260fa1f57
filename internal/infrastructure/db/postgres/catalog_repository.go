package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mercadinho/catalog-api/internal/core/domain"
	"github.com/mercadinho/catalog-api/internal/core/ports"
)

// orderClause maps the validated sort order to SQL. Only the two enum values
// ever reach this point, so no user input is interpolated.
func orderClause(order domain.SortOrder) string {
	if order == domain.OrderDesc {
		return "ORDER BY nome DESC"
	}
	return "ORDER BY nome ASC"
}

type TypeProductRepository struct {
	pool *pgxpool.Pool
}

func NewTypeProductRepository(pool *pgxpool.Pool) *TypeProductRepository {
	return &TypeProductRepository{pool: pool}
}

func (r *TypeProductRepository) Create(ctx context.Context, tp *domain.TypeProduct) (*domain.TypeProduct, error) {
	const query = `
		INSERT INTO type_products (nome, codigo, ativo)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	created := *tp
	err := r.pool.QueryRow(ctx, query, tp.Nome, tp.Codigo, tp.Ativo).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert type_product: %w", err)
	}
	return &created, nil
}

func (r *TypeProductRepository) List(ctx context.Context, filter ports.ListFilter) ([]domain.TypeProduct, error) {
	query := fmt.Sprintf(`
		SELECT id, nome, codigo, ativo, created_at, updated_at
		FROM type_products
		WHERE nome ILIKE '%%' || $1 || '%%'
		%s
		LIMIT $2 OFFSET $3
	`, orderClause(filter.Order))

	rows, err := r.pool.Query(ctx, query, filter.NameFilter, filter.Limit, filter.Offset())
	if err != nil {
		return nil, fmt.Errorf("list type_products: %w", err)
	}
	defer rows.Close()

	records := make([]domain.TypeProduct, 0)
	for rows.Next() {
		var tp domain.TypeProduct
		if err := rows.Scan(&tp.ID, &tp.Nome, &tp.Codigo, &tp.Ativo, &tp.CreatedAt, &tp.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan type_product: %w", err)
		}
		records = append(records, tp)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("list type_products: %w", rows.Err())
	}

	return records, nil
}

func (r *TypeProductRepository) Update(ctx context.Context, tp *domain.TypeProduct) error {
	const query = `
		UPDATE type_products
		SET nome = $2, codigo = $3, ativo = $4, updated_at = now()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, tp.ID, tp.Nome, tp.Codigo, tp.Ativo)
	if err != nil {
		return fmt.Errorf("update type_product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TypeProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM type_products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete type_product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type ProdutoRepository struct {
	pool *pgxpool.Pool
}

func NewProdutoRepository(pool *pgxpool.Pool) *ProdutoRepository {
	return &ProdutoRepository{pool: pool}
}

func (r *ProdutoRepository) Create(ctx context.Context, p *domain.Produto) (*domain.Produto, error) {
	const query = `
		INSERT INTO produto (nome, tipo_produto, ativo)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	created := *p
	err := r.pool.QueryRow(ctx, query, p.Nome, p.TipoProduto, p.Ativo).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert produto: %w", err)
	}
	return &created, nil
}

func (r *ProdutoRepository) List(ctx context.Context, filter ports.ListFilter) ([]domain.Produto, error) {
	query := fmt.Sprintf(`
		SELECT id, nome, tipo_produto, ativo, created_at, updated_at
		FROM produto
		WHERE nome ILIKE '%%' || $1 || '%%'
		%s
		LIMIT $2 OFFSET $3
	`, orderClause(filter.Order))

	rows, err := r.pool.Query(ctx, query, filter.NameFilter, filter.Limit, filter.Offset())
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()

	records := make([]domain.Produto, 0)
	for rows.Next() {
		var p domain.Produto
		if err := rows.Scan(&p.ID, &p.Nome, &p.TipoProduto, &p.Ativo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		records = append(records, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("list produtos: %w", rows.Err())
	}

	return records, nil
}

func (r *ProdutoRepository) Update(ctx context.Context, p *domain.Produto) error {
	const query = `
		UPDATE produto
		SET nome = $2, tipo_produto = $3, ativo = $4, updated_at = now()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, p.ID, p.Nome, p.TipoProduto, p.Ativo)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProdutoRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM produto WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
