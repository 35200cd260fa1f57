package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mercadinho/catalog-api/internal/api/metrics"
	"github.com/mercadinho/catalog-api/internal/core/domain"
	"github.com/mercadinho/catalog-api/internal/core/ports"
)

// ProdutoHandler handles HTTP requests for the produto resource.
type ProdutoHandler struct {
	service ports.CatalogService
}

func NewProdutoHandler(service ports.CatalogService) *ProdutoHandler {
	return &ProdutoHandler{service: service}
}

// Create handles POST /produto.
//
// @Summary      Create a produto
// @Tags         produto
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      produtoRequest  true  "Product details"
// @Success      201   {object}  domain.Produto
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /produto [post]
func (h *ProdutoHandler) Create(c echo.Context) error {
	var req produtoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.service.CreateProduto(c.Request().Context(), ports.ProdutoInput{
		Nome:        req.Nome,
		TipoProduto: req.TipoProduto,
		Ativo:       *req.Ativo,
	})
	if err != nil {
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("produto", "create").Inc()
	return c.JSON(http.StatusCreated, created)
}

// List handles GET /produto.
//
// @Summary      List produtos
// @Tags         produto
// @Produce      json
// @Security     BearerAuth
// @Param        filter  query     string  false  "Substring match on nome"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Page size (default 10)"
// @Param        order   query     string  false  "Sort by nome: asc or desc"
// @Success      200     {array}   domain.Produto
// @Failure      401     {object}  errorResponse
// @Router       /produto [get]
func (h *ProdutoHandler) List(c echo.Context) error {
	records, err := h.service.ListProdutos(c.Request().Context(), listFilterFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// Update handles PUT /produto/:id.
//
// @Summary      Update a produto
// @Tags         produto
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Record id"
// @Param        body  body      produtoRequest  true  "Replacement fields"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /produto/{id} [put]
func (h *ProdutoHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
	}

	var req produtoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	err := h.service.UpdateProduto(c.Request().Context(), id, ports.ProdutoInput{
		Nome:        req.Nome,
		TipoProduto: req.TipoProduto,
		Ativo:       *req.Ativo,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("produto", "update").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Product updated successfully."})
}

// Delete handles DELETE /produto/:id.
//
// @Summary      Delete a produto
// @Tags         produto
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Record id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /produto/{id} [delete]
func (h *ProdutoHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
	}

	if err := h.service.DeleteProduto(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("produto", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Product deleted successfully."})
}
