package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mercadinho/catalog-api/internal/api/metrics"
	"github.com/mercadinho/catalog-api/internal/core/domain"
	"github.com/mercadinho/catalog-api/internal/core/ports"
)

// TypeProductHandler handles HTTP requests for the type_products resource.
type TypeProductHandler struct {
	service ports.CatalogService
}

func NewTypeProductHandler(service ports.CatalogService) *TypeProductHandler {
	return &TypeProductHandler{service: service}
}

// Create handles POST /type_products.
//
// @Summary      Create a type_product
// @Tags         type_products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      typeProductRequest  true  "Type product details"
// @Success      201   {object}  domain.TypeProduct
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /type_products [post]
func (h *TypeProductHandler) Create(c echo.Context) error {
	var req typeProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.service.CreateTypeProduct(c.Request().Context(), ports.TypeProductInput{
		Nome:   req.Nome,
		Codigo: req.Codigo,
		Ativo:  *req.Ativo,
	})
	if err != nil {
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("type_products", "create").Inc()
	return c.JSON(http.StatusCreated, created)
}

// List handles GET /type_products.
//
// @Summary      List type_products
// @Tags         type_products
// @Produce      json
// @Security     BearerAuth
// @Param        filter  query     string  false  "Substring match on nome"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Page size (default 10)"
// @Param        order   query     string  false  "Sort by nome: asc or desc"
// @Success      200     {array}   domain.TypeProduct
// @Failure      401     {object}  errorResponse
// @Router       /type_products [get]
func (h *TypeProductHandler) List(c echo.Context) error {
	records, err := h.service.ListTypeProducts(c.Request().Context(), listFilterFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// Update handles PUT /type_products/:id.
//
// @Summary      Update a type_product
// @Tags         type_products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Record id"
// @Param        body  body      typeProductRequest  true  "Replacement fields"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /type_products/{id} [put]
func (h *TypeProductHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "type product not found"})
	}

	var req typeProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	err := h.service.UpdateTypeProduct(c.Request().Context(), id, ports.TypeProductInput{
		Nome:   req.Nome,
		Codigo: req.Codigo,
		Ativo:  *req.Ativo,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "type product not found"})
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("type_products", "update").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Type product updated successfully."})
}

// Delete handles DELETE /type_products/:id.
//
// @Summary      Delete a type_product
// @Tags         type_products
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Record id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /type_products/{id} [delete]
func (h *TypeProductHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "type product not found"})
	}

	if err := h.service.DeleteTypeProduct(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "type product not found"})
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("type_products", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Type product deleted successfully."})
}
