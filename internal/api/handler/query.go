package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mercadinho/catalog-api/internal/core/domain"
	"github.com/mercadinho/catalog-api/internal/core/ports"
)

// listFilterFromQuery parses filter/page/limit/order leniently: no parameter
// combination is ever rejected, invalid values fall back to defaults.
func listFilterFromQuery(c echo.Context) ports.ListFilter {
	filter := ports.ListFilter{
		NameFilter: c.QueryParam("filter"),
		Page:       1,
		Limit:      10,
		Order:      domain.OrderAsc,
	}

	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil && page >= 1 {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil && limit >= 1 {
		filter.Limit = limit
	}
	if c.QueryParam("order") == string(domain.OrderDesc) {
		filter.Order = domain.OrderDesc
	}

	return filter
}

// pathID parses the :id path segment. Returns ok=false on garbage, which
// handlers map to 404 (a non-numeric id can never name a record).
func pathID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
