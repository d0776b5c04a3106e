package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Params represents list pagination, filtering and sorting parameters.
type Params struct {
	Page    int
	Limit   int
	Filters map[string]string
	Sort    SortParams
}

// SortParams represents sorting parameters
type SortParams struct {
	Field string
	Order string
}

// ParseQueryParams extracts standardized list query parameters.
// Pagination uses page and limit; filters use the form
// filters[field_name]=value; sorting uses sort[field]=name&sort[order]=asc|desc.
func ParseQueryParams(c *gin.Context) Params {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 500 {
		limit = 500
	}

	filters := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if strings.HasPrefix(key, "filters[") && strings.HasSuffix(key, "]") {
			fieldName := key[8 : len(key)-1]
			if len(values) > 0 && values[0] != "" {
				filters[fieldName] = values[0]
			}
		}
	}

	sortField := c.Query("sort[field]")
	sortOrder := c.Query("sort[order]")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	return Params{
		Page:    page,
		Limit:   limit,
		Filters: filters,
		Sort: SortParams{
			Field: sortField,
			Order: sortOrder,
		},
	}
}

// ApplyFilters applies whitelisted equality filters to a GORM query
func ApplyFilters(query *gorm.DB, filters map[string]string, allowedFields map[string]string) *gorm.DB {
	for field, value := range filters {
		if dbField, allowed := allowedFields[field]; allowed && value != "" {
			query = query.Where(fmt.Sprintf("%s = ?", dbField), value)
		}
	}
	return query
}

// ApplySort applies whitelisted sorting to a GORM query, falling back to the
// given default order expression.
func ApplySort(query *gorm.DB, sort SortParams, allowedFields map[string]string, defaultOrder string) *gorm.DB {
	if dbField, allowed := allowedFields[sort.Field]; allowed {
		return query.Order(fmt.Sprintf("%s %s", dbField, sort.Order))
	}
	return query.Order(defaultOrder)
}

// ApplyPagination applies page/limit windowing to a GORM query.
func ApplyPagination(query *gorm.DB, params Params) *gorm.DB {
	offset := (params.Page - 1) * params.Limit
	return query.Offset(offset).Limit(params.Limit)
}
