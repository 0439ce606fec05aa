package request

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"library-catalog/pkg/pagination"
)

// ParseID reads the numeric :id route parameter.
// ok=false means the path cannot resolve to a row (treated as not found).
func ParseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// ParsePage reads the page/limit query parameters, defaulting to page 1
// with 10 items per page.
func ParsePage(c *gin.Context) pagination.Params {
	params := pagination.Params{Page: 1, PerPage: pagination.DefaultPerPage}
	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		params.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		params.PerPage = v
	}
	return params.Normalize()
}

// FilterParam resolves a filter that has a canonical name and a legacy
// alias; the canonical parameter wins when both are supplied. The alias is
// a backward-compatibility shim for older clients that sent `search`.
func FilterParam(c *gin.Context, canonical, legacy string) string {
	if v := c.Query(canonical); v != "" {
		return v
	}
	return c.Query(legacy)
}

// OptionalInt64 reads an optional integer query parameter.
func OptionalInt64(c *gin.Context, name string) *int64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
