package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/employee-management-api/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// NewPaginationParams builds params from a 0-based page and a page size,
// clamping out-of-range values to the defaults. The page is capped so the
// offset cannot overflow.
func NewPaginationParams(page, size int) PaginationParams {
	if page < constants.DefaultPage {
		page = constants.DefaultPage
	}
	if size < constants.MinPageSize || size > constants.MaxPageSize {
		size = constants.DefaultPageSize
	}
	if page > math.MaxInt/size {
		page = math.MaxInt / size
	}

	return PaginationParams{
		Page:   page,
		Limit:  size,
		Offset: page * size,
	}
}

// GetPaginationParams extracts and validates the page and size query parameters
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.DefaultPage)))
	if err != nil {
		page = constants.DefaultPage
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(constants.DefaultPageSize)))
	if err != nil {
		size = constants.DefaultPageSize
	}

	return NewPaginationParams(page, size)
}
