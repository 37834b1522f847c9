package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
	"github.com/yukikurage/employee-management-api/internal/validation"
)

// bindJSON binds the request body and writes the 400 response on failure.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apierrors.ValidationFailed(c, validation.FieldErrors(err))
		return false
	}
	return true
}

// idParam parses the :id path parameter. Numbers past the signed 64-bit
// range name no stored employee and get a 404.
func idParam(c *gin.Context) (uint64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 63)
	if errors.Is(err, strconv.ErrRange) {
		apierrors.NotFound(c, "Employee with id "+raw+" not found")
		return 0, false
	}
	if err != nil || id == 0 {
		apierrors.ValidationFailed(c, map[string]string{"id": "Id should be a positive integer"})
		return 0, false
	}
	return id, true
}
