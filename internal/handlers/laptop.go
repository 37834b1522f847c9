package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/employee-management-api/internal/dto"
	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
	"github.com/yukikurage/employee-management-api/internal/services"
)

// LaptopHandler serves /v1/employees/:id/laptops
type LaptopHandler struct {
	laptopService *services.LaptopService
}

// NewLaptopHandler creates a new LaptopHandler
func NewLaptopHandler(laptopService *services.LaptopService) *LaptopHandler {
	return &LaptopHandler{
		laptopService: laptopService,
	}
}

// AddLaptop handles POST /v1/employees/:id/laptops
func (h *LaptopHandler) AddLaptop(c *gin.Context) {
	employeeID, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.LaptopDTO
	if !bindJSON(c, &req) {
		return
	}

	laptop := dto.ToLaptopModel(req)
	created, err := h.laptopService.AddLaptop(employeeID, &laptop)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLaptopDTO(*created))
}

// GetLaptop handles GET /v1/employees/:id/laptops
func (h *LaptopHandler) GetLaptop(c *gin.Context) {
	employeeID, ok := idParam(c)
	if !ok {
		return
	}

	laptop, err := h.laptopService.GetLaptop(employeeID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLaptopDTO(*laptop))
}

// UpdateLaptop handles PUT /v1/employees/:id/laptops
func (h *LaptopHandler) UpdateLaptop(c *gin.Context) {
	employeeID, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.LaptopDTO
	if !bindJSON(c, &req) {
		return
	}

	laptop := dto.ToLaptopModel(req)
	updated, err := h.laptopService.UpdateLaptop(employeeID, &laptop)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLaptopDTO(*updated))
}

// DeleteLaptop handles DELETE /v1/employees/:id/laptops
func (h *LaptopHandler) DeleteLaptop(c *gin.Context) {
	employeeID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.laptopService.RemoveLaptop(employeeID); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
