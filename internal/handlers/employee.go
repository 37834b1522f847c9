package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/employee-management-api/internal/dto"
	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
	"github.com/yukikurage/employee-management-api/internal/services"
	"github.com/yukikurage/employee-management-api/internal/utils"
)

// EmployeeHandler serves /v1/employees
type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

// CreateEmployee handles POST /v1/employees
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req dto.EmployeeWriteDTO
	if !bindJSON(c, &req) {
		return
	}

	employee := dto.ToEmployeeModel(req)
	created, err := h.employeeService.AddEmployee(&employee)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEmployeeWriteDTO(*created))
}

// GetEmployee handles GET /v1/employees/:id
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	employee, err := h.employeeService.GetEmployee(id)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeDetailDTO(*employee))
}

// ListEmployees handles GET /v1/employees?page=&size=
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.employeeService.ListEmployees(utils.GetPaginationParams(c))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeDTOs(employees))
}

// UpdateEmployee handles PUT /v1/employees; the target id is in the body
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var req dto.EmployeeWriteDTO
	if !bindJSON(c, &req) {
		return
	}
	if req.ID == 0 {
		apierrors.ValidationFailed(c, map[string]string{"id": "Id is required"})
		return
	}

	employee := dto.ToEmployeeModel(req)
	updated, err := h.employeeService.UpdateEmployee(&employee)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeWriteDTO(*updated))
}

// DeleteEmployee handles DELETE /v1/employees/:id
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.employeeService.RemoveEmployee(id); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
