package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/employee-management-api/internal/dto"
	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
	"github.com/yukikurage/employee-management-api/internal/services"
)

// ToolHandler serves /v1/employees/:id/tools
type ToolHandler struct {
	toolService *services.ToolService
}

// NewToolHandler creates a new ToolHandler
func NewToolHandler(toolService *services.ToolService) *ToolHandler {
	return &ToolHandler{
		toolService: toolService,
	}
}

// AddTool handles POST /v1/employees/:id/tools
func (h *ToolHandler) AddTool(c *gin.Context) {
	employeeID, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.ToolDTO
	if !bindJSON(c, &req) {
		return
	}

	tool := dto.ToToolModel(req)
	added, err := h.toolService.AddTool(employeeID, &tool)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToToolDTO(*added))
}

// GetTools handles GET /v1/employees/:id/tools
func (h *ToolHandler) GetTools(c *gin.Context) {
	employeeID, ok := idParam(c)
	if !ok {
		return
	}

	tools, err := h.toolService.GetTools(employeeID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToToolDTOs(tools))
}

// DeleteTools handles DELETE /v1/employees/:id/tools
func (h *ToolHandler) DeleteTools(c *gin.Context) {
	employeeID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.toolService.RemoveTools(employeeID); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
