package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/employee-management-api/internal/dto"
	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
	"github.com/yukikurage/employee-management-api/internal/services"
)

// AuthHandler coordinates user registration and login.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new user.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.CredentialsDTO
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authService.Register(services.CredentialsInput{
		Username: req.UserName,
		Password: req.Password,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// Login authenticates a user and returns a bearer token as a JSON string.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.CredentialsDTO
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.authService.Login(services.CredentialsInput{
		Username: req.UserName,
		Password: req.Password,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}
