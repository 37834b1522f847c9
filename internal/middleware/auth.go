package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/employee-management-api/internal/constants"
	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
	"github.com/yukikurage/employee-management-api/internal/models"
)

// Authenticator verifies bearer tokens and resolves their subject.
type Authenticator interface {
	VerifyToken(token string) (string, error)
	LoadUser(username string) (*models.User, error)
}

// Principal is the authenticated caller stored in the request context.
type Principal struct {
	UserID   uint64
	Username string
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller in the context.
func RequireAuth(authenticator Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(constants.HeaderAuthorization)
		if !strings.HasPrefix(header, constants.BearerPrefix) {
			apierrors.Unauthorized(c, "Missing bearer token")
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, constants.BearerPrefix))
		if token == "" {
			apierrors.Unauthorized(c, "Missing bearer token")
			return
		}

		subject, err := authenticator.VerifyToken(token)
		if err != nil {
			apierrors.Unauthorized(c, unauthorizedMessage(err))
			return
		}

		if _, exists := GetPrincipal(c); exists {
			c.Next()
			return
		}

		user, err := authenticator.LoadUser(subject)
		if err != nil {
			if apierrors.KindOf(err) == apierrors.KindInternal {
				apierrors.Respond(c, err)
				return
			}
			apierrors.Unauthorized(c, "Unknown user")
			return
		}
		if user.Username != subject {
			apierrors.Unauthorized(c, "Token subject does not match user")
			return
		}

		c.Set(constants.ContextKeyUser, Principal{UserID: user.ID, Username: user.Username})
		c.Next()
	}
}

func unauthorizedMessage(err error) string {
	var e *apierrors.Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return "Invalid token"
}

// GetPrincipal retrieves the authenticated caller from context
func GetPrincipal(c *gin.Context) (Principal, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return Principal{}, false
	}
	principal, ok := value.(Principal)
	return principal, ok
}
