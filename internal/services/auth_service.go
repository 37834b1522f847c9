package services

import (
	"errors"
	"strings"

	"github.com/yukikurage/employee-management-api/internal/auth"
	"github.com/yukikurage/employee-management-api/internal/constants"
	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const invalidCredentialsMessage = "Invalid username or password"

// AuthService handles authentication related business logic.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// CredentialsInput holds a username and a plaintext password.
type CredentialsInput struct {
	Username string
	Password string
}

func usernameTaken(username string) error {
	return fail("user", 0, apierrors.Conflictf("Username %s already exists", username))
}

// Register creates a user with a bcrypt hash of the password.
func (s *AuthService) Register(input CredentialsInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, usernameTaken(username)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, internalf("user", 0, err, "failed to check username")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), constants.BcryptCost)
	if err != nil {
		return nil, internalf("user", 0, err, "failed to hash password")
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, usernameTaken(username)
		}
		return nil, internalf("user", 0, err, "failed to create user")
	}

	return user, nil
}

// Login verifies credentials and returns a signed token. Unknown users and
// wrong passwords fail identically.
func (s *AuthService) Login(input CredentialsInput) (string, error) {
	user, err := s.userRepo.FindByUsername(strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fail("user", 0, apierrors.NewInvalidCredentials(invalidCredentialsMessage))
		}
		return "", internalf("user", 0, err, "failed to find user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return "", fail("user", user.ID, apierrors.NewInvalidCredentials(invalidCredentialsMessage))
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", internalf("user", user.ID, err, "failed to issue token")
	}
	return token, nil
}

// VerifyToken checks a bearer token and returns its subject. The returned
// error wraps auth.ErrTokenExpired or auth.ErrTokenInvalid.
func (s *AuthService) VerifyToken(token string) (string, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		message := "Invalid token"
		if errors.Is(err, auth.ErrTokenExpired) {
			message = "Token expired"
		}
		return "", &apierrors.Error{Kind: apierrors.KindUnauthorized, Message: message, Err: err}
	}
	return claims.Subject, nil
}

// LoadUser finds a user by username.
func (s *AuthService) LoadUser(username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFoundf("User %s not found", username)
		}
		return nil, internalf("user", 0, err, "failed to load user")
	}
	return user, nil
}
