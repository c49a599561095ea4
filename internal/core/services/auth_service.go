package services

import (
	"context"
	"errors"
	"log"

	"campus-portal/internal/adapters/persistence/models"
	"campus-portal/internal/adapters/persistence/repositories"
	"campus-portal/internal/core/domain"
	"campus-portal/internal/pkg/password"
	"campus-portal/internal/pkg/token"

	"gorm.io/gorm"
)

// AuthService handles registration and login business logic
type AuthService struct {
	userRepo repositories.UserRepository
	hasher   *password.Hasher
	tokens   *token.Service
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, hasher *password.Hasher, tokens *token.Service) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AuthResult represents a successful login
type AuthResult struct {
	Token string               `json:"token"`
	User  *models.UserResponse `json:"user"`
}

// Register registers a new user
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*models.UserResponse, error) {
	// 1. Normalize and validate role
	role := domain.NormalizeRole(input.Role)
	if !domain.IsValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	// 2. Check if email already registered
	count, err := s.userRepo.CountByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, domain.ErrEmailTaken
	}

	// 3. Hash password
	hashedPassword, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	// 4. Create user. The store's unique index on email backs the
	// check above; the repository maps a constraint violation to
	// domain.ErrEmailTaken when two registrations race.
	user := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashedPassword,
		Role:     role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	if user.ID == 0 {
		return nil, domain.ErrPersistence
	}

	log.Printf("✅ User registered: %s (%s)", user.Email, user.Role)

	return user.ToResponse(), nil
}

// Login authenticates a user and issues a session token.
// Unknown email, wrong role and wrong password all return
// domain.ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResult, error) {
	role := domain.NormalizeRole(input.Role)

	// 1. Find user by email and role
	user, err := s.userRepo.GetByEmailAndRole(ctx, input.Email, role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	// 2. Verify password
	if !s.hasher.Verify(input.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	// 3. Issue token
	sessionToken, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User logged in: %s", user.Email)

	return &AuthResult{
		Token: sessionToken,
		User:  user.ToResponse(),
	}, nil
}

// GetUserByID gets a user by ID
func (s *AuthService) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
