package services

import (
	"context"
	"errors"
	"time"

	"github.com/bizbooks/bookkeeping_app/internal/apperrors"
	"github.com/bizbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/bizbooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/bizbooks/bookkeeping_app/internal/dto"
	"github.com/bizbooks/bookkeeping_app/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuthServiceConfig carries the JWT signing parameters.
type AuthServiceConfig struct {
	JWTSecret   string
	JWTExpiry   time.Duration
	JWTIssuer   string
	JWTAudience string
}

type authService struct {
	BaseService
	userRepo portsrepo.UserRepository
	cfg      AuthServiceConfig
}

// NewAuthService creates the authentication service.
func NewAuthService(userRepo portsrepo.UserRepository, cfg AuthServiceConfig) portssvc.AuthSvc {
	return &authService{userRepo: userRepo, cfg: cfg}
}

// Register creates a user with a hashed password, seeds the default
// categories and the initial cash account, and mints a token.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, string, error) {
	req.Normalize()

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, "", apperrors.NewAppError(500, "failed to hash password", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	categories := make([]domain.Category, 0, len(domain.DefaultCategories))
	for _, seed := range domain.DefaultCategories {
		categories = append(categories, domain.Category{
			CategoryID:  uuid.NewString(),
			UserID:      user.UserID,
			Name:        seed.Name,
			Type:        seed.Type,
			AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
		})
	}

	account := domain.Account{
		AccountID:   uuid.NewString(),
		UserID:      user.UserID,
		Name:        "Cash",
		AccountType: domain.AccountCash,
		Balance:     decimal.Zero,
		Description: "Default cash account",
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.userRepo.CreateUser(ctx, user, categories, account); err != nil {
		s.LogError(ctx, err, "Failed to create user", "email", req.Email)
		return nil, "", err
	}

	token, err := utils.GenerateJWT(user.UserID, user.Username, user.Email,
		s.cfg.JWTSecret, s.cfg.JWTExpiry, s.cfg.JWTIssuer, s.cfg.JWTAudience)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate token", "user_id", user.UserID)
		return nil, "", apperrors.NewAppError(500, "failed to generate token", err)
	}

	s.LogInfo(ctx, "User registered", "user_id", user.UserID)
	return &user, token, nil
}

// Login verifies credentials and mints a token. A missing user and a wrong
// password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error) {
	req.Normalize()

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", apperrors.NewAppError(401, "invalid email or password", apperrors.ErrForbidden)
		}
		s.LogError(ctx, err, "Failed to look up user", "email", req.Email)
		return nil, "", err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, "", apperrors.NewAppError(401, "invalid email or password", apperrors.ErrForbidden)
	}

	token, err := utils.GenerateJWT(user.UserID, user.Username, user.Email,
		s.cfg.JWTSecret, s.cfg.JWTExpiry, s.cfg.JWTIssuer, s.cfg.JWTAudience)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate token", "user_id", user.UserID)
		return nil, "", apperrors.NewAppError(500, "failed to generate token", err)
	}

	s.LogInfo(ctx, "User logged in", "user_id", user.UserID)
	return user, token, nil
}

func (s *authService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}
