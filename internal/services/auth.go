package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veloraops/backoffice-backend/internal/apierr"
	"github.com/veloraops/backoffice-backend/internal/logger"
	"github.com/veloraops/backoffice-backend/internal/repos"
	"github.com/veloraops/backoffice-backend/internal/requestdata"
	"github.com/veloraops/backoffice-backend/internal/types"
	"github.com/veloraops/backoffice-backend/internal/utils"
)

type AdminRegister struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthService interface {
	Register(ctx context.Context, in AdminRegister) (*types.AdminUser, error)
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
}

type authService struct {
	db            *gorm.DB
	log           *logger.Logger
	adminUserRepo repos.AdminUserRepo
	jwtSecretKey  string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewAuthService(
	db *gorm.DB,
	baseLog *logger.Logger,
	adminUserRepo repos.AdminUserRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) AuthService {
	return &authService{
		db:            db,
		log:           baseLog.With("service", "AuthService"),
		adminUserRepo: adminUserRepo,
		jwtSecretKey:  jwtSecretKey,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (s *authService) Register(ctx context.Context, in AdminRegister) (*types.AdminUser, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return nil, apierr.Validation("email is required")
	}
	if in.Password == "" {
		return nil, apierr.Validation("password is required")
	}

	exists, err := s.adminUserRepo.EmailExists(ctx, nil, email)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if exists {
		return nil, apierr.Duplicate("email %q already in use", email)
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, apierr.Persistence(err)
	}

	row := &types.AdminUser{
		ID:        uuid.New(),
		Email:     email,
		Password:  hashed,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
	}
	if err := s.adminUserRepo.Create(ctx, nil, row); err != nil {
		s.log.Error("Register: admin user write failed", "error", err, "email", email)
		return nil, apierr.Persistence(err)
	}
	return row, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apierr.Validation("email and password are required")
	}

	user, err := s.adminUserRepo.GetByEmail(ctx, nil, email)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if user == nil {
		return nil, apierr.Validation("invalid email or password")
	}
	if err := utils.CheckPassword(user.Password, password); err != nil {
		return nil, apierr.Validation("invalid email or password")
	}

	return s.issueTokens(user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := utils.ParseToken(s.jwtSecretKey, refreshToken, utils.TokenTypeRefresh)
	if err != nil {
		return nil, apierr.Validation("invalid refresh token")
	}

	user, err := s.adminUserRepo.GetByID(ctx, nil, claims.AdminID)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if user == nil {
		return nil, apierr.Validation("invalid refresh token")
	}

	return s.issueTokens(user)
}

func (s *authService) issueTokens(user *types.AdminUser) (*TokenPair, error) {
	access, err := utils.GenerateToken(s.jwtSecretKey, user.ID, user.Email, utils.TokenTypeAccess, s.accessTTL)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	refresh, err := utils.GenerateToken(s.jwtSecretKey, user.ID, user.Email, utils.TokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	claims, err := utils.ParseToken(s.jwtSecretKey, tokenString, utils.TokenTypeAccess)
	if err != nil {
		return ctx, err
	}
	rd := &requestdata.RequestData{
		TokenString: tokenString,
		AdminID:     claims.AdminID,
		Email:       claims.Email,
	}
	return requestdata.WithRequestData(ctx, rd), nil
}
