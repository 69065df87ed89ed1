package user

import (
	"context"
	"fmt"
	"time"

	"github.com/Sanushoffl/toteebags/cmd/config"
	"github.com/Sanushoffl/toteebags/constant"
	"github.com/Sanushoffl/toteebags/model"
	redisrepo "github.com/Sanushoffl/toteebags/repository/redis"
	userrepo "github.com/Sanushoffl/toteebags/repository/user"
	"github.com/Sanushoffl/toteebags/utils/errors"
	"github.com/Sanushoffl/toteebags/utils/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	AdminLogin(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (string, error)
}

type UserAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository) UserApp {
	return &UserAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
	}
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	userID, err := s.userRepo.Insert(ctx, &model.UserEntity{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		logger.Error("[Register] err userRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return s.issueToken(ctx, userID)
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	return s.issueToken(ctx, user.ID)
}

// AdminLogin authenticates the panel against the configured admin
// credentials and issues a token with the admin subject.
func (s *UserAppImpl) AdminLogin(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	if s.config.Auth.AdminEmail == "" || req.Email != s.config.Auth.AdminEmail {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.config.Auth.AdminPasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	return s.issueToken(ctx, constant.AdminSubject)
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid claims")
	}

	subject := claims.Subject
	if subject == "" {
		return "", fmt.Errorf("token missing subject")
	}

	jti := claims.ID
	if jti == "" {
		return "", fmt.Errorf("token missing jti")
	}

	// Check Redis session key
	sessionSubject, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return "", fmt.Errorf("invalid or expired session")
	}
	if sessionSubject != subject {
		return "", fmt.Errorf("token does not match session")
	}

	return subject, nil
}

func (s *UserAppImpl) issueToken(ctx context.Context, subject string) (*model.AuthResponse, error) {
	token, jti, err := s.generateJWT(subject)
	if err != nil {
		logger.Error("[issueToken] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, jti, subject, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[issueToken] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AuthResponse{
		Success: true,
		Token:   token,
	}, nil
}

// generateJWT creates a JWT token for the subject
func (s *UserAppImpl) generateJWT(subject string) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}
