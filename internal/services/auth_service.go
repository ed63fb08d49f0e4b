package services

import (
	"context"
	"fmt"
	"time"

	"promoadmin/internal/auth"
	"promoadmin/internal/config"
	"promoadmin/internal/logger"
	"promoadmin/internal/repositories"
	"promoadmin/internal/services/dto"
	"promoadmin/internal/utils"
	"promoadmin/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// ForgotPassword emails a reset token. Unknown addresses are not
	// reported to the caller.
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
}

type authService struct {
	userRepo repositories.UserRepository
	email    *utils.EmailSender
}

func NewAuthService(userRepo repositories.UserRepository, email *utils.EmailSender) AuthService {
	return &authService{userRepo: userRepo, email: email}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid email or password", 401)
		}
		return nil, apperrors.InternalError(err)
	}

	if !user.IsActive {
		return nil, apperrors.NewForbiddenError("Account is disabled")
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid email or password", 401)
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "admin logged in", "user_id", user.ID)
	return &dto.LoginResponse{Token: token, User: user}, nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			logger.CtxWarn(ctx, "password reset requested for unknown email", "email", email)
			return nil
		}
		return apperrors.InternalError(err)
	}

	token, err := resetToken(user.ID)
	if err != nil {
		return apperrors.InternalError(err)
	}

	body := fmt.Sprintf(
		"<p>A password reset was requested for your account.</p>"+
			"<p>Reset token (valid for 30 minutes):</p><pre>%s</pre>", token)
	if err := s.email.Send(user.Email, "Password reset", body); err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternalError, "auth", "Failed to send reset email", 500)
	}

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	userID, err := parseResetToken(req.Token)
	if err != nil {
		return apperrors.New(apperrors.CodeInvalidToken, "auth", "Invalid or expired reset token", 401)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return notFoundOr(err, "auth", "User not found")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}
	user.PasswordHash = hashed

	if err := s.userRepo.Update(ctx, user); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "password reset completed", "user_id", user.ID)
	return nil
}

// Reset tokens are short-lived JWTs with a dedicated subject prefix, so no
// token table is needed.

const resetSubjectPrefix = "pwreset:"

func resetToken(userID string) (string, error) {
	cfg := config.GetConfig()
	claims := jwt.RegisteredClaims{
		Subject:   resetSubjectPrefix + userID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * time.Minute)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

func parseResetToken(tokenStr string) (string, error) {
	cfg := config.GetConfig()
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid reset token")
	}
	if len(claims.Subject) <= len(resetSubjectPrefix) || claims.Subject[:len(resetSubjectPrefix)] != resetSubjectPrefix {
		return "", fmt.Errorf("invalid reset token subject")
	}
	return claims.Subject[len(resetSubjectPrefix):], nil
}
