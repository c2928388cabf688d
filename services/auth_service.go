package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"anket.link/configs/configslog"
	"anket.link/models"
	"anket.link/pkg/tokens"
	"anket.link/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrAuthInvalidCredentials AuthServiceError = "e-posta veya şifre hatalı"
	ErrAuthEmailTaken         AuthServiceError = "bu e-posta adresi zaten kayıtlı"
	ErrAuthInvalidInput       AuthServiceError = "geçersiz kullanıcı verisi"
	ErrAuthRegistrationFailed AuthServiceError = "kullanıcı oluşturulamadı"
	ErrAuthTokenFailed        AuthServiceError = "oturum anahtarı oluşturulamadı"
	ErrUserNotFound           AuthServiceError = "kullanıcı bulunamadı"
)

const minPasswordLength = 8

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// IAuthService kayıt, giriş ve profil işlemleri için arayüz.
type IAuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	GetProfile(ctx context.Context, userID string) (*models.User, error)
}

type AuthService struct {
	repo   repositories.IUserRepository
	tokens *tokens.Manager
}

func NewAuthService(db *gorm.DB, tokenManager *tokens.Manager) IAuthService {
	return &AuthService{
		repo:   repositories.NewUserRepository(db),
		tokens: tokenManager,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: ad ve e-posta zorunludur", ErrAuthInvalidInput)
	}
	if len(input.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: şifre en az %d karakter olmalıdır", ErrAuthInvalidInput, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Register: şifre hashlenemedi", zap.Error(err))
		return nil, ErrAuthRegistrationFailed
	}

	user := &models.User{Name: name, Email: email, Password: string(hash)}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrAuthEmailTaken
		}
		return nil, ErrAuthRegistrationFailed
	}

	configslog.SLog.Infof("Kullanıcı oluşturuldu: ID %s", user.ID)
	return user, nil
}

// Login kimlik bilgilerini doğrular ve imzalı token döndürür.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAuthInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrAuthInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Name)
	if err != nil {
		configslog.Log.Error("Login: token üretilemedi", zap.String("user_id", user.ID), zap.Error(err))
		return nil, ErrAuthTokenFailed
	}
	return &LoginResult{Token: token, User: user}, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

var _ IAuthService = (*AuthService)(nil)
