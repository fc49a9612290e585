package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/liveiq-reports/infrastructure/configstore"
	"github.com/vfg2006/liveiq-reports/internal/config"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/pkg/apiErrors"
)

const defaultTokenTTL = 12 * time.Hour

// ConfigVault é o arquivo de configuração cifrado, aberto com a senha do usuário
type ConfigVault interface {
	Unlock(password string) (bool, error)
	Reset(password string) (string, error)
	Unlocked() bool
	Path() string
}

type Authenticator interface {
	Login(password string) (*domain.LoginResponse, error)
	Unlock(password string) (bool, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	ResetConfig(password string) (*domain.ResetConfigResponse, error)
}

type Service struct {
	vault ConfigVault
	cfg   *config.Config
	now   func() time.Time
}

func NewService(vault ConfigVault, cfg *config.Config) Authenticator {
	return &Service{
		vault: vault,
		cfg:   cfg,
		now:   time.Now,
	}
}

// Unlock abre o arquivo de configuração; created indica que um arquivo padrão foi criado
func (s *Service) Unlock(password string) (bool, error) {
	if password == "" {
		return false, NewAuthError(ErrMissingPassword, apiErrors.ErrMissingRequiredData, "")
	}

	created, err := s.vault.Unlock(password)
	if err != nil {
		if errors.Is(err, configstore.ErrInvalidPassword) {
			return false, NewAuthError(ErrInvalidPassword, apiErrors.ErrInvalidCredentials, "")
		}
		return false, NewAuthError(ErrStorageOperation, apiErrors.ErrStorageOperation, err.Error())
	}

	return created, nil
}

func (s *Service) Login(password string) (*domain.LoginResponse, error) {
	created, err := s.Unlock(password)
	if err != nil {
		return nil, err
	}

	expiresAt := s.now().Add(s.tokenTTL())
	token, err := s.generateJWT(expiresAt)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	logrus.WithFields(logrus.Fields{
		"file":    s.vault.Path(),
		"created": created,
	}).Info("Configuração desbloqueada")

	return &domain.LoginResponse{
		Token:     token,
		Created:   created,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *Service) generateJWT(expiresAt time.Time) (string, error) {
	claims := domain.Claims{
		SessionID:  uuid.NewString(),
		ConfigFile: s.vault.Path(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

// ValidateToken confere assinatura e validade. Um token válido não serve se o
// processo foi reiniciado e a configuração ainda não foi desbloqueada.
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	if !s.vault.Unlocked() {
		return nil, NewAuthError(ErrConfigLocked, apiErrors.ErrConfigLocked, "")
	}

	return claims, nil
}

// ResetConfig confere a senha, faz backup do arquivo atual e grava a configuração padrão
func (s *Service) ResetConfig(password string) (*domain.ResetConfigResponse, error) {
	if password == "" {
		return nil, NewAuthError(ErrMissingPassword, apiErrors.ErrMissingRequiredData, "")
	}

	backup, err := s.vault.Reset(password)
	if err != nil {
		if errors.Is(err, configstore.ErrInvalidPassword) {
			return nil, NewAuthError(ErrInvalidPassword, apiErrors.ErrInvalidCredentials, "")
		}
		return nil, NewAuthError(ErrStorageOperation, apiErrors.ErrStorageOperation, err.Error())
	}

	return &domain.ResetConfigResponse{Backup: backup}, nil
}

func (s *Service) tokenTTL() time.Duration {
	if s.cfg.Auth.TokenTTL > 0 {
		return s.cfg.Auth.TokenTTL
	}
	return defaultTokenTTL
}
