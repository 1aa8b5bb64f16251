package services

import (
	"context"
	"strings"

	"github.com/snaplink/snaplink-backend/internal/domain/errors"
	"github.com/snaplink/snaplink-backend/internal/domain/ports"
	"github.com/snaplink/snaplink-backend/internal/domain/repositories"
)

// AuthService contém a lógica de autenticação
type AuthService struct {
	userRepo repositories.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenService
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login verifica as credenciais e emite um token de acesso.
// Email desconhecido e senha errada produzem o mesmo erro: a resposta
// nunca revela qual dos dois falhou.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	normalized := strings.TrimSpace(strings.ToLower(email))

	user, err := s.userRepo.FindByEmail(ctx, normalized)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", errors.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return "", errors.ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(ports.TokenClaims{
		UserID: user.ID,
		Email:  user.Email.String(),
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("user logged in", "user_id", user.ID)

	return token, nil
}
