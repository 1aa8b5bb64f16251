package services

import (
	"context"

	"github.com/snaplink/snaplink-backend/internal/domain/entities"
	"github.com/snaplink/snaplink-backend/internal/domain/errors"
	"github.com/snaplink/snaplink-backend/internal/domain/ports"
	"github.com/snaplink/snaplink-backend/internal/domain/repositories"
	"github.com/snaplink/snaplink-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo repositories.UserRepository
	urlRepo  repositories.UrlRepository
	uow      ports.UnitOfWork
	hasher   ports.PasswordHasher
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	urlRepo repositories.UrlRepository,
	uow ports.UnitOfWork,
	hasher ports.PasswordHasher,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		urlRepo:  urlRepo,
		uow:      uow,
		hasher:   hasher,
		logger:   logger,
	}
}

// CreateUserInput representa os dados para criar um usuário
type CreateUserInput struct {
	Username string
	Email    string
	Password string
}

// UpdateUserInput representa uma atualização parcial de usuário.
// Campos nil não são alterados.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
}

// CreateUser cria um novo usuário com a senha hasheada
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	s.logger.Info("creating user", "email", email.String())

	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Username:     input.Username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser busca um usuário ativo por ID
func (s *UserService) GetUser(ctx context.Context, id uint) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// FindByEmail busca um usuário ativo por email (uso do fluxo de login).
// Retorna (nil, nil) quando não há usuário.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return s.userRepo.FindByEmail(ctx, email)
}

// UpdateUser aplica uma atualização parcial; uma nova senha é re-hasheada
func (s *UserService) UpdateUser(ctx context.Context, id uint, input UpdateUserInput) error {
	if input.Username == nil && input.Email == nil && input.Password == nil {
		return errors.ErrNothingToUpdate
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.ErrUserNotFound
	}

	if input.Username != nil {
		user.Username = *input.Username
	}

	if input.Email != nil {
		email, err := valueobjects.NewEmail(*input.Email)
		if err != nil {
			return errors.ErrInvalidEmail
		}
		user.Email = email
	}

	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	}

	affected, err := s.userRepo.Update(ctx, user)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.ErrUpdateFailed
	}

	return nil
}

// DeleteUser faz soft delete do usuário e de todas as suas URLs.
// As duas escritas acontecem na mesma transação: um crash entre elas não
// pode deixar um usuário deletado com links ativos.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		affected, err := s.userRepo.Delete(txCtx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return errors.ErrUserNotFound
		}

		return s.urlRepo.DeleteByOwner(txCtx, id)
	})
}
