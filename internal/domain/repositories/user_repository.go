package repositories

import (
	"context"

	"github.com/snaplink/snaplink-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários.
// Os métodos Find* retornam (nil, nil) quando não há registro ativo.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	// Update persiste as alterações e retorna o número de linhas afetadas.
	Update(ctx context.Context, user *entities.User) (int64, error)
	// Delete faz soft delete e retorna o número de linhas afetadas.
	Delete(ctx context.Context, id uint) (int64, error)
}
