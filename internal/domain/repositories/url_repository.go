package repositories

import (
	"context"

	"github.com/snaplink/snaplink-backend/internal/domain/entities"
)

// UrlRepository define a interface para persistência de URLs encurtadas.
// Os métodos Find* consideram apenas registros não deletados e retornam
// (nil, nil) quando não há registro.
type UrlRepository interface {
	Create(ctx context.Context, url *entities.Url) error
	FindByShortCode(ctx context.Context, code string) (*entities.Url, error)
	// FindByOriginalURL busca por (original_url, dono). ownerID nil seleciona
	// URLs anônimas, não "qualquer dono".
	FindByOriginalURL(ctx context.Context, originalURL string, ownerID *uint) (*entities.Url, error)
	FindByOwner(ctx context.Context, ownerID uint) ([]*entities.Url, error)
	// ShortCodeExists verifica existência do código entre todos os registros,
	// deletados inclusive, já que a constraint UNIQUE do banco vale para todos.
	ShortCodeExists(ctx context.Context, code string) (bool, error)
	// IncrementClicks executa clicks = clicks + 1 no banco, atômico, e
	// retorna o número de linhas afetadas (0 se a URL sumiu ou foi deletada).
	IncrementClicks(ctx context.Context, id uint) (int64, error)
	// UpdateOriginalURL troca o destino preservando o short code.
	UpdateOriginalURL(ctx context.Context, id uint, newOriginalURL string) (int64, error)
	// Delete faz soft delete escopado por dono e retorna linhas afetadas.
	Delete(ctx context.Context, ownerID, id uint) (int64, error)
	// DeleteByOwner faz soft delete de todas as URLs ativas do dono.
	DeleteByOwner(ctx context.Context, ownerID uint) error
}
