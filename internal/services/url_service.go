package services

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/snaplink/snaplink-backend/internal/domain/entities"
	"github.com/snaplink/snaplink-backend/internal/domain/errors"
	"github.com/snaplink/snaplink-backend/internal/domain/ports"
	"github.com/snaplink/snaplink-backend/internal/domain/repositories"
	"github.com/snaplink/snaplink-backend/internal/domain/valueobjects"
)

const (
	// maxAllocationAttempts limita o loop gerar-e-checar do allocator
	maxAllocationAttempts = 10
	// maxCreateRetries limita as realocações após violação de UNIQUE
	maxCreateRetries = 3
)

// UrlService contém a lógica de negócio para URLs encurtadas
type UrlService struct {
	urlRepo repositories.UrlRepository
	logger  ports.Logger
}

// NewUrlService cria um novo UrlService
func NewUrlService(urlRepo repositories.UrlRepository, logger ports.Logger) *UrlService {
	return &UrlService{
		urlRepo: urlRepo,
		logger:  logger,
	}
}

// CreateUrlInput representa os dados para encurtar uma URL.
// OwnerID nil significa URL anônima; não há sentinela sobrecarregada.
type CreateUrlInput struct {
	OriginalURL string
	OwnerID     *uint
}

// UpdateUrlInput representa um rename escopado pelo dono
type UpdateUrlInput struct {
	OriginalURL    string
	NewOriginalURL string
}

// UpdateUrlResult indica o desfecho do rename: ou a URL foi atualizada,
// ou já existia um registro com o novo destino e seu link é retornado
type UpdateUrlResult struct {
	Updated  bool
	SnapLink string
}

// Create encurta uma URL. Se já existe registro ativo para
// (originalUrl, dono) retorna o link existente sem inserir nada.
func (s *UrlService) Create(ctx context.Context, input CreateUrlInput, host string) (string, error) {
	existing, err := s.urlRepo.FindByOriginalURL(ctx, input.OriginalURL, input.OwnerID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return s.snapLink(host, existing.ShortCode.String()), nil
	}

	for attempt := 0; attempt < maxCreateRetries; attempt++ {
		code, err := s.allocateShortCode(ctx)
		if err != nil {
			return "", err
		}

		url := &entities.Url{
			OriginalURL: input.OriginalURL,
			ShortCode:   code,
			UserID:      input.OwnerID,
		}
		if err := url.Validate(); err != nil {
			return "", errors.ErrInvalidURL
		}

		err = s.urlRepo.Create(ctx, url)
		if err == nil {
			s.logger.Info("short url created",
				"short_code", code.String(),
				"anonymous", url.IsAnonymous(),
			)
			return s.snapLink(host, code.String()), nil
		}

		// Allocator concorrente venceu a corrida entre a checagem de
		// existência e o INSERT; gerar outro código e tentar de novo
		if stderrors.Is(err, errors.ErrShortCodeTaken) {
			s.logger.Warn("short code collision on insert, reallocating",
				"short_code", code.String(),
				"attempt", attempt+1,
			)
			continue
		}

		return "", err
	}

	return "", errors.ErrCodeSpaceExhausted
}

// Resolve busca o destino de um código e contabiliza o clique.
// O incremento é atômico no banco; se a URL foi deletada entre a busca
// e o incremento, o redirect é tratado como not-found.
func (s *UrlService) Resolve(ctx context.Context, code string) (string, error) {
	url, err := s.urlRepo.FindByShortCode(ctx, code)
	if err != nil {
		return "", err
	}
	if url == nil {
		return "", errors.ErrUrlNotFound
	}

	affected, err := s.urlRepo.IncrementClicks(ctx, url.ID)
	if err != nil {
		return "", err
	}
	if affected == 0 {
		return "", errors.ErrUrlNotFound
	}

	return url.OriginalURL, nil
}

// Update renomeia o destino de uma URL do dono, preservando o short code.
// Se o dono já tem um registro ativo com o novo destino, retorna o link
// existente sem mutação (mesma regra de dedup da criação).
func (s *UrlService) Update(ctx context.Context, ownerID uint, input UpdateUrlInput, host string) (*UpdateUrlResult, error) {
	owner := ownerID
	existing, err := s.urlRepo.FindByOriginalURL(ctx, input.NewOriginalURL, &owner)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &UpdateUrlResult{
			Updated:  false,
			SnapLink: s.snapLink(host, existing.ShortCode.String()),
		}, nil
	}

	url, err := s.urlRepo.FindByOriginalURL(ctx, input.OriginalURL, &owner)
	if err != nil {
		return nil, err
	}
	if url == nil {
		return nil, errors.ErrUrlNotFound
	}

	affected, err := s.urlRepo.UpdateOriginalURL(ctx, url.ID, input.NewOriginalURL)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, errors.ErrUpdateFailed
	}

	return &UpdateUrlResult{Updated: true}, nil
}

// List retorna todas as URLs ativas do dono.
// Lista vazia é um resultado válido, não um erro.
func (s *UrlService) List(ctx context.Context, ownerID uint) ([]*entities.Url, error) {
	return s.urlRepo.FindByOwner(ctx, ownerID)
}

// Delete faz soft delete de uma URL escopada por (dono, id)
func (s *UrlService) Delete(ctx context.Context, ownerID, id uint) error {
	affected, err := s.urlRepo.Delete(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.ErrUrlNotFound
	}
	return nil
}

// allocateShortCode gera códigos aleatórios até achar um livre.
// A checagem é point-in-time; a constraint UNIQUE no INSERT é quem decide.
func (s *UrlService) allocateShortCode(ctx context.Context) (valueobjects.ShortCode, error) {
	for attempt := 0; attempt < maxAllocationAttempts; attempt++ {
		code, err := valueobjects.GenerateShortCode()
		if err != nil {
			return valueobjects.ShortCode{}, err
		}

		exists, err := s.urlRepo.ShortCodeExists(ctx, code.String())
		if err != nil {
			return valueobjects.ShortCode{}, err
		}
		if !exists {
			return code, nil
		}
	}

	return valueobjects.ShortCode{}, errors.ErrCodeSpaceExhausted
}

func (s *UrlService) snapLink(host, code string) string {
	return fmt.Sprintf("http://%s/%s", host, code)
}
