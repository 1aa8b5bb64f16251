package postgres

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"

	"github.com/snaplink/snaplink-backend/internal/domain/entities"
	"github.com/snaplink/snaplink-backend/internal/domain/errors"
	"github.com/snaplink/snaplink-backend/internal/domain/repositories"
	"github.com/snaplink/snaplink-backend/internal/domain/valueobjects"
)

// UrlRepository implementa repositories.UrlRepository
type UrlRepository struct {
	db *gorm.DB
}

// NewUrlRepository cria um novo UrlRepository
func NewUrlRepository(db *gorm.DB) repositories.UrlRepository {
	return &UrlRepository{db: db}
}

func (r *UrlRepository) Create(ctx context.Context, url *entities.Url) error {
	model := r.toModel(url)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		// Dois allocators podem passar pela checagem de existência com o
		// mesmo código; a constraint UNIQUE decide e o service realoca
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.ErrShortCodeTaken
		}
		return err
	}

	url.ID = model.ID
	url.CreatedAt = time.Unix(model.CreatedAt, 0)
	url.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *UrlRepository) FindByShortCode(ctx context.Context, code string) (*entities.Url, error) {
	var model UrlModel

	db := r.getDB(ctx)
	// Soft delete: URL deletada se comporta como inexistente
	if err := db.Where("short_code = ? AND deleted_at IS NULL", code).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UrlRepository) FindByOriginalURL(ctx context.Context, originalURL string, ownerID *uint) (*entities.Url, error) {
	var model UrlModel

	db := r.getDB(ctx)
	query := db.Where("original_url = ? AND deleted_at IS NULL", originalURL)
	if ownerID != nil {
		query = query.Where("user_id = ?", *ownerID)
	} else {
		query = query.Where("user_id IS NULL")
	}

	if err := query.First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UrlRepository) FindByOwner(ctx context.Context, ownerID uint) ([]*entities.Url, error) {
	var models []*UrlModel

	db := r.getDB(ctx)
	if err := db.Where("user_id = ? AND deleted_at IS NULL", ownerID).
		Order("created_at").
		Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *UrlRepository) ShortCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64

	db := r.getDB(ctx)
	// Sem filtro de deleted_at: a constraint UNIQUE cobre todas as linhas
	if err := db.Model(&UrlModel{}).Where("short_code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *UrlRepository) IncrementClicks(ctx context.Context, id uint) (int64, error) {
	db := r.getDB(ctx)

	// Incremento atômico no banco; leitura-modificação-escrita perderia
	// cliques sob redirects concorrentes
	result := db.Model(&UrlModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		UpdateColumn("clicks", gorm.Expr("clicks + ?", 1))
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *UrlRepository) UpdateOriginalURL(ctx context.Context, id uint, newOriginalURL string) (int64, error) {
	db := r.getDB(ctx)

	result := db.Model(&UrlModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]interface{}{
			"original_url": newOriginalURL,
			"updated_at":   time.Now().Unix(),
		})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *UrlRepository) Delete(ctx context.Context, ownerID, id uint) (int64, error) {
	db := r.getDB(ctx)

	now := time.Now().Unix()
	result := db.Model(&UrlModel{}).
		Where("id = ? AND user_id = ? AND deleted_at IS NULL", id, ownerID).
		Update("deleted_at", now)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *UrlRepository) DeleteByOwner(ctx context.Context, ownerID uint) error {
	db := r.getDB(ctx)

	now := time.Now().Unix()
	return db.Model(&UrlModel{}).
		Where("user_id = ? AND deleted_at IS NULL", ownerID).
		Update("deleted_at", now).Error
}

// getDB extrai DB do contexto (para suportar transações)
func (r *UrlRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Conversores
func (r *UrlRepository) toModel(url *entities.Url) *UrlModel {
	var deletedAt *int64
	if url.DeletedAt != nil {
		ts := url.DeletedAt.Unix()
		deletedAt = &ts
	}

	return &UrlModel{
		ID:          url.ID,
		OriginalURL: url.OriginalURL,
		ShortCode:   url.ShortCode.String(),
		UserID:      url.UserID,
		Clicks:      url.Clicks,
		DeletedAt:   deletedAt,
	}
}

func (r *UrlRepository) toEntity(model *UrlModel) (*entities.Url, error) {
	code, err := valueobjects.NewShortCode(model.ShortCode)
	if err != nil {
		return nil, err
	}

	var deletedAt *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletedAt = &ts
	}

	return &entities.Url{
		ID:          model.ID,
		OriginalURL: model.OriginalURL,
		ShortCode:   code,
		UserID:      model.UserID,
		Clicks:      model.Clicks,
		CreatedAt:   time.Unix(model.CreatedAt, 0),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0),
		DeletedAt:   deletedAt,
	}, nil
}

func (r *UrlRepository) toEntities(models []*UrlModel) ([]*entities.Url, error) {
	urls := make([]*entities.Url, 0, len(models))

	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		urls = append(urls, entity)
	}

	return urls, nil
}
