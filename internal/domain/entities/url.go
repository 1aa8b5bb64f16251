package entities

import (
	"errors"
	neturl "net/url"
	"time"

	"github.com/snaplink/snaplink-backend/internal/domain/valueobjects"
)

// Url representa uma URL encurtada.
// UserID é opcional: uma URL sem dono é anônima.
type Url struct {
	ID          uint
	OriginalURL string
	ShortCode   valueobjects.ShortCode
	UserID      *uint
	Clicks      int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft delete
}

// IsDeleted verifica se a URL foi deletada (soft delete)
func (u *Url) IsDeleted() bool {
	return u.DeletedAt != nil
}

// IsAnonymous verifica se a URL não tem dono
func (u *Url) IsAnonymous() bool {
	return u.UserID == nil
}

// Validate valida regras de negócio da entidade Url
func (u *Url) Validate() error {
	if u.OriginalURL == "" {
		return errors.New("original url is required")
	}

	parsed, err := neturl.Parse(u.OriginalURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.New("original url must be absolute")
	}

	if u.ShortCode.String() == "" {
		return errors.New("short code is required")
	}

	if u.Clicks < 0 {
		return errors.New("clicks must not be negative")
	}

	return nil
}
