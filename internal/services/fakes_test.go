package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/snaplink/snaplink-backend/internal/domain/entities"
	"github.com/snaplink/snaplink-backend/internal/domain/errors"
	"github.com/snaplink/snaplink-backend/internal/domain/ports"
)

// Fakes em memória espelhando o contrato dos repositories GORM,
// inclusive a violação de UNIQUE no INSERT.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[uint]*entities.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email.String() == user.Email.String() {
			return errors.ErrEmailAlreadyExists
		}
	}

	user.ID = r.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	r.nextID++

	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok || user.IsDeleted() {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email.String() == email && !user.IsDeleted() {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entities.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[user.ID]
	if !ok || stored.IsDeleted() {
		return 0, nil
	}

	copied := *user
	copied.UpdatedAt = time.Now()
	r.users[user.ID] = &copied
	return 1, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[id]
	if !ok || stored.IsDeleted() {
		return 0, nil
	}

	stored.SoftDelete()
	return 1, nil
}

type fakeUrlRepo struct {
	mu     sync.Mutex
	nextID uint
	urls   map[uint]*entities.Url

	// failCreates força ErrShortCodeTaken nos próximos N INSERTs,
	// simulando a corrida perdida entre checagem e INSERT
	failCreates int
}

func newFakeUrlRepo() *fakeUrlRepo {
	return &fakeUrlRepo{nextID: 1, urls: make(map[uint]*entities.Url)}
}

func (r *fakeUrlRepo) Create(_ context.Context, url *entities.Url) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failCreates > 0 {
		r.failCreates--
		return errors.ErrShortCodeTaken
	}

	for _, u := range r.urls {
		if u.ShortCode.String() == url.ShortCode.String() {
			return errors.ErrShortCodeTaken
		}
	}

	url.ID = r.nextID
	url.CreatedAt = time.Now()
	url.UpdatedAt = time.Now()
	r.nextID++

	copied := *url
	r.urls[url.ID] = &copied
	return nil
}

func (r *fakeUrlRepo) FindByShortCode(_ context.Context, code string) (*entities.Url, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, url := range r.urls {
		if url.ShortCode.String() == code && !url.IsDeleted() {
			copied := *url
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUrlRepo) FindByOriginalURL(_ context.Context, originalURL string, ownerID *uint) (*entities.Url, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, url := range r.urls {
		if url.OriginalURL != originalURL || url.IsDeleted() {
			continue
		}
		if ownerID == nil && url.UserID == nil {
			copied := *url
			return &copied, nil
		}
		if ownerID != nil && url.UserID != nil && *url.UserID == *ownerID {
			copied := *url
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUrlRepo) FindByOwner(_ context.Context, ownerID uint) ([]*entities.Url, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*entities.Url, 0)
	for _, url := range r.urls {
		if url.UserID != nil && *url.UserID == ownerID && !url.IsDeleted() {
			copied := *url
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeUrlRepo) ShortCodeExists(_ context.Context, code string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Deletadas contam: a constraint UNIQUE do banco cobre todas as linhas
	for _, url := range r.urls {
		if url.ShortCode.String() == code {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUrlRepo) IncrementClicks(_ context.Context, id uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	url, ok := r.urls[id]
	if !ok || url.IsDeleted() {
		return 0, nil
	}

	url.Clicks++
	return 1, nil
}

func (r *fakeUrlRepo) UpdateOriginalURL(_ context.Context, id uint, newOriginalURL string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	url, ok := r.urls[id]
	if !ok || url.IsDeleted() {
		return 0, nil
	}

	url.OriginalURL = newOriginalURL
	url.UpdatedAt = time.Now()
	return 1, nil
}

func (r *fakeUrlRepo) Delete(_ context.Context, ownerID, id uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	url, ok := r.urls[id]
	if !ok || url.IsDeleted() || url.UserID == nil || *url.UserID != ownerID {
		return 0, nil
	}

	now := time.Now()
	url.DeletedAt = &now
	return 1, nil
}

func (r *fakeUrlRepo) DeleteByOwner(_ context.Context, ownerID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for _, url := range r.urls {
		if url.UserID != nil && *url.UserID == ownerID && !url.IsDeleted() {
			url.DeletedAt = &now
		}
	}
	return nil
}

// fakeUnitOfWork executa a função direto; os fakes não têm transação real
type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (fakeUnitOfWork) Commit(context.Context) error                       { return nil }
func (fakeUnitOfWork) Rollback(context.Context) error                     { return nil }
func (fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// fakeHasher prefixa a senha, suficiente para testar o fluxo de re-hash
type fakeHasher struct{}

func (fakeHasher) Hash(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func (fakeHasher) Compare(hash, plaintext string) error {
	if hash != "hashed:"+plaintext {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

type fakeTokenService struct{}

func (fakeTokenService) Sign(claims ports.TokenClaims) (string, error) {
	return fmt.Sprintf("token-%d-%s", claims.UserID, claims.Email), nil
}

func (fakeTokenService) Verify(token string) (*ports.TokenClaims, error) {
	return nil, fmt.Errorf("not implemented")
}

// noopLogger descarta tudo
type noopLogger struct{}

func (noopLogger) Info(string, ...any)          {}
func (noopLogger) Error(string, ...any)         {}
func (noopLogger) Debug(string, ...any)         {}
func (noopLogger) Warn(string, ...any)          {}
func (l noopLogger) With(...any) ports.Logger   { return l }
