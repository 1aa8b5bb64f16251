package dto

import (
	"time"

	"github.com/snaplink/snaplink-backend/internal/domain/entities"
)

// CreateUrlRequest representa a requisição para encurtar uma URL.
// UserId só é considerado em requisições anônimas; com token, o id do
// token prevalece.
type CreateUrlRequest struct {
	OriginalURL string `json:"originalUrl" binding:"required,url"`
	UserID      *uint  `json:"userId" binding:"omitempty"`
}

// UpdateUrlRequest representa um rename de destino escopado pelo dono
type UpdateUrlRequest struct {
	OriginalURL    string `json:"originalUrl" binding:"required,url"`
	NewOriginalURL string `json:"newOriginalUrl" binding:"required,url"`
}

// SnapLinkResponse carrega o link público de uma URL encurtada
type SnapLinkResponse struct {
	SnapLink string `json:"snapLink"`
}

// UrlResponse representa uma URL encurtada na listagem do dono
type UrlResponse struct {
	ID          uint      `json:"id"`
	OriginalURL string    `json:"originalUrl"`
	ShortCode   string    `json:"shortCode"`
	Clicks      int64     `json:"clicks"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToUrlResponse converte uma entidade Url para UrlResponse
func ToUrlResponse(url *entities.Url) UrlResponse {
	return UrlResponse{
		ID:          url.ID,
		OriginalURL: url.OriginalURL,
		ShortCode:   url.ShortCode.String(),
		Clicks:      url.Clicks,
		CreatedAt:   url.CreatedAt,
	}
}

// ToUrlResponses converte uma lista de entidades Url para UrlResponse
func ToUrlResponses(urls []*entities.Url) []UrlResponse {
	responses := make([]UrlResponse, len(urls))
	for i, url := range urls {
		responses[i] = ToUrlResponse(url)
	}
	return responses
}
