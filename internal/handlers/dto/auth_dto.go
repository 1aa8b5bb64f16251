package dto

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carrega o token de acesso emitido
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}
