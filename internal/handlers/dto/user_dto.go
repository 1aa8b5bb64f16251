package dto

// CreateUserRequest representa a requisição para criar um usuário
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// UpdateUserRequest representa uma atualização parcial de usuário
type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=100"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6,max=72"`
}

// MessageResponse é uma resposta simples de confirmação
type MessageResponse struct {
	Message string `json:"message"`
}
