package ports

// TokenClaims são os dados carregados em um token de acesso
type TokenClaims struct {
	UserID uint
	Email  string
}

// TokenService define a interface para emissão e verificação de tokens bearer
type TokenService interface {
	Sign(claims TokenClaims) (string, error)
	Verify(token string) (*TokenClaims, error)
}
