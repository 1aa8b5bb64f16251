package ports

// PasswordHasher define a interface para hash unidirecional de senhas.
// O fator de custo é configurado na construção da implementação.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(hash, plaintext string) error
}
