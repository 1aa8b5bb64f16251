package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	t.Run("hash e compare fecham o ciclo", func(t *testing.T) {
		hasher := NewBcryptHasher(bcrypt.MinCost)

		hash, err := hasher.Hash("secret1")
		require.NoError(t, err)
		require.NotEqual(t, "secret1", hash)

		require.NoError(t, hasher.Compare(hash, "secret1"))
	})

	t.Run("senha errada falha na comparação", func(t *testing.T) {
		hasher := NewBcryptHasher(bcrypt.MinCost)

		hash, err := hasher.Hash("secret1")
		require.NoError(t, err)

		require.Error(t, hasher.Compare(hash, "wrong"))
	})

	t.Run("custo fora do intervalo cai no padrão", func(t *testing.T) {
		hasher := NewBcryptHasher(999)

		hash, err := hasher.Hash("secret1")
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		require.Equal(t, bcrypt.DefaultCost, cost)
	})
}
