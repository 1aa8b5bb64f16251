package valueobjects

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

var (
	ErrInvalidShortCode = errors.New("invalid short code format")
)

// ShortCodeLength é o tamanho fixo do código público.
// Deve bater com o varchar(6) da coluna short_code.
const ShortCodeLength = 6

const shortCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

var shortCodeBase = big.NewInt(int64(len(shortCodeAlphabet)))

// ShortCode é um value object para o identificador público de uma URL encurtada
type ShortCode struct {
	value string
}

// NewShortCode cria um ShortCode validado a partir de um valor existente
func NewShortCode(code string) (ShortCode, error) {
	if len(code) != ShortCodeLength {
		return ShortCode{}, ErrInvalidShortCode
	}

	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(shortCodeAlphabet, rune(code[i])) {
			return ShortCode{}, ErrInvalidShortCode
		}
	}

	return ShortCode{value: code}, nil
}

// GenerateShortCode gera um ShortCode aleatório em base62 usando crypto/rand
func GenerateShortCode() (ShortCode, error) {
	var b strings.Builder
	b.Grow(ShortCodeLength)

	for i := 0; i < ShortCodeLength; i++ {
		idx, err := rand.Int(rand.Reader, shortCodeBase)
		if err != nil {
			return ShortCode{}, err
		}
		b.WriteByte(shortCodeAlphabet[idx.Int64()])
	}

	return ShortCode{value: b.String()}, nil
}

// String retorna o valor do código
func (s ShortCode) String() string {
	return s.value
}
