package valueobjects

import (
	"strings"
	"testing"
)

func TestGenerateShortCode(t *testing.T) {
	t.Run("gera código com tamanho fixo", func(t *testing.T) {
		code, err := GenerateShortCode()
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if len(code.String()) != ShortCodeLength {
			t.Errorf("esperava tamanho %d, obteve %d", ShortCodeLength, len(code.String()))
		}
	})

	t.Run("usa apenas o alfabeto base62", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			code, err := GenerateShortCode()
			if err != nil {
				t.Fatalf("esperava sucesso, obteve erro: %v", err)
			}
			for _, r := range code.String() {
				if !strings.ContainsRune(shortCodeAlphabet, r) {
					t.Fatalf("caractere '%c' fora do alfabeto em '%s'", r, code.String())
				}
			}
		}
	})

	t.Run("códigos consecutivos raramente colidem", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 1000; i++ {
			code, err := GenerateShortCode()
			if err != nil {
				t.Fatalf("esperava sucesso, obteve erro: %v", err)
			}
			if seen[code.String()] {
				t.Fatalf("colisão inesperada em 1000 amostras: %s", code.String())
			}
			seen[code.String()] = true
		}
	})
}

func TestNewShortCode(t *testing.T) {
	t.Run("aceita código válido", func(t *testing.T) {
		code, err := NewShortCode("aB3xY9")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if code.String() != "aB3xY9" {
			t.Errorf("esperava 'aB3xY9', obteve '%s'", code.String())
		}
	})

	t.Run("rejeita tamanho errado", func(t *testing.T) {
		for _, value := range []string{"", "abc", "abcdefg"} {
			if _, err := NewShortCode(value); err == nil {
				t.Errorf("esperava erro para '%s'", value)
			}
		}
	})

	t.Run("rejeita caracteres fora do alfabeto", func(t *testing.T) {
		for _, value := range []string{"ab c12", "ab-c12", "abç123"} {
			if _, err := NewShortCode(value); err == nil {
				t.Errorf("esperava erro para '%s'", value)
			}
		}
	})
}
