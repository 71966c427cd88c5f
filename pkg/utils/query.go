package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePositiveInt lê um inteiro positivo de um parâmetro de query,
// retornando fallback quando o valor está vazio
func ParsePositiveInt(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("valor inválido %q: esperado um número inteiro", raw)
	}

	if value < 1 {
		return 0, fmt.Errorf("valor inválido %d: deve ser maior que zero", value)
	}

	return value, nil
}
