package domain

import (
	"strconv"
	"strings"
	"time"
)

// Month é o número do mês (1-12). Zero representa um mês não reconhecido
// e, por não existir em nenhuma data, não casa com nenhum registro.
type Month int

const UnknownMonth Month = 0

// ParseMonth converte o nome do mês (ex: "March", "mar", "3") para o seu número
func ParseMonth(name string) Month {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return UnknownMonth
	}

	if n, err := strconv.Atoi(name); err == nil {
		if n >= 1 && n <= 12 {
			return Month(n)
		}
		return UnknownMonth
	}

	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		if name == full || name == full[:3] {
			return Month(m)
		}
	}

	return UnknownMonth
}

func (m Month) Valid() bool {
	return m >= 1 && m <= 12
}

func (m Month) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return time.Month(m).String()
}
