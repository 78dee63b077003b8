package utils

import "math"

// RoundTemperature arredonda a temperatura para o inteiro mais próximo,
// como exibido no widget de clima do dashboard.
func RoundTemperature(f float64) int {
	return int(math.Round(f))
}

// OnlyDigits remove qualquer caractere que não seja dígito. O campo de
// preço do formulário aceita apenas números inteiros.
func OnlyDigits(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
