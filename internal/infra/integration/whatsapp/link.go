package whatsapp

import "strings"

// NormalizePhone remove tudo que não é dígito.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Link monta o deep link wa.me que a interface abre para conversar com o
// contato.
func Link(phone string) string {
	return "https://wa.me/" + NormalizePhone(phone)
}
