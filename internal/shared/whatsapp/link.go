// Package whatsapp builds wa.me deep links for the public quote flow.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// QuoteRequest carries the fields submitted on the public quote form.
type QuoteRequest struct {
	Name    string
	Company string
	City    string
	Phone   string
	Need    string
	Machine string
}

// BuildQuoteLink assembles the deep link a valid quote submission redirects
// to. number must already be digits-only with country code (e.g.
// "553137726397").
func BuildQuoteLink(number string, req QuoteRequest) string {
	var lines []string
	lines = append(lines, "Olá! Gostaria de um orçamento.")
	lines = append(lines, "Nome: "+req.Name)
	if req.Company != "" {
		lines = append(lines, "Empresa: "+req.Company)
	}
	if req.City != "" {
		lines = append(lines, "Cidade: "+req.City)
	}
	lines = append(lines, "Telefone: "+req.Phone)
	if req.Machine != "" {
		lines = append(lines, "Máquina: "+req.Machine)
	}
	if req.Need != "" {
		lines = append(lines, "Necessidade: "+req.Need)
	}

	text := strings.Join(lines, "\n")
	return fmt.Sprintf("https://wa.me/%s?text=%s", SanitizeNumber(number), url.QueryEscape(text))
}

// SanitizeNumber strips everything but digits from a configured number.
func SanitizeNumber(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
