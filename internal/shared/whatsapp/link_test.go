package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuoteLink(t *testing.T) {
	link := BuildQuoteLink("+55 (31) 3772-6397", QuoteRequest{
		Name:    "João Silva",
		Company: "Fumos BH",
		City:    "Sete Lagoas",
		Phone:   "31999990000",
		Need:    "Reposição de lâminas",
		Machine: "Corte A",
	})

	assert.True(t, strings.HasPrefix(link, "https://wa.me/553137726397?text="), link)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	text := parsed.Query().Get("text")
	assert.Contains(t, text, "João Silva")
	assert.Contains(t, text, "Fumos BH")
	assert.Contains(t, text, "Corte A")
	assert.Contains(t, text, "31999990000")
}

func TestBuildQuoteLinkSkipsEmptyFields(t *testing.T) {
	link := BuildQuoteLink("553137726397", QuoteRequest{
		Name:  "Ana",
		Phone: "31988887777",
	})

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	text := parsed.Query().Get("text")
	assert.NotContains(t, text, "Empresa")
	assert.NotContains(t, text, "Cidade")
	assert.NotContains(t, text, "Máquina")
}

func TestSanitizeNumber(t *testing.T) {
	assert.Equal(t, "553137726397", SanitizeNumber("+55 (31) 3772-6397"))
	assert.Equal(t, "", SanitizeNumber("abc"))
}
