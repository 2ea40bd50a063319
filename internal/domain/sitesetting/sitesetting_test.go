package sitesetting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFallsBackFieldByField(t *testing.T) {
	setting, err := ReconstructSiteSetting(SoloID,
		"GIFT Customizado", "", "5531988887777", "", "", "", "",
		time.Now())
	require.NoError(t, err)

	resolved := setting.Resolve(Defaults{
		SiteName:       "GIFT Excellence",
		Tagline:        "Máquinas para fumo desde 1990",
		WhatsAppNumber: "553137726397",
		ContactPhone:   "(31) 3772-6397",
	})

	assert.Equal(t, "GIFT Customizado", resolved.SiteName)
	assert.Equal(t, "Máquinas para fumo desde 1990", resolved.Tagline)
	assert.Equal(t, "5531988887777", resolved.WhatsAppNumber)
	assert.Equal(t, "(31) 3772-6397", resolved.ContactPhone)
}

func TestReconstructRejectsNonSoloID(t *testing.T) {
	_, err := ReconstructSiteSetting(2, "", "", "", "", "", "", "", time.Now())
	assert.Error(t, err)
}

func TestResolveDefaults(t *testing.T) {
	resolved := ResolveDefaults(Defaults{SiteName: "GIFT Excellence"})
	assert.Equal(t, "GIFT Excellence", resolved.SiteName)
}
