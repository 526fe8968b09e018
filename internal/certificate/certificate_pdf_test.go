package certificate

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCertificatePDF_Layout(t *testing.T) {
	pdf, err := renderCertificatePDF(certificateDocument{
		Title:  "Certificate of Completion",
		Number: "CERT-000042",
		Details: []string{
			"Awarded to: J. Doe",
			"Training: Forklift Certification",
		},
	})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-1.4")))
	assert.True(t, bytes.HasSuffix(pdf, []byte("%%EOF")))

	// Title and number are set in the bold face; the detail block uses the
	// regular face at the left margin.
	assert.Contains(t, string(pdf), "/F2 24 Tf")
	assert.Contains(t, string(pdf), "/F2 16 Tf")
	assert.Contains(t, string(pdf), "(CERT-000042) Tj")
	assert.Contains(t, string(pdf), "/F1 12 Tf\n72 670 Td")
	assert.Contains(t, string(pdf), "(Awarded to: J. Doe) Tj")
	assert.Contains(t, string(pdf), "/BaseFont /Helvetica-Bold")
}

func TestRenderCertificatePDF_CentersTitle(t *testing.T) {
	short, err := renderCertificatePDF(certificateDocument{Title: "Cert", Number: "CERT-000001"})
	require.NoError(t, err)
	long, err := renderCertificatePDF(certificateDocument{
		Title:  "Certificate of Completion and Continued Competency",
		Number: "CERT-000001",
	})
	require.NoError(t, err)

	// A shorter title starts further from the left edge than a longer one.
	assert.NotEqual(t, titleX(t, short), titleX(t, long))
	assert.Greater(t, titleX(t, short), titleX(t, long))
}

func TestRenderCertificatePDF_EscapesDelimiters(t *testing.T) {
	pdf, err := renderCertificatePDF(certificateDocument{
		Title:   "Certificate of Completion",
		Number:  "CERT-000007",
		Details: []string{"Training: HazCom (29 CFR 1910.1200)"},
	})
	require.NoError(t, err)

	assert.Contains(t, string(pdf), `(Training: HazCom \(29 CFR 1910.1200\)) Tj`)
}

// titleX reads back the x offset of the 24pt title line.
func titleX(t *testing.T, pdf []byte) float64 {
	t.Helper()
	idx := bytes.Index(pdf, []byte("/F2 24 Tf\n"))
	require.GreaterOrEqual(t, idx, 0)
	rest := pdf[idx+len("/F2 24 Tf\n"):]
	end := bytes.IndexByte(rest, ' ')
	require.Greater(t, end, 0)

	x, err := strconv.ParseFloat(string(rest[:end]), 64)
	require.NoError(t, err)
	return x
}
