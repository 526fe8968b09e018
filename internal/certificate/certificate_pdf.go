package certificate

import (
	"bytes"
	"fmt"
	"strings"
)

// A4 portrait in PDF points.
const (
	pageWidth  = 595
	pageHeight = 842
	marginX    = 72
)

// certificateDocument is the laid-out content of a certificate page: a
// centered title, the certificate number set large underneath it, then the
// detail lines at the left margin.
type certificateDocument struct {
	Title   string
	Number  string
	Details []string
}

func renderCertificatePDF(doc certificateDocument) ([]byte, error) {
	if doc.Title == "" {
		doc.Title = "Certificate of Completion"
	}

	var content strings.Builder

	// Title, centered in bold.
	content.WriteString(fmt.Sprintf("BT\n/F2 24 Tf\n%.1f 760 Td\n(%s) Tj\nET\n",
		centeredX(doc.Title, 24), pdfEscape(doc.Title)))

	// Certificate number, centered and emphasized under the title.
	if doc.Number != "" {
		content.WriteString(fmt.Sprintf("BT\n/F2 16 Tf\n%.1f 724 Td\n(%s) Tj\nET\n",
			centeredX(doc.Number, 16), pdfEscape(doc.Number)))
	}

	// Detail block at the left margin.
	content.WriteString(fmt.Sprintf("BT\n/F1 12 Tf\n%d 670 Td\n18 TL\n", marginX))
	for i, line := range doc.Details {
		if i > 0 {
			content.WriteString("T*\n")
		}
		content.WriteString(fmt.Sprintf("(%s) Tj\n", pdfEscape(line)))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		fmt.Sprintf("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Resources << /Font << /F1 4 0 R /F2 5 0 R >> >> /Contents 6 0 R >>\nendobj\n",
			pageWidth, pageHeight),
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
		"5 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold >>\nendobj\n",
		fmt.Sprintf("6 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

// centeredX approximates the x offset that centers text on the page. Helvetica
// averages roughly half an em per glyph, close enough for single-line titles.
func centeredX(text string, fontSize float64) float64 {
	width := float64(len(text)) * fontSize * 0.5
	x := (float64(pageWidth) - width) / 2
	if x < marginX {
		x = marginX
	}
	return x
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
