package extract

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrUnsupportedType is returned for any content type other than plain text or PDF.
	ErrUnsupportedType = errors.New("unsupported file type (only PDF and TXT allowed)")
	// ErrNoText is returned when extraction yields nothing but whitespace,
	// e.g. a scanned PDF without a text layer.
	ErrNoText = errors.New("no extractable text in document")
)

const (
	TypeText = "text/plain"
	TypePDF  = "application/pdf"
)

// ResolveContentType falls back to the filename extension when the declared
// content type is empty. Returns "" when neither identifies a supported type.
func ResolveContentType(declared, filename string) string {
	if declared != "" {
		return declared
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return TypeText
	case ".pdf":
		return TypePDF
	}
	return ""
}

// Extract converts raw file bytes into plain text based on the declared
// content type.
func Extract(data []byte, contentType string) (string, error) {
	var text string
	switch contentType {
	case TypeText:
		text = string(data)
	case TypePDF:
		var err error
		text, err = extractPDF(data)
		if err != nil {
			return "", err
		}
	default:
		return "", ErrUnsupportedType
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}
	return text, nil
}

// extractPDF walks every page in order and concatenates their text with
// newline separators. Pages that fail to extract individually are skipped.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	numPages := reader.NumPage()
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}
