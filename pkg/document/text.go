// Package document pulls plain text out of uploaded job postings and résumés.
package document

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// MaxSize is the largest upload accepted by ExtractText.
const MaxSize = 10 << 20

var (
	ErrUnsupported = errors.New("unsupported file format: only pdf, docx and txt are allowed")
	ErrTooLarge    = errors.New("file is too large")
)

// ExtractText dispatches on the file extension.
func ExtractText(filename string, data []byte) (string, error) {
	if len(data) > MaxSize {
		return "", ErrTooLarge
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return pdfText(data)
	case ".docx":
		return docxText(data)
	case ".txt", ".md":
		return collapseSpace(string(data)), nil
	}
	return "", ErrUnsupported
}

func pdfText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	return collapseSpace(buf.String()), nil
}

// docxText walks word/document.xml: text runs (w:t) are kept, tabs become
// spaces and paragraphs end with a newline.
func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	var body *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			body = f
			break
		}
	}
	if body == nil {
		return "", errors.New("open docx: word/document.xml is missing")
	}
	rc, err := body.Open()
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer rc.Close()

	var b strings.Builder
	dec := xml.NewDecoder(rc)
	inText := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse docx: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteByte(' ')
			case "br":
				b.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return collapseSpace(b.String()), nil
}

var (
	reBlanks   = regexp.MustCompile(`[ \t\r\f\v\x{00A0}]+`)
	reNewlines = regexp.MustCompile(`\s*\n\s*`)
)

func collapseSpace(s string) string {
	s = reBlanks.ReplaceAllString(s, " ")
	s = reNewlines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
