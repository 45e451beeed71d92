package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PDFParserService interface {
	ExtractText(data []byte) (string, error)
	ExtractTextWithMetaData(data []byte) (*PDFContent, error)
}

type PDFContent struct {
	Text          string
	PageCount     int
	PagesWithText int
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractText returns the text of every page in document order, each page
// followed by a newline. Pages that yield nothing are skipped, so a PDF with
// no extractable text returns an empty string and no error.
func (p *pdfParserService) ExtractText(data []byte) (string, error) {
	content, err := p.ExtractTextWithMetaData(data)
	if err != nil {
		return "", err
	}
	return content.Text, nil
}

func (p *pdfParserService) ExtractTextWithMetaData(data []byte) (content *PDFContent, err error) {
	// The pdf package panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = fmt.Errorf("failed to open PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()
	withText := 0

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		text := pageText(r, pageIndex)
		if text == "" {
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
		withText++
	}

	return &PDFContent{
		Text:          textBuilder.String(),
		PageCount:     totalPage,
		PagesWithText: withText,
	}, nil
}

// pageText never fails: a page that cannot be read counts as empty.
func pageText(r *pdf.Reader, pageIndex int) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	page := r.Page(pageIndex)
	if page.V.IsNull() {
		return ""
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}
