package resume

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

const (
	MimePDF   = "application/pdf"
	MimePlain = "text/plain"
)

// Document 待分析的文档
type Document struct {
	Name        string
	ContentType string
	Data        []byte
}

func (d Document) kind() string {
	if bytes.HasPrefix(d.Data, []byte("%PDF-")) {
		return MimePDF
	}

	ct := strings.ToLower(d.ContentType)
	switch {
	case strings.HasPrefix(ct, MimePDF):
		return MimePDF
	case strings.HasPrefix(ct, MimePlain):
		return MimePlain
	}

	switch strings.ToLower(filepath.Ext(d.Name)) {
	case ".pdf":
		return MimePDF
	case ".txt", ".md":
		return MimePlain
	}

	if strings.HasPrefix(http.DetectContentType(d.Data), MimePlain) {
		return MimePlain
	}
	return ""
}

// ExtractText 提取文档文本，失败时返回 *DocumentReadError
func ExtractText(ctx context.Context, doc Document) (string, error) {
	if len(doc.Data) == 0 {
		return "", &DocumentReadError{Name: doc.Name, Err: ErrEmptyDocument}
	}

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var r result
		switch doc.kind() {
		case MimePDF:
			r.text, r.err = extractPDF(doc.Data)
		case MimePlain:
			if !utf8.Valid(doc.Data) {
				r.err = fmt.Errorf("text document is not valid utf-8")
			} else {
				r.text = string(doc.Data)
			}
		default:
			r.err = ErrUnsupportedDocument
		}
		done <- r
	}()

	select {
	case <-ctx.Done():
		return "", &DocumentReadError{Name: doc.Name, Err: ctx.Err()}
	case r := <-done:
		if r.err != nil {
			return "", &DocumentReadError{Name: doc.Name, Err: r.err}
		}
		return r.text, nil
	}
}

func extractPDF(data []byte) (text string, err error) {
	// pdf 库在遇到损坏文件时可能 panic
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("malformed pdf: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}
