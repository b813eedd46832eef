// Package extraction converts raw resume documents into plain text.
package extraction

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MIME types accepted by Text.
const (
	MIMEPlainText = "text/plain"
	MIMEPDF       = "application/pdf"
	MIMEDocx      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Text extracts plain text from a resume document. Decoding is a pure
// transformation of the input bytes; a corrupt file fails once with an
// ExtractionError and no partial result. The context deadline bounds the
// decode of large documents.
func Text(ctx context.Context, data []byte, mimeType string) (string, error) {
	switch mimeType {
	case MIMEPlainText:
		return string(data), nil
	case MIMEPDF:
		return decodeBounded(ctx, "pdf extraction", func() (string, error) {
			return pdfText(data)
		})
	case MIMEDocx:
		return decodeBounded(ctx, "docx extraction", func() (string, error) {
			return docxText(data)
		})
	default:
		return "", &UnsupportedFormatError{MIME: mimeType}
	}
}

// decodeBounded runs decode in its own goroutine so a slow decode of a large
// document respects the caller's deadline. The decode goroutine is left to
// finish on its own after a timeout; its result is discarded.
func decodeBounded(ctx context.Context, stage string, decode func() (string, error)) (string, error) {
	type result struct {
		text string
		err  error
	}

	done := make(chan result, 1)
	go func() {
		text, err := decode()
		done <- result{text: text, err: err}
	}()

	select {
	case res := <-done:
		return res.text, res.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", &TimeoutError{Stage: stage, Cause: ctx.Err()}
		}
		return "", ctx.Err()
	}
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Message: "failed to read pdf", Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ExtractionError{Message: fmt.Sprintf("failed to read pdf page %d", i), Cause: err}
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Message: "failed to parse docx", Cause: err}
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
