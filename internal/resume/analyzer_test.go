package resume

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeEndToEnd(t *testing.T) {
	a := NewAnalyzer(NewExtractor(DefaultVocabulary(), nil, nil))
	doc := Document{Name: "cv.txt", ContentType: "text/plain", Data: []byte("Experienced in Python and React")}

	got, err := a.Analyze(context.Background(), doc, "Requires Python, React, Docker")
	require.NoError(t, err)

	assert.Equal(t, []string{"Python", "React"}, got.ResumeSkills)
	assert.Equal(t, []string{"Docker", "Python", "React"}, got.JobSkills)
	assert.Equal(t, []string{"Docker"}, got.MissingSkills)
	assert.InDelta(t, 66.67, got.Score, 0.01)
}

func TestAnalyzeDocumentReadError(t *testing.T) {
	a := NewAnalyzer(NewExtractor(DefaultVocabulary(), nil, nil))

	tests := []struct {
		name string
		doc  Document
	}{
		{name: "empty", doc: Document{Name: "cv.pdf"}},
		{name: "corrupt pdf", doc: Document{Name: "cv.pdf", ContentType: MimePDF, Data: []byte("%PDF-1.4\nthis is not a pdf")}},
		{name: "unsupported", doc: Document{Name: "cv.docx", ContentType: "application/octet-stream", Data: []byte{0x50, 0x4b, 0x03, 0x04, 0x00, 0xff}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Analyze(context.Background(), tt.doc, "python")
			require.Error(t, err)

			var readErr *DocumentReadError
			assert.True(t, errors.As(err, &readErr))
			assert.Equal(t, tt.doc.Name, readErr.Name)
		})
	}
}

func TestExtractTextHonoursContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	_, err := ExtractText(ctx, Document{Name: "cv.txt", Data: []byte("python")})
	if err != nil {
		// 已取消的 context 与完成的提取存在竞争，两种结果都合法
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	}
}

func TestDocumentKind(t *testing.T) {
	assert.Equal(t, MimePDF, Document{Data: []byte("%PDF-1.7 ...")}.kind())
	assert.Equal(t, MimePDF, Document{Name: "a.PDF", Data: []byte{0x01}}.kind())
	assert.Equal(t, MimePlain, Document{ContentType: "text/plain; charset=utf-8", Data: []byte("x")}.kind())
	assert.Equal(t, MimePlain, Document{Name: "resume", Data: []byte("plain words")}.kind())
	assert.Equal(t, "", Document{Name: "a.bin", Data: []byte{0x00, 0x01, 0x02, 0xff}}.kind())
}
